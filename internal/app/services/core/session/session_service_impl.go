package session

import (
	"advice-service/internal/app/contracts"
	"advice-service/internal/app/models"
	"advice-service/internal/pkg/constvars"
	"advice-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
}

var (
	sessionServiceInstance contracts.SessionService
	onceSessionService     sync.Once
)

func NewSessionService(redisRepository contracts.RedisRepository) contracts.SessionService {
	onceSessionService.Do(func() {
		instance := &sessionService{
			RedisRepository: redisRepository,
		}
		sessionServiceInstance = instance
	})
	return sessionServiceInstance
}

func (svc *sessionService) CreateSession(ctx context.Context, session *models.Session) error {
	expiry := time.Until(session.ExpiresAt)
	if expiry <= 0 {
		return exceptions.ErrTokenGenerate(fmt.Errorf("session %s already expired", session.SessionID))
	}
	return svc.RedisRepository.Set(ctx, constvars.RedisKeySessionPrefix+session.SessionID, session, expiry)
}

func (svc *sessionService) GetSessionData(ctx context.Context, sessionID string) (*models.Session, error) {
	sessionData, err := svc.RedisRepository.Get(ctx, constvars.RedisKeySessionPrefix+sessionID)
	if err != nil {
		return nil, err
	}
	if sessionData == "" {
		return nil, exceptions.ErrTokenInvalidOrExpired(fmt.Errorf("session %s not found", sessionID))
	}

	session := new(models.Session)
	err = json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return svc.RedisRepository.Delete(ctx, constvars.RedisKeySessionPrefix+sessionID)
}
