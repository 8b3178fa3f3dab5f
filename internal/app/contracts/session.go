package contracts

import (
	"advice-service/internal/app/models"
	"context"
)

type SessionService interface {
	CreateSession(ctx context.Context, session *models.Session) error
	GetSessionData(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
