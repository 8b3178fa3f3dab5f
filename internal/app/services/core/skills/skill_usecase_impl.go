package skills

import (
	"advice-service/internal/app/contracts"
	"advice-service/internal/app/models"
	"advice-service/internal/pkg/constvars"
	"advice-service/internal/pkg/dto/requests"
	"advice-service/internal/pkg/dto/responses"
	"advice-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type skillUsecase struct {
	SkillRepository contracts.SkillRepository
	RedisRepository contracts.RedisRepository
	CacheExpiry     time.Duration
	Log             *zap.Logger
}

var (
	skillUsecaseInstance contracts.SkillUsecase
	onceSkillUsecase     sync.Once
)

func NewSkillUsecase(
	skillPostgresRepository contracts.SkillRepository,
	redisRepository contracts.RedisRepository,
	cacheExpiry time.Duration,
	logger *zap.Logger,
) contracts.SkillUsecase {
	onceSkillUsecase.Do(func() {
		instance := &skillUsecase{
			SkillRepository: skillPostgresRepository,
			RedisRepository: redisRepository,
			CacheExpiry:     cacheExpiry,
			Log:             logger,
		}
		skillUsecaseInstance = instance
	})
	return skillUsecaseInstance
}

func (uc *skillUsecase) FindAll(ctx context.Context) ([]responses.Skill, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("skillUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var skills []models.Skill

	skillRedisData, err := uc.RedisRepository.Get(ctx, constvars.RedisKeySkillCatalog)
	if err != nil {
		uc.Log.Error("skillUsecase.FindAll error retrieving skill data from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if skillRedisData == "" {
		uc.Log.Info("skillUsecase.FindAll no data in Redis, fetching from repository",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		skills, err = uc.SkillRepository.FindAll(ctx)
		if err != nil {
			uc.Log.Error("skillUsecase.FindAll error fetching skills from repository",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}

		err = uc.RedisRepository.Set(ctx, constvars.RedisKeySkillCatalog, skills, uc.CacheExpiry)
		if err != nil {
			uc.Log.Error("skillUsecase.FindAll error caching skills in Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
	} else {
		err = json.Unmarshal([]byte(skillRedisData), &skills)
		if err != nil {
			uc.Log.Error("skillUsecase.FindAll error unmarshaling Redis data",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrCannotParseJSON(err)
		}
	}

	response := make([]responses.Skill, len(skills))
	for i, eachSkill := range skills {
		response[i] = eachSkill.ConvertIntoResponse()
	}

	uc.Log.Info("skillUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSkillsCountKey, len(response)),
	)
	return response, nil
}

func (uc *skillUsecase) FindByProfileID(ctx context.Context, profileID string) ([]responses.Skill, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("skillUsecase.FindByProfileID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProfileIDKey, profileID),
	)

	skills, err := uc.SkillRepository.FindByProfileID(ctx, profileID)
	if err != nil {
		uc.Log.Error("skillUsecase.FindByProfileID error fetching skills",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Skill, len(skills))
	for i, eachSkill := range skills {
		response[i] = eachSkill.ConvertIntoResponse()
	}
	return response, nil
}

func (uc *skillUsecase) ManageProfileSkills(ctx context.Context, session *models.Session, request *requests.ManageSkills) ([]responses.Skill, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("skillUsecase.ManageProfileSkills called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProfileIDKey, session.ProfileID),
		zap.Int(constvars.LoggingSkillsCountKey, len(request.SkillIDs)),
	)

	count, err := uc.SkillRepository.CountByIDs(ctx, request.SkillIDs)
	if err != nil {
		uc.Log.Error("skillUsecase.ManageProfileSkills error counting skills",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if count != len(request.SkillIDs) {
		uc.Log.Error("skillUsecase.ManageProfileSkills unknown skill in request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrSkillNotFound(fmt.Errorf("requested %d skills, found %d", len(request.SkillIDs), count))
	}

	err = uc.SkillRepository.ReplaceProfileSkills(ctx, session.ProfileID, request.SkillIDs)
	if err != nil {
		uc.Log.Error("skillUsecase.ManageProfileSkills error replacing skills",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return uc.FindByProfileID(ctx, session.ProfileID)
}
