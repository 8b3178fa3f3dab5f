package contracts

import (
	"advice-service/internal/app/models"
	"advice-service/internal/pkg/dto/requests"
	"advice-service/internal/pkg/dto/responses"
	"context"
)

type SkillUsecase interface {
	FindAll(ctx context.Context) ([]responses.Skill, error)
	FindByProfileID(ctx context.Context, profileID string) ([]responses.Skill, error)
	ManageProfileSkills(ctx context.Context, session *models.Session, request *requests.ManageSkills) ([]responses.Skill, error)
}

type SkillRepository interface {
	FindAll(ctx context.Context) ([]models.Skill, error)
	FindByProfileID(ctx context.Context, profileID string) ([]models.Skill, error)
	CountByIDs(ctx context.Context, skillIDs []string) (int, error)
	ReplaceProfileSkills(ctx context.Context, profileID string, skillIDs []string) error
}
