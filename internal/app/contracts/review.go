package contracts

import (
	"advice-service/internal/app/models"
	"advice-service/internal/pkg/dto/requests"
	"advice-service/internal/pkg/dto/responses"
	"context"
)

type ReviewUsecase interface {
	CreateReview(ctx context.Context, session *models.Session, reviewedUserID string, request *requests.CreateReview) (*responses.Review, error)
	FindByReviewedUserID(ctx context.Context, reviewedUserID string) ([]responses.Review, error)
}

type ReviewRepository interface {
	CreateReview(ctx context.Context, review *models.Review) (*models.Review, error)
	FindByReviewedUserID(ctx context.Context, reviewedUserID string) ([]models.Review, error)
}
