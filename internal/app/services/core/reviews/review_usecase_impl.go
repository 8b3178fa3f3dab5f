package reviews

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

	"go.uber.org/zap"
)

type reviewUsecase struct {
	ReviewRepository contracts.ReviewRepository
	UserRepository   contracts.UserRepository
	Log              *zap.Logger
}

var (
	reviewUsecaseInstance contracts.ReviewUsecase
	onceReviewUsecase     sync.Once
)

func NewReviewUsecase(
	reviewMongoRepository contracts.ReviewRepository,
	userPostgresRepository contracts.UserRepository,
	logger *zap.Logger,
) contracts.ReviewUsecase {
	onceReviewUsecase.Do(func() {
		instance := &reviewUsecase{
			ReviewRepository: reviewMongoRepository,
			UserRepository:   userPostgresRepository,
			Log:              logger,
		}
		reviewUsecaseInstance = instance
	})
	return reviewUsecaseInstance
}

func (uc *reviewUsecase) CreateReview(ctx context.Context, session *models.Session, reviewedUserID string, request *requests.CreateReview) (*responses.Review, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reviewUsecase.CreateReview called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, reviewedUserID),
	)

	reviewedUser, err := uc.UserRepository.FindByID(ctx, reviewedUserID)
	if err != nil {
		uc.Log.Error("reviewUsecase.CreateReview error fetching reviewed user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if reviewedUser == nil {
		return nil, exceptions.ErrUserNotExist(fmt.Errorf("user %s does not exist", reviewedUserID))
	}

	review := &models.Review{
		ReviewerID:     session.UserID,
		ReviewedUserID: reviewedUserID,
		Rating:         request.Rating,
		Comment:        request.Comment,
	}
	review.SetCreatedAtUpdatedAt()

	created, err := uc.ReviewRepository.CreateReview(ctx, review)
	if err != nil {
		uc.Log.Error("reviewUsecase.CreateReview error inserting review",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := created.ConvertIntoResponse()
	uc.Log.Info("reviewUsecase.CreateReview succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &response, nil
}

func (uc *reviewUsecase) FindByReviewedUserID(ctx context.Context, reviewedUserID string) ([]responses.Review, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reviewUsecase.FindByReviewedUserID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, reviewedUserID),
	)

	reviews, err := uc.ReviewRepository.FindByReviewedUserID(ctx, reviewedUserID)
	if err != nil {
		uc.Log.Error("reviewUsecase.FindByReviewedUserID error fetching reviews",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Review, len(reviews))
	for i, eachReview := range reviews {
		response[i] = eachReview.ConvertIntoResponse()
	}

	uc.Log.Info("reviewUsecase.FindByReviewedUserID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingReviewsCountKey, len(response)),
	)
	return response, nil
}
