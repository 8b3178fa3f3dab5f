package contracts

import (
	"advice-service/internal/app/models"
	"advice-service/internal/pkg/dto/requests"
	"advice-service/internal/pkg/dto/responses"
	"context"
)

type ProfileUsecase interface {
	GetOwnProfile(ctx context.Context, session *models.Session) (*responses.UserProfile, error)
	GetPublicProfile(ctx context.Context, profileID string) (*responses.PublicProfile, error)
	UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdateProfile) (*responses.UserProfile, error)
	UploadProfilePicture(ctx context.Context, session *models.Session, request *requests.UploadProfilePicture) (*responses.UploadFile, error)
	UploadResume(ctx context.Context, session *models.Session, fileName string, data []byte) (*responses.UploadFile, error)
}

type ProfileRepository interface {
	FindByID(ctx context.Context, profileID string) (*models.UserProfile, error)
	FindByUserID(ctx context.Context, userID string) (*models.UserProfile, error)
	CreateProfile(ctx context.Context, profile *models.UserProfile) error
	UpdateProfile(ctx context.Context, profile *models.UserProfile) error
	UpdateProfilePicture(ctx context.Context, profileID, objectName string) error
	UpdateResume(ctx context.Context, profileID, objectName string) error
}
