package profiles

import (
	"advice-service/internal/app/contracts"
	"advice-service/internal/app/models"
	"advice-service/internal/pkg/constvars"
	"advice-service/internal/pkg/dto/requests"
	"advice-service/internal/pkg/dto/responses"
	"advice-service/internal/pkg/exceptions"
	"advice-service/internal/pkg/utils"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
)

type profileUsecase struct {
	ProfileRepository contracts.ProfileRepository
	SkillUsecase      contracts.SkillUsecase
	Storage           contracts.Storage
	BucketName        string
	Log               *zap.Logger
}

var (
	profileUsecaseInstance contracts.ProfileUsecase
	onceProfileUsecase     sync.Once
)

func NewProfileUsecase(
	profilePostgresRepository contracts.ProfileRepository,
	skillUsecase contracts.SkillUsecase,
	storage contracts.Storage,
	bucketName string,
	logger *zap.Logger,
) contracts.ProfileUsecase {
	onceProfileUsecase.Do(func() {
		instance := &profileUsecase{
			ProfileRepository: profilePostgresRepository,
			SkillUsecase:      skillUsecase,
			Storage:           storage,
			BucketName:        bucketName,
			Log:               logger,
		}
		profileUsecaseInstance = instance
	})
	return profileUsecaseInstance
}

func (uc *profileUsecase) GetOwnProfile(ctx context.Context, session *models.Session) (*responses.UserProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.GetOwnProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProfileIDKey, session.ProfileID),
	)

	profile, err := uc.ProfileRepository.FindByID(ctx, session.ProfileID)
	if err != nil {
		uc.Log.Error("profileUsecase.GetOwnProfile error fetching profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrProfileNotFound(fmt.Errorf("user profile %s does not exist", session.ProfileID))
	}

	skills, err := uc.SkillUsecase.FindByProfileID(ctx, profile.ID)
	if err != nil {
		uc.Log.Error("profileUsecase.GetOwnProfile error fetching skills",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := profile.ConvertIntoResponse()
	response.Skills = skills
	return &response, nil
}

func (uc *profileUsecase) GetPublicProfile(ctx context.Context, profileID string) (*responses.PublicProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.GetPublicProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProfileIDKey, profileID),
	)

	profile, err := uc.ProfileRepository.FindByID(ctx, profileID)
	if err != nil {
		uc.Log.Error("profileUsecase.GetPublicProfile error fetching profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrProfileNotFound(fmt.Errorf("user profile %s does not exist", profileID))
	}

	skills, err := uc.SkillUsecase.FindByProfileID(ctx, profile.ID)
	if err != nil {
		uc.Log.Error("profileUsecase.GetPublicProfile error fetching skills",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := profile.ConvertIntoPublicResponse()
	response.Skills = skills
	return &response, nil
}

func (uc *profileUsecase) UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdateProfile) (*responses.UserProfile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProfileIDKey, session.ProfileID),
	)

	profile, err := uc.ProfileRepository.FindByID(ctx, session.ProfileID)
	if err != nil {
		uc.Log.Error("profileUsecase.UpdateProfile error fetching profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrProfileNotFound(fmt.Errorf("user profile %s does not exist", session.ProfileID))
	}

	profile.SetDataForUpdateProfile(
		request.FirstName,
		request.LastName,
		request.Bio,
		request.PhoneNumber,
		request.Location,
		request.SocialMediaLinks,
	)

	err = uc.ProfileRepository.UpdateProfile(ctx, profile)
	if err != nil {
		uc.Log.Error("profileUsecase.UpdateProfile error updating profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := profile.ConvertIntoResponse()
	uc.Log.Info("profileUsecase.UpdateProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProfileIDKey, profile.ID),
	)
	return &response, nil
}

func (uc *profileUsecase) UploadProfilePicture(ctx context.Context, session *models.Session, request *requests.UploadProfilePicture) (*responses.UploadFile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.UploadProfilePicture called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProfileIDKey, session.ProfileID),
	)

	imageData, fileExtension, err := utils.DecodeBase64Image(request.ProfilePicture)
	if err != nil {
		uc.Log.Error("profileUsecase.UploadProfilePicture error decoding image",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrImageValidation(err)
	}

	if err := utils.ValidateImageFormat(fileExtension); err != nil {
		uc.Log.Error("profileUsecase.UploadProfilePicture unsupported image format",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrImageValidation(err)
	}

	fileName := utils.GenerateFileName(constvars.MinioProfilePicturePrefix, session.Username, fileExtension)
	objectName, err := uc.Storage.UploadBase64Image(ctx, imageData, uc.BucketName, fileName, fileExtension)
	if err != nil {
		uc.Log.Error("profileUsecase.UploadProfilePicture error uploading image",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.ProfileRepository.UpdateProfilePicture(ctx, session.ProfileID, objectName)
	if err != nil {
		uc.Log.Error("profileUsecase.UploadProfilePicture error persisting object name",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("profileUsecase.UploadProfilePicture succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProfileIDKey, session.ProfileID),
	)
	return &responses.UploadFile{ObjectName: objectName}, nil
}

func (uc *profileUsecase) UploadResume(ctx context.Context, session *models.Session, fileName string, data []byte) (*responses.UploadFile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.UploadResume called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProfileIDKey, session.ProfileID),
	)

	fileExtension := strings.ToLower(filepath.Ext(fileName))
	if fileExtension != ".pdf" {
		err := fmt.Errorf("unsupported resume extension %q", fileExtension)
		uc.Log.Error("profileUsecase.UploadResume unsupported format",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrResumeValidation(err)
	}
	if len(data) == 0 {
		err := fmt.Errorf("empty resume upload")
		return nil, exceptions.ErrResumeValidation(err)
	}

	objectFileName := utils.GenerateFileName(constvars.MinioResumePrefix, session.Username, fileExtension)
	objectName, err := uc.Storage.UploadFile(ctx, data, uc.BucketName, objectFileName, "application/pdf")
	if err != nil {
		uc.Log.Error("profileUsecase.UploadResume error uploading file",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.ProfileRepository.UpdateResume(ctx, session.ProfileID, objectName)
	if err != nil {
		uc.Log.Error("profileUsecase.UploadResume error persisting object name",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("profileUsecase.UploadResume succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProfileIDKey, session.ProfileID),
	)
	return &responses.UploadFile{ObjectName: objectName}, nil
}
