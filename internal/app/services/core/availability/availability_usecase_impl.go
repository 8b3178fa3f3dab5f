package availability

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

type availabilityUsecase struct {
	AvailabilityRepository contracts.AvailabilityRepository
	ProfileRepository      contracts.ProfileRepository
	Log                    *zap.Logger
}

var (
	availabilityUsecaseInstance contracts.AvailabilityUsecase
	onceAvailabilityUsecase     sync.Once
)

func NewAvailabilityUsecase(
	availabilityPostgresRepository contracts.AvailabilityRepository,
	profilePostgresRepository contracts.ProfileRepository,
	logger *zap.Logger,
) contracts.AvailabilityUsecase {
	onceAvailabilityUsecase.Do(func() {
		instance := &availabilityUsecase{
			AvailabilityRepository: availabilityPostgresRepository,
			ProfileRepository:      profilePostgresRepository,
			Log:                    logger,
		}
		availabilityUsecaseInstance = instance
	})
	return availabilityUsecaseInstance
}

func (uc *availabilityUsecase) SetAvailability(ctx context.Context, profileID string, request *requests.SetAvailability) (*responses.Availability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("availabilityUsecase.SetAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProfileIDKey, profileID),
		zap.Int(constvars.LoggingSlotsCountKey, len(request.Availability)),
	)

	profile, err := uc.ProfileRepository.FindByID(ctx, profileID)
	if err != nil {
		uc.Log.Error("availabilityUsecase.SetAvailability error fetching profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if profile == nil {
		uc.Log.Error("availabilityUsecase.SetAvailability profile not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProfileIDKey, profileID),
		)
		return nil, exceptions.ErrProfileNotFound(fmt.Errorf("user profile %s does not exist", profileID))
	}

	proposals := make([]models.AvailabilitySlot, len(request.Availability))
	for i, slot := range request.Availability {
		proposals[i] = models.AvailabilitySlot{
			DayOfWeek: models.DayOfWeek(slot.DayOfWeek),
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		}
	}

	result := NormalizeSlots(proposals)
	if !result.Accepted() {
		uc.Log.Error("availabilityUsecase.SetAvailability proposals rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingErrorsCountKey, len(result.Errors)),
		)
		return nil, exceptions.ErrAvailabilityRejected(result.Errors)
	}

	err = uc.AvailabilityRepository.ReplaceForProfile(ctx, profileID, result.Slots)
	if err != nil {
		uc.Log.Error("availabilityUsecase.SetAvailability error replacing slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	persisted, err := uc.AvailabilityRepository.FindByProfileID(ctx, profileID)
	if err != nil {
		uc.Log.Error("availabilityUsecase.SetAvailability error reading back slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := buildAvailabilityResponse(persisted)
	uc.Log.Info("availabilityUsecase.SetAvailability succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSlotsCountKey, len(response.Slots)),
	)
	return response, nil
}

func (uc *availabilityUsecase) GetAvailabilityByProfileID(ctx context.Context, profileID string) (*responses.Availability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("availabilityUsecase.GetAvailabilityByProfileID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProfileIDKey, profileID),
	)

	profile, err := uc.ProfileRepository.FindByID(ctx, profileID)
	if err != nil {
		uc.Log.Error("availabilityUsecase.GetAvailabilityByProfileID error fetching profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if profile == nil {
		uc.Log.Error("availabilityUsecase.GetAvailabilityByProfileID profile not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProfileIDKey, profileID),
		)
		return nil, exceptions.ErrProfileNotFound(fmt.Errorf("user profile %s does not exist", profileID))
	}

	persisted, err := uc.AvailabilityRepository.FindByProfileID(ctx, profileID)
	if err != nil {
		uc.Log.Error("availabilityUsecase.GetAvailabilityByProfileID error fetching slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := buildAvailabilityResponse(persisted)
	uc.Log.Info("availabilityUsecase.GetAvailabilityByProfileID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSlotsCountKey, len(response.Slots)),
	)
	return response, nil
}

func buildAvailabilityResponse(persisted []models.UserAvailability) *responses.Availability {
	slots := make([]responses.AvailabilitySlot, len(persisted))
	for i, row := range persisted {
		slots[i] = row.ConvertIntoResponse()
	}
	return &responses.Availability{
		Status: responses.AvailabilityStatusOK,
		Slots:  slots,
	}
}
