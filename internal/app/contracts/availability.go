package contracts

import (
	"advice-service/internal/app/models"
	"advice-service/internal/pkg/dto/requests"
	"advice-service/internal/pkg/dto/responses"
	"context"
)

type AvailabilityUsecase interface {
	SetAvailability(ctx context.Context, profileID string, request *requests.SetAvailability) (*responses.Availability, error)
	GetAvailabilityByProfileID(ctx context.Context, profileID string) (*responses.Availability, error)
}

type AvailabilityRepository interface {
	// ReplaceForProfile deletes every slot owned by the profile and inserts the
	// given set inside a single transaction.
	ReplaceForProfile(ctx context.Context, profileID string, slots []models.AvailabilitySlot) error
	FindByProfileID(ctx context.Context, profileID string) ([]models.UserAvailability, error)
}
