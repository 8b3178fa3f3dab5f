package availability

import (
	"advice-service/internal/app/models"
	"advice-service/internal/pkg/constvars"
	"advice-service/internal/pkg/dto/requests"
	"advice-service/internal/pkg/dto/responses"
	"advice-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAvailabilityRepository struct {
	mock.Mock
}

func (m *MockAvailabilityRepository) ReplaceForProfile(ctx context.Context, profileID string, slots []models.AvailabilitySlot) error {
	args := m.Called(ctx, profileID, slots)
	return args.Error(0)
}

func (m *MockAvailabilityRepository) FindByProfileID(ctx context.Context, profileID string) ([]models.UserAvailability, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserAvailability), args.Error(1)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindByID(ctx context.Context, profileID string) (*models.UserProfile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockProfileRepository) FindByUserID(ctx context.Context, userID string) (*models.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockProfileRepository) CreateProfile(ctx context.Context, profile *models.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) UpdateProfile(ctx context.Context, profile *models.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) UpdateProfilePicture(ctx context.Context, profileID, objectName string) error {
	args := m.Called(ctx, profileID, objectName)
	return args.Error(0)
}

func (m *MockProfileRepository) UpdateResume(ctx context.Context, profileID, objectName string) error {
	args := m.Called(ctx, profileID, objectName)
	return args.Error(0)
}

func newTestAvailabilityUsecase(availabilityRepository *MockAvailabilityRepository, profileRepository *MockProfileRepository) *availabilityUsecase {
	return &availabilityUsecase{
		AvailabilityRepository: availabilityRepository,
		ProfileRepository:      profileRepository,
		Log:                    zap.NewNop(),
	}
}

func TestAvailabilityUsecase_SetAvailability(t *testing.T) {
	profileID := "9f1b8f0a-0c3b-4c67-9e27-111111111111"

	request := &requests.SetAvailability{
		Availability: []requests.AvailabilitySlot{
			{DayOfWeek: "monday", StartTime: "10:00:00", EndTime: "11:00:00"},
			{DayOfWeek: "monday", StartTime: "09:00:00", EndTime: "10:00:00"},
		},
	}

	t.Run("Successful Replace Returns Persisted Slots", func(t *testing.T) {
		mockAvailabilityRepository := new(MockAvailabilityRepository)
		mockProfileRepository := new(MockProfileRepository)
		usecase := newTestAvailabilityUsecase(mockAvailabilityRepository, mockProfileRepository)

		mockProfileRepository.On("FindByID", mock.Anything, profileID).
			Return(&models.UserProfile{ID: profileID}, nil)
		mockAvailabilityRepository.On("ReplaceForProfile", mock.Anything, profileID, []models.AvailabilitySlot{
			slot(models.Monday, "09:00:00", "10:00:00"),
			slot(models.Monday, "10:00:00", "11:00:00"),
		}).Return(nil)
		mockAvailabilityRepository.On("FindByProfileID", mock.Anything, profileID).
			Return([]models.UserAvailability{
				{ID: "row-1", UserProfileID: profileID, DayOfWeek: models.Monday, StartTime: "09:00:00", EndTime: "10:00:00"},
				{ID: "row-2", UserProfileID: profileID, DayOfWeek: models.Monday, StartTime: "10:00:00", EndTime: "11:00:00"},
			}, nil)

		response, err := usecase.SetAvailability(context.Background(), profileID, request)

		assert.NoError(t, err)
		assert.NotNil(t, response)
		assert.Len(t, response.Slots, 2)
		assert.Equal(t, "09:00:00", response.Slots[0].StartTime)
		mockAvailabilityRepository.AssertExpectations(t)
	})

	t.Run("Unknown Profile Returns Not Found", func(t *testing.T) {
		mockAvailabilityRepository := new(MockAvailabilityRepository)
		mockProfileRepository := new(MockProfileRepository)
		usecase := newTestAvailabilityUsecase(mockAvailabilityRepository, mockProfileRepository)

		mockProfileRepository.On("FindByID", mock.Anything, profileID).Return(nil, nil)

		response, err := usecase.SetAvailability(context.Background(), profileID, request)

		assert.Nil(t, response)
		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr), "expected a CustomError")
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.Equal(t, responses.AvailabilityStatusNotFound, customErr.Status)
		mockAvailabilityRepository.AssertNotCalled(t, "ReplaceForProfile", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Rejected Proposals Never Reach Storage", func(t *testing.T) {
		mockAvailabilityRepository := new(MockAvailabilityRepository)
		mockProfileRepository := new(MockProfileRepository)
		usecase := newTestAvailabilityUsecase(mockAvailabilityRepository, mockProfileRepository)

		mockProfileRepository.On("FindByID", mock.Anything, profileID).
			Return(&models.UserProfile{ID: profileID}, nil)

		response, err := usecase.SetAvailability(context.Background(), profileID, &requests.SetAvailability{
			Availability: []requests.AvailabilitySlot{
				{DayOfWeek: "monday", StartTime: "09:00:00", EndTime: "10:00:00"},
				{DayOfWeek: "monday", StartTime: "09:30:00", EndTime: "10:30:00"},
			},
		})

		assert.Nil(t, response)
		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr), "expected a CustomError")
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, responses.AvailabilityStatusRejected, customErr.Status)
		assert.Equal(t, []string{
			"Time slot overlap on monday: 09:00:00-10:00:00 and 09:30:00-10:30:00",
		}, customErr.Errors)
		mockAvailabilityRepository.AssertNotCalled(t, "ReplaceForProfile", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Empty List Clears The Schedule", func(t *testing.T) {
		mockAvailabilityRepository := new(MockAvailabilityRepository)
		mockProfileRepository := new(MockProfileRepository)
		usecase := newTestAvailabilityUsecase(mockAvailabilityRepository, mockProfileRepository)

		mockProfileRepository.On("FindByID", mock.Anything, profileID).
			Return(&models.UserProfile{ID: profileID}, nil)
		mockAvailabilityRepository.On("ReplaceForProfile", mock.Anything, profileID, []models.AvailabilitySlot{}).
			Return(nil)
		mockAvailabilityRepository.On("FindByProfileID", mock.Anything, profileID).
			Return([]models.UserAvailability{}, nil)

		response, err := usecase.SetAvailability(context.Background(), profileID, &requests.SetAvailability{})

		assert.NoError(t, err)
		assert.NotNil(t, response)
		assert.NotNil(t, response.Slots, "cleared schedule must serialize as an empty array")
		assert.Empty(t, response.Slots)
		mockAvailabilityRepository.AssertExpectations(t)
	})

	t.Run("Storage Failure Is Propagated", func(t *testing.T) {
		mockAvailabilityRepository := new(MockAvailabilityRepository)
		mockProfileRepository := new(MockProfileRepository)
		usecase := newTestAvailabilityUsecase(mockAvailabilityRepository, mockProfileRepository)

		storageErr := errors.New("pq: deadlock detected")
		mockProfileRepository.On("FindByID", mock.Anything, profileID).
			Return(&models.UserProfile{ID: profileID}, nil)
		mockAvailabilityRepository.On("ReplaceForProfile", mock.Anything, profileID, mock.Anything).
			Return(storageErr)

		response, err := usecase.SetAvailability(context.Background(), profileID, request)

		assert.Nil(t, response)
		assert.Equal(t, storageErr, err)
		mockAvailabilityRepository.AssertNotCalled(t, "FindByProfileID", mock.Anything, mock.Anything)
	})
}

func TestAvailabilityUsecase_GetAvailabilityByProfileID(t *testing.T) {
	profileID := "9f1b8f0a-0c3b-4c67-9e27-222222222222"

	t.Run("Returns Persisted Slots", func(t *testing.T) {
		mockAvailabilityRepository := new(MockAvailabilityRepository)
		mockProfileRepository := new(MockProfileRepository)
		usecase := newTestAvailabilityUsecase(mockAvailabilityRepository, mockProfileRepository)

		mockProfileRepository.On("FindByID", mock.Anything, profileID).
			Return(&models.UserProfile{ID: profileID}, nil)
		mockAvailabilityRepository.On("FindByProfileID", mock.Anything, profileID).
			Return([]models.UserAvailability{
				{ID: "row-1", UserProfileID: profileID, DayOfWeek: models.Friday, StartTime: "16:00:00", EndTime: "18:00:00"},
			}, nil)

		response, err := usecase.GetAvailabilityByProfileID(context.Background(), profileID)

		assert.NoError(t, err)
		assert.NotNil(t, response)
		assert.Len(t, response.Slots, 1)
		assert.Equal(t, "friday", response.Slots[0].DayOfWeek)
	})

	t.Run("Unknown Profile Returns Not Found", func(t *testing.T) {
		mockAvailabilityRepository := new(MockAvailabilityRepository)
		mockProfileRepository := new(MockProfileRepository)
		usecase := newTestAvailabilityUsecase(mockAvailabilityRepository, mockProfileRepository)

		mockProfileRepository.On("FindByID", mock.Anything, profileID).Return(nil, nil)

		response, err := usecase.GetAvailabilityByProfileID(context.Background(), profileID)

		assert.Nil(t, response)
		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr), "expected a CustomError")
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		mockAvailabilityRepository.AssertNotCalled(t, "FindByProfileID", mock.Anything, mock.Anything)
	})
}
