package routers

import (
	"advice-service/internal/app/config"
	"advice-service/internal/app/delivery/http/controllers"
	"advice-service/internal/app/delivery/http/middlewares"
	"advice-service/internal/app/models"
	"advice-service/internal/pkg/constvars"
	"advice-service/internal/pkg/dto/requests"
	"advice-service/internal/pkg/dto/responses"
	"advice-service/internal/pkg/exceptions"
	"advice-service/internal/pkg/utils"
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAvailabilityUsecase struct {
	mock.Mock
}

func (m *MockAvailabilityUsecase) SetAvailability(ctx context.Context, profileID string, request *requests.SetAvailability) (*responses.Availability, error) {
	args := m.Called(ctx, profileID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Availability), args.Error(1)
}

func (m *MockAvailabilityUsecase) GetAvailabilityByProfileID(ctx context.Context, profileID string) (*responses.Availability, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Availability), args.Error(1)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionService) GetSessionData(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

const testJWTSecret = "router-test-secret"

func newAvailabilityTestRouter(mockUsecase *MockAvailabilityUsecase, mockSessionService *MockSessionService) chi.Router {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{}
	internalConfig.JWT.Secret = testJWTSecret

	availabilityController := controllers.NewAvailabilityController(logger, mockUsecase)
	testMiddlewares := middlewares.NewMiddlewares(mockSessionService, internalConfig, logger)

	router := chi.NewRouter()
	attachAvailabilityRoutes(router, testMiddlewares, availabilityController)
	return router
}

func seedCollegeStudentSession(t *testing.T, mockSessionService *MockSessionService, profileID string) string {
	sessionID := "session-" + profileID
	token, err := utils.GenerateJWT(testJWTSecret, sessionID, time.Hour)
	assert.NoError(t, err, "generating a test token should not fail")

	mockSessionService.On("GetSessionData", mock.Anything, sessionID).Return(&models.Session{
		SessionID: sessionID,
		UserID:    "user-1",
		ProfileID: profileID,
		Email:     "mentor@example.com",
		Username:  "mentor",
		Role:      constvars.RoleCollegeStudent,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	return token
}

func TestSetAvailabilityRoute(t *testing.T) {
	profileID := "profile-123"

	body := func() *bytes.Buffer {
		payload, _ := json.Marshal(requests.SetAvailability{
			Availability: []requests.AvailabilitySlot{
				{DayOfWeek: "monday", StartTime: "09:00:00", EndTime: "10:00:00"},
			},
		})
		return bytes.NewBuffer(payload)
	}

	t.Run("Successful Set Availability", func(t *testing.T) {
		mockUsecase := new(MockAvailabilityUsecase)
		mockSessionService := new(MockSessionService)
		router := newAvailabilityTestRouter(mockUsecase, mockSessionService)
		token := seedCollegeStudentSession(t, mockSessionService, profileID)

		mockUsecase.On("SetAvailability", mock.Anything, profileID, mock.Anything).Return(&responses.Availability{
			Status: responses.AvailabilityStatusOK,
			Slots: []responses.AvailabilitySlot{
				{DayOfWeek: "monday", StartTime: "09:00:00", EndTime: "10:00:00"},
			},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/", body())
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "Expected status code 200 for accepted availability")

		var response responses.ResponseDTO
		err := json.Unmarshal(rr.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.True(t, response.Success)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Rejected Slots Return Bad Request With Errors", func(t *testing.T) {
		mockUsecase := new(MockAvailabilityUsecase)
		mockSessionService := new(MockSessionService)
		router := newAvailabilityTestRouter(mockUsecase, mockSessionService)
		token := seedCollegeStudentSession(t, mockSessionService, profileID)

		mockUsecase.On("SetAvailability", mock.Anything, profileID, mock.Anything).Return(nil, exceptions.ErrAvailabilityRejected([]string{
			"Time slot overlap on monday: 09:00:00-10:00:00 and 09:30:00-10:30:00",
		}))

		req := httptest.NewRequest(http.MethodPost, "/", body())
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "Expected status code 400 for rejected availability")

		var envelope struct {
			Status  string   `json:"status"`
			Success bool     `json:"success"`
			Message string   `json:"message"`
			Errors  []string `json:"errors"`
		}
		err := json.Unmarshal(rr.Body.Bytes(), &envelope)
		assert.NoError(t, err)
		assert.False(t, envelope.Success)
		assert.Equal(t, responses.AvailabilityStatusRejected, envelope.Status)
		assert.Equal(t, constvars.ErrClientAvailabilityRejected, envelope.Message)
		assert.Equal(t, []string{
			"Time slot overlap on monday: 09:00:00-10:00:00 and 09:30:00-10:30:00",
		}, envelope.Errors)
	})

	t.Run("Missing Token Is Unauthorized", func(t *testing.T) {
		mockUsecase := new(MockAvailabilityUsecase)
		mockSessionService := new(MockSessionService)
		router := newAvailabilityTestRouter(mockUsecase, mockSessionService)

		req := httptest.NewRequest(http.MethodPost, "/", body())
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "Expected status code 401 without a token")
		mockUsecase.AssertNotCalled(t, "SetAvailability", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Mentee Role Is Forbidden", func(t *testing.T) {
		mockUsecase := new(MockAvailabilityUsecase)
		mockSessionService := new(MockSessionService)
		router := newAvailabilityTestRouter(mockUsecase, mockSessionService)

		sessionID := "session-mentee"
		token, err := utils.GenerateJWT(testJWTSecret, sessionID, time.Hour)
		assert.NoError(t, err)
		mockSessionService.On("GetSessionData", mock.Anything, sessionID).Return(&models.Session{
			SessionID: sessionID,
			ProfileID: profileID,
			Role:      constvars.RoleMentee,
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/", body())
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code, "Expected status code 403 for mentee accounts")
		mockUsecase.AssertNotCalled(t, "SetAvailability", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Invalid Slot Shape Fails Validation", func(t *testing.T) {
		mockUsecase := new(MockAvailabilityUsecase)
		mockSessionService := new(MockSessionService)
		router := newAvailabilityTestRouter(mockUsecase, mockSessionService)
		token := seedCollegeStudentSession(t, mockSessionService, profileID)

		payload, _ := json.Marshal(requests.SetAvailability{
			Availability: []requests.AvailabilitySlot{
				{DayOfWeek: "moonday", StartTime: "09:00:00", EndTime: "10:00:00"},
			},
		})

		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBuffer(payload))
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "Expected status code 400 for an unknown day")
		mockUsecase.AssertNotCalled(t, "SetAvailability", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Inverted Time Range Fails Validation", func(t *testing.T) {
		mockUsecase := new(MockAvailabilityUsecase)
		mockSessionService := new(MockSessionService)
		router := newAvailabilityTestRouter(mockUsecase, mockSessionService)
		token := seedCollegeStudentSession(t, mockSessionService, profileID)

		payload, _ := json.Marshal(requests.SetAvailability{
			Availability: []requests.AvailabilitySlot{
				{DayOfWeek: "monday", StartTime: "10:00:00", EndTime: "09:00:00"},
			},
		})

		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBuffer(payload))
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "Expected status code 400 for a slot ending before it starts")
		mockUsecase.AssertNotCalled(t, "SetAvailability", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Storage Failure Returns Internal Error", func(t *testing.T) {
		mockUsecase := new(MockAvailabilityUsecase)
		mockSessionService := new(MockSessionService)
		router := newAvailabilityTestRouter(mockUsecase, mockSessionService)
		token := seedCollegeStudentSession(t, mockSessionService, profileID)

		mockUsecase.On("SetAvailability", mock.Anything, profileID, mock.Anything).
			Return(nil, exceptions.ErrPostgresDBCommitTx(errors.New("connection reset")).
				WithStatus(responses.AvailabilityStatusError))

		req := httptest.NewRequest(http.MethodPost, "/", body())
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code, "Expected status code 500 when the transaction fails")

		var envelope struct {
			Status string `json:"status"`
		}
		err := json.Unmarshal(rr.Body.Bytes(), &envelope)
		assert.NoError(t, err)
		assert.Equal(t, responses.AvailabilityStatusError, envelope.Status)
	})
}

func seedMenteeSession(t *testing.T, mockSessionService *MockSessionService) string {
	sessionID := "session-mentee-reader"
	token, err := utils.GenerateJWT(testJWTSecret, sessionID, time.Hour)
	assert.NoError(t, err)

	mockSessionService.On("GetSessionData", mock.Anything, sessionID).Return(&models.Session{
		SessionID: sessionID,
		ProfileID: "profile-reader",
		Role:      constvars.RoleMentee,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	return token
}

func TestGetAvailabilityRoute(t *testing.T) {
	profileID := "profile-456"

	t.Run("Mentee Can Read A Mentor Schedule", func(t *testing.T) {
		mockUsecase := new(MockAvailabilityUsecase)
		mockSessionService := new(MockSessionService)
		router := newAvailabilityTestRouter(mockUsecase, mockSessionService)
		token := seedMenteeSession(t, mockSessionService)

		mockUsecase.On("GetAvailabilityByProfileID", mock.Anything, profileID).Return(&responses.Availability{
			Status: responses.AvailabilityStatusOK,
			Slots:  []responses.AvailabilitySlot{},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/%s", profileID), nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "Expected status code 200 for an existing profile")

		var envelope struct {
			Success bool                   `json:"success"`
			Data    responses.Availability `json:"data"`
		}
		err := json.Unmarshal(rr.Body.Bytes(), &envelope)
		assert.NoError(t, err)
		assert.True(t, envelope.Success)
		assert.NotNil(t, envelope.Data.Slots, "empty schedule must serialize as an array")
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Unknown Profile Returns Not Found", func(t *testing.T) {
		mockUsecase := new(MockAvailabilityUsecase)
		mockSessionService := new(MockSessionService)
		router := newAvailabilityTestRouter(mockUsecase, mockSessionService)
		token := seedMenteeSession(t, mockSessionService)

		mockUsecase.On("GetAvailabilityByProfileID", mock.Anything, profileID).
			Return(nil, exceptions.ErrProfileNotFound(errors.New("user profile does not exist")))

		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/%s", profileID), nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code, "Expected status code 404 for an unknown profile")

		var envelope struct {
			Status string `json:"status"`
		}
		err := json.Unmarshal(rr.Body.Bytes(), &envelope)
		assert.NoError(t, err)
		assert.Equal(t, responses.AvailabilityStatusNotFound, envelope.Status)
	})

	t.Run("Missing Token Is Unauthorized", func(t *testing.T) {
		mockUsecase := new(MockAvailabilityUsecase)
		mockSessionService := new(MockSessionService)
		router := newAvailabilityTestRouter(mockUsecase, mockSessionService)

		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/%s", profileID), nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "Expected status code 401 without a token")
		mockUsecase.AssertNotCalled(t, "GetAvailabilityByProfileID", mock.Anything, mock.Anything)
	})
}
