package controllers

import (
	"advice-service/internal/app/contracts"
	"advice-service/internal/app/delivery/http/middlewares"
	"advice-service/internal/pkg/constvars"
	"advice-service/internal/pkg/dto/requests"
	"advice-service/internal/pkg/exceptions"
	"advice-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ReviewController struct {
	Log           *zap.Logger
	ReviewUsecase contracts.ReviewUsecase
}

func NewReviewController(logger *zap.Logger, reviewUsecase contracts.ReviewUsecase) *ReviewController {
	return &ReviewController{
		Log:           logger,
		ReviewUsecase: reviewUsecase,
	}
}

func (ctrl *ReviewController) CreateReview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	reviewedUserID := chi.URLParam(r, "user_id")

	request := new(requests.CreateReview)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.ReviewUsecase.CreateReview(ctx, session, reviewedUserID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateReviewSuccessMessage, response)
}

func (ctrl *ReviewController) FindByReviewedUserID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	reviewedUserID := chi.URLParam(r, "user_id")

	response, err := ctrl.ReviewUsecase.FindByReviewedUserID(ctx, reviewedUserID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetReviewsSuccessMessage, response)
}
