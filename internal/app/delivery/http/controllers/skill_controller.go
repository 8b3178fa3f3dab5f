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

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SkillController struct {
	Log          *zap.Logger
	SkillUsecase contracts.SkillUsecase
}

func NewSkillController(logger *zap.Logger, skillUsecase contracts.SkillUsecase) *SkillController {
	return &SkillController{
		Log:          logger,
		SkillUsecase: skillUsecase,
	}
}

func (ctrl *SkillController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.SkillUsecase.FindAll(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSkillsSuccessMessage, response)
}

func (ctrl *SkillController) ManageProfileSkills(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.ManageSkills)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeManageSkillsRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.SkillUsecase.ManageProfileSkills(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ManageSkillsSuccessMessage, response)
}
