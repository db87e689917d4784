package controllers

import (
	"context"
	"dermacare-service/internal/app/config"
	"dermacare-service/internal/app/contracts"
	"dermacare-service/internal/pkg/constvars"
	"dermacare-service/internal/pkg/dto/requests"
	"dermacare-service/internal/pkg/exceptions"
	"dermacare-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type HospitalController struct {
	Log             *zap.Logger
	InternalConfig  *config.InternalConfig
	HospitalUsecase contracts.HospitalUsecase
}

func NewHospitalController(logger *zap.Logger, internalConfig *config.InternalConfig, hospitalUsecase contracts.HospitalUsecase) *HospitalController {
	return &HospitalController{
		Log:             logger,
		InternalConfig:  internalConfig,
		HospitalUsecase: hospitalUsecase,
	}
}

func (ctrl *HospitalController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	query := utils.BuildHospitalQueryRequest(r)

	response, err := ctrl.HospitalUsecase.FindAll(ctx, query)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildListResponse(w, constvars.StatusOK, constvars.GetHospitalSuccessMessage, len(response), response)
}

func (ctrl *HospitalController) FindByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	hospitalID := chi.URLParam(r, "hospitalID")

	response, err := ctrl.HospitalUsecase.FindByID(ctx, hospitalID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetHospitalSuccessMessage, response)
}

func (ctrl *HospitalController) CreateHospital(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	request := &requests.CreateHospitalRequest{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateHospitalRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.HospitalUsecase.CreateHospital(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateHospitalSuccessMessage, response)
}
