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

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SymptomController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	SymptomUsecase contracts.SymptomUsecase
}

func NewSymptomController(logger *zap.Logger, internalConfig *config.InternalConfig, symptomUsecase contracts.SymptomUsecase) *SymptomController {
	return &SymptomController{
		Log:            logger,
		InternalConfig: internalConfig,
		SymptomUsecase: symptomUsecase,
	}
}

func (ctrl *SymptomController) Categories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	response, err := ctrl.SymptomUsecase.Categories(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSymptomCategoriesSuccessMessage, response)
}

func (ctrl *SymptomController) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	request := &requests.AnalyzeSymptomsRequest{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.SymptomUsecase.Analyze(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AnalyzeSymptomsSuccessMessage, response)
}
