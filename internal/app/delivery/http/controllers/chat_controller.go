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

type ChatController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	ChatUsecase    contracts.ChatUsecase
}

func NewChatController(logger *zap.Logger, internalConfig *config.InternalConfig, chatUsecase contracts.ChatUsecase) *ChatController {
	return &ChatController{
		Log:            logger,
		InternalConfig: internalConfig,
		ChatUsecase:    chatUsecase,
	}
}

func (ctrl *ChatController) Reply(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	request := &requests.ChatRequest{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeChatRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.ChatUsecase.Reply(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ChatReplySuccessMessage, response)
}
