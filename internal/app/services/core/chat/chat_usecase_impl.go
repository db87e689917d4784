package chat

import (
	"context"
	"dermacare-service/internal/app/contracts"
	"dermacare-service/internal/pkg/constvars"
	"dermacare-service/internal/pkg/dto/requests"
	"dermacare-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type chatUsecase struct {
	AssistantService contracts.AssistantService
	Log              *zap.Logger
}

func NewChatUsecase(assistantService contracts.AssistantService, logger *zap.Logger) contracts.ChatUsecase {
	return &chatUsecase{
		AssistantService: assistantService,
		Log:              logger,
	}
}

func (uc *chatUsecase) Reply(ctx context.Context, request *requests.ChatRequest) (*responses.ChatReply, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("chatUsecase.Reply called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	reply, source, err := uc.AssistantService.Ask(ctx, request.Message)
	if err != nil {
		uc.Log.Error("chatUsecase.Reply error asking assistant",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("chatUsecase.Reply succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingChatSourceKey, source),
	)

	return &responses.ChatReply{
		Reply:  reply,
		Source: source,
	}, nil
}
