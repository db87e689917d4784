package contracts

import (
	"context"
	"dermacare-service/internal/pkg/dto/requests"
	"dermacare-service/internal/pkg/dto/responses"
)

type ChatUsecase interface {
	Reply(ctx context.Context, request *requests.ChatRequest) (*responses.ChatReply, error)
}

// AssistantService is the external generative-AI capability. Ask returns
// a best-effort reply; implementations fall back to a deterministic
// response table when the upstream service is unavailable.
type AssistantService interface {
	Ask(ctx context.Context, message string) (reply string, source string, err error)
}
