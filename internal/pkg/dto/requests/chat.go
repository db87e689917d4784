package requests

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}
