package routers

import (
	"dermacare-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachChatRoutes(router chi.Router, chatController *controllers.ChatController) {
	router.Post("/", chatController.Reply)
}
