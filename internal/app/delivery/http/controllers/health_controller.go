package controllers

import (
	"dermacare-service/internal/pkg/constvars"
	"dermacare-service/internal/pkg/utils"
	"net/http"
	"time"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckMessage, map[string]string{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
