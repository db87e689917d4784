package controllers

import (
	"dermacare-service/internal/app/config"
	"time"
)

func requestTimeout(internalConfig *config.InternalConfig) time.Duration {
	return time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second
}
