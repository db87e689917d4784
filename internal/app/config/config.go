package config

import (
	"dermacare-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "dermacare"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                     utils.GetEnvString("APP_ENV", "development"),
			Port:                    utils.GetEnvString("APP_PORT", ":5000"),
			Timezone:                utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			EndpointPrefix:          utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			FrontendURL:             utils.GetEnvString("APP_FRONTEND_URL", "http://localhost:5173"),
			MaxRequests:             utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeout:         utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds: utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			SlotLockTTLInSeconds:    utils.GetEnvInt("APP_SLOT_LOCK_TTL_IN_SECONDS", 5),
			NotificationQueue:       utils.GetEnvString("APP_NOTIFICATION_QUEUE", "appointment-events"),
		},
		Assistant: Assistant{
			BaseURL:              utils.GetEnvString("ASSISTANT_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
			APIKey:               utils.GetEnvString("ASSISTANT_API_KEY", ""),
			Model:                utils.GetEnvString("ASSISTANT_MODEL", "gemini-pro"),
			RequestTimeoutInSecs: utils.GetEnvInt("ASSISTANT_REQUEST_TIMEOUT_IN_SECONDS", 8),
			MaxRequestsPerMinute: utils.GetEnvInt("ASSISTANT_MAX_REQUESTS_PER_MINUTE", 30),
		},
	}
}
