package config

import (
	"advice-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		PostgresDB: PostgresDB{
			Host:     utils.GetEnvString("POSTGRES_HOST", "localhost"),
			Port:     utils.GetEnvString("POSTGRES_PORT", "5432"),
			Username: utils.GetEnvString("POSTGRES_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("POSTGRES_PASSWORD", "defaultPassword"),
			DbName:   utils.GetEnvString("POSTGRES_DB_NAME", "advice"),
			SSLMode:  utils.GetEnvString("POSTGRES_SSL_MODE", "disable"),
		},
		MongoDB: MongoDB{
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "advice"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Minio: Minio{
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "advice-uploads"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
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
			Env:                                     utils.GetEnvString("APP_ENV", "development"),
			Port:                                    utils.GetEnvString("APP_PORT", ":8080"),
			Version:                                 utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                                 utils.GetEnvString("APP_ADDRESS", "localhost"),
			EndpointPrefix:                          utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api/v1"),
			FrontendDomain:                          utils.GetEnvString("APP_FRONTEND_DOMAIN", "http://localhost:3000"),
			ResetPasswordUrl:                        utils.GetEnvString("APP_RESET_PASSWORD_URL", "http://localhost:3000/reset-password"),
			MailerEmailSender:                       utils.GetEnvString("APP_MAILER_EMAIL_SENDER", ""),
			RabbitMQMailerQueue:                     utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "mailer"),
			MaxRequests:                             utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeoutInSeconds:                utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			MaxTimeRequestsPerSeconds:               utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			RequestBodyLimitInMegabyte:              utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			SkillCacheExpiredTimeInMinutes:          utils.GetEnvInt("APP_SKILL_CACHE_EXPIRED_TIME_IN_MINUTE", 30),
			ForgotPasswordTokenExpiredTimeInMinutes: utils.GetEnvInt("APP_FORGOT_PASSWORD_TOKEN_EXP_TIME_IN_MINUTE", 15),
			LoginSessionExpiredTimeInHours:          utils.GetEnvInt("APP_LOGIN_SESSION_EXPIRED_TIME_IN_HOURS", 24),
			MinioProfilePictureMaxUploadSizeInMB:    utils.GetEnvInt64("APP_MINIO_PROFILE_PICTURE_UPLOAD_MAX_SIZE_IN_MB", 2),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		OAuth: OAuth{
			GoogleClientID:     utils.GetEnvString("GOOGLE_CLIENT_ID", ""),
			GoogleClientSecret: utils.GetEnvString("GOOGLE_CLIENT_SECRET", ""),
			GoogleRedirectUrl:  utils.GetEnvString("GOOGLE_REDIRECT_URL", "http://localhost:8080/api/v1/auth/google/callback"),
		},
	}
}
