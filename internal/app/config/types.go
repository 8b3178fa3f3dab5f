package config

import (
	"context"
	"database/sql"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		PostgresDB     *sql.DB
		MongoDB        *mongo.Database
		Redis          *redis.Client
		Minio          *minio.Client
		RabbitMQ       *amqp091.Connection
		Logger         *zap.Logger
		Log            *logrus.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	DriverConfig struct {
		PostgresDB PostgresDB
		MongoDB    MongoDB
		Redis      Redis
		Minio      Minio
		RabbitMQ   RabbitMQ
		Logger     Logger
	}

	InternalConfig struct {
		App   App
		JWT   JWT
		OAuth OAuth
	}

	App struct {
		Env                                     string
		Port                                    string
		Version                                 string
		Address                                 string
		EndpointPrefix                          string
		FrontendDomain                          string
		ResetPasswordUrl                        string
		MailerEmailSender                       string
		RabbitMQMailerQueue                     string
		MaxRequests                             int
		ShutdownTimeoutInSeconds                int
		MaxTimeRequestsPerSeconds               int
		RequestBodyLimitInMegabyte              int
		SkillCacheExpiredTimeInMinutes          int
		ForgotPasswordTokenExpiredTimeInMinutes int
		LoginSessionExpiredTimeInHours          int
		MinioProfilePictureMaxUploadSizeInMB    int64
	}

	PostgresDB struct {
		Host     string
		Port     string
		Username string
		Password string
		DbName   string
		SSLMode  string
	}
	MongoDB struct {
		Host     string
		Port     string
		Username string
		Password string
		DbName   string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Minio struct {
		Host       string
		Port       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}
	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	OAuth struct {
		GoogleClientID     string
		GoogleClientSecret string
		GoogleRedirectUrl  string
	}
)

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if err := b.PostgresDB.Close(); err != nil {
		return err
	}
	log.Println("Successfully closing PostgreSQL")

	if err := b.MongoDB.Client().Disconnect(ctx); err != nil {
		return err
	}
	log.Println("Successfully closing MongoDB")

	if err := b.Redis.Close(); err != nil {
		return err
	}
	log.Println("Successfully closing Redis")

	if err := b.RabbitMQ.Close(); err != nil {
		return err
	}
	log.Println("Successfully closing RabbitMQ")

	if err := b.Logger.Sync(); err != nil {
		return err
	}
	log.Println("Successfully closing Logger")

	return nil
}
