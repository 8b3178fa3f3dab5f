package main

import (
	"advice-service/internal/app/config"
	"advice-service/internal/app/delivery/http/controllers"
	"advice-service/internal/app/delivery/http/middlewares"
	"advice-service/internal/app/delivery/http/routers"
	"advice-service/internal/app/drivers/database"
	"advice-service/internal/app/drivers/logger"
	"advice-service/internal/app/drivers/messaging"
	"advice-service/internal/app/drivers/storage"
	"advice-service/internal/app/services/core/auth"
	"advice-service/internal/app/services/core/availability"
	"advice-service/internal/app/services/core/profiles"
	"advice-service/internal/app/services/core/reviews"
	"advice-service/internal/app/services/core/session"
	"advice-service/internal/app/services/core/skills"
	"advice-service/internal/app/services/core/users"
	"advice-service/internal/app/services/shared/mailerqueue"
	"advice-service/internal/app/services/shared/redis"
	sharedstorage "advice-service/internal/app/services/shared/storage"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	postgresDB := database.NewPostgresDB(driverConfig)
	mongoClient := database.NewMongoDB(driverConfig)
	mongoDB := mongoClient.Database(driverConfig.MongoDB.DbName)
	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		PostgresDB:     postgresDB,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Minio:          minioClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		Log:            log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Error closing application resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	minioStorage := sharedstorage.NewMinioStorage(bootstrap.Minio)
	mailerQueueService, err := mailerqueue.NewMailerQueueService(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.App.RabbitMQMailerQueue,
		bootstrap.InternalConfig.App.MailerEmailSender,
	)
	if err != nil {
		bootstrap.Log.Fatalf("Failed to initialize mailer queue: %v", err)
	}

	// Session
	sessionService := session.NewSessionService(redisRepository)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(sessionService, bootstrap.InternalConfig, bootstrap.Logger)

	// Repositories
	userRepository := users.NewUserPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	profileRepository := profiles.NewProfilePostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	availabilityRepository := availability.NewAvailabilityPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	skillRepository := skills.NewSkillPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	reviewRepository := reviews.NewReviewMongoRepository(bootstrap.MongoDB)

	// Auth
	authUsecase := auth.NewAuthUsecase(
		userRepository,
		profileRepository,
		sessionService,
		redisRepository,
		mailerQueueService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)

	// Skills
	skillCacheExpiry := time.Duration(bootstrap.InternalConfig.App.SkillCacheExpiredTimeInMinutes) * time.Minute
	skillUsecase := skills.NewSkillUsecase(skillRepository, redisRepository, skillCacheExpiry, bootstrap.Logger)
	skillController := controllers.NewSkillController(bootstrap.Logger, skillUsecase)

	// Profiles
	profileUsecase := profiles.NewProfileUsecase(
		profileRepository,
		skillUsecase,
		minioStorage,
		bootstrap.DriverConfig.Minio.BucketName,
		bootstrap.Logger,
	)
	profileController := controllers.NewProfileController(bootstrap.Logger, profileUsecase)

	// Availability
	availabilityUsecase := availability.NewAvailabilityUsecase(availabilityRepository, profileRepository, bootstrap.Logger)
	availabilityController := controllers.NewAvailabilityController(bootstrap.Logger, availabilityUsecase)

	// Reviews
	reviewUsecase := reviews.NewReviewUsecase(reviewRepository, userRepository, bootstrap.Logger)
	reviewController := controllers.NewReviewController(bootstrap.Logger, reviewUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		profileController,
		availabilityController,
		skillController,
		reviewController,
	)
}
