package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/opentalent/recruitment-platform/internal/api"
	"github.com/opentalent/recruitment-platform/internal/core/service"
	"github.com/opentalent/recruitment-platform/internal/core/session"
	"github.com/opentalent/recruitment-platform/internal/infrastructure/config"
	mongodb "github.com/opentalent/recruitment-platform/internal/infrastructure/db/mongo"
	"github.com/opentalent/recruitment-platform/internal/infrastructure/db/postgres"
	redisdb "github.com/opentalent/recruitment-platform/internal/infrastructure/db/redis"
	"github.com/opentalent/recruitment-platform/internal/infrastructure/email"
	"github.com/opentalent/recruitment-platform/internal/infrastructure/payment"
	"github.com/opentalent/recruitment-platform/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.Production(),
	})

	db, err := postgres.Connect(cfg.Postgres.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}

	mongoClient, mongoDB, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	redisClient, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = redisClient.Close() }()

	// --- Repositories ---
	userRepo := postgres.NewUserRepository(db)
	jobRepo := postgres.NewJobRepository(db)
	seekerRepo := postgres.NewJobSeekerRepository(db)
	activityRepo := mongodb.NewActivityRepository(mongoDB)
	otpStore := redisdb.NewOTPStore(redisClient)

	// --- Infrastructure services ---
	sessions := session.NewManager(cfg.AuthSecret, cfg.SessionTTL, cfg.Production())
	sender := email.NewSMTPSender(email.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}, log)
	stripeProvider := payment.NewStripeProvider(cfg.Stripe.SecretKey)

	// --- Core services ---
	authService := service.NewAuthService(userRepo, log)
	userService := service.NewUserService(userRepo, log)
	jobService := service.NewJobService(jobRepo, log)
	seekerService := service.NewJobSeekerService(seekerRepo, userRepo, log)
	activityService := service.NewActivityService(activityRepo, log)
	emailService := service.NewEmailService(userRepo, otpStore, sender, log)
	paymentService := service.NewPaymentService(stripeProvider, userRepo, cfg.BaseURL, log)

	e := api.NewRouter(api.Dependencies{
		DB:         db,
		Mongo:      mongoClient,
		Redis:      redisClient,
		Users:      userRepo,
		Logger:     log,
		Sessions:   sessions,
		Auth:       authService,
		UserSvc:    userService,
		Jobs:       jobService,
		JobSeekers: seekerService,
		Activities: activityService,
		Emails:     emailService,
		Payments:   paymentService,
		BaseURL:    cfg.BaseURL,
		UploadDir:  cfg.UploadDir,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
