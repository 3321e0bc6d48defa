package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/srgjo27/catering_booking/internal/adapter/cache"
	"github.com/srgjo27/catering_booking/internal/adapter/calendar"
	"github.com/srgjo27/catering_booking/internal/adapter/email"
	"github.com/srgjo27/catering_booking/internal/adapter/handler"
	"github.com/srgjo27/catering_booking/internal/adapter/pdf"
	"github.com/srgjo27/catering_booking/internal/adapter/repository/postgres"
	"github.com/srgjo27/catering_booking/internal/adapter/webhook"
	"github.com/srgjo27/catering_booking/internal/core/domain"
	"github.com/srgjo27/catering_booking/internal/core/ports"
	"github.com/srgjo27/catering_booking/internal/core/services"
	"github.com/srgjo27/catering_booking/internal/platform/config"
	"github.com/srgjo27/catering_booking/internal/platform/database"
	"github.com/srgjo27/catering_booking/internal/platform/logger"
	"github.com/srgjo27/catering_booking/internal/platform/scheduler"
)

const webhookRetryInterval = time.Minute

func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg.Development(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zl.Sync()

	loc := cfg.Location()

	db, err := database.NewPostgresDB(context.Background(), database.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	}, zl)
	if err != nil {
		zl.Fatal("failed to connect to db after retries", zap.Error(err))
	}
	defer db.Close()

	zl.Info("connecting to redis", zap.String("addr", cfg.RedisAddr))
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		zl.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close()

	bookingRepo := postgres.NewBookingRepository(db)
	availRepo := postgres.NewAvailabilityRepository(db)
	blockedRepo := postgres.NewBlockedDateRepository(db)
	statusRepo := postgres.NewSyncStatusRepository(db)
	menuRepo := postgres.NewMenuRepository(db)
	roleRepo := postgres.NewUserRoleRepository(db)

	availabilityCache := cache.NewAvailabilityCache(redisClient)
	webhookQueue := cache.NewWebhookQueue(redisClient)

	var provider ports.CalendarProvider
	if cfg.GoogleServiceAccountJSON != "" && cfg.GoogleCalendarID != "" {
		gc, err := calendar.NewGoogleCalendar(context.Background(), []byte(cfg.GoogleServiceAccountJSON), cfg.GoogleCalendarID, calendar.DefaultAPIBase, loc, zl)
		if err != nil {
			zl.Warn("calendar sync disabled", zap.Error(err))
		} else {
			provider = gc
		}
	} else {
		zl.Warn("calendar sync disabled: google credentials not set")
	}

	var bookingWebhook ports.BookingWebhook
	if cfg.WebhookURL != "" {
		bookingWebhook = webhook.NewClient(cfg.WebhookURL, cfg.WebhookTimeout, zl)
	} else {
		zl.Warn("booking webhook disabled: WEBHOOK_URL not set")
	}

	var mailer ports.EmailSender
	emailCfg := email.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}
	if emailCfg.Configured() {
		mailer = email.NewSMTPSender(emailCfg, zl)
	} else {
		zl.Warn("email disabled: SMTP settings incomplete")
	}

	payfast := services.PayFastConfig{
		MerchantID:  cfg.PayFastMerchantID,
		MerchantKey: cfg.PayFastMerchantKey,
		Passphrase:  cfg.PayFastPassphrase,
		ProcessURL:  cfg.PayFastProcessURL,
		ReturnURL:   cfg.PayFastReturnURL,
		CancelURL:   cfg.PayFastCancelURL,
		NotifyURL:   cfg.PayFastNotifyURL,
	}
	if !payfast.Configured() {
		zl.Warn("payments disabled: PayFast merchant settings incomplete")
	}
	if cfg.JWTSecret == "" {
		zl.Warn("admin api disabled: JWT_SECRET not set")
	}

	availabilityService := services.NewAvailabilityService(bookingRepo, availRepo, blockedRepo, availabilityCache, zl, loc)
	quoteService := services.NewQuoteService(menuRepo, pdf.NewQuoteRenderer(cfg.BusinessName), domain.DefaultMenuRules)
	intakeService := services.NewIntakeService(bookingWebhook, webhookQueue, zl)
	bookingService := services.NewBookingService(bookingRepo, availRepo, quoteService, availabilityService, intakeService, mailer, cfg.NotifyEmail, zl)
	paymentService := services.NewPaymentService(payfast, bookingService, zl)
	syncService := services.NewCalendarSyncService(provider, availRepo, statusRepo, availabilityService, zl, loc)

	sched, err := scheduler.New(loc, zl)
	if err != nil {
		zl.Fatal("failed to create scheduler", zap.Error(err))
	}
	if provider != nil {
		err = sched.Add(scheduler.Job{
			Name:     "calendar-sync",
			Interval: cfg.CalendarSyncInterval,
			Run: func(ctx context.Context) error {
				_, err := syncService.Sync(ctx)
				if errors.Is(err, services.ErrSyncInProgress) {
					return nil
				}
				return err
			},
		})
		if err != nil {
			zl.Fatal("failed to schedule calendar sync", zap.Error(err))
		}
	}
	if bookingWebhook != nil {
		err = sched.Add(scheduler.Job{
			Name:     "webhook-retry",
			Interval: webhookRetryInterval,
			Run: func(ctx context.Context) error {
				_, err := intakeService.RetryPending(ctx)
				return err
			},
		})
		if err != nil {
			zl.Fatal("failed to schedule webhook retry", zap.Error(err))
		}
	}
	sched.Start()

	router := handler.NewRouter(
		handler.NewPublicHandler(quoteService, availabilityService, zl),
		handler.NewBookingHandler(bookingService, paymentService, zl),
		handler.NewAdminHandler(bookingService, availabilityService, syncService, zl),
		handler.NewAuthenticator(cfg.JWTSecret, roleRepo, zl),
		zl,
	)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 35 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		zl.Info("server starting", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zl.Fatal("server startup failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	zl.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zl.Error("server forced to shutdown", zap.Error(err))
	}
	if err := bookingService.Wait(ctx); err != nil {
		zl.Warn("background booking notifications did not finish", zap.Error(err))
	}
	if err := sched.Shutdown(); err != nil {
		zl.Error("scheduler shutdown failed", zap.Error(err))
	}

	zl.Info("server exiting")
}
