package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/daralshefa/chatbot/backend/internal/config"
	"github.com/daralshefa/chatbot/backend/internal/queue"
	mid "github.com/daralshefa/chatbot/backend/internal/server/middleware"
	"github.com/daralshefa/chatbot/backend/internal/util"
	"github.com/daralshefa/chatbot/backend/pkg/logger"
	"github.com/daralshefa/chatbot/backend/pkg/notify"
	storepgx "github.com/daralshefa/chatbot/backend/pkg/store/pgx"

	"github.com/go-playground/validator"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

func Init() {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	runMigrations(cfg.DatabaseURL)

	conn, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database", "err", err)
	}
	defer conn.Close()

	emailSender, err := notify.NewSMTPSender(notify.SMTPSenderParams{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})
	if err != nil {
		logger.Fatal("Failed to create SMTP client", "err", err)
	}

	dispatcher := notify.NewDispatcher(notify.DispatcherParams{
		Email:           emailSender,
		Sheet:           notify.NewSheetPoster(),
		SheetWebhookURL: cfg.SheetWebhookURL,
		ChannelTimeout:  cfg.NotifyTimeout,
	})

	app := &mid.App{
		Storage:    storepgx.NewDBStorage(conn),
		Dispatcher: dispatcher,
		Config:     cfg,
	}

	if cfg.RabbitMQHost != "" {
		que := queue.Init()
		defer que.Close()
		ch, err := que.Channel()
		if err != nil {
			logger.Fatal("Failed to open channel", "err", err)
		}
		if err := queue.Setup(ch); err != nil {
			logger.Fatal("Failed to declare queues", "err", err)
		}
		app.Publisher = queue.NewEventPublisher(ch)
	}

	e.Use(mid.AppContextMiddleware(app))
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("1M"))

	RegisterRoutes(e)

	go func() {
		port := util.GetEnvString("PORT", "8080")
		logger.Info("Starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}

func runMigrations(databaseURL string) {
	m, err := migrate.New("file://migrations", databaseURL)
	if err != nil {
		logger.Fatal("Failed to initialize migrations", "err", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		logger.Fatal("Failed to run migrations", "err", err)
	}
}
