package config

import (
	"time"

	"github.com/daralshefa/chatbot/backend/internal/util"
)

// SMTP holds the outbound mail account used for notification email.
type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Recipients maps each user event kind to its notification inbox.
type Recipients struct {
	Appointment string
	Insurance   string
	Approval    string
}

// Config is the process configuration, assembled once at startup and passed
// into the server explicitly. Core packages never read the environment
// themselves.
type Config struct {
	DatabaseURL     string
	SheetWebhookURL string
	SMTP            SMTP
	Recipients      Recipients
	NotifyTimeout   time.Duration
	RabbitMQHost    string
}

// Load assembles the configuration from the environment.
func Load() *Config {
	return &Config{
		DatabaseURL:     util.GetEnv("DATABASE_URL"),
		SheetWebhookURL: util.GetEnv("SHEET_WEBHOOK_URL"),
		SMTP: SMTP{
			Host:     util.GetEnv("SMTP_HOST"),
			Port:     int(util.GetEnvNumeric("SMTP_PORT", 587)),
			Username: util.GetEnv("SMTP_USERNAME"),
			Password: util.GetEnv("SMTP_PASSWORD"),
			From:     util.GetEnvString("SMTP_FROM", "chatbot@daralshefa.com"),
		},
		Recipients: Recipients{
			Appointment: util.GetEnv("APPOINTMENT_RECIPIENT_EMAIL"),
			Insurance:   util.GetEnv("INSURANCE_RECIPIENT_EMAIL"),
			Approval:    util.GetEnv("APPROVAL_RECIPIENT_EMAIL"),
		},
		NotifyTimeout: time.Duration(util.GetEnvNumeric("NOTIFY_TIMEOUT_SECONDS", 15)) * time.Second,
		RabbitMQHost:  util.GetEnv("RABBITMQ_HOST"),
	}
}
