package routes

import (
	"context"
	"net/http"

	"github.com/daralshefa/chatbot/backend/internal/server/middleware"
	sutil "github.com/daralshefa/chatbot/backend/internal/server/util"
	"github.com/daralshefa/chatbot/backend/pkg/logger"
	"github.com/daralshefa/chatbot/backend/pkg/notify"
	"github.com/daralshefa/chatbot/backend/pkg/store"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

// CreateAppointmentHandler records an appointment request from the chat
// widget and fans it out to the notification channels.
func CreateAppointmentHandler(c echo.Context) error {
	type createAppointmentBody struct {
		PlatformID string `json:"platformId" validate:"required"`
		Name       string `json:"name" validate:"required"`
		Phone      string `json:"phone" validate:"required"`
		Clinic     string `json:"clinic" validate:"required"`
	}

	data := new(createAppointmentBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	app := c.(*middleware.AppContext).App
	ctx := c.Request().Context()

	err := sutil.RecordEvent(ctx, sutil.RecordEventParams{
		Notifier:  app.Dispatcher,
		Resolver:  app.Storage,
		Publisher: app.Publisher,
		Event: notify.Event{
			Kind:      notify.KindAppointment,
			Recipient: app.Config.Recipients.Appointment,
			Fields: map[string]string{
				"name":   data.Name,
				"phone":  data.Phone,
				"clinic": data.Clinic,
			},
		},
		PlatformID: data.PlatformID,
		Persist: func(ctx context.Context, userID int64) error {
			return app.Storage.InsertAppointment(ctx, store.AppointmentParams{
				UserID:       userID,
				PatientName:  data.Name,
				PatientPhone: data.Phone,
				ClinicName:   data.Clinic,
			})
		},
	})
	if err != nil {
		logger.Error("Failed to record appointment", "err", err)
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"error": "Database connection failed",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}
