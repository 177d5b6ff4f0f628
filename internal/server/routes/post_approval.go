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

// CreateApprovalInquiryHandler records a medical approval request from the
// chat widget and fans it out to the notification channels.
func CreateApprovalInquiryHandler(c echo.Context) error {
	type createApprovalInquiryBody struct {
		PlatformID string `json:"platformId" validate:"required"`
		IDNumber   string `json:"idNumber" validate:"required"`
		Phone      string `json:"phone" validate:"required"`
		Date       string `json:"date" validate:"required"`
	}

	data := new(createApprovalInquiryBody)
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
			Kind:      notify.KindApprovalInquiry,
			Recipient: app.Config.Recipients.Approval,
			Fields: map[string]string{
				"idNumber": data.IDNumber,
				"phone":    data.Phone,
				"date":     data.Date,
			},
		},
		PlatformID: data.PlatformID,
		Persist: func(ctx context.Context, userID int64) error {
			return app.Storage.InsertMedicalApproval(ctx, store.MedicalApprovalParams{
				UserID:         userID,
				IdentityNumber: data.IDNumber,
				PhoneNumber:    data.Phone,
				RequestDate:    data.Date,
			})
		},
	})
	if err != nil {
		logger.Error("Failed to record medical approval request", "err", err)
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"error": "Database connection failed",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}
