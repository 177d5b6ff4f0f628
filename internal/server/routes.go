package server

import (
	"github.com/daralshefa/chatbot/backend/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api")

	// Dialog read path
	apiRoutes.GET("/dialog", routes.GetDialogHandler)

	// User event write paths
	apiRoutes.POST("/appointments", routes.CreateAppointmentHandler)
	apiRoutes.POST("/insurance-inquiries", routes.CreateInsuranceInquiryHandler)
	apiRoutes.POST("/approval-inquiries", routes.CreateApprovalInquiryHandler)
}
