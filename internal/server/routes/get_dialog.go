package routes

import (
	"errors"
	"net/http"

	"github.com/daralshefa/chatbot/backend/internal/server/middleware"
	"github.com/daralshefa/chatbot/backend/pkg/dialog"
	"github.com/daralshefa/chatbot/backend/pkg/logger"

	"github.com/labstack/echo/v4"
)

// GetDialogHandler compiles the knowledge base into the dialog graph and
// serves it. The graph is rebuilt from the table on every request so edits
// by the authoring team show up without a restart.
func GetDialogHandler(c echo.Context) error {
	app := c.(*middleware.AppContext).App
	ctx := c.Request().Context()

	records, err := app.Storage.ListKnowledgeRecords(ctx)
	if err != nil {
		logger.Error("Failed to load knowledge base", "err", err)
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"error": "Database connection failed",
		})
	}

	graph, err := dialog.Assemble(records)
	if err != nil {
		if errors.Is(err, dialog.ErrEmptySource) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "No dialog content available",
			})
		}
		logger.Error("Failed to assemble dialog graph", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, graph)
}
