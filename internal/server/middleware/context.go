package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/daralshefa/chatbot/backend/internal/config"
	sutil "github.com/daralshefa/chatbot/backend/internal/server/util"
	"github.com/daralshefa/chatbot/backend/pkg/notify"
	"github.com/daralshefa/chatbot/backend/pkg/store"
)

// App carries the shared dependencies every handler needs. Built once at
// startup; all members are safe for concurrent use.
type App struct {
	Storage    store.Storage
	Dispatcher *notify.Dispatcher
	Publisher  sutil.EventPublisher // nil when no queue is configured
	Config     *config.Config
}

// AppContext wraps the echo context with the application dependencies.
type AppContext struct {
	echo.Context
	App *App
}

func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return next(&AppContext{c, app})
		}
	}
}
