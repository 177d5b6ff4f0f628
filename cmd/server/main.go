package main

import (
	"github.com/daralshefa/chatbot/backend/internal/server"
	"github.com/daralshefa/chatbot/backend/internal/util"
	"github.com/daralshefa/chatbot/backend/pkg/logger"
	"github.com/daralshefa/chatbot/backend/pkg/logger/console"

	_ "github.com/lib/pq"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
