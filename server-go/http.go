package server

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/helmet/v2"
)

type Config struct {
	Port           string
	Timeout        uint64
	ReadBufferSize int
	BodyLimit      int
	AppName        string
	IsProduction   bool
}

func CreateServer(config *Config) *fiber.App {
	fiberConfig := fiber.Config{
		AppName:               config.AppName,
		ReadTimeout:           time.Second * time.Duration(config.Timeout),
		WriteTimeout:          time.Second * time.Duration(config.Timeout),
		ReadBufferSize:        config.ReadBufferSize,
		BodyLimit:             config.BodyLimit,
		DisableStartupMessage: config.IsProduction,
	}

	app := fiber.New(fiberConfig)

	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			os.Stderr.WriteString(fmt.Sprintf("panic: %v\n%s\n", e, string(debug.Stack())))
		},
	}))

	if !config.IsProduction {
		app.Use(logger.New(logger.Config{
			Format:     "${pid} ${ip} ${status} ${latency} - ${method} ${path}\n",
			TimeFormat: time.RFC3339,
			Output:     os.Stdout,
		}))
	} else {
		app.Use(helmet.New())
	}

	return app
}
