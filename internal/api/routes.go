package api

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Routes struct {
	MCPPath    string
	MCPHandler http.Handler
	// Registry is served on /metrics when set.
	Registry *prometheus.Registry
}

func SetupRoutes(app *fiber.App, handler *Handler, routes Routes) {
	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET,POST,DELETE,OPTIONS",
		AllowHeaders:  "Origin,Content-Type,Accept,Authorization,Mcp-Session-Id,Mcp-Protocol-Version,Last-Event-ID",
		ExposeHeaders: "Mcp-Session-Id",
	}))

	app.Use(logger.New(logger.Config{
		Format:     "${time} ${pid} ${locals:requestid} ${status} - ${method} ${path}\n",
		TimeFormat: time.RFC3339,
	}))

	app.Get("/health", handler.GetHealth)

	if routes.Registry != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(routes.Registry, promhttp.HandlerOpts{})))
	}

	if routes.MCPHandler != nil {
		app.All(routes.MCPPath, adaptor.HTTPHandler(routes.MCPHandler))
	}

	app.Use(handler.NotFound)
}
