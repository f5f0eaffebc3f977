package handler

import (
	"embed"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"coopman/internal/service"
)

//go:embed web/index.html openapi.yaml
var webFS embed.FS

// RegisterRoutes attaches all HTTP routes to the Fiber app. Handlers stay
// thin: parse, call a service, translate errors.
func RegisterRoutes(app *fiber.App, games service.GameService, savesSvc service.SaveService, mods service.ModService, gatherer prometheus.Gatherer) {
	// The single-page UI.
	app.Get("/", func(c *fiber.Ctx) error {
		page, err := webFS.ReadFile("web/index.html")
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "ui not available")
		}
		return c.Type("html").Send(page)
	})

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	metricsHandler := fasthttpadaptor.NewFastHTTPHandler(
		promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	app.Get("/metrics", func(c *fiber.Ctx) error {
		metricsHandler(c.Context())
		return nil
	})

	// Serve OpenAPI spec and Swagger UI. The spec is embedded so the
	// binary serves it from any working directory.
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		spec, err := webFS.ReadFile("openapi.yaml")
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "spec not available")
		}
		return c.Type("yaml").Send(spec)
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	api := app.Group("/api")
	registerGameRoutes(api, games)
	registerSaveRoutes(api, savesSvc)
	registerModRoutes(api, mods)
}
