package handler

import (
	"github.com/gofiber/fiber/v2"

	"coopman/internal/service"
)

func registerGameRoutes(r fiber.Router, svc service.GameService) {
	// Known games, pruned of installs that disappeared.
	r.Get("/games", func(c *fiber.Ctx) error {
		games, lastScan, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{
			"games":     games,
			"last_scan": lastScan,
		})
	})

	// Full re-scan of Steam libraries.
	r.Post("/scan", func(c *fiber.Ctx) error {
		games, err := svc.Scan(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{
			"games": games,
			"found": len(games),
		})
	})

	r.Get("/settings/:game", func(c *fiber.Ctx) error {
		sections, err := svc.Settings(c.UserContext(), c.Params("game"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"sections": sections})
	})

	r.Post("/settings/:game", func(c *fiber.Ctx) error {
		var values map[string]string
		if err := c.BodyParser(&values); err != nil || len(values) == 0 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "expected a JSON object of setting values")
		}
		if err := svc.SaveSettings(c.UserContext(), c.Params("game"), values); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"saved": len(values)})
	})

	r.Get("/players/:game", func(c *fiber.Ctx) error {
		count, err := svc.PlayerCount(c.UserContext(), c.Params("game"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"player_count": count})
	})

	r.Post("/launch/:game", func(c *fiber.Ctx) error {
		if err := svc.Launch(c.UserContext(), c.Params("game")); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"launched": true})
	})

	r.Post("/shortcut/:game", func(c *fiber.Ctx) error {
		path, err := svc.CreateShortcut(c.UserContext(), c.Params("game"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"shortcut": path})
	})

	// Cached Steam cover art, downloaded on first use.
	r.Get("/art/:game", func(c *fiber.Ctx) error {
		path, err := svc.CoverArt(c.UserContext(), c.Params("game"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.SendFile(path)
	})
}
