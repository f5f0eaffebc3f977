package handler

import (
	"github.com/gofiber/fiber/v2"

	"coopman/internal/service"
)

func registerModRoutes(r fiber.Router, svc service.ModService) {
	r.Get("/mod/:game/status", func(c *fiber.Ctx) error {
		status, err := svc.Status(c.UserContext(), c.Params("game"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(status)
	})

	r.Post("/mod/:game/install", func(c *fiber.Ctx) error {
		var body struct {
			Archive string `json:"archive"`
		}
		// Body is optional; empty means install the newest archive.
		_ = c.BodyParser(&body)

		res, err := svc.Install(c.UserContext(), c.Params("game"), body.Archive)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	})

	r.Post("/mod/:game/uninstall", func(c *fiber.Ctx) error {
		if err := svc.Uninstall(c.UserContext(), c.Params("game")); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"removed": true})
	})

	// Delete downloaded archives once they are installed.
	r.Post("/mod/:game/cleanup", func(c *fiber.Ctx) error {
		removed, err := svc.CleanupArchives(c.UserContext(), c.Params("game"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"deleted_archives": removed})
	})

	r.Get("/mod/:game/update", func(c *fiber.Ctx) error {
		info, err := svc.CheckUpdate(c.UserContext(), c.Params("game"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(info)
	})

	r.Get("/updates", func(c *fiber.Ctx) error {
		results, err := svc.CheckAllUpdates(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"updates": results})
	})
}
