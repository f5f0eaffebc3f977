package handler

import (
	"github.com/gofiber/fiber/v2"

	"coopman/internal/service"
)

func registerSaveRoutes(r fiber.Router, svc service.SaveService) {
	r.Get("/saves/:game", func(c *fiber.Ctx) error {
		overview, err := svc.Overview(c.UserContext(), c.Params("game"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(overview)
	})

	r.Post("/saves/:game/backup", func(c *fiber.Ctx) error {
		ts, count, err := svc.Backup(c.UserContext(), c.Params("game"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{
			"timestamp": ts,
			"backed_up": count,
		})
	})

	r.Post("/saves/:game/transfer", func(c *fiber.Ctx) error {
		var body struct {
			Direction string `json:"direction"`
		}
		if err := c.BodyParser(&body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "expected a JSON body with direction")
		}
		res, err := svc.Transfer(c.UserContext(), c.Params("game"), body.Direction)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	})

	r.Post("/saves/:game/restore", func(c *fiber.Ctx) error {
		var body struct {
			Timestamp string `json:"timestamp"`
			Dest      string `json:"dest"`
		}
		if err := c.BodyParser(&body); err != nil || body.Timestamp == "" {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "expected a JSON body with timestamp and dest")
		}
		restored, err := svc.Restore(c.UserContext(), c.Params("game"), body.Timestamp, body.Dest)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"restored": restored})
	})

	r.Delete("/saves/:game/backup/:timestamp", func(c *fiber.Ctx) error {
		deleted, err := svc.DeleteBackup(c.UserContext(), c.Params("game"), c.Params("timestamp"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"deleted": deleted})
	})
}
