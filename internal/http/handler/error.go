package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"coopman/internal/http/middleware"
	"coopman/internal/saves"
	"coopman/internal/service"
	"coopman/internal/steam"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking
// internal errors.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// writeServiceError maps known service errors onto HTTP responses. Anything
// unrecognized becomes a 500 with a generic message.
func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return writeError(c, fiber.StatusNotFound, "GAME_NOT_FOUND", "game not found; run a scan first")
	case errors.Is(err, service.ErrModNotInstalled):
		return writeError(c, fiber.StatusBadRequest, "MOD_NOT_INSTALLED", "the co-op mod is not installed for this game")
	case errors.Is(err, service.ErrNoLauncher):
		return writeError(c, fiber.StatusNotFound, "LAUNCHER_NOT_FOUND", "co-op launcher executable not found")
	case errors.Is(err, service.ErrNoArchive):
		return writeError(c, fiber.StatusNotFound, "ARCHIVE_NOT_FOUND", "no mod archive found in the downloads folder")
	case errors.Is(err, service.ErrArchiveInvalid):
		return writeError(c, fiber.StatusBadRequest, "ARCHIVE_INVALID", "the archive is not a valid zip file")
	case errors.Is(err, saves.ErrNoSaveDir):
		return writeError(c, fiber.StatusNotFound, "SAVE_DIR_NOT_FOUND", "save directory not found")
	case errors.Is(err, saves.ErrNoSaveFiles):
		return writeError(c, fiber.StatusNotFound, "NO_SAVE_FILES", "no save files found")
	case errors.Is(err, saves.ErrNoBackupFiles):
		return writeError(c, fiber.StatusNotFound, "BACKUP_NOT_FOUND", "no backup files found for that timestamp")
	case errors.Is(err, saves.ErrInvalidDirection):
		return writeError(c, fiber.StatusBadRequest, "INVALID_DIRECTION", "direction must be base_to_coop or coop_to_base")
	case errors.Is(err, saves.ErrInvalidDest):
		return writeError(c, fiber.StatusBadRequest, "INVALID_DESTINATION", "destination must be base or coop")
	case errors.Is(err, steam.ErrPlayerCountUnavailable):
		return writeError(c, fiber.StatusBadGateway, "PLAYER_COUNT_UNAVAILABLE", "steam has no player count for this game")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error
// responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
