// file: internals/helpers/json_response.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Envelopes
=================================*/

// ListResponse is the envelope of every list endpoint.
type ListResponse struct {
	Data  any   `json:"data"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

/* ===============================
   JSON responses
=================================*/

// JsonList: paginated list (GET /resource)
func JsonList(c *fiber.Ctx, data any, total int64, p Paging) error {
	return c.Status(fiber.StatusOK).JSON(ListResponse{
		Data:  data,
		Total: total,
		Page:  p.Page,
		Limit: p.Limit,
	})
}

// JsonOK: single record, written as-is (GET /resource/:id, PATCH)
func JsonOK(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// JsonData wraps the payload in {data: ...}
func JsonData(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": data})
}

// JsonCreated: POST
func JsonCreated(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// JsonDeleted: DELETE
func JsonDeleted(c *fiber.Ctx, message string) error {
	if strings.TrimSpace(message) == "" {
		message = "deleted"
	}
	return c.Status(fiber.StatusOK).JSON(MessageResponse{Message: message})
}

// JsonError writes {error: message}
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
		if status < 500 {
			message = "Request failed"
		}
	}
	return c.Status(status).JSON(ErrorResponse{Error: message})
}
