package helper

import (
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

// ParseID reads a positive integer path param. Anything else means the row
// cannot exist, so the caller gets NotFound(resource).
func ParseID(c *fiber.Ctx, name, resource string) (int64, error) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, NotFound(resource)
	}
	return id, nil
}

// QueryID reads an optional numeric filter. A present but non-numeric
// value is ValidationFailed.
func QueryID(c *fiber.Ctx, key string) (int64, bool, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0, false, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, ValidationFailed(key+" must be a number", err)
	}
	return n, true, nil
}

// QueryString returns a trimmed query param, nil when blank.
func QueryString(c *fiber.Ctx, key string) *string {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return nil
	}
	return &v
}

// BindJSON decodes the body; empty or malformed JSON is ValidationFailed.
func BindJSON(c *fiber.Ctx, out any) error {
	body := c.Body()
	if len(strings.TrimSpace(string(body))) == 0 {
		return ValidationFailed("Request body is required", nil)
	}
	if err := sonic.Unmarshal(body, out); err != nil {
		return ValidationFailed("Invalid JSON body", err)
	}
	return nil
}

// TrimPtr returns a trimmed copy of s, nil when blank.
func TrimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// Nullable turns a nil pointer into an untyped nil for update maps.
func Nullable[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
