// file: internals/helpers/get_user_id.go
package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Ambil user_id dari c.Locals("user_id") (diisi auth middleware).
// Return 401 kalau belum login, 400 kalau formatnya tidak valid.
func GetUserIDFromToken(c *fiber.Ctx) (uint, error) {
	v := c.Locals("user_id")
	if v == nil {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
	}

	switch t := v.(type) {
	case uint:
		if t == 0 {
			return 0, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		return t, nil
	case int:
		if t <= 0 {
			return 0, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		return uint(t), nil
	case float64:
		if t <= 0 {
			return 0, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		return uint(t), nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil || id == 0 {
			return 0, fiber.NewError(fiber.StatusBadRequest, "User ID pada token tidak valid")
		}
		return uint(id), nil
	default:
		return 0, fiber.NewError(fiber.StatusBadRequest, "User ID pada token tidak valid")
	}
}

// ParseIDParam membaca path param :id sebagai identifier numerik.
func ParseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	return uint(id), nil
}
