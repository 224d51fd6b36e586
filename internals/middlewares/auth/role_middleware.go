package auth

import (
	"github.com/gofiber/fiber/v2"

	"silabku_backend/internals/constants"
	helper "silabku_backend/internals/helpers"
	helperAuth "silabku_backend/internals/helpers/auth"
)

// RequireStaff menolak request dari role di bawah staff.
func RequireStaff(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helperAuth.IsStaff(c) {
			return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorStaff(feature))
		}
		return c.Next()
	}
}

// RequireAdmin menolak request dari role di bawah admin.
func RequireAdmin(feature string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helperAuth.IsAdmin(c) {
			return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorAdmin(feature))
		}
		return c.Next()
	}
}
