// file: internals/helpers/auth/claims.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"silabku_backend/internals/constants"
)

// Kunci locals yang dihydrate oleh middleware AuthJWT.
const (
	LocUserID = "user_id"
	LocRole   = "role"
)

// UserID mengambil user id (UUID) dari locals. Error 401 kalau tidak ada /
// tidak valid — caller tinggal return.
func UserID(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocUserID)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "user_id tidak valid")
	}
	return id, nil
}

func Role(c *fiber.Ctx) string {
	if s, ok := c.Locals(LocRole).(string); ok {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return ""
}

// IsStaff: staff/admin/owner boleh mengelola katalog & lifecycle pengujian.
func IsStaff(c *fiber.Ctx) bool {
	role := Role(c)
	for _, r := range constants.StaffAndAbove {
		if role == r {
			return true
		}
	}
	return false
}

func IsAdmin(c *fiber.Ctx) bool {
	role := Role(c)
	return role == constants.RoleAdmin || role == constants.RoleOwner
}
