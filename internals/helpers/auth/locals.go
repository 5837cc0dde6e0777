package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Kunci Locals yang dihydrate oleh middleware AuthJWT.
const (
	LocAdminID         = "admin_id"
	LocClubID          = "club_id"
	LocIsPlatformOwner = "is_platform_owner"
	LocJWTClaims       = "jwt_claims"
)

// GetAdminID mengambil admin_id (UUID) dari Locals. 401 kalau tidak ada/invalid.
func GetAdminID(c *fiber.Ctx) (uuid.UUID, error) {
	return localUUID(c, LocAdminID, "Unauthorized")
}

// GetClubID mengambil club_id (UUID) dari Locals. Setiap query admin wajib
// discope pakai ini supaya tidak ada kebocoran lintas club.
func GetClubID(c *fiber.Ctx) (uuid.UUID, error) {
	return localUUID(c, LocClubID, "Club scope tidak ditemukan di token")
}

// IsPlatformOwner cek flag owner global dari Locals.
func IsPlatformOwner(c *fiber.Ctx) bool {
	v := c.Locals(LocIsPlatformOwner)
	b, ok := v.(bool)
	return ok && b
}

func localUUID(c *fiber.Ctx, key, msg string) (uuid.UUID, error) {
	v := c.Locals(key)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, msg)
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, msg)
	}
	return id, nil
}
