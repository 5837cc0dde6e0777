package middleware

import (
	"github.com/gofiber/fiber/v2"

	helperAuth "sertifikatku_backend/internals/helpers/auth"
)

// IsClubAdmin memastikan request membawa scope club (admin login club).
// Owner platform juga lolos supaya bisa membantu operasional club.
func IsClubAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helperAuth.IsPlatformOwner(c) {
			return c.Next()
		}
		if _, err := helperAuth.GetClubID(c); err != nil {
			return fiber.NewError(fiber.StatusForbidden, "Akses khusus admin club")
		}
		return c.Next()
	}
}

// IsPlatformOwner memastikan request dari owner platform (kelola daftar club).
func IsPlatformOwner() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helperAuth.IsPlatformOwner(c) {
			return fiber.NewError(fiber.StatusForbidden, "Akses khusus owner platform")
		}
		return c.Next()
	}
}
