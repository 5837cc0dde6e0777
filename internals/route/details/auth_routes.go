package details

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	clubController "sertifikatku_backend/internals/features/clubs/controller"
	"sertifikatku_backend/internals/middlewares"
	clubMiddleware "sertifikatku_backend/internals/middlewares/auth_club"
)

// AuthRoutes login + profil admin. Login dibatasi rate limiter ketat
// supaya tidak jadi sasaran brute force.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := clubController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Get("/me",
		clubMiddleware.AuthJWT(clubMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		ctrl.Me,
	)
}
