// file: internals/route/index.go
package routes

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sertifikatku_backend/internals/configs"
	clubMiddleware "sertifikatku_backend/internals/middlewares/auth_club"
	featuresMiddleware "sertifikatku_backend/internals/middlewares/features"
	routeDetails "sertifikatku_backend/internals/route/details"

	"sertifikatku_backend/internals/helpers/storage"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// object storage dipakai bareng template upload, generator & download publik
	st, err := storage.NewFromEnv()
	if err != nil {
		log.Fatalf("❌ Gagal inisialisasi object storage: %v", err)
	}

	// static file untuk driver lokal (background & artefak PDF via URL publik)
	if configs.StorageDriver == "local" {
		app.Static("/static", configs.GetEnv("STORAGE_LOCAL_DIR", "storage"))
	}

	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → tanpa JWT (verifikasi sertifikat, listing club)
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// ADMIN (per club) → JWT + scope club
	log.Println("[INFO] Setting up ADMIN group (Auth + club scope)...")
	admin := app.Group("/api/a",
		clubMiddleware.AuthJWT(clubMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		featuresMiddleware.IsClubAdmin(),
	)

	// OWNER (platform) → JWT + flag owner global
	log.Println("[INFO] Setting up OWNER group (Auth + owner platform)...")
	owner := app.Group("/api/o",
		clubMiddleware.AuthJWT(clubMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		featuresMiddleware.IsPlatformOwner(),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Club routes...")
	routeDetails.ClubPublicRoutes(public, db)
	routeDetails.ClubOwnerRoutes(owner, db)

	log.Println("[INFO] Mounting Template routes...")
	routeDetails.TemplateAdminRoutes(admin, db, st)

	log.Println("[INFO] Mounting Attendee routes...")
	routeDetails.AttendeeAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Certificate routes...")
	routeDetails.CertificatePublicRoutes(public, db, st)
	routeDetails.CertificateAdminRoutes(admin, db, st)

	log.Println("[INFO] Mounting ActivityLog routes...")
	routeDetails.ActivityLogAdminRoutes(admin, db)
}
