package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	certificateController "sertifikatku_backend/internals/features/certificates/controller"
	certificateService "sertifikatku_backend/internals/features/certificates/service"
	"sertifikatku_backend/internals/configs"
	"sertifikatku_backend/internals/helpers/storage"
	"sertifikatku_backend/internals/middlewares"
)

// CertificatePublicRoutes verifikasi token + download artefak, tanpa auth.
func CertificatePublicRoutes(r fiber.Router, db *gorm.DB, st storage.ObjectStorage) {
	ctrl := certificateController.NewVerificationController(db, st)

	r.Get("/verify/:token", middlewares.VerifyRateLimiter(), ctrl.Verify)
	r.Get("/certificates/:token/download", middlewares.VerifyRateLimiter(), ctrl.Download)
}

// CertificateAdminRoutes generate & kelola sertifikat per club.
// Generate dibatasi rate limiter karena render PDF mahal.
func CertificateAdminRoutes(r fiber.Router, db *gorm.DB, st storage.ObjectStorage) {
	gen := certificateService.NewGeneratorService(db, st, configs.FontDir, configs.VerifyBaseURL)
	ctrl := certificateController.NewCertificateController(db, gen)

	certs := r.Group("/certificates")
	certs.Post("/generate", middlewares.GenerateRateLimiter(), ctrl.Generate)
	certs.Post("/generate-batch", middlewares.GenerateRateLimiter(), ctrl.GenerateBatch)
	certs.Get("/", ctrl.GetAll)
	certs.Get("/:id", ctrl.GetByID)
	certs.Post("/:id/revoke", ctrl.Revoke)
	certs.Post("/:id/regenerate", middlewares.GenerateRateLimiter(), ctrl.Regenerate)
}
