package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	clubController "sertifikatku_backend/internals/features/clubs/controller"
)

// ClubPublicRoutes listing club aktif untuk halaman publik.
func ClubPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := clubController.NewClubController(db)

	clubs := r.Group("/clubs")
	clubs.Get("/", ctrl.GetAllPublic)
	clubs.Get("/:slug", ctrl.GetBySlugPublic)
}

// ClubOwnerRoutes CRUD club oleh owner platform.
func ClubOwnerRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := clubController.NewClubController(db)

	clubs := r.Group("/clubs")
	clubs.Post("/", ctrl.Create)
	clubs.Get("/", ctrl.GetAll)
	clubs.Get("/:id", ctrl.GetByID)
	clubs.Put("/:id", ctrl.Update)
	clubs.Post("/:id/activate", ctrl.Activate)
	clubs.Post("/:id/deactivate", ctrl.Deactivate)
}
