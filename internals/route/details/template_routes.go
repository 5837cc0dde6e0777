package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	templateController "sertifikatku_backend/internals/features/templates/controller"
	templateService "sertifikatku_backend/internals/features/templates/service"
	"sertifikatku_backend/internals/helpers/storage"
)

// TemplateAdminRoutes kelola template sertifikat per club.
func TemplateAdminRoutes(r fiber.Router, db *gorm.DB, st storage.ObjectStorage) {
	ctrl := templateController.NewTemplateController(db, templateService.NewTemplateService(db, st))

	templates := r.Group("/templates")
	templates.Post("/", ctrl.Create)
	templates.Get("/", ctrl.GetAll)
	templates.Get("/:id", ctrl.GetByID)
	templates.Put("/:id/text-fields", ctrl.UpdateTextFields)
	templates.Post("/:id/deactivate", ctrl.Deactivate)
}
