package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityController "sertifikatku_backend/internals/features/activitylogs/controller"
)

// ActivityLogAdminRoutes audit trail per club (read-only).
func ActivityLogAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := activityController.NewActivityLogController(db)

	r.Get("/activity-logs", ctrl.GetAll)
}
