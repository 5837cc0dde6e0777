package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendeeController "sertifikatku_backend/internals/features/attendees/controller"
)

// AttendeeAdminRoutes import & kelola roster attendee per club.
func AttendeeAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attendeeController.NewAttendeeController(db)

	attendees := r.Group("/attendees")
	attendees.Post("/import", ctrl.ImportCSV)
	attendees.Get("/", ctrl.GetAll)
	attendees.Get("/:id", ctrl.GetByID)
	attendees.Put("/:id", ctrl.Update)
	attendees.Delete("/:id", ctrl.Delete)
}
