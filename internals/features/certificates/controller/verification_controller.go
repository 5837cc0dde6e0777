package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attendeeModel "sertifikatku_backend/internals/features/attendees/model"
	"sertifikatku_backend/internals/features/certificates/dto"
	"sertifikatku_backend/internals/features/certificates/model"
	clubModel "sertifikatku_backend/internals/features/clubs/model"
	templateModel "sertifikatku_backend/internals/features/templates/model"
	helper "sertifikatku_backend/internals/helpers"
	"sertifikatku_backend/internals/helpers/storage"
)

// VerificationController endpoint publik tanpa auth.
// Lookup tidak pernah bocorin alasan: token tidak dikenal, dicabut,
// atau terhapus semuanya jawab 200 {valid:false}.
type VerificationController struct {
	DB      *gorm.DB
	Storage storage.ObjectStorage
}

func NewVerificationController(db *gorm.DB, st storage.ObjectStorage) *VerificationController {
	return &VerificationController{DB: db, Storage: st}
}

// lookupByToken ambil sertifikat aktif (belum revoked) via token publik.
func (ctrl *VerificationController) lookupByToken(raw string) (*model.CertificateModel, bool) {
	token, err := uuid.Parse(raw)
	if err != nil {
		return nil, false
	}

	var cert model.CertificateModel
	if err := ctrl.DB.First(&cert, "certificate_token = ?", token).Error; err != nil {
		return nil, false
	}
	if cert.IsRevoked() {
		return nil, false
	}
	return &cert, true
}

// ✅ GET /verify/:token — selalu 200; valid=false tanpa detail apa pun
func (ctrl *VerificationController) Verify(c *fiber.Ctx) error {
	cert, ok := ctrl.lookupByToken(c.Params("token"))
	if !ok {
		return helper.JsonOK(c, "", dto.VerificationResponse{Valid: false})
	}

	var att attendeeModel.AttendeeModel
	if err := ctrl.DB.First(&att, "attendee_id = ?", cert.CertificateAttendeeID).Error; err != nil {
		return helper.JsonOK(c, "", dto.VerificationResponse{Valid: false})
	}

	var tmpl templateModel.TemplateModel
	if err := ctrl.DB.First(&tmpl, "template_id = ?", cert.CertificateTemplateID).Error; err != nil {
		return helper.JsonOK(c, "", dto.VerificationResponse{Valid: false})
	}

	var club clubModel.ClubModel
	if err := ctrl.DB.First(&club, "club_id = ?", cert.CertificateClubID).Error; err != nil {
		return helper.JsonOK(c, "", dto.VerificationResponse{Valid: false})
	}

	return helper.JsonOK(c, "", dto.ToVerificationResponse(cert, &att, &tmpl, club.ClubName))
}

// ✅ GET /certificates/:token/download — stream PDF artefak
func (ctrl *VerificationController) Download(c *fiber.Ctx) error {
	cert, ok := ctrl.lookupByToken(c.Params("token"))
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Sertifikat tidak ditemukan")
	}

	data, err := ctrl.Storage.Get(c.Context(), cert.CertificateObjectKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Artefak sertifikat tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal mengambil artefak sertifikat")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+cert.CertificateNumber+`.pdf"`)
	return c.Send(data)
}
