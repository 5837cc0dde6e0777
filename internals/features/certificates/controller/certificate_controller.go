package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	activityService "sertifikatku_backend/internals/features/activitylogs/service"
	"sertifikatku_backend/internals/features/certificates/dto"
	"sertifikatku_backend/internals/features/certificates/model"
	"sertifikatku_backend/internals/features/certificates/service"
	helper "sertifikatku_backend/internals/helpers"
	helperAuth "sertifikatku_backend/internals/helpers/auth"
)

type CertificateController struct {
	DB        *gorm.DB
	Generator *service.GeneratorService
	Validate  *validator.Validate
}

func NewCertificateController(db *gorm.DB, gen *service.GeneratorService) *CertificateController {
	return &CertificateController{
		DB:        db,
		Generator: gen,
		Validate:  validator.New(),
	}
}

// mapServiceError petakan taksonomi error pipeline → status HTTP.
func mapServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrAttendeeNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Attendee tidak ditemukan")
	case errors.Is(err, service.ErrTemplateNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Template tidak ditemukan atau nonaktif")
	case errors.Is(err, service.ErrCertificateNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Sertifikat tidak ditemukan")
	case errors.Is(err, service.ErrValidation):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrRender):
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Render sertifikat gagal: "+err.Error())
	case errors.Is(err, service.ErrStorage):
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal simpan artefak sertifikat")
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan internal")
	}
}

func downloadURL(token uuid.UUID) string {
	return "/api/public/certificates/" + token.String() + "/download"
}

// ✅ POST /certificates/generate — generate (atau regenerate) satu sertifikat
func (ctrl *CertificateController) Generate(c *fiber.Ctx) error {
	clubID, err := helperAuth.GetClubID(c)
	if err != nil {
		return err
	}

	var req dto.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	cert, err := ctrl.Generator.Generate(c.Context(), clubID, req.AttendeeID, req.TemplateID)
	if err != nil {
		return mapServiceError(c, err)
	}

	adminID, _ := helperAuth.GetAdminID(c)
	activityService.LogActivity(ctrl.DB, &clubID, &adminID, &cert.CertificateID,
		"generate_certificate", "certificate", c.IP(),
		fiber.Map{"attendee_id": req.AttendeeID, "template_id": req.TemplateID, "number": cert.CertificateNumber})

	return helper.JsonCreated(c, "Sertifikat berhasil digenerate",
		dto.ToCertificateResponse(cert, downloadURL(cert.CertificateToken)))
}

// ✅ POST /certificates/generate-batch — generate berurutan, hasil per-item
func (ctrl *CertificateController) GenerateBatch(c *fiber.Ctx) error {
	clubID, err := helperAuth.GetClubID(c)
	if err != nil {
		return err
	}

	var req dto.BatchGenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	results := ctrl.Generator.GenerateBatch(c.Context(), clubID, req.AttendeeIDs, req.TemplateID)

	succeeded := 0
	for _, r := range results {
		if r.Success {
			succeeded++
		}
	}

	adminID, _ := helperAuth.GetAdminID(c)
	activityService.LogActivity(ctrl.DB, &clubID, &adminID, &req.TemplateID,
		"generate_certificates_batch", "certificate", c.IP(),
		fiber.Map{"requested": len(req.AttendeeIDs), "succeeded": succeeded})

	return helper.JsonOK(c, "Batch generate selesai", fiber.Map{
		"requested": len(req.AttendeeIDs),
		"succeeded": succeeded,
		"failed":    len(req.AttendeeIDs) - succeeded,
		"results":   results,
	})
}

// ✅ GET /certificates — list club scope, paginated
func (ctrl *CertificateController) GetAll(c *fiber.Ctx) error {
	clubID, err := helperAuth.GetClubID(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.CertificateModel{}).Where("certificate_club_id = ?", clubID)
	if templateID := c.Query("template_id"); templateID != "" {
		id, err := uuid.Parse(templateID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "template_id tidak valid")
		}
		q = q.Where("certificate_template_id = ?", id)
	}
	if c.Query("revoked") == "true" {
		q = q.Where("certificate_revoked_at IS NOT NULL")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hitung sertifikat")
	}

	var certs []model.CertificateModel
	if err := q.Order("certificate_generated_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&certs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data sertifikat")
	}

	resp := make([]dto.CertificateResponse, 0, len(certs))
	for i := range certs {
		resp = append(resp, *dto.ToCertificateResponse(&certs[i], downloadURL(certs[i].CertificateToken)))
	}

	return helper.JsonList(c, "", resp,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ✅ GET /certificates/:id
func (ctrl *CertificateController) GetByID(c *fiber.Ctx) error {
	clubID, err := helperAuth.GetClubID(c)
	if err != nil {
		return err
	}

	certID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID sertifikat tidak valid")
	}

	var cert model.CertificateModel
	if err := ctrl.DB.First(&cert, "certificate_id = ? AND certificate_club_id = ?", certID, clubID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Sertifikat tidak ditemukan")
	}

	return helper.JsonOK(c, "", dto.ToCertificateResponse(&cert, downloadURL(cert.CertificateToken)))
}

// ✅ POST /certificates/:id/revoke — lookup publik langsung jawab valid=false
func (ctrl *CertificateController) Revoke(c *fiber.Ctx) error {
	clubID, err := helperAuth.GetClubID(c)
	if err != nil {
		return err
	}

	certID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID sertifikat tidak valid")
	}

	var cert model.CertificateModel
	if err := ctrl.DB.First(&cert, "certificate_id = ? AND certificate_club_id = ?", certID, clubID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Sertifikat tidak ditemukan")
	}
	if cert.IsRevoked() {
		return helper.JsonError(c, fiber.StatusConflict, "Sertifikat sudah dicabut")
	}

	now := time.Now()
	if err := ctrl.DB.Model(&cert).Update("certificate_revoked_at", now).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencabut sertifikat")
	}
	cert.CertificateRevokedAt = &now

	adminID, _ := helperAuth.GetAdminID(c)
	activityService.LogActivity(ctrl.DB, &clubID, &adminID, &cert.CertificateID,
		"revoke_certificate", "certificate", c.IP(),
		fiber.Map{"number": cert.CertificateNumber})

	return helper.JsonUpdated(c, "Sertifikat dicabut",
		dto.ToCertificateResponse(&cert, downloadURL(cert.CertificateToken)))
}

// ✅ POST /certificates/:id/regenerate — render ulang artefak.
// Token & nomor tidak berubah, revoked_at ikut di-reset.
func (ctrl *CertificateController) Regenerate(c *fiber.Ctx) error {
	clubID, err := helperAuth.GetClubID(c)
	if err != nil {
		return err
	}

	certID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID sertifikat tidak valid")
	}

	var cert model.CertificateModel
	if err := ctrl.DB.First(&cert, "certificate_id = ? AND certificate_club_id = ?", certID, clubID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Sertifikat tidak ditemukan")
	}

	regenerated, err := ctrl.Generator.Generate(c.Context(), clubID, cert.CertificateAttendeeID, cert.CertificateTemplateID)
	if err != nil {
		return mapServiceError(c, err)
	}

	adminID, _ := helperAuth.GetAdminID(c)
	activityService.LogActivity(ctrl.DB, &clubID, &adminID, &regenerated.CertificateID,
		"regenerate_certificate", "certificate", c.IP(),
		fiber.Map{"number": regenerated.CertificateNumber})

	return helper.JsonUpdated(c, "Sertifikat berhasil digenerate ulang",
		dto.ToCertificateResponse(regenerated, downloadURL(regenerated.CertificateToken)))
}
