package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	activityService "sertifikatku_backend/internals/features/activitylogs/service"
	"sertifikatku_backend/internals/features/templates/dto"
	"sertifikatku_backend/internals/features/templates/model"
	"sertifikatku_backend/internals/features/templates/service"
	helper "sertifikatku_backend/internals/helpers"
	helperAuth "sertifikatku_backend/internals/helpers/auth"
)

type TemplateController struct {
	DB       *gorm.DB
	Service  *service.TemplateService
	Validate *validator.Validate
}

func NewTemplateController(db *gorm.DB, svc *service.TemplateService) *TemplateController {
	return &TemplateController{
		DB:       db,
		Service:  svc,
		Validate: validator.New(),
	}
}

// ✅ CREATE (multipart: metadata JSON di field "payload" + file "background")
func (ctrl *TemplateController) Create(c *fiber.Ctx) error {
	clubID, err := helperAuth.GetClubID(c)
	if err != nil {
		return err
	}

	var req dto.CreateTemplateRequest
	if payload := c.FormValue("payload"); payload != "" {
		if err := c.App().Config().JSONDecoder([]byte(payload), &req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
		}
	} else if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	fh, err := c.FormFile("background")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File background wajib diupload")
	}

	tmpl, err := ctrl.Service.Create(c.UserContext(), clubID, &req, fh)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateName):
			return helper.JsonError(c, fiber.StatusConflict, "Nama template sudah dipakai di club ini")
		case strings.Contains(err.Error(), "text_fields"):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		case strings.Contains(err.Error(), "decode image"), strings.Contains(err.Error(), "unsupported image"):
			return helper.JsonError(c, fiber.StatusBadRequest, "Background bukan gambar jpeg/png yang valid")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat template")
		}
	}

	adminID, _ := helperAuth.GetAdminID(c)
	activityService.LogActivity(ctrl.DB, &clubID, &adminID, &tmpl.TemplateID,
		"create_template", "template", c.IP(),
		fiber.Map{"template_name": tmpl.TemplateName})

	return helper.JsonCreated(c, "Template berhasil dibuat", dto.ToTemplateResponse(tmpl))
}

// ✅ GET ALL (club scope, paginated)
func (ctrl *TemplateController) GetAll(c *fiber.Ctx) error {
	clubID, err := helperAuth.GetClubID(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.TemplateModel{}).Where("template_club_id = ?", clubID)
	if c.Query("active") == "true" {
		q = q.Where("template_is_active = TRUE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hitung template")
	}

	var templates []model.TemplateModel
	if err := q.Order("template_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&templates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data template")
	}

	return helper.JsonList(c, "", dto.ToTemplateResponseList(templates),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ✅ GET BY ID
func (ctrl *TemplateController) GetByID(c *fiber.Ctx) error {
	clubID, err := helperAuth.GetClubID(c)
	if err != nil {
		return err
	}

	templateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID template tidak valid")
	}

	tmpl, err := ctrl.Service.GetByID(clubID, templateID)
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Template tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil template")
	}

	return helper.JsonOK(c, "", dto.ToTemplateResponse(tmpl))
}

// ✅ UPDATE koordinat text field
func (ctrl *TemplateController) UpdateTextFields(c *fiber.Ctx) error {
	clubID, err := helperAuth.GetClubID(c)
	if err != nil {
		return err
	}

	templateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID template tidak valid")
	}

	var req dto.UpdateTextFieldsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	tmpl, err := ctrl.Service.UpdateTextFields(clubID, templateID, req.TextFields)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTemplateNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Template tidak ditemukan")
		case strings.Contains(err.Error(), "text_fields"):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update koordinat")
		}
	}

	return helper.JsonUpdated(c, "Koordinat template diperbarui", dto.ToTemplateResponse(tmpl))
}

// ✅ DEACTIVATE (soft) — template nonaktif tidak bisa dipakai generate
func (ctrl *TemplateController) Deactivate(c *fiber.Ctx) error {
	clubID, err := helperAuth.GetClubID(c)
	if err != nil {
		return err
	}

	templateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID template tidak valid")
	}

	res := ctrl.DB.Model(&model.TemplateModel{}).
		Where("template_id = ? AND template_club_id = ?", templateID, clubID).
		Update("template_is_active", false)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal nonaktifkan template")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Template tidak ditemukan")
	}

	return helper.JsonUpdated(c, "Template dinonaktifkan", fiber.Map{"template_id": templateID})
}
