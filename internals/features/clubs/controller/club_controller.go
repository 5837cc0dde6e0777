package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	activityService "sertifikatku_backend/internals/features/activitylogs/service"
	"sertifikatku_backend/internals/features/clubs/dto"
	"sertifikatku_backend/internals/features/clubs/model"
	templateModel "sertifikatku_backend/internals/features/templates/model"
	helper "sertifikatku_backend/internals/helpers"
	helperAuth "sertifikatku_backend/internals/helpers/auth"
)

type ClubController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClubController(db *gorm.DB) *ClubController {
	return &ClubController{DB: db, Validate: validator.New()}
}

// ✅ POST /clubs — platform owner bikin club + admin pertamanya sekaligus
func (ctrl *ClubController) Create(c *fiber.Ctx) error {
	var req dto.CreateClubRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	adminEmail := strings.ToLower(strings.TrimSpace(req.AdminEmail))
	var existing int64
	if err := ctrl.DB.Model(&model.ClubAdminModel{}).
		Where("LOWER(admin_email) = ?", adminEmail).
		Count(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek email admin")
	}
	if existing > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email admin sudah terdaftar")
	}

	slug, err := helper.GenerateUniqueSlug(ctrl.DB, helper.SlugOptions{
		Table:            "clubs",
		SlugColumn:       "club_slug",
		SoftDeleteColumn: "club_deleted_at",
		DefaultBase:      "club",
	}, req.ClubName)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal generate slug club")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	club := model.ClubModel{
		ClubID:           uuid.New(),
		ClubName:         strings.TrimSpace(req.ClubName),
		ClubSlug:         slug,
		ClubContactEmail: strings.TrimSpace(req.ClubContactEmail),
		ClubIsActive:     true,
	}
	admin := model.ClubAdminModel{
		AdminID:           uuid.New(),
		AdminClubID:       &club.ClubID,
		AdminEmail:        adminEmail,
		AdminFullName:     strings.TrimSpace(req.AdminFullName),
		AdminPasswordHash: string(hash),
		AdminIsActive:     true,
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&club).Error; err != nil {
			return err
		}
		return tx.Create(&admin).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat club")
	}

	ownerID, _ := helperAuth.GetAdminID(c)
	activityService.LogActivity(ctrl.DB, &club.ClubID, &ownerID, &club.ClubID,
		"create_club", "club", c.IP(), fiber.Map{"club_slug": slug})

	return helper.JsonCreated(c, "Club berhasil dibuat", fiber.Map{
		"club":  dto.ToClubResponse(&club),
		"admin": dto.ToAdminResponse(&admin),
	})
}

// ✅ GET /clubs — list semua club (platform owner)
func (ctrl *ClubController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ClubModel{})
	if c.Query("active") == "true" {
		q = q.Where("club_is_active = TRUE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hitung club")
	}

	var clubs []model.ClubModel
	if err := q.Order("club_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&clubs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data club")
	}

	resp := make([]dto.ClubResponse, 0, len(clubs))
	for i := range clubs {
		resp = append(resp, *dto.ToClubResponse(&clubs[i]))
	}

	return helper.JsonList(c, "", resp,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ✅ GET /clubs/:id
func (ctrl *ClubController) GetByID(c *fiber.Ctx) error {
	clubID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID club tidak valid")
	}

	var club model.ClubModel
	if err := ctrl.DB.First(&club, "club_id = ?", clubID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Club tidak ditemukan")
	}

	return helper.JsonOK(c, "", dto.ToClubResponse(&club))
}

// ✅ PUT /clubs/:id
func (ctrl *ClubController) Update(c *fiber.Ctx) error {
	clubID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID club tidak valid")
	}

	var club model.ClubModel
	if err := ctrl.DB.First(&club, "club_id = ?", clubID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Club tidak ditemukan")
	}

	var req dto.UpdateClubRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]any{}
	if req.ClubName != "" {
		updates["club_name"] = strings.TrimSpace(req.ClubName)
	}
	if req.ClubContactEmail != "" {
		updates["club_contact_email"] = strings.TrimSpace(req.ClubContactEmail)
	}
	if req.ClubLogoURL != nil {
		updates["club_logo_url"] = *req.ClubLogoURL
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan data", dto.ToClubResponse(&club))
	}

	if err := ctrl.DB.Model(&club).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update club")
	}

	return helper.JsonUpdated(c, "Club diperbarui", dto.ToClubResponse(&club))
}

// ✅ POST /clubs/:id/deactivate — club nonaktif: admin-nya tidak bisa kerja,
// tapi verifikasi publik sertifikat lama tetap jalan.
func (ctrl *ClubController) Deactivate(c *fiber.Ctx) error {
	return ctrl.setActive(c, false, "Club dinonaktifkan")
}

// ✅ POST /clubs/:id/activate
func (ctrl *ClubController) Activate(c *fiber.Ctx) error {
	return ctrl.setActive(c, true, "Club diaktifkan")
}

func (ctrl *ClubController) setActive(c *fiber.Ctx, active bool, msg string) error {
	clubID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID club tidak valid")
	}

	res := ctrl.DB.Model(&model.ClubModel{}).
		Where("club_id = ?", clubID).
		Update("club_is_active", active)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ubah status club")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Club tidak ditemukan")
	}

	ownerID, _ := helperAuth.GetAdminID(c)
	activityService.LogActivity(ctrl.DB, &clubID, &ownerID, &clubID,
		"set_club_active", "club", c.IP(), fiber.Map{"active": active})

	return helper.JsonUpdated(c, msg, fiber.Map{"club_id": clubID, "club_is_active": active})
}

// ✅ GET /public/clubs — listing publik club aktif (tanpa email kontak)
func (ctrl *ClubController) GetAllPublic(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ClubModel{}).Where("club_is_active = TRUE")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hitung club")
	}

	var clubs []model.ClubModel
	if err := q.Order("club_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&clubs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data club")
	}

	return helper.JsonList(c, "", dto.ToPublicClubResponseList(clubs),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ✅ GET /public/clubs/:slug — detail publik by slug + template aktifnya
func (ctrl *ClubController) GetBySlugPublic(c *fiber.Ctx) error {
	slug := strings.ToLower(strings.TrimSpace(c.Params("slug")))
	if slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Slug club wajib diisi")
	}

	var club model.ClubModel
	if err := ctrl.DB.First(&club, "LOWER(club_slug) = ? AND club_is_active = TRUE", slug).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Club tidak ditemukan")
	}

	var templates []templateModel.TemplateModel
	if err := ctrl.DB.
		Where("template_club_id = ? AND template_is_active = TRUE", club.ClubID).
		Order("template_created_at DESC").
		Find(&templates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil template club")
	}

	publicTemplates := make([]fiber.Map, 0, len(templates))
	for i := range templates {
		publicTemplates = append(publicTemplates, fiber.Map{
			"template_id":         templates[i].TemplateID,
			"template_name":       templates[i].TemplateName,
			"template_event_name": templates[i].TemplateEventName,
			"template_audience":   templates[i].TemplateAudience,
			"template_thumb_url":  templates[i].TemplateThumbURL,
		})
	}

	return helper.JsonOK(c, "", fiber.Map{
		"club":      dto.ToPublicClubResponse(&club),
		"templates": publicTemplates,
	})
}
