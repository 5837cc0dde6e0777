package controller

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	activityService "sertifikatku_backend/internals/features/activitylogs/service"
	"sertifikatku_backend/internals/features/attendees/dto"
	"sertifikatku_backend/internals/features/attendees/model"
	"sertifikatku_backend/internals/features/attendees/service"
	certificateModel "sertifikatku_backend/internals/features/certificates/model"
	helper "sertifikatku_backend/internals/helpers"
	helperAuth "sertifikatku_backend/internals/helpers/auth"
)

type AttendeeController struct {
	DB *gorm.DB
}

func NewAttendeeController(db *gorm.DB) *AttendeeController {
	return &AttendeeController{DB: db}
}

// ✅ IMPORT CSV (multipart file "file", optional form "default_role")
func (ctrl *AttendeeController) ImportCSV(c *fiber.Ctx) error {
	clubID, err := helperAuth.GetClubID(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File CSV wajib diupload")
	}

	src, err := fh.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal membuka file CSV")
	}
	data, err := io.ReadAll(src)
	src.Close()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gagal membaca file CSV")
	}

	adminID, _ := helperAuth.GetAdminID(c)
	result, err := service.ImportCSV(ctrl.DB, clubID, &adminID, fh.Filename, data, c.FormValue("default_role"))
	if err != nil {
		if errors.Is(err, service.ErrEmptyCSV) {
			return helper.JsonError(c, fiber.StatusBadRequest, "CSV kosong atau tidak punya header")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	activityService.LogActivity(ctrl.DB, &clubID, &adminID, &result.ImportID,
		"import_attendees", "attendee_import", c.IP(),
		fiber.Map{"file": fh.Filename, "imported": result.ImportedRows, "skipped": result.SkippedRows})

	return helper.JsonCreated(c, "Import selesai", result)
}

// ✅ GET ALL (club scope, paginated, optional ?q= cari nama/student_id)
func (ctrl *AttendeeController) GetAll(c *fiber.Ctx) error {
	clubID, err := helperAuth.GetClubID(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.AttendeeModel{}).Where("attendee_club_id = ?", clubID)
	if search := c.Query("q"); search != "" {
		like := "%" + search + "%"
		q = q.Where("attendee_fields->>'name' ILIKE ? OR attendee_fields->>'student_id' ILIKE ?", like, like)
	}
	if role := c.Query("role"); role != "" {
		q = q.Where("attendee_role = ?", role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hitung attendee")
	}

	var attendees []model.AttendeeModel
	if err := q.Order("attendee_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&attendees).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil data attendee")
	}

	return helper.JsonList(c, "", dto.ToAttendeeResponseList(attendees),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// ✅ GET BY ID
func (ctrl *AttendeeController) GetByID(c *fiber.Ctx) error {
	clubID, err := helperAuth.GetClubID(c)
	if err != nil {
		return err
	}

	attendeeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID attendee tidak valid")
	}

	var att model.AttendeeModel
	if err := ctrl.DB.First(&att, "attendee_id = ? AND attendee_club_id = ?", attendeeID, clubID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Attendee tidak ditemukan")
	}

	return helper.JsonOK(c, "", dto.ToAttendeeResponse(&att))
}

// ✅ UPDATE field mapping — ditolak kalau sudah direferensikan sertifikat.
// Attendee yang sudah punya sertifikat dianggap immutable; ubah berarti
// harus regenerate sertifikatnya dulu (409 + hint).
func (ctrl *AttendeeController) Update(c *fiber.Ctx) error {
	clubID, err := helperAuth.GetClubID(c)
	if err != nil {
		return err
	}

	attendeeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID attendee tidak valid")
	}

	var att model.AttendeeModel
	if err := ctrl.DB.First(&att, "attendee_id = ? AND attendee_club_id = ?", attendeeID, clubID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Attendee tidak ditemukan")
	}

	var certCount int64
	if err := ctrl.DB.Model(&certificateModel.CertificateModel{}).
		Where("certificate_attendee_id = ?", attendeeID).
		Count(&certCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek sertifikat attendee")
	}
	if certCount > 0 {
		return helper.JsonErrorWithDetails(c, fiber.StatusConflict,
			"Attendee sudah punya sertifikat, data dikunci",
			fiber.Map{"hint": "regenerate sertifikat setelah update via POST /certificates/generate"})
	}

	var body struct {
		Fields map[string]any `json:"attendee_fields"`
		Role   string         `json:"attendee_role"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	updates := map[string]any{}
	if body.Fields != nil {
		if name, _ := body.Fields["name"].(string); name == "" {
			return helper.JsonError(c, fiber.StatusBadRequest, "Field name wajib ada")
		}
		att.AttendeeFields = body.Fields
		updates["attendee_fields"] = att.AttendeeFields
	}
	if body.Role != "" {
		if body.Role != "student" && body.Role != "management" {
			return helper.JsonError(c, fiber.StatusBadRequest, "role harus student atau management")
		}
		updates["attendee_role"] = body.Role
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan data", dto.ToAttendeeResponse(&att))
	}

	if err := ctrl.DB.Model(&att).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update attendee")
	}

	return helper.JsonUpdated(c, "Attendee diperbarui", dto.ToAttendeeResponse(&att))
}

// ✅ DELETE (soft)
func (ctrl *AttendeeController) Delete(c *fiber.Ctx) error {
	clubID, err := helperAuth.GetClubID(c)
	if err != nil {
		return err
	}

	attendeeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID attendee tidak valid")
	}

	res := ctrl.DB.Where("attendee_id = ? AND attendee_club_id = ?", attendeeID, clubID).
		Delete(&model.AttendeeModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus attendee")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Attendee tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Attendee dihapus", fiber.Map{"attendee_id": attendeeID})
}
