package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sertifikatku_backend/internals/features/activitylogs/model"
	helper "sertifikatku_backend/internals/helpers"
	helperAuth "sertifikatku_backend/internals/helpers/auth"
)

type ActivityLogController struct {
	DB *gorm.DB
}

func NewActivityLogController(db *gorm.DB) *ActivityLogController {
	return &ActivityLogController{DB: db}
}

// GetAll list activity log milik club (paginated, terbaru dulu)
func (ctrl *ActivityLogController) GetAll(c *fiber.Ctx) error {
	clubID, err := helperAuth.GetClubID(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ActivityLogModel{}).Where("log_club_id = ?", clubID)
	if action := c.Query("action"); action != "" {
		q = q.Where("log_action = ?", action)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hitung activity log")
	}

	var logs []model.ActivityLogModel
	if err := q.Order("log_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&logs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil activity log")
	}

	return helper.JsonList(c, "", logs, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
