package service

import (
	"log"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sertifikatku_backend/internals/features/activitylogs/model"
)

// LogActivity catat aktivitas admin/publik. Best-effort: gagal nyatat
// tidak boleh menggagalkan operasi utamanya, cukup ke log server.
func LogActivity(db *gorm.DB, clubID, adminID, resourceID *uuid.UUID, action, resourceType, ip string, details any) {
	entry := model.ActivityLogModel{
		LogClubID:       clubID,
		LogAdminID:      adminID,
		LogAction:       action,
		LogResourceType: resourceType,
		LogResourceID:   resourceID,
		LogIPAddress:    ip,
	}
	if details != nil {
		if raw, err := sonic.Marshal(details); err == nil {
			entry.LogDetails = raw
		}
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Printf("[WARN] gagal catat activity log action=%s: %v", action, err)
	}
}
