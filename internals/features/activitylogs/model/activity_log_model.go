package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ActivityLogModel struct {
	LogID           uuid.UUID      `gorm:"column:log_id;type:uuid;default:gen_random_uuid();primaryKey" json:"log_id"`
	LogClubID       *uuid.UUID     `gorm:"column:log_club_id;type:uuid;index:idx_activity_logs_club"    json:"log_club_id,omitempty"`
	LogAdminID      *uuid.UUID     `gorm:"column:log_admin_id;type:uuid"                                json:"log_admin_id,omitempty"`
	LogAction       string         `gorm:"column:log_action;type:varchar(50);not null"                  json:"log_action"`
	LogResourceType string         `gorm:"column:log_resource_type;type:varchar(50);not null"           json:"log_resource_type"`
	LogResourceID   *uuid.UUID     `gorm:"column:log_resource_id;type:uuid"                             json:"log_resource_id,omitempty"`
	LogDetails      datatypes.JSON `gorm:"column:log_details;type:jsonb"                                json:"log_details,omitempty"`
	LogIPAddress    string         `gorm:"column:log_ip_address;type:varchar(45)"                       json:"log_ip_address,omitempty"`
	LogCreatedAt    time.Time      `gorm:"column:log_created_at;type:timestamptz;autoCreateTime"        json:"log_created_at"`
}

func (ActivityLogModel) TableName() string {
	return "activity_logs"
}
