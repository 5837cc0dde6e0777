package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClubAdminModel struct {
	AdminID              uuid.UUID  `gorm:"column:admin_id;type:uuid;default:gen_random_uuid();primaryKey" json:"admin_id"`
	AdminClubID          *uuid.UUID `gorm:"column:admin_club_id;type:uuid;index:idx_club_admins_club_id"   json:"admin_club_id,omitempty"`
	AdminEmail           string     `gorm:"column:admin_email;type:varchar(255);not null"                  json:"admin_email"`
	AdminFullName        string     `gorm:"column:admin_full_name;type:varchar(200)"                       json:"admin_full_name"`
	AdminPasswordHash    string     `gorm:"column:admin_password_hash;type:varchar(255);not null"          json:"-"`
	AdminIsPlatformOwner bool       `gorm:"column:admin_is_platform_owner;not null;default:false"          json:"admin_is_platform_owner"`
	AdminIsActive        bool       `gorm:"column:admin_is_active;not null;default:true"                   json:"admin_is_active"`
	AdminLastLoginAt     *time.Time `gorm:"column:admin_last_login_at;type:timestamptz"                    json:"admin_last_login_at,omitempty"`

	AdminCreatedAt time.Time      `gorm:"column:admin_created_at;type:timestamptz;autoCreateTime" json:"admin_created_at"`
	AdminUpdatedAt time.Time      `gorm:"column:admin_updated_at;type:timestamptz;autoUpdateTime" json:"admin_updated_at"`
	AdminDeletedAt gorm.DeletedAt `gorm:"column:admin_deleted_at;type:timestamptz;index"          json:"admin_deleted_at,omitempty"`

	// AdminClubID NULL hanya untuk owner platform.
	// Unik email per club lewat migration:
	//   CREATE UNIQUE INDEX ux_club_admins_email_lower ON club_admins (LOWER(admin_email));
}

func (ClubAdminModel) TableName() string {
	return "club_admins"
}
