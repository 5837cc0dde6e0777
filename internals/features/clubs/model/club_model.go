package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClubModel struct {
	ClubID           uuid.UUID `gorm:"column:club_id;type:uuid;default:gen_random_uuid();primaryKey" json:"club_id"`
	ClubName         string    `gorm:"column:club_name;type:varchar(100);not null"                   json:"club_name"`
	ClubSlug         string    `gorm:"column:club_slug;type:varchar(100);not null"                   json:"club_slug"`
	ClubContactEmail string    `gorm:"column:club_contact_email;type:varchar(255);not null"          json:"club_contact_email"`
	ClubLogoURL      *string   `gorm:"column:club_logo_url;type:text"                                json:"club_logo_url,omitempty"`
	ClubIsActive     bool      `gorm:"column:club_is_active;not null;default:true"                   json:"club_is_active"`

	ClubCreatedAt time.Time      `gorm:"column:club_created_at;type:timestamptz;autoCreateTime" json:"club_created_at"`
	ClubUpdatedAt time.Time      `gorm:"column:club_updated_at;type:timestamptz;autoUpdateTime" json:"club_updated_at"`
	ClubDeletedAt gorm.DeletedAt `gorm:"column:club_deleted_at;type:timestamptz;index"          json:"club_deleted_at,omitempty"`

	// NOTE:
	// - Unik slug (case-insensitive) dibuat lewat migration:
	//   CREATE UNIQUE INDEX ux_clubs_slug_lower ON clubs (LOWER(club_slug));
	//   Tidak bisa diekspresikan langsung via tag GORM.
}

func (ClubModel) TableName() string {
	return "clubs"
}
