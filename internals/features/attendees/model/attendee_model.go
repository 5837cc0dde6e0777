package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AttendeeModel struct {
	AttendeeID       uuid.UUID  `gorm:"column:attendee_id;type:uuid;default:gen_random_uuid();primaryKey"   json:"attendee_id"`
	AttendeeClubID   uuid.UUID  `gorm:"column:attendee_club_id;type:uuid;not null;index:idx_attendees_club" json:"attendee_club_id"`
	AttendeeImportID *uuid.UUID `gorm:"column:attendee_import_id;type:uuid;index:idx_attendees_import"      json:"attendee_import_id,omitempty"`

	// Mapping nama field → nilai string hasil import CSV.
	// Selalu ada "name" dan "student_id"; kolom ekstra CSV ikut masuk.
	AttendeeFields datatypes.JSONMap `gorm:"column:attendee_fields;type:jsonb;not null;default:'{}'" json:"attendee_fields"`

	AttendeeRole string `gorm:"column:attendee_role;type:varchar(20);not null;default:'student'" json:"attendee_role"`

	// Tracking generate sertifikat
	AttendeeGeneratedCount   int        `gorm:"column:attendee_generated_count;not null;default:0" json:"attendee_generated_count"`
	AttendeeFirstGeneratedAt *time.Time `gorm:"column:attendee_first_generated_at;type:timestamptz" json:"attendee_first_generated_at,omitempty"`
	AttendeeLastGeneratedAt  *time.Time `gorm:"column:attendee_last_generated_at;type:timestamptz"  json:"attendee_last_generated_at,omitempty"`

	AttendeeCreatedAt time.Time      `gorm:"column:attendee_created_at;type:timestamptz;autoCreateTime" json:"attendee_created_at"`
	AttendeeUpdatedAt time.Time      `gorm:"column:attendee_updated_at;type:timestamptz;autoUpdateTime" json:"attendee_updated_at"`
	AttendeeDeletedAt gorm.DeletedAt `gorm:"column:attendee_deleted_at;type:timestamptz;index"          json:"attendee_deleted_at,omitempty"`

	// Unik student_id per club lewat migration (expression index ke JSONB):
	//   CREATE UNIQUE INDEX ux_attendees_student_per_club
	//   ON attendees (attendee_club_id, (attendee_fields->>'student_id'))
	//   WHERE attendee_deleted_at IS NULL;
}

func (AttendeeModel) TableName() string {
	return "attendees"
}

// Field mengambil nilai field sebagai string ("" kalau tidak ada / bukan string).
func (a *AttendeeModel) Field(name string) string {
	if a.AttendeeFields == nil {
		return ""
	}
	if v, ok := a.AttendeeFields[name]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
