package model

import (
	"time"

	"github.com/google/uuid"
)

type AttendeeImportModel struct {
	ImportID       uuid.UUID `gorm:"column:import_id;type:uuid;default:gen_random_uuid();primaryKey" json:"import_id"`
	ImportClubID   uuid.UUID `gorm:"column:import_club_id;type:uuid;not null;index:idx_imports_club" json:"import_club_id"`
	ImportFileName string    `gorm:"column:import_file_name;type:varchar(255)"                       json:"import_file_name"`

	ImportTotalRows    int `gorm:"column:import_total_rows;not null;default:0"    json:"import_total_rows"`
	ImportImportedRows int `gorm:"column:import_imported_rows;not null;default:0" json:"import_imported_rows"`
	ImportSkippedRows  int `gorm:"column:import_skipped_rows;not null;default:0"  json:"import_skipped_rows"`

	ImportUploadedBy *uuid.UUID `gorm:"column:import_uploaded_by;type:uuid"                     json:"import_uploaded_by,omitempty"`
	ImportCreatedAt  time.Time  `gorm:"column:import_created_at;type:timestamptz;autoCreateTime" json:"import_created_at"`
}

func (AttendeeImportModel) TableName() string {
	return "attendee_imports"
}
