package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TemplateModel struct {
	TemplateID          uuid.UUID      `gorm:"column:template_id;type:uuid;default:gen_random_uuid();primaryKey"   json:"template_id"`
	TemplateClubID      uuid.UUID      `gorm:"column:template_club_id;type:uuid;not null;index:idx_templates_club" json:"template_club_id"`
	TemplateName        string         `gorm:"column:template_name;type:varchar(100);not null"                     json:"template_name"`
	TemplateDescription string         `gorm:"column:template_description;type:text"                               json:"template_description"`
	TemplateEventName   string         `gorm:"column:template_event_name;type:varchar(200)"                        json:"template_event_name"`
	TemplateAudience    string         `gorm:"column:template_audience;type:varchar(20);not null;default:'student'" json:"template_audience"`

	// Background image di object storage + dimensi piksel saat upload.
	// Dimensi dipakai untuk validasi bounds koordinat text field.
	TemplateImageKey    string `gorm:"column:template_image_key;type:text;not null"  json:"template_image_key"`
	TemplateImageURL    string `gorm:"column:template_image_url;type:text;not null"  json:"template_image_url"`
	TemplateThumbURL    string `gorm:"column:template_thumb_url;type:text"           json:"template_thumb_url"`
	TemplateImageWidth  int    `gorm:"column:template_image_width;not null"          json:"template_image_width"`
	TemplateImageHeight int    `gorm:"column:template_image_height;not null"         json:"template_image_height"`

	// Definisi text field (array JSON dari dto.TextField)
	TemplateTextFields datatypes.JSON `gorm:"column:template_text_fields;type:jsonb;not null;default:'[]'" json:"template_text_fields"`

	// Field yang boleh tampil di payload verifikasi publik
	TemplatePublicFields pq.StringArray `gorm:"column:template_public_fields;type:text[];not null;default:'{name,event,date}'" json:"template_public_fields"`

	TemplateVersion  int  `gorm:"column:template_version;not null;default:1"  json:"template_version"`
	TemplateIsActive bool `gorm:"column:template_is_active;not null;default:true" json:"template_is_active"`

	TemplateCreatedAt time.Time      `gorm:"column:template_created_at;type:timestamptz;autoCreateTime" json:"template_created_at"`
	TemplateUpdatedAt time.Time      `gorm:"column:template_updated_at;type:timestamptz;autoUpdateTime" json:"template_updated_at"`
	TemplateDeletedAt gorm.DeletedAt `gorm:"column:template_deleted_at;type:timestamptz;index"          json:"template_deleted_at,omitempty"`

	// Unik nama per club + audience lewat migration:
	//   CREATE UNIQUE INDEX ux_templates_name_per_club
	//   ON certificate_templates (template_club_id, LOWER(template_name), template_audience);
}

func (TemplateModel) TableName() string {
	return "certificate_templates"
}
