package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CertificateModel struct {
	CertificateID         uuid.UUID `gorm:"column:certificate_id;type:uuid;default:gen_random_uuid();primaryKey"       json:"certificate_id"`
	CertificateClubID     uuid.UUID `gorm:"column:certificate_club_id;type:uuid;not null;index:idx_certificates_club"  json:"certificate_club_id"`
	CertificateAttendeeID uuid.UUID `gorm:"column:certificate_attendee_id;type:uuid;not null"                          json:"certificate_attendee_id"`
	CertificateTemplateID uuid.UUID `gorm:"column:certificate_template_id;type:uuid;not null"                          json:"certificate_template_id"`

	// Nomor tampilan (CERT-<CLUBSLUG>-<ref>) + token publik opaque.
	// Keduanya dibuat sekali dan dipertahankan saat regenerate.
	CertificateNumber string    `gorm:"column:certificate_number;type:varchar(100);not null;index" json:"certificate_number"`
	CertificateToken  uuid.UUID `gorm:"column:certificate_token;type:uuid;not null;uniqueIndex:ux_certificates_token" json:"certificate_token"`

	// Lokasi artefak PDF di object storage
	CertificateObjectKey string `gorm:"column:certificate_object_key;type:text;not null" json:"certificate_object_key"`

	CertificateGeneratedAt time.Time  `gorm:"column:certificate_generated_at;type:timestamptz;not null" json:"certificate_generated_at"`
	CertificateRevokedAt   *time.Time `gorm:"column:certificate_revoked_at;type:timestamptz"            json:"certificate_revoked_at,omitempty"`

	CertificateCreatedAt time.Time      `gorm:"column:certificate_created_at;type:timestamptz;autoCreateTime" json:"certificate_created_at"`
	CertificateUpdatedAt time.Time      `gorm:"column:certificate_updated_at;type:timestamptz;autoUpdateTime" json:"certificate_updated_at"`
	CertificateDeletedAt gorm.DeletedAt `gorm:"column:certificate_deleted_at;type:timestamptz;index"          json:"certificate_deleted_at,omitempty"`

	// Satu row per pasangan (attendee, template):
	//   CREATE UNIQUE INDEX ux_certificates_attendee_template
	//   ON certificates (certificate_attendee_id, certificate_template_id)
	//   WHERE certificate_deleted_at IS NULL;
}

func (CertificateModel) TableName() string {
	return "certificates"
}

// IsRevoked true kalau sertifikat sudah dicabut (lookup publik jawab not found).
func (m *CertificateModel) IsRevoked() bool {
	return m.CertificateRevokedAt != nil
}
