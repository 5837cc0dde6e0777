package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	attendeeModel "sertifikatku_backend/internals/features/attendees/model"
	"sertifikatku_backend/internals/features/certificates/model"
	templateModel "sertifikatku_backend/internals/features/templates/model"
)

// 🔹 Request generate satu sertifikat
type GenerateRequest struct {
	AttendeeID uuid.UUID `json:"attendee_id" validate:"required"`
	TemplateID uuid.UUID `json:"template_id" validate:"required"`
}

// 🔹 Request generate batch (maksimal 500 attendee sekali jalan)
type BatchGenerateRequest struct {
	AttendeeIDs []uuid.UUID `json:"attendee_ids" validate:"required,min=1,max=500"`
	TemplateID  uuid.UUID   `json:"template_id" validate:"required"`
}

// 🔹 Response sertifikat untuk admin
type CertificateResponse struct {
	CertificateID          uuid.UUID  `json:"certificate_id"`
	CertificateNumber      string     `json:"certificate_number"`
	CertificateToken       uuid.UUID  `json:"certificate_token"`
	CertificateAttendeeID  uuid.UUID  `json:"certificate_attendee_id"`
	CertificateTemplateID  uuid.UUID  `json:"certificate_template_id"`
	CertificateDownloadURL string     `json:"certificate_download_url"`
	CertificateGeneratedAt time.Time  `json:"certificate_generated_at"`
	CertificateRevokedAt   *time.Time `json:"certificate_revoked_at,omitempty"`
}

// 🔹 Response lookup publik. valid=false berarti token tidak dikenal
// atau sertifikat dicabut — response tetap 200, tanpa detail apa pun.
type VerificationResponse struct {
	Valid             bool              `json:"valid"`
	CertificateNumber string            `json:"certificate_number,omitempty"`
	ClubName          string            `json:"club_name,omitempty"`
	EventName         string            `json:"event_name,omitempty"`
	Fields            map[string]string `json:"fields,omitempty"`
	GeneratedAt       *time.Time        `json:"generated_at,omitempty"`
}

func ToCertificateResponse(m *model.CertificateModel, downloadURL string) *CertificateResponse {
	return &CertificateResponse{
		CertificateID:          m.CertificateID,
		CertificateNumber:      m.CertificateNumber,
		CertificateToken:       m.CertificateToken,
		CertificateAttendeeID:  m.CertificateAttendeeID,
		CertificateTemplateID:  m.CertificateTemplateID,
		CertificateDownloadURL: downloadURL,
		CertificateGeneratedAt: m.CertificateGeneratedAt,
		CertificateRevokedAt:   m.CertificateRevokedAt,
	}
}

// PublicFields saring field attendee dengan whitelist template_public_fields.
// Hanya field yang di-whitelist yang bocor ke endpoint publik.
func PublicFields(att *attendeeModel.AttendeeModel, tmpl *templateModel.TemplateModel) map[string]string {
	out := make(map[string]string)
	for _, allowed := range tmpl.TemplatePublicFields {
		key := strings.ToLower(strings.TrimSpace(allowed))
		if key == "" {
			continue
		}
		if v := att.Field(key); v != "" {
			out[key] = v
		}
	}
	return out
}

func whitelistAllows(tmpl *templateModel.TemplateModel, name string) bool {
	for _, allowed := range tmpl.TemplatePublicFields {
		if strings.ToLower(strings.TrimSpace(allowed)) == name {
			return true
		}
	}
	return false
}

// ToVerificationResponse susun payload lookup publik untuk sertifikat valid.
// Semua yang tampil lewat whitelist template_public_fields — termasuk event
// name template di top-level: admin yang mencabut "event" dari whitelist
// tidak boleh tetap bocor lewat jalur lain.
func ToVerificationResponse(cert *model.CertificateModel, att *attendeeModel.AttendeeModel, tmpl *templateModel.TemplateModel, clubName string) VerificationResponse {
	eventName := ""
	if whitelistAllows(tmpl, "event") {
		eventName = tmpl.TemplateEventName
	}

	generatedAt := cert.CertificateGeneratedAt
	return VerificationResponse{
		Valid:             true,
		CertificateNumber: cert.CertificateNumber,
		ClubName:          clubName,
		EventName:         eventName,
		Fields:            PublicFields(att, tmpl),
		GeneratedAt:       &generatedAt,
	}
}
