package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	attendeeModel "sertifikatku_backend/internals/features/attendees/model"
	"sertifikatku_backend/internals/features/certificates/model"
	clubModel "sertifikatku_backend/internals/features/clubs/model"
	templateDTO "sertifikatku_backend/internals/features/templates/dto"
	templateModel "sertifikatku_backend/internals/features/templates/model"
	helper "sertifikatku_backend/internals/helpers"
	"sertifikatku_backend/internals/helpers/storage"
)

// GeneratorService menjalankan pipeline generate:
// load attendee+template → render text field → QR → PDF → publish atomic →
// upsert row sertifikat (token & nomor dipertahankan saat regenerate).
type GeneratorService struct {
	DB            *gorm.DB
	Storage       storage.ObjectStorage
	Renderer      *Renderer
	VerifyBaseURL string

	// generate dipakai GenerateBatch; kosong = s.Generate
	generate func(ctx context.Context, clubID, attendeeID, templateID uuid.UUID) (*model.CertificateModel, error)
}

func NewGeneratorService(db *gorm.DB, st storage.ObjectStorage, fontDir, verifyBaseURL string) *GeneratorService {
	return &GeneratorService{
		DB:            db,
		Storage:       st,
		Renderer:      NewRenderer(fontDir),
		VerifyBaseURL: strings.TrimRight(verifyBaseURL, "/"),
	}
}

// BatchItemResult hasil per-attendee pada generate batch.
type BatchItemResult struct {
	AttendeeID    uuid.UUID `json:"attendee_id"`
	Success       bool      `json:"success"`
	CertificateID uuid.UUID `json:"certificate_id,omitempty"`
	Token         uuid.UUID `json:"token,omitempty"`
	Error         string    `json:"error,omitempty"`
}

// BuildCertificateNumber nomor tampilan sertifikat: CERT-<CLUBSLUG>-<ref>.
// ref = student_id kalau ada, kalau tidak potongan pendek attendee id.
func BuildCertificateNumber(clubSlug, studentID string, attendeeID uuid.UUID) string {
	ref := strings.TrimSpace(studentID)
	if ref == "" {
		ref = strings.Split(attendeeID.String(), "-")[0]
	}
	return fmt.Sprintf("CERT-%s-%s", strings.ToUpper(clubSlug), ref)
}

// BuildFieldValues susun nilai render dari field attendee:
// - key dinormalisasi lowercase
// - "date" yang berformat 2006-01-02 ditampilkan "January 2, 2006"
// - "event" kosong fallback ke event name template
func BuildFieldValues(fields map[string]any, templateEventName string) map[string]string {
	values := make(map[string]string, len(fields)+1)
	for k, v := range fields {
		s, ok := v.(string)
		if !ok || s == "" {
			continue
		}
		values[strings.ToLower(strings.TrimSpace(k))] = s
	}

	if d := values["date"]; d != "" {
		if t, err := time.Parse("2006-01-02", d); err == nil {
			values["date"] = t.Format("January 2, 2006")
		}
	}
	if values["event"] == "" && templateEventName != "" {
		values["event"] = templateEventName
	}
	return values
}

// reuseOrMint pilih row sertifikat yang dipakai: row existing dipertahankan
// apa adanya (token & nomor tidak pernah berubah setelah dibuat), kalau
// belum ada baru mint id + token + nomor.
func reuseOrMint(existing *model.CertificateModel, clubID, attendeeID, templateID uuid.UUID, clubSlug, studentID string) model.CertificateModel {
	if existing != nil {
		return *existing
	}
	return model.CertificateModel{
		CertificateID:         uuid.New(),
		CertificateClubID:     clubID,
		CertificateAttendeeID: attendeeID,
		CertificateTemplateID: templateID,
		CertificateToken:      uuid.New(),
		CertificateNumber:     BuildCertificateNumber(clubSlug, studentID, attendeeID),
	}
}

// Generate satu sertifikat. Regenerate untuk pasangan (attendee, template)
// yang sama menimpa artefak tapi mempertahankan token & nomor.
func (s *GeneratorService) Generate(ctx context.Context, clubID, attendeeID, templateID uuid.UUID) (*model.CertificateModel, error) {
	// 1) attendee + template + club (semua discope club)
	var attendee attendeeModel.AttendeeModel
	if err := s.DB.First(&attendee, "attendee_id = ? AND attendee_club_id = ?", attendeeID, clubID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttendeeNotFound
		}
		return nil, err
	}

	var tmpl templateModel.TemplateModel
	if err := s.DB.First(&tmpl,
		"template_id = ? AND template_club_id = ? AND template_is_active = TRUE",
		templateID, clubID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}

	var club clubModel.ClubModel
	if err := s.DB.First(&club, "club_id = ?", clubID).Error; err != nil {
		return nil, err
	}

	// 2) row existing? token & nomor dipertahankan
	var existing *model.CertificateModel
	var found model.CertificateModel
	err := s.DB.First(&found,
		"certificate_attendee_id = ? AND certificate_template_id = ?",
		attendeeID, templateID).Error
	switch {
	case err == nil:
		existing = &found
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}
	cert := reuseOrMint(existing, clubID, attendeeID, templateID,
		club.ClubSlug, attendee.Field("student_id"))

	// 3) background dari storage + decode
	bgBytes, err := s.Storage.Get(ctx, tmpl.TemplateImageKey)
	if err != nil {
		return nil, fmt.Errorf("%w: background fetch: %v", ErrRender, err)
	}
	bg, _, err := helper.DecodeImage(bgBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	// 4) render text field + QR verifikasi
	fields := templateDTO.ParseTextFields(tmpl.TemplateTextFields)
	values := BuildFieldValues(attendee.AttendeeFields, tmpl.TemplateEventName)

	rgba, err := s.Renderer.Render(bg, fields, values)
	if err != nil {
		return nil, err
	}
	if err := DrawVerificationQR(rgba, s.VerifyBaseURL+"/"+cert.CertificateToken.String()); err != nil {
		return nil, err
	}

	// 5) PDF
	pdfBytes, err := ImageToPDF(rgba)
	if err != nil {
		return nil, err
	}

	// 6) publish atomic. Key stabil per token → regenerate menimpa objek lama.
	objectKey := fmt.Sprintf("certificates/%s/%s.pdf", clubID, cert.CertificateToken)
	if err := s.Storage.Put(ctx, objectKey, pdfBytes, "application/pdf"); err != nil {
		// storage boleh dicoba sekali lagi, setelah itu nyerah
		if err2 := s.Storage.Put(ctx, objectKey, pdfBytes, "application/pdf"); err2 != nil {
			return nil, fmt.Errorf("%w: %v", ErrStorage, err2)
		}
	}

	// 7) simpan row + counter attendee dalam satu transaksi
	now := time.Now()
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		cert.CertificateObjectKey = objectKey
		cert.CertificateGeneratedAt = now
		cert.CertificateRevokedAt = nil
		if err := tx.Save(&cert).Error; err != nil {
			return err
		}

		updates := map[string]any{
			"attendee_generated_count":   gorm.Expr("attendee_generated_count + 1"),
			"attendee_last_generated_at": now,
		}
		if attendee.AttendeeFirstGeneratedAt == nil {
			updates["attendee_first_generated_at"] = now
		}
		return tx.Model(&attendeeModel.AttendeeModel{}).
			Where("attendee_id = ?", attendeeID).
			Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	return &cert, nil
}

// GenerateBatch jalankan Generate berurutan untuk banyak attendee.
// Kegagalan satu item tidak membatalkan sisanya; hasil per-item dilaporkan.
func (s *GeneratorService) GenerateBatch(ctx context.Context, clubID uuid.UUID, attendeeIDs []uuid.UUID, templateID uuid.UUID) []BatchItemResult {
	gen := s.generate
	if gen == nil {
		gen = s.Generate
	}

	results := make([]BatchItemResult, 0, len(attendeeIDs))
	for _, attendeeID := range attendeeIDs {
		cert, err := gen(ctx, clubID, attendeeID, templateID)
		if err != nil {
			results = append(results, BatchItemResult{
				AttendeeID: attendeeID,
				Success:    false,
				Error:      err.Error(),
			})
			continue
		}
		results = append(results, BatchItemResult{
			AttendeeID:    attendeeID,
			Success:       true,
			CertificateID: cert.CertificateID,
			Token:         cert.CertificateToken,
		})
	}
	return results
}
