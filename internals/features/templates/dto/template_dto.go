package dto

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"sertifikatku_backend/internals/features/templates/model"
)

// TextField: satu field teks yang dirender di atas background.
// Koordinat dalam piksel relatif pojok kiri-atas background.
type TextField struct {
	FieldName  string `json:"field_name" validate:"required,max=50"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	FontSize   int    `json:"font_size" validate:"omitempty,min=6,max=400"`
	FontFamily string `json:"font_family"`
	FontColor  string `json:"font_color"` // "#rrggbb", kosong = hitam
	Align      string `json:"align" validate:"omitempty,oneof=left center right"`
}

// 🔹 Request untuk membuat template (metadata; file background via multipart)
type CreateTemplateRequest struct {
	TemplateName        string      `json:"template_name" form:"template_name" validate:"required,max=100"`
	TemplateDescription string      `json:"template_description" form:"template_description"`
	TemplateEventName   string      `json:"template_event_name" form:"template_event_name" validate:"omitempty,max=200"`
	TemplateAudience    string      `json:"template_audience" form:"template_audience" validate:"omitempty,oneof=student management"`
	TextFields          []TextField `json:"text_fields"`
	PublicFields        []string    `json:"public_fields"`
}

// 🔹 Request update koordinat text field
type UpdateTextFieldsRequest struct {
	TextFields []TextField `json:"text_fields" validate:"required,min=1"`
}

// 🔹 Response template
type TemplateResponse struct {
	TemplateID          uuid.UUID   `json:"template_id"`
	TemplateClubID      uuid.UUID   `json:"template_club_id"`
	TemplateName        string      `json:"template_name"`
	TemplateDescription string      `json:"template_description"`
	TemplateEventName   string      `json:"template_event_name"`
	TemplateAudience    string      `json:"template_audience"`
	TemplateImageURL    string      `json:"template_image_url"`
	TemplateThumbURL    string      `json:"template_thumb_url,omitempty"`
	TemplateImageWidth  int         `json:"template_image_width"`
	TemplateImageHeight int         `json:"template_image_height"`
	TextFields          []TextField `json:"text_fields"`
	PublicFields        []string    `json:"public_fields"`
	TemplateVersion     int         `json:"template_version"`
	TemplateIsActive    bool        `json:"template_is_active"`
	TemplateCreatedAt   string      `json:"template_created_at"`
}

// ValidateTextFields cek invariant deklarasi field:
// - nama unik dalam satu template (case-insensitive)
// - koordinat di dalam bounds background
func ValidateTextFields(fields []TextField, imgWidth, imgHeight int) error {
	seen := make(map[string]bool, len(fields))
	for i, f := range fields {
		name := strings.ToLower(strings.TrimSpace(f.FieldName))
		if name == "" {
			return fmt.Errorf("text_fields[%d]: field_name kosong", i)
		}
		if seen[name] {
			return fmt.Errorf("text_fields[%d]: field_name %q duplikat", i, f.FieldName)
		}
		seen[name] = true

		if f.X < 0 || f.X >= imgWidth || f.Y < 0 || f.Y >= imgHeight {
			return fmt.Errorf("text_fields[%d]: koordinat (%d,%d) di luar bounds %dx%d",
				i, f.X, f.Y, imgWidth, imgHeight)
		}
	}
	return nil
}

// ParseTextFields decode kolom JSONB ke []TextField. JSON rusak → slice kosong.
func ParseTextFields(raw datatypes.JSON) []TextField {
	var fields []TextField
	if len(raw) == 0 {
		return fields
	}
	if err := sonic.Unmarshal(raw, &fields); err != nil {
		return nil
	}
	return fields
}

// MarshalTextFields encode []TextField ke JSONB.
func MarshalTextFields(fields []TextField) (datatypes.JSON, error) {
	raw, err := sonic.Marshal(fields)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

// 🔄 Konversi dari model → response
func ToTemplateResponse(m *model.TemplateModel) *TemplateResponse {
	return &TemplateResponse{
		TemplateID:          m.TemplateID,
		TemplateClubID:      m.TemplateClubID,
		TemplateName:        m.TemplateName,
		TemplateDescription: m.TemplateDescription,
		TemplateEventName:   m.TemplateEventName,
		TemplateAudience:    m.TemplateAudience,
		TemplateImageURL:    m.TemplateImageURL,
		TemplateThumbURL:    m.TemplateThumbURL,
		TemplateImageWidth:  m.TemplateImageWidth,
		TemplateImageHeight: m.TemplateImageHeight,
		TextFields:          ParseTextFields(m.TemplateTextFields),
		PublicFields:        m.TemplatePublicFields,
		TemplateVersion:     m.TemplateVersion,
		TemplateIsActive:    m.TemplateIsActive,
		TemplateCreatedAt:   m.TemplateCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// 🔄 Konversi list model → list response
func ToTemplateResponseList(models []model.TemplateModel) []TemplateResponse {
	var result []TemplateResponse
	for i := range models {
		result = append(result, *ToTemplateResponse(&models[i]))
	}
	return result
}
