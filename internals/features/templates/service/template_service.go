package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sertifikatku_backend/internals/features/templates/dto"
	"sertifikatku_backend/internals/features/templates/model"
	helper "sertifikatku_backend/internals/helpers"
	"sertifikatku_backend/internals/helpers/storage"
)

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrDuplicateName    = errors.New("template name already exists for this club")
)

type TemplateService struct {
	DB      *gorm.DB
	Storage storage.ObjectStorage
}

func NewTemplateService(db *gorm.DB, st storage.ObjectStorage) *TemplateService {
	return &TemplateService{DB: db, Storage: st}
}

// Create simpan background (optimized) + thumbnail ke storage, lalu insert row.
// Bounds text field divalidasi terhadap dimensi hasil optimasi.
func (s *TemplateService) Create(ctx context.Context, clubID uuid.UUID, req *dto.CreateTemplateRequest, fh *multipart.FileHeader) (*model.TemplateModel, error) {
	// 1) cek nama unik per club + audience
	audience := req.TemplateAudience
	if audience == "" {
		audience = "student"
	}
	var cnt int64
	if err := s.DB.Model(&model.TemplateModel{}).
		Where("template_club_id = ? AND LOWER(template_name) = LOWER(?) AND template_audience = ?",
			clubID, req.TemplateName, audience).
		Count(&cnt).Error; err != nil {
		return nil, err
	}
	if cnt > 0 {
		return nil, ErrDuplicateName
	}

	// 2) baca + optimasi background
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	raw, err := io.ReadAll(src)
	src.Close()
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	optimized, contentType, width, height, err := helper.OptimizeBackground(raw)
	if err != nil {
		return nil, err
	}

	// 3) validasi bounds koordinat terhadap dimensi final
	if err := dto.ValidateTextFields(req.TextFields, width, height); err != nil {
		return nil, err
	}

	textFields, err := dto.MarshalTextFields(req.TextFields)
	if err != nil {
		return nil, err
	}

	// 4) upload background + thumbnail
	templateID := uuid.New()
	ext := ".jpg"
	if contentType == "image/png" {
		ext = ".png"
	}
	imageKey := fmt.Sprintf("templates/%s/%s/background%s", clubID, templateID, ext)
	if err := s.Storage.Put(ctx, imageKey, optimized, contentType); err != nil {
		return nil, err
	}

	thumbURL := ""
	if img, _, derr := helper.DecodeImage(optimized); derr == nil {
		if thumb, terr := helper.EncodeThumbnailWebP(img); terr == nil {
			thumbKey := fmt.Sprintf("templates/%s/%s/thumb.webp", clubID, templateID)
			if perr := s.Storage.Put(ctx, thumbKey, thumb, "image/webp"); perr == nil {
				thumbURL = s.Storage.PublicURL(thumbKey)
			}
		}
	}

	publicFields := req.PublicFields
	if len(publicFields) == 0 {
		publicFields = []string{"name", "event", "date"}
	}

	tmpl := model.TemplateModel{
		TemplateID:           templateID,
		TemplateClubID:       clubID,
		TemplateName:         req.TemplateName,
		TemplateDescription:  req.TemplateDescription,
		TemplateEventName:    req.TemplateEventName,
		TemplateAudience:     audience,
		TemplateImageKey:     imageKey,
		TemplateImageURL:     s.Storage.PublicURL(imageKey),
		TemplateThumbURL:     thumbURL,
		TemplateImageWidth:   width,
		TemplateImageHeight:  height,
		TemplateTextFields:   textFields,
		TemplatePublicFields: publicFields,
		TemplateVersion:      1,
		TemplateIsActive:     true,
	}

	if err := s.DB.Create(&tmpl).Error; err != nil {
		// row gagal → jangan tinggalkan objek yatim di storage
		_ = s.Storage.Delete(ctx, imageKey)
		return nil, err
	}
	return &tmpl, nil
}

// GetByID ambil template milik club.
func (s *TemplateService) GetByID(clubID, templateID uuid.UUID) (*model.TemplateModel, error) {
	var tmpl model.TemplateModel
	err := s.DB.First(&tmpl, "template_id = ? AND template_club_id = ?", templateID, clubID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTemplateNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// UpdateTextFields ganti koordinat (validasi bounds) + naikkan versi.
func (s *TemplateService) UpdateTextFields(clubID, templateID uuid.UUID, fields []dto.TextField) (*model.TemplateModel, error) {
	tmpl, err := s.GetByID(clubID, templateID)
	if err != nil {
		return nil, err
	}

	if err := dto.ValidateTextFields(fields, tmpl.TemplateImageWidth, tmpl.TemplateImageHeight); err != nil {
		return nil, err
	}

	raw, err := dto.MarshalTextFields(fields)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{
		"template_text_fields": raw,
		"template_version":     gorm.Expr("template_version + 1"),
	}
	if err := s.DB.Model(tmpl).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(clubID, templateID)
}
