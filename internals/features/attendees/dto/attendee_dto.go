package dto

import (
	"github.com/google/uuid"

	"sertifikatku_backend/internals/features/attendees/model"
)

// 🔹 Response attendee
type AttendeeResponse struct {
	AttendeeID             uuid.UUID         `json:"attendee_id"`
	AttendeeClubID         uuid.UUID         `json:"attendee_club_id"`
	AttendeeFields         map[string]any    `json:"attendee_fields"`
	AttendeeRole           string            `json:"attendee_role"`
	AttendeeGeneratedCount int               `json:"attendee_generated_count"`
	AttendeeImportID       *uuid.UUID        `json:"attendee_import_id,omitempty"`
	AttendeeCreatedAt      string            `json:"attendee_created_at"`
}

// 🔹 Hasil import CSV
type ImportResultResponse struct {
	ImportID     uuid.UUID  `json:"import_id"`
	TotalRows    int        `json:"total_rows"`
	ImportedRows int        `json:"imported_rows"`
	SkippedRows  int        `json:"skipped_rows"`
	Errors       []RowError `json:"errors,omitempty"`
}

// RowError: error validasi per-baris CSV (row mulai dari 2, setelah header)
type RowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// 🔄 Konversi dari model → response
func ToAttendeeResponse(m *model.AttendeeModel) *AttendeeResponse {
	return &AttendeeResponse{
		AttendeeID:             m.AttendeeID,
		AttendeeClubID:         m.AttendeeClubID,
		AttendeeFields:         m.AttendeeFields,
		AttendeeRole:           m.AttendeeRole,
		AttendeeGeneratedCount: m.AttendeeGeneratedCount,
		AttendeeImportID:       m.AttendeeImportID,
		AttendeeCreatedAt:      m.AttendeeCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// 🔄 Konversi list model → list response
func ToAttendeeResponseList(models []model.AttendeeModel) []AttendeeResponse {
	var result []AttendeeResponse
	for i := range models {
		result = append(result, *ToAttendeeResponse(&models[i]))
	}
	return result
}
