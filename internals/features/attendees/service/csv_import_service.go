package service

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sertifikatku_backend/internals/features/attendees/dto"
	"sertifikatku_backend/internals/features/attendees/model"
)

var ErrEmptyCSV = errors.New("csv kosong atau tidak punya header")

// Alias header CSV → nama field kanonik (original export dari berbagai
// sistem kampus, headernya macam-macam).
var headerAliases = map[string]string{
	"name": "name", "full name": "name", "fullname": "name", "nama": "name",
	"student id": "student_id", "student_id": "student_id", "studentid": "student_id",
	"id": "student_id", "student": "student_id", "nim": "student_id",
	"email": "email", "email address": "email", "mail": "email",
	"course": "course", "program": "course", "class": "course", "department": "course",
	"event": "event", "event name": "event", "event_name": "event",
	"date": "date", "event date": "date", "event_date": "date",
	"role": "role", "type": "role",
}

// ParsedRow: satu baris CSV valid, siap di-insert.
type ParsedRow struct {
	Row    int               // nomor baris asli (mulai 2, setelah header)
	Fields map[string]string // field kanonik + kolom ekstra apa adanya
	Role   string
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF")))
}

// ParseAttendeeCSV parse + validasi per-baris. Baris rusak tidak
// menggagalkan baris lain; dikembalikan sebagai daftar RowError.
func ParseAttendeeCSV(data []byte, defaultRole string) ([]ParsedRow, []dto.RowError, error) {
	if defaultRole == "" {
		defaultRole = "student"
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // baris pendek/panjang ditangani manual
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, ErrEmptyCSV
	}

	// map index kolom → nama field kanonik (atau nama ter-normalisasi utk kolom ekstra)
	colNames := make([]string, len(header))
	for i, h := range header {
		n := normalizeHeader(h)
		if canonical, ok := headerAliases[n]; ok {
			colNames[i] = canonical
		} else {
			colNames[i] = n
		}
	}

	hasName, hasStudentID := false, false
	for _, n := range colNames {
		if n == "name" {
			hasName = true
		}
		if n == "student_id" {
			hasStudentID = true
		}
	}
	if !hasName || !hasStudentID {
		return nil, nil, fmt.Errorf("kolom wajib hilang: butuh name dan student_id")
	}

	var (
		rows     []ParsedRow
		rowErrs  []dto.RowError
		seenSIDs = map[string]bool{}
	)

	for rowNum := 2; ; rowNum++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rowErrs = append(rowErrs, dto.RowError{Row: rowNum, Error: "baris CSV rusak: " + err.Error()})
			continue
		}

		fields := make(map[string]string, len(colNames))
		for i, v := range record {
			if i >= len(colNames) || colNames[i] == "" {
				continue
			}
			v = strings.TrimSpace(v)
			if v != "" {
				fields[colNames[i]] = v
			}
		}

		name := fields["name"]
		sid := fields["student_id"]

		switch {
		case name == "":
			rowErrs = append(rowErrs, dto.RowError{Row: rowNum, Error: "name kosong"})
			continue
		case sid == "":
			rowErrs = append(rowErrs, dto.RowError{Row: rowNum, Error: "student_id kosong"})
			continue
		case len(name) > 200:
			rowErrs = append(rowErrs, dto.RowError{Row: rowNum, Error: "name terlalu panjang (max 200)"})
			continue
		case len(sid) > 50:
			rowErrs = append(rowErrs, dto.RowError{Row: rowNum, Error: "student_id terlalu panjang (max 50)"})
			continue
		}

		if email := fields["email"]; email != "" {
			if !strings.Contains(email, "@") || len(email) < 5 {
				rowErrs = append(rowErrs, dto.RowError{Row: rowNum, Error: "format email tidak valid: " + email})
				continue
			}
		}

		role := strings.ToLower(fields["role"])
		if role == "" {
			role = defaultRole
		}
		if role != "student" && role != "management" {
			rowErrs = append(rowErrs, dto.RowError{Row: rowNum, Error: "role harus student atau management"})
			continue
		}
		delete(fields, "role") // role disimpan di kolom sendiri, bukan field map

		if seenSIDs[sid] {
			rowErrs = append(rowErrs, dto.RowError{Row: rowNum, Error: "student_id duplikat di file: " + sid})
			continue
		}
		seenSIDs[sid] = true

		rows = append(rows, ParsedRow{Row: rowNum, Fields: fields, Role: role})
	}

	return rows, rowErrs, nil
}

// ImportCSV parse file lalu insert attendee baru dalam satu transaksi.
// student_id yang sudah ada di club dilaporkan sebagai skip, bukan error batch.
func ImportCSV(db *gorm.DB, clubID uuid.UUID, uploadedBy *uuid.UUID, fileName string, data []byte, defaultRole string) (*dto.ImportResultResponse, error) {
	rows, rowErrs, err := ParseAttendeeCSV(data, defaultRole)
	if err != nil {
		return nil, err
	}

	// student_id yang sudah terdaftar di club ini
	var existing []string
	if err := db.Model(&model.AttendeeModel{}).
		Where("attendee_club_id = ?", clubID).
		Pluck("attendee_fields->>'student_id'", &existing).Error; err != nil {
		return nil, err
	}
	existingSet := make(map[string]bool, len(existing))
	for _, sid := range existing {
		existingSet[sid] = true
	}

	importRec := model.AttendeeImportModel{
		ImportID:         uuid.New(),
		ImportClubID:     clubID,
		ImportFileName:   fileName,
		ImportUploadedBy: uploadedBy,
	}

	imported := 0
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&importRec).Error; err != nil {
			return err
		}
		for _, row := range rows {
			sid := row.Fields["student_id"]
			if existingSet[sid] {
				rowErrs = append(rowErrs, dto.RowError{Row: row.Row, Error: "student_id sudah terdaftar: " + sid})
				continue
			}

			fieldMap := make(map[string]any, len(row.Fields))
			for k, v := range row.Fields {
				fieldMap[k] = v
			}

			att := model.AttendeeModel{
				AttendeeClubID:   clubID,
				AttendeeImportID: &importRec.ImportID,
				AttendeeFields:   fieldMap,
				AttendeeRole:     row.Role,
			}
			if err := tx.Create(&att).Error; err != nil {
				return err
			}
			imported++
		}

		totalRows := len(rows) + len(rowErrs)
		return tx.Model(&importRec).Updates(map[string]any{
			"import_total_rows":    totalRows,
			"import_imported_rows": imported,
			"import_skipped_rows":  totalRows - imported,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	return &dto.ImportResultResponse{
		ImportID:     importRec.ImportID,
		TotalRows:    len(rows) + len(rowErrs),
		ImportedRows: imported,
		SkippedRows:  len(rows) + len(rowErrs) - imported,
		Errors:       rowErrs,
	}, nil
}
