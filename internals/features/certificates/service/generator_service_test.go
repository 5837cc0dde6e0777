package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"sertifikatku_backend/internals/features/certificates/model"
)

func TestBuildCertificateNumber(t *testing.T) {
	attendeeID := uuid.MustParse("6f9619ff-8b86-4d01-b42d-00cf4fc964ff")

	cases := []struct {
		name      string
		slug      string
		studentID string
		want      string
	}{
		{"dengan student_id", "robotik-club", "12345", "CERT-ROBOTIK-CLUB-12345"},
		{"student_id spasi", "robotik-club", "  12345 ", "CERT-ROBOTIK-CLUB-12345"},
		{"tanpa student_id fallback potongan uuid", "x", "", "CERT-X-6f9619ff"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := BuildCertificateNumber(tc.slug, tc.studentID, attendeeID); got != tc.want {
				t.Errorf("BuildCertificateNumber = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestBuildFieldValues(t *testing.T) {
	fields := map[string]any{
		"Name":       "Budi Santoso",
		"student_id": "123",
		"date":       "2026-06-15",
		"skor":       42, // non-string diabaikan
		"":           "x",
	}

	values := BuildFieldValues(fields, "Workshop Robotik")

	if values["name"] != "Budi Santoso" {
		t.Errorf("key harus dinormalisasi lowercase: %+v", values)
	}
	if values["date"] != "June 15, 2026" {
		t.Errorf("date harus diformat human-readable, dapat %q", values["date"])
	}
	if values["event"] != "Workshop Robotik" {
		t.Errorf("event kosong harus fallback ke event name template, dapat %q", values["event"])
	}
	if _, ok := values["skor"]; ok {
		t.Error("nilai non-string tidak boleh ikut")
	}
}

func TestBuildFieldValues_DateNotParseable(t *testing.T) {
	values := BuildFieldValues(map[string]any{"date": "15 Juni 2026"}, "")
	if values["date"] != "15 Juni 2026" {
		t.Errorf("date yang tidak bisa diparse harus dibiarkan apa adanya, dapat %q", values["date"])
	}
}

func TestBuildFieldValues_EventFromAttendeeWins(t *testing.T) {
	values := BuildFieldValues(map[string]any{"event": "Acara CSV"}, "Event Template")
	if values["event"] != "Acara CSV" {
		t.Errorf("event dari attendee harus menang atas template, dapat %q", values["event"])
	}
}

func TestReuseOrMint_PreservesTokenAndNumber(t *testing.T) {
	clubID := uuid.New()
	attendeeID := uuid.New()
	templateID := uuid.New()

	existing := &model.CertificateModel{
		CertificateID:         uuid.New(),
		CertificateClubID:     clubID,
		CertificateAttendeeID: attendeeID,
		CertificateTemplateID: templateID,
		CertificateToken:      uuid.New(),
		CertificateNumber:     "CERT-ROBOTIK-123",
	}

	// regenerate: row existing → token & nomor tidak boleh berubah
	got := reuseOrMint(existing, clubID, attendeeID, templateID, "robotik", "123")
	if got.CertificateToken != existing.CertificateToken {
		t.Errorf("token berubah saat regenerate: %s → %s", existing.CertificateToken, got.CertificateToken)
	}
	if got.CertificateNumber != existing.CertificateNumber {
		t.Errorf("nomor berubah saat regenerate: %s → %s", existing.CertificateNumber, got.CertificateNumber)
	}
	if got.CertificateID != existing.CertificateID {
		t.Errorf("id row berubah saat regenerate")
	}
}

func TestReuseOrMint_MintsForNewPair(t *testing.T) {
	clubID := uuid.New()
	attendeeID := uuid.New()
	templateID := uuid.New()

	got := reuseOrMint(nil, clubID, attendeeID, templateID, "robotik", "123")

	if got.CertificateToken == uuid.Nil || got.CertificateID == uuid.Nil {
		t.Fatal("pasangan baru harus mint id + token")
	}
	if got.CertificateNumber != "CERT-ROBOTIK-123" {
		t.Errorf("nomor = %q, want CERT-ROBOTIK-123", got.CertificateNumber)
	}
	if got.CertificateClubID != clubID || got.CertificateAttendeeID != attendeeID || got.CertificateTemplateID != templateID {
		t.Error("referensi club/attendee/template tidak terisi")
	}

	// dua pasangan berbeda tidak boleh berbagi token
	other := reuseOrMint(nil, clubID, uuid.New(), templateID, "robotik", "456")
	if other.CertificateToken == got.CertificateToken {
		t.Error("token harus unik per pasangan")
	}
}

func TestGenerateBatch_IsolatesFailures(t *testing.T) {
	okA := uuid.New()
	failing := uuid.New()
	okB := uuid.New()
	clubID := uuid.New()
	templateID := uuid.New()

	s := &GeneratorService{
		generate: func(ctx context.Context, _, attendeeID, _ uuid.UUID) (*model.CertificateModel, error) {
			if attendeeID == failing {
				return nil, errors.New("render failed: background fetch")
			}
			return &model.CertificateModel{
				CertificateID:         uuid.New(),
				CertificateAttendeeID: attendeeID,
				CertificateToken:      uuid.New(),
			}, nil
		},
	}

	results := s.GenerateBatch(context.Background(), clubID, []uuid.UUID{okA, failing, okB}, templateID)

	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}

	succeeded := 0
	for _, r := range results {
		if r.Success {
			succeeded++
		}
	}
	if succeeded != 2 {
		t.Fatalf("satu item gagal harus menyisakan 2 sukses, dapat %d: %+v", succeeded, results)
	}

	// urutan hasil mengikuti urutan input; item gagal bawa pesan error
	if results[1].AttendeeID != failing || results[1].Success {
		t.Fatalf("item gagal tidak terlapor di posisinya: %+v", results[1])
	}
	if results[1].Error == "" {
		t.Error("item gagal harus bawa pesan error")
	}
	if results[2].AttendeeID != okB || !results[2].Success {
		t.Fatalf("batch berhenti setelah kegagalan: %+v", results[2])
	}
	if results[0].Token == uuid.Nil || results[0].CertificateID == uuid.Nil {
		t.Error("item sukses harus bawa id + token sertifikat")
	}
}
