package dto

import (
	"testing"
	"time"

	attendeeModel "sertifikatku_backend/internals/features/attendees/model"
	"sertifikatku_backend/internals/features/certificates/model"
	templateModel "sertifikatku_backend/internals/features/templates/model"
)

func TestPublicFields_Whitelist(t *testing.T) {
	att := &attendeeModel.AttendeeModel{
		AttendeeFields: map[string]any{
			"name":       "Budi Santoso",
			"student_id": "12345",
			"email":      "budi@kampus.ac.id",
			"event":      "Workshop Robotik",
		},
	}
	tmpl := &templateModel.TemplateModel{
		TemplatePublicFields: []string{"name", "event", "date"},
	}

	got := PublicFields(att, tmpl)

	if got["name"] != "Budi Santoso" || got["event"] != "Workshop Robotik" {
		t.Fatalf("field whitelist hilang: %+v", got)
	}
	if _, ok := got["student_id"]; ok {
		t.Error("student_id tidak di-whitelist, tidak boleh bocor")
	}
	if _, ok := got["email"]; ok {
		t.Error("email tidak di-whitelist, tidak boleh bocor")
	}
	if _, ok := got["date"]; ok {
		t.Error("field whitelist tanpa nilai tidak boleh muncul")
	}
}

func TestPublicFields_NormalizesWhitelistEntries(t *testing.T) {
	att := &attendeeModel.AttendeeModel{
		AttendeeFields: map[string]any{"name": "Budi"},
	}
	tmpl := &templateModel.TemplateModel{
		TemplatePublicFields: []string{"  Name ", ""},
	}

	got := PublicFields(att, tmpl)
	if got["name"] != "Budi" {
		t.Fatalf("whitelist harus dinormalisasi lowercase+trim: %+v", got)
	}
}

func TestToVerificationResponse_EventNameRespectsWhitelist(t *testing.T) {
	cert := &model.CertificateModel{
		CertificateNumber:      "CERT-ROBOTIK-123",
		CertificateGeneratedAt: time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC),
	}
	att := &attendeeModel.AttendeeModel{
		AttendeeFields: map[string]any{"name": "Budi"},
	}
	tmpl := &templateModel.TemplateModel{
		TemplateEventName:    "Workshop Robotik",
		TemplatePublicFields: []string{"name", "date"}, // "event" dicabut
	}

	resp := ToVerificationResponse(cert, att, tmpl, "Robotik Club")

	if !resp.Valid {
		t.Fatal("sertifikat valid harus Valid=true")
	}
	if resp.EventName != "" {
		t.Fatalf("event dicabut dari whitelist tapi masih bocor di top-level: %q", resp.EventName)
	}
	if resp.ClubName != "Robotik Club" || resp.CertificateNumber != "CERT-ROBOTIK-123" {
		t.Fatalf("payload dasar salah: %+v", resp)
	}
	if resp.GeneratedAt == nil || !resp.GeneratedAt.Equal(cert.CertificateGeneratedAt) {
		t.Fatalf("generated_at hilang: %+v", resp.GeneratedAt)
	}

	// whitelist dengan "event" → event name template boleh tampil
	tmpl.TemplatePublicFields = []string{"name", "Event "}
	resp = ToVerificationResponse(cert, att, tmpl, "Robotik Club")
	if resp.EventName != "Workshop Robotik" {
		t.Fatalf("event di-whitelist tapi tidak tampil: %q", resp.EventName)
	}
}
