package service

import "errors"

// Taksonomi error pipeline generate. Controller yang memetakan ke HTTP:
// NotFound → 404, ErrValidation → 400, ErrRender → 422, ErrStorage → 502.
var (
	ErrTemplateNotFound    = errors.New("template not found")
	ErrAttendeeNotFound    = errors.New("attendee not found")
	ErrCertificateNotFound = errors.New("certificate not found")
	ErrRender              = errors.New("render failed")
	ErrStorage             = errors.New("storage write failed")
	ErrValidation          = errors.New("validation failed")
)
