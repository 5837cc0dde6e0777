package dto

import (
	"time"

	"github.com/google/uuid"

	"sertifikatku_backend/internals/features/clubs/model"
)

// 🔹 Request buat club baru (platform owner only)
type CreateClubRequest struct {
	ClubName         string `json:"club_name" validate:"required,max=150"`
	ClubContactEmail string `json:"club_contact_email" validate:"required,email"`

	// Admin pertama club dibuat sekalian
	AdminEmail    string `json:"admin_email" validate:"required,email"`
	AdminFullName string `json:"admin_full_name" validate:"required,max=150"`
	AdminPassword string `json:"admin_password" validate:"required,min=8,max=72"`
}

// 🔹 Request update club
type UpdateClubRequest struct {
	ClubName         string  `json:"club_name" validate:"omitempty,max=150"`
	ClubContactEmail string  `json:"club_contact_email" validate:"omitempty,email"`
	ClubLogoURL      *string `json:"club_logo_url"`
}

// 🔹 Request login admin
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// 🔹 Response club
type ClubResponse struct {
	ClubID           uuid.UUID `json:"club_id"`
	ClubName         string    `json:"club_name"`
	ClubSlug         string    `json:"club_slug"`
	ClubContactEmail string    `json:"club_contact_email,omitempty"`
	ClubLogoURL      *string   `json:"club_logo_url,omitempty"`
	ClubIsActive     bool      `json:"club_is_active"`
	ClubCreatedAt    time.Time `json:"club_created_at"`
}

// 🔹 Response club untuk listing publik (tanpa email kontak)
type PublicClubResponse struct {
	ClubID      uuid.UUID `json:"club_id"`
	ClubName    string    `json:"club_name"`
	ClubSlug    string    `json:"club_slug"`
	ClubLogoURL *string   `json:"club_logo_url,omitempty"`
}

// 🔹 Response admin (tanpa password hash)
type AdminResponse struct {
	AdminID              uuid.UUID  `json:"admin_id"`
	AdminClubID          *uuid.UUID `json:"admin_club_id,omitempty"`
	AdminEmail           string     `json:"admin_email"`
	AdminFullName        string     `json:"admin_full_name"`
	AdminIsPlatformOwner bool       `json:"admin_is_platform_owner"`
	AdminIsActive        bool       `json:"admin_is_active"`
}

// 🔹 Response login
type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	ExpiresIn   int64         `json:"expires_in"`
	Admin       AdminResponse `json:"admin"`
}

func ToClubResponse(m *model.ClubModel) *ClubResponse {
	return &ClubResponse{
		ClubID:           m.ClubID,
		ClubName:         m.ClubName,
		ClubSlug:         m.ClubSlug,
		ClubContactEmail: m.ClubContactEmail,
		ClubLogoURL:      m.ClubLogoURL,
		ClubIsActive:     m.ClubIsActive,
		ClubCreatedAt:    m.ClubCreatedAt,
	}
}

func ToPublicClubResponse(m *model.ClubModel) *PublicClubResponse {
	return &PublicClubResponse{
		ClubID:      m.ClubID,
		ClubName:    m.ClubName,
		ClubSlug:    m.ClubSlug,
		ClubLogoURL: m.ClubLogoURL,
	}
}

func ToPublicClubResponseList(models []model.ClubModel) []PublicClubResponse {
	var result []PublicClubResponse
	for i := range models {
		result = append(result, *ToPublicClubResponse(&models[i]))
	}
	return result
}

func ToAdminResponse(m *model.ClubAdminModel) *AdminResponse {
	return &AdminResponse{
		AdminID:              m.AdminID,
		AdminClubID:          m.AdminClubID,
		AdminEmail:           m.AdminEmail,
		AdminFullName:        m.AdminFullName,
		AdminIsPlatformOwner: m.AdminIsPlatformOwner,
		AdminIsActive:        m.AdminIsActive,
	}
}
