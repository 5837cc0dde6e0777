package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sertifikatku_backend/internals/configs"
	activityService "sertifikatku_backend/internals/features/activitylogs/service"
	"sertifikatku_backend/internals/features/clubs/dto"
	"sertifikatku_backend/internals/features/clubs/model"
	helper "sertifikatku_backend/internals/helpers"
	helperAuth "sertifikatku_backend/internals/helpers/auth"
)

// tokenTTL umur access token admin.
const tokenTTL = 12 * time.Hour

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

// ✅ POST /auth/login — email + password → JWT.
// Pesan error sengaja generik supaya tidak bocorin email mana yang terdaftar.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var admin model.ClubAdminModel
	if err := ctrl.DB.First(&admin, "LOWER(admin_email) = ?", email).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !admin.AdminIsActive {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.AdminPasswordHash), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	// admin club nonaktif tidak boleh login; owner platform tidak terikat club
	if admin.AdminClubID != nil {
		var club model.ClubModel
		if err := ctrl.DB.First(&club, "club_id = ? AND club_is_active = TRUE", *admin.AdminClubID).Error; err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Club sedang nonaktif")
		}
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":               admin.AdminID.String(),
		"is_platform_owner": admin.AdminIsPlatformOwner,
		"iat":               now.Unix(),
		"exp":               now.Add(tokenTTL).Unix(),
	}
	if admin.AdminClubID != nil {
		claims["club_id"] = admin.AdminClubID.String()
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	ctrl.DB.Model(&admin).Update("admin_last_login_at", now)

	activityService.LogActivity(ctrl.DB, admin.AdminClubID, &admin.AdminID, nil,
		"login", "club_admin", c.IP(), nil)

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(tokenTTL.Seconds()),
		Admin:       *dto.ToAdminResponse(&admin),
	})
}

// ✅ GET /auth/me — profil admin dari token
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	adminID, err := helperAuth.GetAdminID(c)
	if err != nil {
		return err
	}

	var admin model.ClubAdminModel
	if err := ctrl.DB.First(&admin, "admin_id = ?", adminID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Admin tidak ditemukan")
	}

	return helper.JsonOK(c, "", dto.ToAdminResponse(&admin))
}
