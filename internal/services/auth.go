package services

import (
	"errors"

	"github.com/frctlprdx/community-sub000/internal/config"
	"github.com/frctlprdx/community-sub000/internal/models"
	"github.com/frctlprdx/community-sub000/internal/utils"
	"github.com/frctlprdx/community-sub000/pkg/logger"
	"github.com/frctlprdx/community-sub000/pkg/response"
	"gorm.io/gorm"
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.AuthConfig
}

func NewAuthService(db *gorm.DB, cfg *config.AuthConfig) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

type RegisterMemberRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	PhoneNumber    string `json:"phone_number"`
	Bio            string `json:"bio"`
	ProfilePicture string `json:"profilePicture"`
}

type RegisterCommunityRequest struct {
	RegisterMemberRequest
	Category   string `json:"category"`
	SocialLink string `json:"socialLink"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// validateRegistration runs the shared field checks for both registration
// flows and reports every failing field at once.
func (s *AuthService) validateRegistration(req *RegisterMemberRequest) error {
	var missing []string
	if req.Name == "" {
		missing = append(missing, "name")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return response.NewValidation("Field wajib tidak boleh kosong", missing...)
	}

	if !utils.IsValidEmail(utils.NormalizeEmail(req.Email)) {
		return response.NewValidation("Format email tidak valid", "email")
	}
	if len(req.Password) < 8 {
		return response.NewValidation("Password minimal 8 karakter", "password")
	}
	if req.PhoneNumber != "" && !utils.IsValidPhone(req.PhoneNumber) {
		return response.NewValidation("Format nomor telepon tidak valid", "phone_number")
	}
	if req.ProfilePicture != "" && !utils.IsTrustedImageURL(req.ProfilePicture, s.cfg.TrustedImageHost) {
		return response.NewValidation("URL foto profil tidak valid", "profilePicture")
	}
	return nil
}

// RegisterMember creates a MEMBER user. The email unique index is the
// authority on duplicates; the lookup only gives a friendlier message first.
func (s *AuthService) RegisterMember(req *RegisterMemberRequest) (*models.User, error) {
	if err := s.validateRegistration(req); err != nil {
		return nil, err
	}

	email := utils.NormalizeEmail(req.Email)
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, response.NewConflict("Email sudah terdaftar")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:           req.Name,
		Email:          email,
		Password:       hash,
		PhoneNumber:    req.PhoneNumber,
		Role:           models.RoleMember,
		Bio:            utils.CleanText(req.Bio),
		ProfilePicture: req.ProfilePicture,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewConflict("Email sudah terdaftar")
		}
		return nil, err
	}

	logger.Info().
		Str("email", user.Email).
		Time("registered_at", user.CreatedAt).
		Msg("member registered")

	return &user, nil
}

// RegisterCommunity creates a COMMUNITY user, the community itself and the
// creator's membership row in one transaction. Partial state never persists.
func (s *AuthService) RegisterCommunity(req *RegisterCommunityRequest) (*models.User, *models.Community, error) {
	if err := s.validateRegistration(&req.RegisterMemberRequest); err != nil {
		return nil, nil, err
	}
	if req.SocialLink != "" && !utils.IsValidSocialLink(req.SocialLink) {
		return nil, nil, response.NewValidation("Link sosial harus diawali dengan http", "socialLink")
	}

	email := utils.NormalizeEmail(req.Email)
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, nil, err
	}
	if count > 0 {
		return nil, nil, response.NewConflict("Email sudah terdaftar")
	}
	if err := s.db.Model(&models.Community{}).Where("name = ?", req.Name).Count(&count).Error; err != nil {
		return nil, nil, err
	}
	if count > 0 {
		return nil, nil, response.NewConflict("Nama komunitas sudah digunakan")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, nil, err
	}

	user := models.User{
		Name:           req.Name,
		Email:          email,
		Password:       hash,
		PhoneNumber:    req.PhoneNumber,
		Role:           models.RoleCommunity,
		Bio:            utils.CleanText(req.Bio),
		ProfilePicture: req.ProfilePicture,
	}
	community := models.Community{
		Name:        req.Name,
		Category:    req.Category,
		SocialLink:  req.SocialLink,
		MemberCount: 1,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return response.NewConflict("Email sudah terdaftar")
			}
			return err
		}
		if err := tx.Create(&community).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return response.NewConflict("Nama komunitas sudah digunakan")
			}
			return err
		}
		member := models.CommunityMember{
			UserID:      user.ID,
			CommunityID: community.ID,
			Role:        models.RoleMember,
		}
		return tx.Create(&member).Error
	})
	if err != nil {
		return nil, nil, err
	}

	logger.Info().
		Str("email", user.Email).
		Str("community", community.Name).
		Time("registered_at", user.CreatedAt).
		Msg("community registered")

	return &user, &community, nil
}

// Login verifies credentials and records a LoginHistory row for MEMBER and
// COMMUNITY logins. The returned user record is the client's session payload.
func (s *AuthService) Login(req *LoginRequest) (*models.User, error) {
	var missing []string
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, response.NewValidation("Email dan password wajib diisi", missing...)
	}

	// Lookup uses the same normalization as registration.
	email := utils.NormalizeEmail(req.Email)

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("Email tidak ditemukan")
		}
		return nil, err
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		return nil, response.NewUnauthorized("Password salah")
	}

	if user.Role == models.RoleMember || user.Role == models.RoleCommunity {
		history := models.LoginHistory{UserID: user.ID}
		if err := s.db.Create(&history).Error; err != nil {
			return nil, err
		}
	}

	return &user, nil
}
