package handlers

import (
	"github.com/frctlprdx/community-sub000/internal/config"
	"github.com/frctlprdx/community-sub000/internal/models"
	"github.com/frctlprdx/community-sub000/internal/services"
	"github.com/frctlprdx/community-sub000/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: services.NewAuthService(db, &cfg.Auth),
	}
}

type RegisterMemberResponse struct {
	response.Envelope
	User *models.User `json:"user"`
}

type RegisterCommunityResponse struct {
	response.Envelope
	User      *models.User      `json:"user"`
	Community *models.Community `json:"community"`
}

type LoginResponse struct {
	response.Envelope
	User *models.User `json:"user"`
}

// RegisterMember handles member sign-up
// POST /api/auth/registermember
func (h *AuthHandler) RegisterMember(c *gin.Context) {
	var req services.RegisterMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, response.NewValidation("Body permintaan tidak valid"))
		return
	}

	user, err := h.authService.RegisterMember(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, RegisterMemberResponse{
		Envelope: response.OK("Registrasi berhasil"),
		User:     user,
	})
}

// RegisterCommunity handles community sign-up
// POST /api/auth/registercommunity
func (h *AuthHandler) RegisterCommunity(c *gin.Context) {
	var req services.RegisterCommunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, response.NewValidation("Body permintaan tidak valid"))
		return
	}

	user, community, err := h.authService.RegisterCommunity(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, RegisterCommunityResponse{
		Envelope:  response.OK("Registrasi komunitas berhasil"),
		User:      user,
		Community: community,
	})
}

// Login verifies credentials and returns the user record the client persists
// as its session.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, response.NewValidation("Body permintaan tidak valid"))
		return
	}

	user, err := h.authService.Login(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, LoginResponse{
		Envelope: response.OK("Login berhasil"),
		User:     user,
	})
}
