package handlers

import (
	"bytes"
	"strconv"

	"github.com/frctlprdx/community-sub000/internal/config"
	"github.com/frctlprdx/community-sub000/internal/models"
	"github.com/frctlprdx/community-sub000/internal/services"
	"github.com/frctlprdx/community-sub000/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommunityHandler struct {
	communityService *services.CommunityService
	authService      *services.AuthService
}

func NewCommunityHandler(db *gorm.DB, cfg *config.Config) *CommunityHandler {
	return &CommunityHandler{
		communityService: services.NewCommunityService(db),
		authService:      services.NewAuthService(db, &cfg.Auth),
	}
}

// idValue accepts both JSON numbers and numeric strings, matching how the
// SPA submits form values. Anything non-numeric fails to bind.
type idValue uint

func (v *idValue) UnmarshalJSON(b []byte) error {
	s := string(bytes.Trim(b, `"`))
	if s == "" || s == "null" {
		*v = 0
		return nil
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return err
	}
	*v = idValue(n)
	return nil
}

type CommunityListResponse struct {
	response.Envelope
	Communities []models.Community `json:"communities"`
}

type CommunityMembersResponse struct {
	response.Envelope
	Members []models.CommunityMember `json:"members"`
}

type JoinCommunityResponse struct {
	response.Envelope
	Member *models.CommunityMember `json:"member"`
}

type CommunityResponse struct {
	response.Envelope
	Community *models.Community `json:"community"`
}

// Create registers a community account; same workflow as
// POST /api/auth/registercommunity.
// POST /api/community/create
func (h *CommunityHandler) Create(c *gin.Context) {
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
		Envelope:  response.OK("Komunitas berhasil dibuat"),
		User:      user,
		Community: community,
	})
}

// List returns all communities
// GET /api/community/get
func (h *CommunityHandler) List(c *gin.Context) {
	communities, err := h.communityService.List()
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, CommunityListResponse{
		Envelope:    response.OK("ok"),
		Communities: communities,
	})
}

// Members returns the membership rows of one community
// GET /api/community/get/:id
func (h *CommunityHandler) Members(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, response.NewValidation("ID komunitas tidak valid"))
		return
	}

	members, err := h.communityService.Members(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, CommunityMembersResponse{
		Envelope: response.OK("ok"),
		Members:  members,
	})
}

type JoinCommunityRequest struct {
	UserID      idValue `json:"userId"`
	CommunityID idValue `json:"communityId"`
}

// Join adds a user to a community
// POST /api/community/join
func (h *CommunityHandler) Join(c *gin.Context) {
	var req JoinCommunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, response.NewValidation("userId dan communityId harus berupa angka"))
		return
	}

	member, err := h.communityService.Join(uint(req.UserID), uint(req.CommunityID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, JoinCommunityResponse{
		Envelope: response.OK("Berhasil bergabung ke komunitas"),
		Member:   member,
	})
}

// RemoveMember deletes a membership row by its id
// DELETE /api/community/member/:id
func (h *CommunityHandler) RemoveMember(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, response.NewValidation("ID anggota tidak valid"))
		return
	}

	if err := h.communityService.RemoveMember(uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, response.OK("Anggota berhasil dihapus"))
}

// Update changes a community's name and/or description
// PUT /api/community/update/:id
func (h *CommunityHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, response.NewValidation("ID komunitas tidak valid"))
		return
	}

	var req services.UpdateCommunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, response.NewValidation("Body permintaan tidak valid"))
		return
	}

	community, err := h.communityService.Update(uint(id), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, CommunityResponse{
		Envelope:  response.OK("Komunitas berhasil diperbarui"),
		Community: community,
	})
}

// Delete removes a community and its membership rows
// DELETE /api/community/delete/:id
func (h *CommunityHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, response.NewValidation("ID komunitas tidak valid"))
		return
	}

	if err := h.communityService.Delete(uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, response.OK("Komunitas berhasil dihapus"))
}
