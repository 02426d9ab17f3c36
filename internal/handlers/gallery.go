package handlers

import (
	"strconv"

	"github.com/frctlprdx/community-sub000/internal/models"
	"github.com/frctlprdx/community-sub000/internal/services"
	"github.com/frctlprdx/community-sub000/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type GalleryHandler struct {
	galleryService *services.GalleryService
}

func NewGalleryHandler(db *gorm.DB) *GalleryHandler {
	return &GalleryHandler{galleryService: services.NewGalleryService(db)}
}

type GalleryResponse struct {
	response.Envelope
	Gallery *models.Gallery `json:"gallery"`
}

type GalleryListResponse struct {
	response.Envelope
	Galleries []models.Gallery `json:"galleries"`
}

// Create adds a gallery item
// POST /api/gallery/post
func (h *GalleryHandler) Create(c *gin.Context) {
	var req services.CreateGalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, response.NewValidation("Body permintaan tidak valid"))
		return
	}

	item, err := h.galleryService.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, GalleryResponse{
		Envelope: response.OK("Gambar berhasil ditambahkan"),
		Gallery:  item,
	})
}

// ListByCommunity returns a community's gallery, newest first
// GET /api/gallery/get/:communityId
func (h *GalleryHandler) ListByCommunity(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("communityId"), 10, 32)
	if err != nil {
		response.Error(c, response.NewValidation("ID komunitas tidak valid"))
		return
	}

	items, err := h.galleryService.ListByCommunity(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, GalleryListResponse{
		Envelope:  response.OK("ok"),
		Galleries: items,
	})
}
