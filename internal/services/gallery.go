package services

import (
	"github.com/frctlprdx/community-sub000/internal/models"
	"github.com/frctlprdx/community-sub000/internal/utils"
	"github.com/frctlprdx/community-sub000/pkg/response"
	"gorm.io/gorm"
)

type GalleryService struct {
	db *gorm.DB
}

func NewGalleryService(db *gorm.DB) *GalleryService {
	return &GalleryService{db: db}
}

type CreateGalleryRequest struct {
	Title       string `json:"title"`
	ImageURL    string `json:"imageUrl"`
	CommunityID uint   `json:"communityId"`
}

func (s *GalleryService) Create(req *CreateGalleryRequest) (*models.Gallery, error) {
	var missing []string
	if req.Title == "" {
		missing = append(missing, "title")
	}
	if req.CommunityID == 0 {
		missing = append(missing, "communityId")
	}
	if len(missing) > 0 {
		return nil, response.NewValidation("Title dan communityId wajib diisi", missing...)
	}

	var count int64
	if err := s.db.Model(&models.Community{}).Where("id = ?", req.CommunityID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, response.NewNotFound("Komunitas tidak ditemukan")
	}

	item := models.Gallery{
		Title:       utils.CleanText(req.Title),
		ImageURL:    req.ImageURL,
		CommunityID: req.CommunityID,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListByCommunity returns a community's gallery items, newest first.
func (s *GalleryService) ListByCommunity(communityID uint) ([]models.Gallery, error) {
	var items []models.Gallery
	if err := s.db.Where("community_id = ?", communityID).Order("uploaded_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
