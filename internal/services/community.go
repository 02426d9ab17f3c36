package services

import (
	"errors"

	"github.com/frctlprdx/community-sub000/internal/models"
	"github.com/frctlprdx/community-sub000/internal/utils"
	"github.com/frctlprdx/community-sub000/pkg/response"
	"gorm.io/gorm"
)

type CommunityService struct {
	db *gorm.DB
}

func NewCommunityService(db *gorm.DB) *CommunityService {
	return &CommunityService{db: db}
}

// List returns every community.
func (s *CommunityService) List() ([]models.Community, error) {
	var communities []models.Community
	if err := s.db.Order("id ASC").Find(&communities).Error; err != nil {
		return nil, err
	}
	return communities, nil
}

// Members returns the membership rows of a community.
func (s *CommunityService) Members(communityID uint) ([]models.CommunityMember, error) {
	var count int64
	if err := s.db.Model(&models.Community{}).Where("id = ?", communityID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, response.NewNotFound("Komunitas tidak ditemukan")
	}

	var members []models.CommunityMember
	if err := s.db.Where("community_id = ?", communityID).Order("joined_at ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// Join adds a user to a community. The membership insert and the member-count
// increment run in one transaction so the counter cannot drift.
func (s *CommunityService) Join(userID, communityID uint) (*models.CommunityMember, error) {
	if userID == 0 || communityID == 0 {
		var missing []string
		if userID == 0 {
			missing = append(missing, "userId")
		}
		if communityID == 0 {
			missing = append(missing, "communityId")
		}
		return nil, response.NewValidation("userId dan communityId wajib diisi", missing...)
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, response.NewNotFound("User tidak ditemukan")
	}
	if err := s.db.Model(&models.Community{}).Where("id = ?", communityID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, response.NewNotFound("Komunitas tidak ditemukan")
	}

	if err := s.db.Model(&models.CommunityMember{}).
		Where("user_id = ? AND community_id = ?", userID, communityID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, response.NewConflict("Sudah tergabung di komunitas ini")
	}

	member := models.CommunityMember{
		UserID:      userID,
		CommunityID: communityID,
		Role:        models.RoleMember,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&member).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return response.NewConflict("Sudah tergabung di komunitas ini")
			}
			return err
		}
		return tx.Model(&models.Community{}).
			Where("id = ?", communityID).
			UpdateColumn("member_count", gorm.Expr("member_count + 1")).Error
	})
	if err != nil {
		return nil, err
	}

	return &member, nil
}

// RemoveMember deletes a membership row by its id and decrements the
// community's member count in the same transaction.
func (s *CommunityService) RemoveMember(memberID uint) error {
	var member models.CommunityMember
	if err := s.db.First(&member, memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("Anggota tidak ditemukan")
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.CommunityMember{}, member.ID).Error; err != nil {
			return err
		}
		return tx.Model(&models.Community{}).
			Where("id = ? AND member_count > 0", member.CommunityID).
			UpdateColumn("member_count", gorm.Expr("member_count - 1")).Error
	})
}

type UpdateCommunityRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Update changes a community's name and/or description.
func (s *CommunityService) Update(communityID uint, req *UpdateCommunityRequest) (*models.Community, error) {
	var community models.Community
	if err := s.db.First(&community, communityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("Komunitas tidak ditemukan")
		}
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil && *req.Name != "" {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = utils.CleanText(*req.Description)
	}
	if len(updates) == 0 {
		return &community, nil
	}

	if err := s.db.Model(&community).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewConflict("Nama komunitas sudah digunakan")
		}
		return nil, err
	}

	if err := s.db.First(&community, communityID).Error; err != nil {
		return nil, err
	}
	return &community, nil
}

// Delete removes a community together with its membership rows.
func (s *CommunityService) Delete(communityID uint) error {
	var community models.Community
	if err := s.db.First(&community, communityID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("Komunitas tidak ditemukan")
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("community_id = ?", communityID).Delete(&models.CommunityMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Community{}, communityID).Error
	})
}
