package models

import "time"

// Gallery is a single uploaded image in a community's gallery.
type Gallery struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	ImageURL    string    `gorm:"size:500" json:"image_url"`
	CommunityID uint      `gorm:"not null;index" json:"community_id"`
	UploadedAt  time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

func (Gallery) TableName() string { return "galleries" }
