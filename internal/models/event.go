package models

import "time"

// Event is a community event listing. CreatedByID references the creating
// community's representative user; no ownership check exists beyond that.
type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Date        time.Time `gorm:"index" json:"date"`
	ImageURL    string    `gorm:"size:500" json:"image_url"`
	CreatedByID *uint     `gorm:"index" json:"created_by_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Event) TableName() string { return "events" }
