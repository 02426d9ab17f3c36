package models

import "time"

// User roles. Role is fixed at creation; no flow changes it afterwards.
const (
	RoleMember    = "MEMBER"
	RoleCommunity = "COMMUNITY"
	RoleAdmin     = "ADMIN"
)

// User represents a registered account. Email is stored lower-cased and
// trimmed; the unique index is the authority on duplicates.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"size:100;not null" json:"name"`
	Email          string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password       string    `gorm:"size:255;not null" json:"-"`
	PhoneNumber    string    `gorm:"size:30" json:"phone_number"`
	Role           string    `gorm:"size:20;not null;default:MEMBER" json:"role"`
	Bio            string    `gorm:"type:text" json:"bio"`
	ProfilePicture string    `gorm:"size:500" json:"profile_picture"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
