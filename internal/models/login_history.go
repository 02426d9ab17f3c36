package models

import "time"

// LoginHistory records a successful login. Only MEMBER and COMMUNITY logins
// are recorded; ADMIN logins are not.
type LoginHistory struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	UserID  uint      `gorm:"not null;index" json:"user_id"`
	LoginAt time.Time `gorm:"autoCreateTime;index" json:"login_at"`
}

func (LoginHistory) TableName() string { return "login_histories" }
