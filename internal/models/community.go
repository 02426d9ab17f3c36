package models

import "time"

// Community is a registered community. MemberCount is informational and is
// maintained inside the same transaction as membership changes.
type Community struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"size:100" json:"category"`
	SocialLink  string    `gorm:"size:500" json:"social_link"`
	MemberCount int       `gorm:"not null;default:0" json:"member_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Community) TableName() string { return "communities" }

// CommunityMember links a user to a community. The composite unique index
// enforces at most one membership row per (user, community) pair. Role stays
// MEMBER for everyone, including the community's creating user.
type CommunityMember struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index;uniqueIndex:uk_user_community" json:"user_id"`
	CommunityID uint      `gorm:"not null;index;uniqueIndex:uk_user_community" json:"community_id"`
	Role        string    `gorm:"size:20;not null;default:MEMBER" json:"role"`
	JoinedAt    time.Time `gorm:"autoCreateTime" json:"joined_at"`
}

func (CommunityMember) TableName() string { return "community_members" }
