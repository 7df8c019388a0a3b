package domain

import "time"

// UserID identifies a platform account. Companion profiles are owned by a
// user; behavioral data (interactions, favorites, bookings) is always keyed
// by the owner's UserID, never by the profile id.
type UserID uint

// ProfileID identifies a companion profile. Recommendation results are keyed
// by ProfileID; clients may reference a companion by either id namespace.
type ProfileID uint

type User struct {
	ID         UserID    `gorm:"primaryKey" json:"id"`
	FullName   string    `gorm:"column:full_name;not null" json:"full_name"`
	Email      string    `gorm:"column:email;uniqueIndex;not null" json:"email"`
	Role       string    `gorm:"column:role;not null;default:hirer" json:"role"`
	IsVerified bool      `gorm:"column:is_verified;not null;default:false" json:"is_verified"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// UserBlock is a directional block; eligibility filtering treats it as
// symmetric (either direction excludes the pair from each other's results).
type UserBlock struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BlockerID UserID    `gorm:"column:blocker_id;not null;index" json:"blocker_id"`
	BlockedID UserID    `gorm:"column:blocked_id;not null;index" json:"blocked_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
