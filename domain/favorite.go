package domain

import "time"

// Favorite pairs a hirer with a companion's owner account. Read-only input
// to scoring (behavioral affinity boost); mutated by the favorites module.
type Favorite struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	HirerID         UserID    `gorm:"column:hirer_id;not null;uniqueIndex:idx_fav_pair" json:"hirer_id"`
	CompanionUserID UserID    `gorm:"column:companion_user_id;not null;uniqueIndex:idx_fav_pair" json:"companion_user_id"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
