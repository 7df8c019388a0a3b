package domain

import "time"

const BookingStatusCompleted = "COMPLETED"

// Booking is owned by the booking flow; the recommendation core only reads
// COMPLETED rows to derive occasion-type preferences.
type Booking struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	HirerID         UserID    `gorm:"column:hirer_id;not null;index" json:"hirer_id"`
	CompanionUserID UserID    `gorm:"column:companion_user_id;not null;index" json:"companion_user_id"`
	OccasionType    string    `gorm:"column:occasion_type;not null" json:"occasion_type"`
	Status          string    `gorm:"column:status;not null" json:"status"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
