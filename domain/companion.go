package domain

import (
	"time"

	"gorm.io/datatypes"
)

const VerificationVerified = "VERIFIED"

type CompanionProfile struct {
	ID                 ProfileID                  `gorm:"primaryKey" json:"id"`
	OwnerUserID        UserID                     `gorm:"column:owner_user_id;uniqueIndex;not null" json:"owner_user_id"`
	IsActive           bool                       `gorm:"column:is_active;not null;default:true" json:"is_active"`
	IsHidden           bool                       `gorm:"column:is_hidden;not null;default:false" json:"is_hidden"`
	VerificationStatus string                     `gorm:"column:verification_status;not null;default:PENDING" json:"verification_status"`
	RatingAvg          float64                    `gorm:"column:rating_avg;not null;default:0" json:"rating_avg"`
	RatingCount        int                        `gorm:"column:rating_count;not null;default:0" json:"rating_count"`
	CompletedBookings  int                        `gorm:"column:completed_bookings;not null;default:0" json:"completed_bookings"`
	TotalBookings      int                        `gorm:"column:total_bookings;not null;default:0" json:"total_bookings"`
	Bio                string                     `gorm:"column:bio" json:"bio"`
	PhotoCount         int                        `gorm:"column:photo_count;not null;default:0" json:"photo_count"`
	VerifiedPhotoCount int                        `gorm:"column:verified_photo_count;not null;default:0" json:"verified_photo_count"`
	Languages          datatypes.JSONSlice[string] `gorm:"column:languages;type:jsonb" json:"languages"`
	HourlyRate         float64                    `gorm:"column:hourly_rate;not null;default:0" json:"hourly_rate"`
	ServiceTypes       datatypes.JSONSlice[string] `gorm:"column:service_types;type:jsonb" json:"service_types"`
	CreatedAt          time.Time                  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time                  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// CandidateCompanion is the ephemeral scoring view of a profile joined with
// its owner account. It is never persisted; repositories build it fresh on
// every scoring pass.
type CandidateCompanion struct {
	ProfileID          ProfileID `json:"profile_id"`
	OwnerUserID        UserID    `json:"owner_user_id"`
	IsActive           bool      `json:"is_active"`
	IsHidden           bool      `json:"-"`
	VerificationStatus string    `json:"-"`
	RatingAvg          float64   `json:"rating_avg"`
	RatingCount        int       `json:"rating_count"`
	CompletedBookings  int       `json:"completed_bookings"`
	TotalBookings      int       `json:"total_bookings"`
	Bio                string    `json:"bio"`
	PhotoCount         int       `json:"photo_count"`
	VerifiedPhotoCount int       `json:"verified_photo_count"`
	Languages          []string  `json:"languages"`
	HourlyRate         float64   `json:"hourly_rate"`
	ServiceTypes       []string  `json:"service_types"`
	IsVerifiedOwner    bool      `json:"is_verified_owner"`
}
