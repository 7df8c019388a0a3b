package domain

import (
	"time"

	"gorm.io/datatypes"
)

// EventType labels a tracked user-companion interaction.
type EventType string

const (
	EventView             EventType = "VIEW"
	EventProfileOpen      EventType = "PROFILE_OPEN"
	EventBookmark         EventType = "BOOKMARK"
	EventUnbookmark       EventType = "UNBOOKMARK"
	EventMessageSent      EventType = "MESSAGE_SENT"
	EventBookingStarted   EventType = "BOOKING_STARTED"
	EventBookingCompleted EventType = "BOOKING_COMPLETED"
	EventBookingCancelled EventType = "BOOKING_CANCELLED"
)

// Interaction is an immutable event row. CompanionUserID is the companion's
// owner-user id, not the profile id.
type Interaction struct {
	ID              uint              `gorm:"primaryKey" json:"id"`
	UserID          UserID            `gorm:"column:user_id;not null;index" json:"user_id"`
	CompanionUserID UserID            `gorm:"column:companion_user_id;not null;index" json:"companion_user_id"`
	EventType       EventType         `gorm:"column:event_type;not null" json:"event_type"`
	EventValue      float64           `gorm:"column:event_value;not null" json:"event_value"`
	DwellTimeMs     *int              `gorm:"column:dwell_time_ms" json:"dwell_time_ms,omitempty"`
	SessionID       string            `gorm:"column:session_id" json:"session_id,omitempty"`
	Context         datatypes.JSONMap `gorm:"column:context;type:jsonb" json:"context,omitempty"`
	CreatedAt       time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// InteractionGroup is the aggregate used for behavioral affinity:
// per (companion owner, event type) counts for one user.
type InteractionGroup struct {
	CompanionUserID UserID    `json:"companion_user_id"`
	EventType       EventType `json:"event_type"`
	Count           int64     `json:"count"`
}

// InteractionInput is what clients submit when tracking an interaction.
// CompanionRef may be either a profile id or the companion's owner-user id;
// the service resolves it before persisting.
type InteractionInput struct {
	CompanionRef uint
	EventType    EventType
	DwellTimeMs  *int
	SessionID    string
	Context      map[string]any
}
