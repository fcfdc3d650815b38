package models

import "time"

// Invitation is a pending account creation. The token travels by email and is
// consumed exactly once; expired or used tokens are refused.
type Invitation struct {
	ID        uint      `gorm:"primaryKey"`
	Email     string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	IsAdmin   bool      `gorm:"not null;default:false"`
	InvitedBy uint      `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null"`
	UsedAt    *time.Time
	CreatedAt time.Time
}
