package models

import "time"

const (
	UnlockRequestPending  = "pending"
	UnlockRequestApproved = "approved"
	UnlockRequestRejected = "rejected"
)

// WeekSettings carries the admin-wide lock flag for one week.
type WeekSettings struct {
	ID        uint      `gorm:"primaryKey"`
	Week      time.Time `gorm:"type:date;not null;uniqueIndex"`
	IsLocked  bool      `gorm:"not null;default:false"`
	LockedAt  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WeekUnlock exempts one user from the admin lock of one week.
type WeekUnlock struct {
	ID        uint      `gorm:"primaryKey"`
	Week      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_week_unlock"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_week_unlock"`
	CreatedAt time.Time
}

// UnlockRequest asks an admin to release a self-locked selection. At most one
// pending request may exist per (user, week); the partial unique index lives
// in the migration SQL because GORM tags cannot express the WHERE clause.
type UnlockRequest struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"not null;index"`
	Week       time.Time `gorm:"type:date;not null;index"`
	Reason     string
	Status     string `gorm:"not null;default:pending"`
	ResolvedBy *uint
	ResolvedAt *time.Time
	CreatedAt  time.Time
}
