package models

import "time"

const (
	UploadTypeOptions    = "options"
	UploadTypeSelections = "selections"
)

// UploadHistory remembers every accepted spreadsheet so repeated or
// overlapping uploads can be rejected before touching meal data.
type UploadHistory struct {
	ID          uint      `gorm:"primaryKey"`
	PublicID    string    `gorm:"not null;uniqueIndex"`
	FileName    string    `gorm:"not null"`
	ContentHash string    `gorm:"not null;uniqueIndex"`
	UploadType  string    `gorm:"not null"`
	PeriodStart int       `gorm:"not null"`
	PeriodEnd   int       `gorm:"not null"`
	Week        time.Time `gorm:"type:date;not null"`
	CreatedAt   time.Time
}
