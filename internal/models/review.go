package models

import "time"

const (
	ReviewMinRating = 1
	ReviewMaxRating = 5
	ReviewMaxWords  = 500
)

// MealReview rates one meal on one day of one week. Unique per
// (user, meal, week, day); a second write for the same tuple replaces the
// first.
type MealReview struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_review_tuple"`
	MealName  string    `gorm:"not null;uniqueIndex:uidx_review_tuple"`
	Week      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_review_tuple"`
	Day       string    `gorm:"not null;uniqueIndex:uidx_review_tuple"`
	Rating    int       `gorm:"not null"`
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
