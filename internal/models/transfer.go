package models

import "time"

const (
	TransferOffered = "offered"
	TransferClaimed = "claimed"
)

// MealTransfer releases one day of the giver's selection so a colleague can
// claim it. Unique per (giver, week, day).
type MealTransfer struct {
	ID         uint      `gorm:"primaryKey"`
	FromUserID uint      `gorm:"not null;uniqueIndex:uidx_transfer_user_week_day"`
	Week       time.Time `gorm:"type:date;not null;uniqueIndex:uidx_transfer_user_week_day"`
	Day        string    `gorm:"not null;uniqueIndex:uidx_transfer_user_week_day"`
	MealText   string
	Status     string `gorm:"not null;default:offered"`
	ToUserID   *uint
	ClaimedAt  *time.Time
	CreatedAt  time.Time
}

// MenuCopy records that a user duplicated a colleague's day selection into
// their own. Unique per (taker, week, day).
type MenuCopy struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"not null;uniqueIndex:uidx_copy_user_week_day"`
	Week       time.Time `gorm:"type:date;not null;uniqueIndex:uidx_copy_user_week_day"`
	Day        string    `gorm:"not null;uniqueIndex:uidx_copy_user_week_day"`
	FromUserID uint      `gorm:"not null"`
	CreatedAt  time.Time
}
