package models

import "time"

// PlaceholderEmailDomain marks accounts fabricated during spreadsheet import
// for employees who have not registered yet.
const PlaceholderEmailDomain = "placeholder.com"

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string
	IsAdmin      bool   `gorm:"not null;default:false"`
	EmployeeName string `gorm:"index"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
}
