package cli

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/smoldovan/lunchroom/internal/db"
	"github.com/smoldovan/lunchroom/internal/models"
	"github.com/smoldovan/lunchroom/internal/security"
	"github.com/smoldovan/lunchroom/internal/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunInviteAdminCommand creates the first admin account directly in the
// database, printing a temporary password. Existing accounts are promoted
// instead of recreated.
func RunInviteAdminCommand(dbPath string, email string) error {
	normalizedEmail := strings.ToLower(strings.TrimSpace(email))
	if normalizedEmail == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(normalizedEmail); err != nil {
		return fmt.Errorf("invalid email address: %w", err)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	var user models.User
	err = database.Where("lower(trim(email)) = ?", normalizedEmail).First(&user).Error
	switch {
	case err == nil:
		if user.IsAdmin {
			fmt.Printf("%s is already an admin\n", normalizedEmail)
			return nil
		}
		user.IsAdmin = true
		if err := database.Save(&user).Error; err != nil {
			return fmt.Errorf("promote user: %w", err)
		}
		fmt.Printf("✅ %s promoted to admin\n", normalizedEmail)
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		// fall through to creation
	default:
		return fmt.Errorf("load user: %w", err)
	}

	temporaryPassword, err := generateTemporaryPassword(12)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(temporaryPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash temporary password: %w", err)
	}

	user = models.User{
		Email:        normalizedEmail,
		PasswordHash: string(passwordHash),
		EmployeeName: services.NameFromEmail(normalizedEmail),
		IsAdmin:      true,
		IsActive:     true,
	}
	if err := database.Create(&user).Error; err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	fmt.Println("✅ Admin account created")
	fmt.Printf("Email: %s\n", normalizedEmail)
	fmt.Printf("Temporary password: %s\n", temporaryPassword)
	fmt.Println("Change this password after the first login.")

	return nil
}

func generateTemporaryPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	return security.RandomString(length, alphabet)
}
