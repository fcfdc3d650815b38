package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/smoldovan/lunchroom/internal/models"
	"golang.org/x/crypto/bcrypt"
)

const invitationLifetime = 7 * 24 * time.Hour

type InvitationStore interface {
	FindByToken(token string) (models.Invitation, bool, error)
	ListOpen(now time.Time) ([]models.Invitation, error)
	Create(invitation *models.Invitation) error
	MarkUsed(invitationID uint, usedAt time.Time) error
}

type InvitationUserStore interface {
	FindByNormalizedEmail(email string) (models.User, bool, error)
	FindInactiveByEmployeeName(employeeName string) (models.User, bool, error)
	Create(user *models.User) error
	ActivateWithCredentials(userID uint, email string, passwordHash string, isAdmin bool) error
}

// InvitationService issues single-use tokens that travel by email and turn
// into accounts on acceptance. Accepting an invitation claims a matching
// placeholder user so imported history follows the real account.
type InvitationService struct {
	invitations InvitationStore
	users       InvitationUserStore
	mailer      Mailer
	baseURL     string
}

func NewInvitationService(invitations InvitationStore, users InvitationUserStore, mailer Mailer, baseURL string) *InvitationService {
	return &InvitationService{
		invitations: invitations,
		users:       users,
		mailer:      mailer,
		baseURL:     strings.TrimRight(baseURL, "/"),
	}
}

// Issue creates an invitation for the address and mails the token. A failed
// send is logged but does not void the invitation; the token is returned so
// an admin can relay it by hand.
func (service *InvitationService) Issue(email string, isAdmin bool, invitedBy uint, now time.Time) (models.Invitation, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return models.Invitation{}, NewValidationError("a valid email address is required")
	}

	if _, found, err := service.users.FindByNormalizedEmail(email); err != nil {
		return models.Invitation{}, err
	} else if found {
		return models.Invitation{}, NewConflictError("an account for %s already exists", email)
	}

	invitation := models.Invitation{
		Email:     email,
		Token:     uuid.NewString(),
		IsAdmin:   isAdmin,
		InvitedBy: invitedBy,
		ExpiresAt: now.Add(invitationLifetime),
	}
	if err := service.invitations.Create(&invitation); err != nil {
		return models.Invitation{}, translateStoreError(err)
	}

	if service.mailer.Configured() {
		link := fmt.Sprintf("%s/invitations/%s", service.baseURL, invitation.Token)
		body := fmt.Sprintf("You have been invited to the office lunch ordering system.\n\nOpen %s to create your account. The invitation expires on %s.",
			link, invitation.ExpiresAt.Format("January 2, 2006"))
		if err := service.mailer.Send(email, "Lunchroom invitation", "", body); err != nil {
			log.Printf("invitations: send to %s failed: %v", email, err)
		}
	}
	return invitation, nil
}

func (service *InvitationService) ListOpen(now time.Time) ([]models.Invitation, error) {
	return service.invitations.ListOpen(now)
}

// Accept consumes the token and creates (or claims) the account. Unknown
// tokens are NotFound; used or expired ones are Forbidden.
func (service *InvitationService) Accept(token string, name string, password string, now time.Time) (models.User, error) {
	invitation, found, err := service.invitations.FindByToken(token)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, ErrNotFound
	}
	if invitation.UsedAt != nil {
		return models.User{}, ErrForbidden
	}
	if now.After(invitation.ExpiresAt) {
		return models.User{}, ErrForbidden
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return models.User{}, NewValidationError("name is required")
	}
	if len(password) < 8 {
		return models.User{}, NewValidationError("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user, err := createOrClaimUser(service.users, invitation.Email, name, string(hash), invitation.IsAdmin)
	if err != nil {
		return models.User{}, err
	}

	if err := service.invitations.MarkUsed(invitation.ID, now); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// createOrClaimUser activates a placeholder row holding the employee's
// imported meals when one matches by name, otherwise inserts a fresh user.
func createOrClaimUser(users InvitationUserStore, email string, name string, passwordHash string, isAdmin bool) (models.User, error) {
	placeholder, found, err := users.FindInactiveByEmployeeName(NormalizeName(name))
	if err != nil {
		return models.User{}, err
	}
	if found {
		if err := users.ActivateWithCredentials(placeholder.ID, email, passwordHash, isAdmin); err != nil {
			return models.User{}, translateStoreError(err)
		}
		placeholder.Email = email
		placeholder.PasswordHash = passwordHash
		placeholder.IsAdmin = isAdmin
		placeholder.IsActive = true
		return placeholder, nil
	}

	user := models.User{
		Email:        email,
		PasswordHash: passwordHash,
		EmployeeName: name,
		IsAdmin:      isAdmin,
		IsActive:     true,
	}
	if err := users.Create(&user); err != nil {
		return models.User{}, translateStoreError(err)
	}
	return user, nil
}
