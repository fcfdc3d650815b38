package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/smoldovan/lunchroom/internal/models"
)

// The CRUD-side methods memorySelectionStore needs beyond the lock tests.

func (store *memorySelectionStore) ListByUser(userID uint) ([]models.MealSelection, error) {
	selections := make([]models.MealSelection, 0)
	for _, selection := range store.selections {
		if selection.UserID == userID {
			selections = append(selections, selection)
		}
	}
	return selections, nil
}

func (store *memorySelectionStore) Create(selection *models.MealSelection) error {
	for _, existing := range store.selections {
		if existing.UserID == selection.UserID && existing.Week.Equal(selection.Week) {
			return errors.New("UNIQUE constraint failed: meal_selections")
		}
	}
	store.nextID++
	selection.ID = store.nextID
	store.selections = append(store.selections, *selection)
	return nil
}

func (store *memorySelectionStore) Save(selection *models.MealSelection) error {
	for index := range store.selections {
		if store.selections[index].ID == selection.ID {
			store.selections[index] = *selection
			return nil
		}
	}
	return errors.New("selection missing")
}

type memoryTransferStore struct {
	transfers []models.MealTransfer
	copies    []models.MenuCopy
	nextID    uint
}

func (store *memoryTransferStore) FindByID(transferID uint) (models.MealTransfer, bool, error) {
	for _, transfer := range store.transfers {
		if transfer.ID == transferID {
			return transfer, true, nil
		}
	}
	return models.MealTransfer{}, false, nil
}

func (store *memoryTransferStore) ListOfferedByWeek(week time.Time) ([]models.MealTransfer, error) {
	offered := make([]models.MealTransfer, 0)
	for _, transfer := range store.transfers {
		if transfer.Week.Equal(week) && transfer.Status == models.TransferOffered {
			offered = append(offered, transfer)
		}
	}
	return offered, nil
}

func (store *memoryTransferStore) Create(transfer *models.MealTransfer) error {
	for _, existing := range store.transfers {
		if existing.FromUserID == transfer.FromUserID && existing.Week.Equal(transfer.Week) && existing.Day == transfer.Day {
			return errors.New("UNIQUE constraint failed: meal_transfers")
		}
	}
	store.nextID++
	transfer.ID = store.nextID
	store.transfers = append(store.transfers, *transfer)
	return nil
}

func (store *memoryTransferStore) MarkClaimed(transferID uint, toUserID uint, claimedAt time.Time) error {
	for index := range store.transfers {
		if store.transfers[index].ID == transferID {
			store.transfers[index].Status = models.TransferClaimed
			store.transfers[index].ToUserID = &toUserID
			store.transfers[index].ClaimedAt = &claimedAt
			return nil
		}
	}
	return errors.New("transfer missing")
}

func (store *memoryTransferStore) CreateMenuCopy(menuCopy *models.MenuCopy) error {
	store.nextID++
	menuCopy.ID = store.nextID
	store.copies = append(store.copies, *menuCopy)
	return nil
}

func (store *memoryTransferStore) MenuCopyExists(userID uint, week time.Time, day string) (bool, error) {
	for _, menuCopy := range store.copies {
		if menuCopy.UserID == userID && menuCopy.Week.Equal(week) && menuCopy.Day == day {
			return true, nil
		}
	}
	return false, nil
}

type memoryInvitationStore struct {
	invitations []models.Invitation
	nextID      uint
}

func (store *memoryInvitationStore) FindByToken(token string) (models.Invitation, bool, error) {
	for _, invitation := range store.invitations {
		if invitation.Token == token {
			return invitation, true, nil
		}
	}
	return models.Invitation{}, false, nil
}

func (store *memoryInvitationStore) ListOpen(now time.Time) ([]models.Invitation, error) {
	open := make([]models.Invitation, 0)
	for _, invitation := range store.invitations {
		if invitation.UsedAt == nil && invitation.ExpiresAt.After(now) {
			open = append(open, invitation)
		}
	}
	return open, nil
}

func (store *memoryInvitationStore) Create(invitation *models.Invitation) error {
	store.nextID++
	invitation.ID = store.nextID
	store.invitations = append(store.invitations, *invitation)
	return nil
}

func (store *memoryInvitationStore) MarkUsed(invitationID uint, usedAt time.Time) error {
	for index := range store.invitations {
		if store.invitations[index].ID == invitationID {
			store.invitations[index].UsedAt = &usedAt
			return nil
		}
	}
	return errors.New("invitation missing")
}

// recordingMailer captures sends instead of dialing SMTP; failFor addresses
// answer with an ExternalServiceError.
type recordingMailer struct {
	configured bool
	failFor    map[string]bool
	sent       []sentMail
}

type sentMail struct {
	to      string
	subject string
	body    string
}

func (mailer *recordingMailer) Configured() bool {
	return mailer.configured
}

func (mailer *recordingMailer) Send(to string, subject string, htmlBody string, textBody string) error {
	if mailer.failFor[to] {
		return &ExternalServiceError{Service: "email", Err: fmt.Errorf("refused for %s", to)}
	}
	mailer.sent = append(mailer.sent, sentMail{to: to, subject: subject, body: textBody})
	return nil
}

type memoryReviewStore struct {
	reviews []models.MealReview
	nextID  uint
}

func (store *memoryReviewStore) FindByTuple(userID uint, mealName string, week time.Time, day string) (models.MealReview, bool, error) {
	for _, review := range store.reviews {
		if review.UserID == userID && review.MealName == mealName && review.Week.Equal(week) && review.Day == day {
			return review, true, nil
		}
	}
	return models.MealReview{}, false, nil
}

func (store *memoryReviewStore) ListByWeek(week time.Time) ([]models.MealReview, error) {
	matched := make([]models.MealReview, 0)
	for _, review := range store.reviews {
		if review.Week.Equal(week) {
			matched = append(matched, review)
		}
	}
	return matched, nil
}

func (store *memoryReviewStore) ListByMeal(mealName string) ([]models.MealReview, error) {
	matched := make([]models.MealReview, 0)
	for _, review := range store.reviews {
		if review.MealName == mealName {
			matched = append(matched, review)
		}
	}
	return matched, nil
}

func (store *memoryReviewStore) Create(review *models.MealReview) error {
	for _, existing := range store.reviews {
		if existing.UserID == review.UserID && existing.MealName == review.MealName &&
			existing.Week.Equal(review.Week) && existing.Day == review.Day {
			return errors.New("UNIQUE constraint failed: meal_reviews")
		}
	}
	store.nextID++
	review.ID = store.nextID
	store.reviews = append(store.reviews, *review)
	return nil
}

func (store *memoryReviewStore) Save(review *models.MealReview) error {
	for index := range store.reviews {
		if store.reviews[index].ID == review.ID {
			store.reviews[index] = *review
			return nil
		}
	}
	return errors.New("review missing")
}

// memoryAccountStore backs the auth and invitation services.
type memoryAccountStore struct {
	users  []models.User
	nextID uint
}

func (store *memoryAccountStore) add(user models.User) models.User {
	store.nextID++
	user.ID = store.nextID
	store.users = append(store.users, user)
	return user
}

func (store *memoryAccountStore) FindByID(userID uint) (models.User, error) {
	for _, user := range store.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return models.User{}, errors.New("user missing")
}

func (store *memoryAccountStore) FindByNormalizedEmail(email string) (models.User, bool, error) {
	for _, user := range store.users {
		if strings.ToLower(strings.TrimSpace(user.Email)) == email {
			return user, true, nil
		}
	}
	return models.User{}, false, nil
}

func (store *memoryAccountStore) FindInactiveByEmployeeName(employeeName string) (models.User, bool, error) {
	for _, user := range store.users {
		if !user.IsActive && NormalizeName(user.EmployeeName) == employeeName {
			return user, true, nil
		}
	}
	return models.User{}, false, nil
}

func (store *memoryAccountStore) ListActive() ([]models.User, error) {
	active := make([]models.User, 0)
	for _, user := range store.users {
		if user.IsActive {
			active = append(active, user)
		}
	}
	return active, nil
}

func (store *memoryAccountStore) Create(user *models.User) error {
	for _, existing := range store.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return errors.New("UNIQUE constraint failed: users.email")
		}
	}
	store.nextID++
	user.ID = store.nextID
	store.users = append(store.users, *user)
	return nil
}

func (store *memoryAccountStore) ActivateWithCredentials(userID uint, email string, passwordHash string, isAdmin bool) error {
	for index := range store.users {
		if store.users[index].ID == userID {
			store.users[index].Email = email
			store.users[index].PasswordHash = passwordHash
			store.users[index].IsAdmin = isAdmin
			store.users[index].IsActive = true
			return nil
		}
	}
	return errors.New("user missing")
}
