package services

import (
	"strings"
	"time"

	"github.com/smoldovan/lunchroom/internal/models"
)

type TransferStore interface {
	FindByID(transferID uint) (models.MealTransfer, bool, error)
	ListOfferedByWeek(week time.Time) ([]models.MealTransfer, error)
	Create(transfer *models.MealTransfer) error
	MarkClaimed(transferID uint, toUserID uint, claimedAt time.Time) error
	CreateMenuCopy(menuCopy *models.MenuCopy) error
	MenuCopyExists(userID uint, week time.Time, day string) (bool, error)
}

// TransferService covers the two social moves: releasing a day's meal for a
// colleague to claim, and copying a colleague's day selection. Both sides of
// a transfer obey the same lock checks as a direct edit.
type TransferService struct {
	transfers  TransferStore
	selections SelectionStore
	locks      *LockService
}

func NewTransferService(transfers TransferStore, selections SelectionStore, locks *LockService) *TransferService {
	return &TransferService{
		transfers:  transfers,
		selections: selections,
		locks:      locks,
	}
}

// Offer releases the giver's day cell as a claimable transfer. The cell must
// hold something; releasing an empty day is meaningless.
func (service *TransferService) Offer(userID uint, week time.Time, day string, today time.Time) (models.MealTransfer, error) {
	if !models.IsWeekday(day) {
		return models.MealTransfer{}, NewValidationError("unknown day %q", day)
	}
	if err := service.locks.EnsureWritable(userID, week, today); err != nil {
		return models.MealTransfer{}, err
	}

	selection, found, err := service.selections.FindByUserAndWeek(userID, week)
	if err != nil {
		return models.MealTransfer{}, err
	}
	if !found || strings.TrimSpace(selection.Day(day)) == "" {
		return models.MealTransfer{}, ErrNotFound
	}

	transfer := models.MealTransfer{
		FromUserID: userID,
		Week:       week,
		Day:        day,
		MealText:   selection.Day(day),
		Status:     models.TransferOffered,
	}
	if err := service.transfers.Create(&transfer); err != nil {
		return models.MealTransfer{}, translateStoreError(err)
	}
	return transfer, nil
}

// Claim moves an offered meal to the taker: fills the taker's day cell,
// clears the giver's, and resolves the transfer.
func (service *TransferService) Claim(transferID uint, takerID uint, today time.Time) (models.MealTransfer, error) {
	transfer, found, err := service.transfers.FindByID(transferID)
	if err != nil {
		return models.MealTransfer{}, err
	}
	if !found {
		return models.MealTransfer{}, ErrNotFound
	}
	if transfer.Status != models.TransferOffered {
		return models.MealTransfer{}, NewConflictError("transfer already %s", transfer.Status)
	}
	if transfer.FromUserID == takerID {
		return models.MealTransfer{}, NewValidationError("cannot claim your own transfer")
	}

	if err := service.locks.EnsureWritable(takerID, transfer.Week, today); err != nil {
		return models.MealTransfer{}, err
	}

	if err := service.setSelectionDay(takerID, transfer.Week, transfer.Day, transfer.MealText); err != nil {
		return models.MealTransfer{}, err
	}
	if err := service.setSelectionDay(transfer.FromUserID, transfer.Week, transfer.Day, ""); err != nil {
		return models.MealTransfer{}, err
	}

	if err := service.transfers.MarkClaimed(transfer.ID, takerID, today); err != nil {
		return models.MealTransfer{}, err
	}
	transfer.Status = models.TransferClaimed
	transfer.ToUserID = &takerID
	transfer.ClaimedAt = &today
	return transfer, nil
}

func (service *TransferService) ListOffered(week time.Time) ([]models.MealTransfer, error) {
	return service.transfers.ListOfferedByWeek(week)
}

// CopyDay duplicates a colleague's day cell into the caller's selection,
// leaving the source untouched. One copy per (user, week, day).
func (service *TransferService) CopyDay(userID uint, fromUserID uint, week time.Time, day string, today time.Time) (models.MealSelection, error) {
	if !models.IsWeekday(day) {
		return models.MealSelection{}, NewValidationError("unknown day %q", day)
	}
	if userID == fromUserID {
		return models.MealSelection{}, NewValidationError("cannot copy from yourself")
	}
	if err := service.locks.EnsureWritable(userID, week, today); err != nil {
		return models.MealSelection{}, err
	}

	source, found, err := service.selections.FindByUserAndWeek(fromUserID, week)
	if err != nil {
		return models.MealSelection{}, err
	}
	if !found || strings.TrimSpace(source.Day(day)) == "" {
		return models.MealSelection{}, ErrNotFound
	}

	copied, err := service.transfers.MenuCopyExists(userID, week, day)
	if err != nil {
		return models.MealSelection{}, err
	}
	if copied {
		return models.MealSelection{}, NewConflictError("day %s already copied for this week", day)
	}

	if err := service.setSelectionDay(userID, week, day, source.Day(day)); err != nil {
		return models.MealSelection{}, err
	}
	if err := service.transfers.CreateMenuCopy(&models.MenuCopy{
		UserID:     userID,
		Week:       week,
		Day:        day,
		FromUserID: fromUserID,
	}); err != nil {
		return models.MealSelection{}, translateStoreError(err)
	}

	selection, _, err := service.selections.FindByUserAndWeek(userID, week)
	if err != nil {
		return models.MealSelection{}, err
	}
	return selection, nil
}

func (service *TransferService) setSelectionDay(userID uint, week time.Time, day string, value string) error {
	selection, found, err := service.selections.FindByUserAndWeek(userID, week)
	if err != nil {
		return err
	}
	if !found {
		selection = models.MealSelection{UserID: userID, Week: week}
	}
	selection.SetDay(day, value)
	if !found {
		return translateStoreError(service.selections.Create(&selection))
	}
	return service.selections.Save(&selection)
}
