package services

import (
	"time"

	"github.com/smoldovan/lunchroom/internal/models"
	"github.com/smoldovan/lunchroom/internal/weekdate"
)

type LockSelectionStore interface {
	FindByUserAndWeek(userID uint, week time.Time) (models.MealSelection, bool, error)
	SetLocked(selectionID uint, locked bool) error
}

type LockWeekSettingsStore interface {
	FindByWeek(week time.Time) (models.WeekSettings, bool, error)
	Create(settings *models.WeekSettings) error
	Save(settings *models.WeekSettings) error
}

type LockWeekUnlockStore interface {
	Exists(week time.Time, userID uint) (bool, error)
	ListUserIDs(week time.Time) ([]uint, error)
	Create(unlock *models.WeekUnlock) error
	Delete(week time.Time, userID uint) error
	DeleteAllForWeek(week time.Time) error
}

type LockUnlockRequestStore interface {
	FindByID(requestID uint) (models.UnlockRequest, bool, error)
	FindPending(userID uint, week time.Time) (models.UnlockRequest, bool, error)
	ListPending() ([]models.UnlockRequest, error)
	Create(request *models.UnlockRequest) error
	Resolve(requestID uint, status string, resolvedBy uint, resolvedAt time.Time) error
}

// LockService owns both lock layers that gate selection writes: the admin
// week lock (WeekSettings plus a per-user exemption list) and the
// user-initiated self-lock on the selection row, released through an
// approval workflow.
type LockService struct {
	selections LockSelectionStore
	settings   LockWeekSettingsStore
	unlocks    LockWeekUnlockStore
	requests   LockUnlockRequestStore
}

func NewLockService(selections LockSelectionStore, settings LockWeekSettingsStore, unlocks LockWeekUnlockStore, requests LockUnlockRequestStore) *LockService {
	return &LockService{
		selections: selections,
		settings:   settings,
		unlocks:    unlocks,
		requests:   requests,
	}
}

// IsWeekLockedForUser evaluates the admin lock layer only. Weeks that have
// not started yet are never locked, whatever their settings say; otherwise
// the week is locked unless the user holds an exemption.
func (service *LockService) IsWeekLockedForUser(week time.Time, userID uint, today time.Time) (bool, error) {
	if weekdate.IsFutureWeek(week, today) {
		return false, nil
	}

	settings, found, err := service.settings.FindByWeek(week)
	if err != nil {
		return false, err
	}
	if !found || !settings.IsLocked {
		return false, nil
	}

	exempt, err := service.unlocks.Exists(week, userID)
	if err != nil {
		return false, err
	}
	return !exempt, nil
}

// EnsureWritable runs both lock checks in their fixed order, admin lock
// first, then self-lock. Either layer failing blocks the write.
func (service *LockService) EnsureWritable(userID uint, week time.Time, today time.Time) error {
	adminLocked, err := service.IsWeekLockedForUser(week, userID, today)
	if err != nil {
		return err
	}
	if adminLocked {
		return ErrForbidden
	}

	selection, found, err := service.selections.FindByUserAndWeek(userID, week)
	if err != nil {
		return err
	}
	if found && selection.IsLocked {
		return ErrForbidden
	}
	return nil
}

// LockSelection moves (user, week) into the self-locked state. There must be
// something to lock: no selection means NotFound.
func (service *LockService) LockSelection(userID uint, week time.Time) (models.MealSelection, error) {
	selection, found, err := service.selections.FindByUserAndWeek(userID, week)
	if err != nil {
		return models.MealSelection{}, err
	}
	if !found {
		return models.MealSelection{}, ErrNotFound
	}
	if selection.IsLocked {
		return selection, nil
	}

	if err := service.selections.SetLocked(selection.ID, true); err != nil {
		return models.MealSelection{}, err
	}
	selection.IsLocked = true
	return selection, nil
}

// CreateUnlockRequest opens the approval workflow for a self-locked
// selection. It refuses while the week is admin-locked for this user, so a
// self-unlock cannot bypass admin authority, and it is idempotent: a second
// submission returns the pending request already on file.
func (service *LockService) CreateUnlockRequest(userID uint, week time.Time, reason string, today time.Time) (models.UnlockRequest, error) {
	adminLocked, err := service.IsWeekLockedForUser(week, userID, today)
	if err != nil {
		return models.UnlockRequest{}, err
	}
	if adminLocked {
		return models.UnlockRequest{}, ErrForbidden
	}

	selection, found, err := service.selections.FindByUserAndWeek(userID, week)
	if err != nil {
		return models.UnlockRequest{}, err
	}
	if !found {
		return models.UnlockRequest{}, ErrNotFound
	}
	if !selection.IsLocked {
		return models.UnlockRequest{}, NewValidationError("selection is not locked")
	}

	if existing, pending, err := service.requests.FindPending(userID, week); err != nil {
		return models.UnlockRequest{}, err
	} else if pending {
		return existing, nil
	}

	request := models.UnlockRequest{
		UserID: userID,
		Week:   week,
		Reason: reason,
		Status: models.UnlockRequestPending,
	}
	if err := service.requests.Create(&request); err != nil {
		// A concurrent submission can win the race on the pending
		// uniqueness constraint; fall back to returning its row.
		if isDuplicateKey(err) {
			existing, pending, findErr := service.requests.FindPending(userID, week)
			if findErr != nil {
				return models.UnlockRequest{}, findErr
			}
			if pending {
				return existing, nil
			}
		}
		return models.UnlockRequest{}, err
	}
	return request, nil
}

// ApproveUnlockRequest clears the self-lock. When the week is admin-locked it
// also grants the user a standing exemption, so the current lock (and future
// toggles that forget them) no longer trap them.
func (service *LockService) ApproveUnlockRequest(requestID uint, adminID uint, now time.Time) (models.UnlockRequest, error) {
	request, found, err := service.requests.FindByID(requestID)
	if err != nil {
		return models.UnlockRequest{}, err
	}
	if !found {
		return models.UnlockRequest{}, ErrNotFound
	}
	if request.Status != models.UnlockRequestPending {
		return models.UnlockRequest{}, NewConflictError("unlock request already %s", request.Status)
	}

	selection, found, err := service.selections.FindByUserAndWeek(request.UserID, request.Week)
	if err != nil {
		return models.UnlockRequest{}, err
	}
	if found && selection.IsLocked {
		if err := service.selections.SetLocked(selection.ID, false); err != nil {
			return models.UnlockRequest{}, err
		}
	}

	settings, found, err := service.settings.FindByWeek(request.Week)
	if err != nil {
		return models.UnlockRequest{}, err
	}
	if found && settings.IsLocked {
		if err := service.grantExemption(request.Week, request.UserID); err != nil {
			return models.UnlockRequest{}, err
		}
	}

	if err := service.requests.Resolve(request.ID, models.UnlockRequestApproved, adminID, now); err != nil {
		return models.UnlockRequest{}, err
	}
	request.Status = models.UnlockRequestApproved
	request.ResolvedBy = &adminID
	request.ResolvedAt = &now
	return request, nil
}

// RejectUnlockRequest resolves the request and leaves the selection locked.
func (service *LockService) RejectUnlockRequest(requestID uint, adminID uint, now time.Time) (models.UnlockRequest, error) {
	request, found, err := service.requests.FindByID(requestID)
	if err != nil {
		return models.UnlockRequest{}, err
	}
	if !found {
		return models.UnlockRequest{}, ErrNotFound
	}
	if request.Status != models.UnlockRequestPending {
		return models.UnlockRequest{}, NewConflictError("unlock request already %s", request.Status)
	}

	if err := service.requests.Resolve(request.ID, models.UnlockRequestRejected, adminID, now); err != nil {
		return models.UnlockRequest{}, err
	}
	request.Status = models.UnlockRequestRejected
	request.ResolvedBy = &adminID
	request.ResolvedAt = &now
	return request, nil
}

// LockWeek sets the admin lock and wipes prior exemptions: a fresh lock
// starts from a clean slate.
func (service *LockService) LockWeek(week time.Time, now time.Time) error {
	settings, found, err := service.settings.FindByWeek(week)
	if err != nil {
		return err
	}

	if !found {
		settings = models.WeekSettings{Week: week}
	}
	settings.IsLocked = true
	settings.LockedAt = &now

	if !found {
		if err := service.settings.Create(&settings); err != nil {
			return translateStoreError(err)
		}
	} else if err := service.settings.Save(&settings); err != nil {
		return err
	}

	return service.unlocks.DeleteAllForWeek(week)
}

// UnlockWeek clears the admin lock; exemptions become moot and are wiped too.
func (service *LockService) UnlockWeek(week time.Time) error {
	settings, found, err := service.settings.FindByWeek(week)
	if err != nil {
		return err
	}
	if found {
		settings.IsLocked = false
		settings.LockedAt = nil
		if err := service.settings.Save(&settings); err != nil {
			return err
		}
	}
	return service.unlocks.DeleteAllForWeek(week)
}

// GrantUserUnlock exempts a user from the week's admin lock, independent of
// the request workflow.
func (service *LockService) GrantUserUnlock(week time.Time, userID uint) error {
	return service.grantExemption(week, userID)
}

func (service *LockService) RevokeUserUnlock(week time.Time, userID uint) error {
	return service.unlocks.Delete(week, userID)
}

func (service *LockService) ListPendingRequests() ([]models.UnlockRequest, error) {
	return service.requests.ListPending()
}

func (service *LockService) WeekStatus(week time.Time) (models.WeekSettings, []uint, error) {
	settings, found, err := service.settings.FindByWeek(week)
	if err != nil {
		return models.WeekSettings{}, nil, err
	}
	if !found {
		settings = models.WeekSettings{Week: week}
	}

	exemptUserIDs, err := service.unlocks.ListUserIDs(week)
	if err != nil {
		return models.WeekSettings{}, nil, err
	}
	return settings, exemptUserIDs, nil
}

func (service *LockService) grantExemption(week time.Time, userID uint) error {
	exists, err := service.unlocks.Exists(week, userID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if err := service.unlocks.Create(&models.WeekUnlock{Week: week, UserID: userID}); err != nil && !isDuplicateKey(err) {
		return err
	}
	return nil
}
