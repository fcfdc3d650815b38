package services

import (
	"errors"
	"testing"
	"time"

	"github.com/smoldovan/lunchroom/internal/models"
	"github.com/smoldovan/lunchroom/internal/weekdate"
)

type memorySelectionStore struct {
	selections []models.MealSelection
	nextID     uint
}

func (store *memorySelectionStore) add(selection models.MealSelection) models.MealSelection {
	store.nextID++
	selection.ID = store.nextID
	store.selections = append(store.selections, selection)
	return selection
}

func (store *memorySelectionStore) FindByUserAndWeek(userID uint, week time.Time) (models.MealSelection, bool, error) {
	for _, selection := range store.selections {
		if selection.UserID == userID && selection.Week.Equal(week) {
			return selection, true, nil
		}
	}
	return models.MealSelection{}, false, nil
}

func (store *memorySelectionStore) SetLocked(selectionID uint, locked bool) error {
	for index := range store.selections {
		if store.selections[index].ID == selectionID {
			store.selections[index].IsLocked = locked
			return nil
		}
	}
	return errors.New("selection missing")
}

type memoryWeekSettingsStore struct {
	settings []models.WeekSettings
	nextID   uint
}

func (store *memoryWeekSettingsStore) FindByWeek(week time.Time) (models.WeekSettings, bool, error) {
	for _, settings := range store.settings {
		if settings.Week.Equal(week) {
			return settings, true, nil
		}
	}
	return models.WeekSettings{}, false, nil
}

func (store *memoryWeekSettingsStore) Create(settings *models.WeekSettings) error {
	store.nextID++
	settings.ID = store.nextID
	store.settings = append(store.settings, *settings)
	return nil
}

func (store *memoryWeekSettingsStore) Save(settings *models.WeekSettings) error {
	for index := range store.settings {
		if store.settings[index].ID == settings.ID {
			store.settings[index] = *settings
			return nil
		}
	}
	return errors.New("settings missing")
}

type memoryWeekUnlockStore struct {
	unlocks []models.WeekUnlock
	nextID  uint
}

func (store *memoryWeekUnlockStore) Exists(week time.Time, userID uint) (bool, error) {
	for _, unlock := range store.unlocks {
		if unlock.Week.Equal(week) && unlock.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (store *memoryWeekUnlockStore) ListUserIDs(week time.Time) ([]uint, error) {
	userIDs := make([]uint, 0)
	for _, unlock := range store.unlocks {
		if unlock.Week.Equal(week) {
			userIDs = append(userIDs, unlock.UserID)
		}
	}
	return userIDs, nil
}

func (store *memoryWeekUnlockStore) Create(unlock *models.WeekUnlock) error {
	for _, existing := range store.unlocks {
		if existing.Week.Equal(unlock.Week) && existing.UserID == unlock.UserID {
			return errors.New("UNIQUE constraint failed: week_unlocks")
		}
	}
	store.nextID++
	unlock.ID = store.nextID
	store.unlocks = append(store.unlocks, *unlock)
	return nil
}

func (store *memoryWeekUnlockStore) Delete(week time.Time, userID uint) error {
	kept := store.unlocks[:0]
	for _, unlock := range store.unlocks {
		if !(unlock.Week.Equal(week) && unlock.UserID == userID) {
			kept = append(kept, unlock)
		}
	}
	store.unlocks = kept
	return nil
}

func (store *memoryWeekUnlockStore) DeleteAllForWeek(week time.Time) error {
	kept := store.unlocks[:0]
	for _, unlock := range store.unlocks {
		if !unlock.Week.Equal(week) {
			kept = append(kept, unlock)
		}
	}
	store.unlocks = kept
	return nil
}

type memoryUnlockRequestStore struct {
	requests []models.UnlockRequest
	nextID   uint

	// duplicateOnNextCreate simulates losing the pending-uniqueness race
	// to a concurrent writer.
	duplicateOnNextCreate *models.UnlockRequest
}

func (store *memoryUnlockRequestStore) FindByID(requestID uint) (models.UnlockRequest, bool, error) {
	for _, request := range store.requests {
		if request.ID == requestID {
			return request, true, nil
		}
	}
	return models.UnlockRequest{}, false, nil
}

func (store *memoryUnlockRequestStore) FindPending(userID uint, week time.Time) (models.UnlockRequest, bool, error) {
	for _, request := range store.requests {
		if request.UserID == userID && request.Week.Equal(week) && request.Status == models.UnlockRequestPending {
			return request, true, nil
		}
	}
	return models.UnlockRequest{}, false, nil
}

func (store *memoryUnlockRequestStore) ListPending() ([]models.UnlockRequest, error) {
	pending := make([]models.UnlockRequest, 0)
	for _, request := range store.requests {
		if request.Status == models.UnlockRequestPending {
			pending = append(pending, request)
		}
	}
	return pending, nil
}

func (store *memoryUnlockRequestStore) Create(request *models.UnlockRequest) error {
	if store.duplicateOnNextCreate != nil {
		winner := *store.duplicateOnNextCreate
		store.duplicateOnNextCreate = nil
		store.nextID++
		winner.ID = store.nextID
		store.requests = append(store.requests, winner)
		return errors.New("UNIQUE constraint failed: unlock_requests")
	}
	for _, existing := range store.requests {
		if existing.UserID == request.UserID && existing.Week.Equal(request.Week) && existing.Status == models.UnlockRequestPending {
			return errors.New("UNIQUE constraint failed: unlock_requests")
		}
	}
	store.nextID++
	request.ID = store.nextID
	store.requests = append(store.requests, *request)
	return nil
}

func (store *memoryUnlockRequestStore) Resolve(requestID uint, status string, resolvedBy uint, resolvedAt time.Time) error {
	for index := range store.requests {
		if store.requests[index].ID == requestID {
			store.requests[index].Status = status
			store.requests[index].ResolvedBy = &resolvedBy
			store.requests[index].ResolvedAt = &resolvedAt
			return nil
		}
	}
	return errors.New("request missing")
}

type lockServiceFixture struct {
	service    *LockService
	selections *memorySelectionStore
	settings   *memoryWeekSettingsStore
	unlocks    *memoryWeekUnlockStore
	requests   *memoryUnlockRequestStore
}

func newLockServiceFixture() *lockServiceFixture {
	selections := &memorySelectionStore{}
	settings := &memoryWeekSettingsStore{}
	unlocks := &memoryWeekUnlockStore{}
	requests := &memoryUnlockRequestStore{}
	return &lockServiceFixture{
		service:    NewLockService(selections, settings, unlocks, requests),
		selections: selections,
		settings:   settings,
		unlocks:    unlocks,
		requests:   requests,
	}
}

func mustWeek(t *testing.T, value string) time.Time {
	t.Helper()
	week, err := weekdate.ParseWeekKey(value)
	if err != nil {
		t.Fatalf("parse week %q: %v", value, err)
	}
	return week
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(weekdate.WeekKeyLayout, value)
	if err != nil {
		t.Fatalf("parse date %q: %v", value, err)
	}
	return parsed
}
