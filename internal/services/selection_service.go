package services

import (
	"strings"
	"time"

	"github.com/smoldovan/lunchroom/internal/models"
)

type SelectionStore interface {
	FindByUserAndWeek(userID uint, week time.Time) (models.MealSelection, bool, error)
	ListByUser(userID uint) ([]models.MealSelection, error)
	Create(selection *models.MealSelection) error
	Save(selection *models.MealSelection) error
}

// SelectionService handles an employee's own weekly choices. Every write
// passes the lock service first; the two lock layers are its contract, not
// this service's.
type SelectionService struct {
	selections SelectionStore
	locks      *LockService
}

func NewSelectionService(selections SelectionStore, locks *LockService) *SelectionService {
	return &SelectionService{
		selections: selections,
		locks:      locks,
	}
}

func (service *SelectionService) Get(userID uint, week time.Time) (models.MealSelection, error) {
	selection, found, err := service.selections.FindByUserAndWeek(userID, week)
	if err != nil {
		return models.MealSelection{}, err
	}
	if !found {
		return models.MealSelection{}, ErrNotFound
	}
	return selection, nil
}

func (service *SelectionService) ListForUser(userID uint) ([]models.MealSelection, error) {
	return service.selections.ListByUser(userID)
}

// Upsert creates or replaces the user's day cells for a week. Unknown day
// keys are rejected; missing days are left untouched on update and empty on
// create.
func (service *SelectionService) Upsert(userID uint, week time.Time, days map[string]string, today time.Time) (models.MealSelection, error) {
	for day := range days {
		if !models.IsWeekday(day) {
			return models.MealSelection{}, NewValidationError("unknown day %q", day)
		}
	}

	if err := service.locks.EnsureWritable(userID, week, today); err != nil {
		return models.MealSelection{}, err
	}

	selection, found, err := service.selections.FindByUserAndWeek(userID, week)
	if err != nil {
		return models.MealSelection{}, err
	}
	if !found {
		selection = models.MealSelection{UserID: userID, Week: week}
	}
	for day, value := range days {
		selection.SetDay(day, strings.TrimSpace(value))
	}

	if !found {
		if err := service.selections.Create(&selection); err != nil {
			return models.MealSelection{}, translateStoreError(err)
		}
		return selection, nil
	}
	if err := service.selections.Save(&selection); err != nil {
		return models.MealSelection{}, err
	}
	return selection, nil
}
