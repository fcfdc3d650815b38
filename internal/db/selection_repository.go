package db

import (
	"time"

	"github.com/smoldovan/lunchroom/internal/models"
	"gorm.io/gorm"
)

type SelectionRepository struct {
	database *gorm.DB
}

func NewSelectionRepository(database *gorm.DB) *SelectionRepository {
	return &SelectionRepository{database: database}
}

func (repo *SelectionRepository) FindByUserAndWeek(userID uint, week time.Time) (models.MealSelection, bool, error) {
	var selection models.MealSelection
	result := repo.database.Where("user_id = ? AND week = ?", userID, week).Limit(1).Find(&selection)
	if result.Error != nil {
		return models.MealSelection{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.MealSelection{}, false, nil
	}
	return selection, true, nil
}

func (repo *SelectionRepository) ListByWeek(week time.Time) ([]models.MealSelection, error) {
	selections := make([]models.MealSelection, 0)
	if err := repo.database.Where("week = ?", week).Order("user_id ASC").Find(&selections).Error; err != nil {
		return nil, err
	}
	return selections, nil
}

func (repo *SelectionRepository) ListByUser(userID uint) ([]models.MealSelection, error) {
	selections := make([]models.MealSelection, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("week DESC").Find(&selections).Error; err != nil {
		return nil, err
	}
	return selections, nil
}

func (repo *SelectionRepository) Create(selection *models.MealSelection) error {
	return repo.database.Create(selection).Error
}

func (repo *SelectionRepository) Save(selection *models.MealSelection) error {
	return repo.database.Save(selection).Error
}

func (repo *SelectionRepository) SetLocked(selectionID uint, locked bool) error {
	return repo.database.Model(&models.MealSelection{}).Where("id = ?", selectionID).Update("is_locked", locked).Error
}
