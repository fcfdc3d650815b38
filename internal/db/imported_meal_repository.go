package db

import (
	"time"

	"github.com/smoldovan/lunchroom/internal/models"
	"gorm.io/gorm"
)

type ImportedMealRepository struct {
	database *gorm.DB
}

func NewImportedMealRepository(database *gorm.DB) *ImportedMealRepository {
	return &ImportedMealRepository{database: database}
}

func (repo *ImportedMealRepository) FindByNameAndWeek(employeeName string, week time.Time) (models.ImportedMeal, bool, error) {
	var imported models.ImportedMeal
	result := repo.database.Where("employee_name = ? AND week = ?", employeeName, week).Limit(1).Find(&imported)
	if result.Error != nil {
		return models.ImportedMeal{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.ImportedMeal{}, false, nil
	}
	return imported, true, nil
}

func (repo *ImportedMealRepository) ListByWeek(week time.Time) ([]models.ImportedMeal, error) {
	imported := make([]models.ImportedMeal, 0)
	if err := repo.database.Where("week = ?", week).Order("employee_name ASC").Find(&imported).Error; err != nil {
		return nil, err
	}
	return imported, nil
}

func (repo *ImportedMealRepository) Create(imported *models.ImportedMeal) error {
	return repo.database.Create(imported).Error
}

func (repo *ImportedMealRepository) Save(imported *models.ImportedMeal) error {
	return repo.database.Save(imported).Error
}
