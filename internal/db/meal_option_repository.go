package db

import (
	"time"

	"github.com/smoldovan/lunchroom/internal/models"
	"gorm.io/gorm"
)

type MealOptionRepository struct {
	database *gorm.DB
}

func NewMealOptionRepository(database *gorm.DB) *MealOptionRepository {
	return &MealOptionRepository{database: database}
}

func (repo *MealOptionRepository) ListByWeek(week time.Time) ([]models.MealOption, error) {
	options := make([]models.MealOption, 0)
	if err := repo.database.Where("week = ?", week).Order("category ASC").Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

func (repo *MealOptionRepository) FindByWeekAndCategory(week time.Time, category string) (models.MealOption, bool, error) {
	var option models.MealOption
	result := repo.database.Where("week = ? AND category = ?", week, category).Limit(1).Find(&option)
	if result.Error != nil {
		return models.MealOption{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.MealOption{}, false, nil
	}
	return option, true, nil
}

func (repo *MealOptionRepository) Create(option *models.MealOption) error {
	return repo.database.Create(option).Error
}

func (repo *MealOptionRepository) Save(option *models.MealOption) error {
	return repo.database.Save(option).Error
}
