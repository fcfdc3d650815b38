package db

import (
	"time"

	"github.com/smoldovan/lunchroom/internal/models"
	"gorm.io/gorm"
)

type WeekSettingsRepository struct {
	database *gorm.DB
}

func NewWeekSettingsRepository(database *gorm.DB) *WeekSettingsRepository {
	return &WeekSettingsRepository{database: database}
}

func (repo *WeekSettingsRepository) FindByWeek(week time.Time) (models.WeekSettings, bool, error) {
	var settings models.WeekSettings
	result := repo.database.Where("week = ?", week).Limit(1).Find(&settings)
	if result.Error != nil {
		return models.WeekSettings{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.WeekSettings{}, false, nil
	}
	return settings, true, nil
}

func (repo *WeekSettingsRepository) Create(settings *models.WeekSettings) error {
	return repo.database.Create(settings).Error
}

func (repo *WeekSettingsRepository) Save(settings *models.WeekSettings) error {
	return repo.database.Save(settings).Error
}

type WeekUnlockRepository struct {
	database *gorm.DB
}

func NewWeekUnlockRepository(database *gorm.DB) *WeekUnlockRepository {
	return &WeekUnlockRepository{database: database}
}

func (repo *WeekUnlockRepository) Exists(week time.Time, userID uint) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.WeekUnlock{}).
		Where("week = ? AND user_id = ?", week, userID).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *WeekUnlockRepository) ListUserIDs(week time.Time) ([]uint, error) {
	userIDs := make([]uint, 0)
	if err := repo.database.Model(&models.WeekUnlock{}).
		Where("week = ?", week).
		Order("user_id ASC").
		Pluck("user_id", &userIDs).Error; err != nil {
		return nil, err
	}
	return userIDs, nil
}

func (repo *WeekUnlockRepository) Create(unlock *models.WeekUnlock) error {
	return repo.database.Create(unlock).Error
}

func (repo *WeekUnlockRepository) Delete(week time.Time, userID uint) error {
	return repo.database.Where("week = ? AND user_id = ?", week, userID).Delete(&models.WeekUnlock{}).Error
}

func (repo *WeekUnlockRepository) DeleteAllForWeek(week time.Time) error {
	return repo.database.Where("week = ?", week).Delete(&models.WeekUnlock{}).Error
}
