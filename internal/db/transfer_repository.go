package db

import (
	"time"

	"github.com/smoldovan/lunchroom/internal/models"
	"gorm.io/gorm"
)

type TransferRepository struct {
	database *gorm.DB
}

func NewTransferRepository(database *gorm.DB) *TransferRepository {
	return &TransferRepository{database: database}
}

func (repo *TransferRepository) FindByID(transferID uint) (models.MealTransfer, bool, error) {
	var transfer models.MealTransfer
	result := repo.database.Where("id = ?", transferID).Limit(1).Find(&transfer)
	if result.Error != nil {
		return models.MealTransfer{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.MealTransfer{}, false, nil
	}
	return transfer, true, nil
}

func (repo *TransferRepository) ListOfferedByWeek(week time.Time) ([]models.MealTransfer, error) {
	transfers := make([]models.MealTransfer, 0)
	if err := repo.database.
		Where("week = ? AND status = ?", week, models.TransferOffered).
		Order("day ASC, id ASC").
		Find(&transfers).Error; err != nil {
		return nil, err
	}
	return transfers, nil
}

func (repo *TransferRepository) Create(transfer *models.MealTransfer) error {
	return repo.database.Create(transfer).Error
}

func (repo *TransferRepository) MarkClaimed(transferID uint, toUserID uint, claimedAt time.Time) error {
	return repo.database.Model(&models.MealTransfer{}).Where("id = ?", transferID).Updates(map[string]any{
		"status":     models.TransferClaimed,
		"to_user_id": toUserID,
		"claimed_at": claimedAt,
	}).Error
}

func (repo *TransferRepository) CreateMenuCopy(menuCopy *models.MenuCopy) error {
	return repo.database.Create(menuCopy).Error
}

func (repo *TransferRepository) MenuCopyExists(userID uint, week time.Time, day string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.MenuCopy{}).
		Where("user_id = ? AND week = ? AND day = ?", userID, week, day).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}
