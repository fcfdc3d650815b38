package db

import (
	"time"

	"github.com/smoldovan/lunchroom/internal/models"
	"gorm.io/gorm"
)

type UnlockRequestRepository struct {
	database *gorm.DB
}

func NewUnlockRequestRepository(database *gorm.DB) *UnlockRequestRepository {
	return &UnlockRequestRepository{database: database}
}

func (repo *UnlockRequestRepository) FindByID(requestID uint) (models.UnlockRequest, bool, error) {
	var request models.UnlockRequest
	result := repo.database.Where("id = ?", requestID).Limit(1).Find(&request)
	if result.Error != nil {
		return models.UnlockRequest{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.UnlockRequest{}, false, nil
	}
	return request, true, nil
}

func (repo *UnlockRequestRepository) FindPending(userID uint, week time.Time) (models.UnlockRequest, bool, error) {
	var request models.UnlockRequest
	result := repo.database.
		Where("user_id = ? AND week = ? AND status = ?", userID, week, models.UnlockRequestPending).
		Limit(1).
		Find(&request)
	if result.Error != nil {
		return models.UnlockRequest{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.UnlockRequest{}, false, nil
	}
	return request, true, nil
}

func (repo *UnlockRequestRepository) ListPending() ([]models.UnlockRequest, error) {
	requests := make([]models.UnlockRequest, 0)
	if err := repo.database.
		Where("status = ?", models.UnlockRequestPending).
		Order("created_at ASC").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (repo *UnlockRequestRepository) ListByWeek(week time.Time) ([]models.UnlockRequest, error) {
	requests := make([]models.UnlockRequest, 0)
	if err := repo.database.Where("week = ?", week).Order("created_at ASC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (repo *UnlockRequestRepository) Create(request *models.UnlockRequest) error {
	return repo.database.Create(request).Error
}

func (repo *UnlockRequestRepository) Resolve(requestID uint, status string, resolvedBy uint, resolvedAt time.Time) error {
	return repo.database.Model(&models.UnlockRequest{}).Where("id = ?", requestID).Updates(map[string]any{
		"status":      status,
		"resolved_by": resolvedBy,
		"resolved_at": resolvedAt,
	}).Error
}
