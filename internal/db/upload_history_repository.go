package db

import (
	"github.com/smoldovan/lunchroom/internal/models"
	"gorm.io/gorm"
)

type UploadHistoryRepository struct {
	database *gorm.DB
}

func NewUploadHistoryRepository(database *gorm.DB) *UploadHistoryRepository {
	return &UploadHistoryRepository{database: database}
}

func (repo *UploadHistoryRepository) FindByContentHash(contentHash string) (models.UploadHistory, bool, error) {
	var upload models.UploadHistory
	result := repo.database.Where("content_hash = ?", contentHash).Limit(1).Find(&upload)
	if result.Error != nil {
		return models.UploadHistory{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.UploadHistory{}, false, nil
	}
	return upload, true, nil
}

func (repo *UploadHistoryRepository) ListByType(uploadType string) ([]models.UploadHistory, error) {
	uploads := make([]models.UploadHistory, 0)
	if err := repo.database.Where("upload_type = ?", uploadType).Order("created_at ASC").Find(&uploads).Error; err != nil {
		return nil, err
	}
	return uploads, nil
}

func (repo *UploadHistoryRepository) ListAll() ([]models.UploadHistory, error) {
	uploads := make([]models.UploadHistory, 0)
	if err := repo.database.Order("created_at DESC").Find(&uploads).Error; err != nil {
		return nil, err
	}
	return uploads, nil
}

func (repo *UploadHistoryRepository) Create(upload *models.UploadHistory) error {
	return repo.database.Create(upload).Error
}
