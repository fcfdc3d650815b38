package db

import (
	"time"

	"github.com/smoldovan/lunchroom/internal/models"
	"gorm.io/gorm"
)

type InvitationRepository struct {
	database *gorm.DB
}

func NewInvitationRepository(database *gorm.DB) *InvitationRepository {
	return &InvitationRepository{database: database}
}

func (repo *InvitationRepository) FindByToken(token string) (models.Invitation, bool, error) {
	var invitation models.Invitation
	result := repo.database.Where("token = ?", token).Limit(1).Find(&invitation)
	if result.Error != nil {
		return models.Invitation{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Invitation{}, false, nil
	}
	return invitation, true, nil
}

func (repo *InvitationRepository) ListOpen(now time.Time) ([]models.Invitation, error) {
	invitations := make([]models.Invitation, 0)
	if err := repo.database.
		Where("used_at IS NULL AND expires_at > ?", now).
		Order("created_at DESC").
		Find(&invitations).Error; err != nil {
		return nil, err
	}
	return invitations, nil
}

func (repo *InvitationRepository) Create(invitation *models.Invitation) error {
	return repo.database.Create(invitation).Error
}

func (repo *InvitationRepository) MarkUsed(invitationID uint, usedAt time.Time) error {
	return repo.database.Model(&models.Invitation{}).Where("id = ?", invitationID).Update("used_at", usedAt).Error
}
