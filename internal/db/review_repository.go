package db

import (
	"time"

	"github.com/smoldovan/lunchroom/internal/models"
	"gorm.io/gorm"
)

type ReviewRepository struct {
	database *gorm.DB
}

func NewReviewRepository(database *gorm.DB) *ReviewRepository {
	return &ReviewRepository{database: database}
}

func (repo *ReviewRepository) FindByTuple(userID uint, mealName string, week time.Time, day string) (models.MealReview, bool, error) {
	var review models.MealReview
	result := repo.database.
		Where("user_id = ? AND meal_name = ? AND week = ? AND day = ?", userID, mealName, week, day).
		Limit(1).
		Find(&review)
	if result.Error != nil {
		return models.MealReview{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.MealReview{}, false, nil
	}
	return review, true, nil
}

func (repo *ReviewRepository) ListByWeek(week time.Time) ([]models.MealReview, error) {
	reviews := make([]models.MealReview, 0)
	if err := repo.database.Where("week = ?", week).Order("day ASC, meal_name ASC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (repo *ReviewRepository) ListByMeal(mealName string) ([]models.MealReview, error) {
	reviews := make([]models.MealReview, 0)
	if err := repo.database.Where("meal_name = ?", mealName).Order("week DESC, day ASC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (repo *ReviewRepository) Create(review *models.MealReview) error {
	return repo.database.Create(review).Error
}

func (repo *ReviewRepository) Save(review *models.MealReview) error {
	return repo.database.Save(review).Error
}
