package services

import (
	"strings"
	"time"

	"github.com/smoldovan/lunchroom/internal/models"
)

type ReviewStore interface {
	FindByTuple(userID uint, mealName string, week time.Time, day string) (models.MealReview, bool, error)
	ListByWeek(week time.Time) ([]models.MealReview, error)
	ListByMeal(mealName string) ([]models.MealReview, error)
	Create(review *models.MealReview) error
	Save(review *models.MealReview) error
}

type ReviewService struct {
	reviews ReviewStore
}

func NewReviewService(reviews ReviewStore) *ReviewService {
	return &ReviewService{reviews: reviews}
}

// Upsert records a rating for (user, meal, week, day). The tuple is unique;
// a repeat write wins over the stored one.
func (service *ReviewService) Upsert(userID uint, mealName string, week time.Time, day string, rating int, comment string) (models.MealReview, error) {
	mealName = strings.TrimSpace(mealName)
	if mealName == "" {
		return models.MealReview{}, NewValidationError("meal name is required")
	}
	if !models.IsWeekday(day) {
		return models.MealReview{}, NewValidationError("unknown day %q", day)
	}
	if rating < models.ReviewMinRating || rating > models.ReviewMaxRating {
		return models.MealReview{}, NewValidationError("rating must be between %d and %d", models.ReviewMinRating, models.ReviewMaxRating)
	}
	if wordCount(comment) > models.ReviewMaxWords {
		return models.MealReview{}, NewValidationError("comment exceeds %d words", models.ReviewMaxWords)
	}

	review, found, err := service.reviews.FindByTuple(userID, mealName, week, day)
	if err != nil {
		return models.MealReview{}, err
	}
	if !found {
		review = models.MealReview{UserID: userID, MealName: mealName, Week: week, Day: day}
	}
	review.Rating = rating
	review.Comment = strings.TrimSpace(comment)

	if !found {
		if err := service.reviews.Create(&review); err != nil {
			if isDuplicateKey(err) {
				// A concurrent writer created the tuple first;
				// last write wins, so overwrite it.
				existing, stillFound, findErr := service.reviews.FindByTuple(userID, mealName, week, day)
				if findErr != nil {
					return models.MealReview{}, findErr
				}
				if stillFound {
					existing.Rating = rating
					existing.Comment = review.Comment
					if saveErr := service.reviews.Save(&existing); saveErr != nil {
						return models.MealReview{}, saveErr
					}
					return existing, nil
				}
			}
			return models.MealReview{}, translateStoreError(err)
		}
		return review, nil
	}
	if err := service.reviews.Save(&review); err != nil {
		return models.MealReview{}, err
	}
	return review, nil
}

func (service *ReviewService) ListByWeek(week time.Time) ([]models.MealReview, error) {
	return service.reviews.ListByWeek(week)
}

func (service *ReviewService) ListByMeal(mealName string) ([]models.MealReview, error) {
	mealName = strings.TrimSpace(mealName)
	if mealName == "" {
		return nil, NewValidationError("meal name is required")
	}
	return service.reviews.ListByMeal(mealName)
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}
