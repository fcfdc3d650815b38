package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/smoldovan/lunchroom/internal/services"
	"github.com/smoldovan/lunchroom/internal/weekdate"
)

func (handler *Handler) ListOptions(c *fiber.Ctx) error {
	week, err := weekQuery(c)
	if err != nil {
		return serviceError(c, err)
	}

	options, err := handler.optionsService.ListByWeek(week)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(options)
}

func (handler *Handler) UpsertReview(c *fiber.Ctx) error {
	var input struct {
		MealName string `json:"mealName"`
		Week     string `json:"week"`
		Day      string `json:"day"`
		Rating   int    `json:"rating"`
		Comment  string `json:"comment"`
	}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	week, err := weekdate.ParseWeekKey(input.Week)
	if err != nil {
		return serviceError(c, services.NewValidationError("week must be a Monday in %s form", weekdate.WeekKeyLayout))
	}

	review, err := handler.reviewService.Upsert(currentUser(c).ID, input.MealName, week, input.Day, input.Rating, input.Comment)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(review)
}

// ListReviews filters by ?week= or ?meal=, week winning when both are given.
func (handler *Handler) ListReviews(c *fiber.Ctx) error {
	if c.Query("week") != "" {
		week, err := weekQuery(c)
		if err != nil {
			return serviceError(c, err)
		}
		reviews, err := handler.reviewService.ListByWeek(week)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(reviews)
	}

	mealName := strings.TrimSpace(c.Query("meal"))
	reviews, err := handler.reviewService.ListByMeal(mealName)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(reviews)
}
