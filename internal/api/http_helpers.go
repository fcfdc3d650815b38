package api

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/smoldovan/lunchroom/internal/services"
	"github.com/smoldovan/lunchroom/internal/weekdate"
)

// serviceError translates the service error taxonomy to HTTP. Anything
// outside the taxonomy is a 500 with the detail kept out of the response.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case services.IsValidationError(err):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		return apiError(c, fiber.StatusNotFound, "not found")
	case errors.Is(err, services.ErrForbidden):
		return apiError(c, fiber.StatusForbidden, "forbidden")
	case errors.Is(err, services.ErrConflict):
		return apiError(c, fiber.StatusConflict, err.Error())
	default:
		log.Printf("api: %s %s failed: %v", c.Method(), c.Path(), err)
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
}

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// weekParam reads the :week route segment, a Monday in YYYY-MM-DD form.
func weekParam(c *fiber.Ctx) (time.Time, error) {
	week, err := weekdate.ParseWeekKey(c.Params("week"))
	if err != nil {
		return time.Time{}, services.NewValidationError("week must be a Monday in %s form", weekdate.WeekKeyLayout)
	}
	return week, nil
}

func weekQuery(c *fiber.Ctx) (time.Time, error) {
	week, err := weekdate.ParseWeekKey(c.Query("week"))
	if err != nil {
		return time.Time{}, services.NewValidationError("week must be a Monday in %s form", weekdate.WeekKeyLayout)
	}
	return week, nil
}

func idParam(c *fiber.Ctx, name string) (uint, error) {
	parsed, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || parsed == 0 {
		return 0, services.NewValidationError("invalid %s", name)
	}
	return uint(parsed), nil
}
