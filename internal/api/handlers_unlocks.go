package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/smoldovan/lunchroom/internal/services"
	"github.com/smoldovan/lunchroom/internal/weekdate"
)

func (handler *Handler) CreateUnlockRequest(c *fiber.Ctx) error {
	var input struct {
		Week   string `json:"week"`
		Reason string `json:"reason"`
	}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	week, err := weekdate.ParseWeekKey(input.Week)
	if err != nil {
		return serviceError(c, services.NewValidationError("week must be a Monday in %s form", weekdate.WeekKeyLayout))
	}

	request, err := handler.lockService.CreateUnlockRequest(currentUser(c).ID, week, input.Reason, handler.today())
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(request)
}

func (handler *Handler) ListPendingUnlockRequests(c *fiber.Ctx) error {
	pending, err := handler.lockService.ListPendingRequests()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(pending)
}

func (handler *Handler) ApproveUnlockRequest(c *fiber.Ctx) error {
	requestID, err := idParam(c, "id")
	if err != nil {
		return serviceError(c, err)
	}

	request, err := handler.lockService.ApproveUnlockRequest(requestID, currentUser(c).ID, time.Now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(request)
}

func (handler *Handler) RejectUnlockRequest(c *fiber.Ctx) error {
	requestID, err := idParam(c, "id")
	if err != nil {
		return serviceError(c, err)
	}

	request, err := handler.lockService.RejectUnlockRequest(requestID, currentUser(c).ID, time.Now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(request)
}

func (handler *Handler) LockWeek(c *fiber.Ctx) error {
	week, err := weekParam(c)
	if err != nil {
		return serviceError(c, err)
	}
	if err := handler.lockService.LockWeek(week, time.Now()); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"locked": true})
}

func (handler *Handler) UnlockWeek(c *fiber.Ctx) error {
	week, err := weekParam(c)
	if err != nil {
		return serviceError(c, err)
	}
	if err := handler.lockService.UnlockWeek(week); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"locked": false})
}

func (handler *Handler) GrantUserUnlock(c *fiber.Ctx) error {
	week, err := weekParam(c)
	if err != nil {
		return serviceError(c, err)
	}
	userID, err := idParam(c, "userId")
	if err != nil {
		return serviceError(c, err)
	}
	if err := handler.lockService.GrantUserUnlock(week, userID); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"unlocked": true})
}

func (handler *Handler) RevokeUserUnlock(c *fiber.Ctx) error {
	week, err := weekParam(c)
	if err != nil {
		return serviceError(c, err)
	}
	userID, err := idParam(c, "userId")
	if err != nil {
		return serviceError(c, err)
	}
	if err := handler.lockService.RevokeUserUnlock(week, userID); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"unlocked": false})
}
