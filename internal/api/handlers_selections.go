package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetSelection(c *fiber.Ctx) error {
	week, err := weekParam(c)
	if err != nil {
		return serviceError(c, err)
	}

	selection, err := handler.selectionService.Get(currentUser(c).ID, week)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(selection)
}

func (handler *Handler) ListMySelections(c *fiber.Ctx) error {
	selections, err := handler.selectionService.ListForUser(currentUser(c).ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(selections)
}

func (handler *Handler) UpsertSelection(c *fiber.Ctx) error {
	week, err := weekParam(c)
	if err != nil {
		return serviceError(c, err)
	}

	var days map[string]string
	if err := c.BodyParser(&days); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	selection, err := handler.selectionService.Upsert(currentUser(c).ID, week, days, handler.today())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(selection)
}

// LockSelection flips the user's own self-lock for the week; admin approval
// is needed to undo it.
func (handler *Handler) LockSelection(c *fiber.Ctx) error {
	week, err := weekParam(c)
	if err != nil {
		return serviceError(c, err)
	}

	selection, err := handler.lockService.LockSelection(currentUser(c).ID, week)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(selection)
}

func (handler *Handler) GetWeekStatus(c *fiber.Ctx) error {
	week, err := weekParam(c)
	if err != nil {
		return serviceError(c, err)
	}

	user := currentUser(c)
	locked, err := handler.lockService.IsWeekLockedForUser(week, user.ID, handler.today())
	if err != nil {
		return serviceError(c, err)
	}
	settings, unlockedUserIDs, err := handler.lockService.WeekStatus(week)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"week":            c.Params("week"),
		"lockedForMe":     locked,
		"adminLocked":     settings.IsLocked,
		"unlockedUserIds": unlockedUserIDs,
	})
}
