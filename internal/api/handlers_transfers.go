package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/smoldovan/lunchroom/internal/services"
	"github.com/smoldovan/lunchroom/internal/weekdate"
)

func (handler *Handler) OfferTransfer(c *fiber.Ctx) error {
	var input struct {
		Week string `json:"week"`
		Day  string `json:"day"`
	}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	week, err := weekdate.ParseWeekKey(input.Week)
	if err != nil {
		return serviceError(c, services.NewValidationError("week must be a Monday in %s form", weekdate.WeekKeyLayout))
	}

	transfer, err := handler.transferService.Offer(currentUser(c).ID, week, input.Day, handler.today())
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(transfer)
}

func (handler *Handler) ListOfferedTransfers(c *fiber.Ctx) error {
	week, err := weekQuery(c)
	if err != nil {
		return serviceError(c, err)
	}

	offered, err := handler.transferService.ListOffered(week)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(offered)
}

func (handler *Handler) ClaimTransfer(c *fiber.Ctx) error {
	transferID, err := idParam(c, "id")
	if err != nil {
		return serviceError(c, err)
	}

	transfer, err := handler.transferService.Claim(transferID, currentUser(c).ID, handler.today())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(transfer)
}

func (handler *Handler) CopyColleagueDay(c *fiber.Ctx) error {
	week, err := weekParam(c)
	if err != nil {
		return serviceError(c, err)
	}

	var input struct {
		FromUserID uint   `json:"fromUserId"`
		Day        string `json:"day"`
	}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	selection, err := handler.transferService.CopyDay(currentUser(c).ID, input.FromUserID, week, input.Day, handler.today())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(selection)
}
