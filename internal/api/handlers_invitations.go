package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) IssueInvitation(c *fiber.Ctx) error {
	var input struct {
		Email   string `json:"email"`
		IsAdmin bool   `json:"isAdmin"`
	}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	invitation, err := handler.invitationService.Issue(input.Email, input.IsAdmin, currentUser(c).ID, time.Now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(invitation)
}

func (handler *Handler) ListOpenInvitations(c *fiber.Ctx) error {
	invitations, err := handler.invitationService.ListOpen(time.Now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(invitations)
}

func (handler *Handler) AcceptInvitation(c *fiber.Ctx) error {
	var input struct {
		Token    string `json:"token"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := handler.invitationService.Accept(input.Token, input.Name, input.Password, time.Now())
	if err != nil {
		return serviceError(c, err)
	}

	token, _, err := handler.authService.Login(user.Email, input.Password, time.Now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"token": token, "user": presentUser(user)})
}
