package api

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/smoldovan/lunchroom/internal/models"
)

type registerInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPayload struct {
	ID           uint   `json:"id"`
	Email        string `json:"email"`
	EmployeeName string `json:"employeeName"`
	IsAdmin      bool   `json:"isAdmin"`
}

func presentUser(user models.User) userPayload {
	return userPayload{
		ID:           user.ID,
		Email:        user.Email,
		EmployeeName: user.EmployeeName,
		IsAdmin:      user.IsAdmin,
	}
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	var input registerInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := handler.authService.Register(input.Email, input.Password, input.Name)
	if err != nil {
		return serviceError(c, err)
	}

	token, _, err := handler.authService.Login(user.Email, input.Password, time.Now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"token": token, "user": presentUser(user)})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	token, user, err := handler.authService.Login(input.Email, input.Password, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid email or password")
	}
	return c.JSON(fiber.Map{"token": token, "user": presentUser(user)})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	return c.JSON(presentUser(currentUser(c)))
}

func (handler *Handler) SendFeedback(c *fiber.Ctx) error {
	var input struct {
		Message string `json:"message"`
	}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(input.Message) == "" {
		return apiError(c, fiber.StatusBadRequest, "message is required")
	}

	if err := handler.notifier.RelayFeedback(currentUser(c).Email, input.Message); err != nil {
		log.Printf("api: feedback relay failed: %v", err)
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"delivered": false})
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"delivered": true})
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
