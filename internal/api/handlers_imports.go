package api

import (
	"io"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/smoldovan/lunchroom/internal/spreadsheet"
)

func (handler *Handler) ImportOptions(c *fiber.Ctx) error {
	fileName, fileBytes, err := uploadedFile(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	rows, err := spreadsheet.Parse(fileBytes)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "file is not a readable spreadsheet")
	}

	report, err := handler.importService.ImportOptions(fileName, fileBytes, rows, handler.today())
	if err != nil {
		return serviceError(c, err)
	}

	broadcast, err := handler.optionsService.BroadcastNewMenu(report.WeekStart)
	if err != nil {
		log.Printf("api: menu broadcast failed: %v", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"report":    report,
		"broadcast": broadcast,
	})
}

func (handler *Handler) ImportSelections(c *fiber.Ctx) error {
	fileName, fileBytes, err := uploadedFile(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	rows, err := spreadsheet.Parse(fileBytes)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "file is not a readable spreadsheet")
	}

	report, err := handler.importService.ImportSelections(fileName, fileBytes, rows, handler.today())
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(report)
}

func (handler *Handler) ListUploads(c *fiber.Ctx) error {
	uploads, err := handler.repositories.Uploads.ListAll()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(uploads)
}

func uploadedFile(c *fiber.Ctx) (string, []byte, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return "", nil, fiber.NewError(fiber.StatusBadRequest, "multipart field \"file\" is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", nil, err
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return "", nil, err
	}
	return fileHeader.Filename, fileBytes, nil
}
