package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetWeekStats(c *fiber.Ctx) error {
	week, err := weekQuery(c)
	if err != nil {
		return serviceError(c, err)
	}

	stats, err := handler.statsService.BuildWeekStats(week)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(stats)
}

func (handler *Handler) GetWeekRows(c *fiber.Ctx) error {
	week, err := weekQuery(c)
	if err != nil {
		return serviceError(c, err)
	}

	rows, err := handler.statsService.CollectWeekRows(week)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(rows)
}

func (handler *Handler) ExportWeekReport(c *fiber.Ctx) error {
	week, err := weekQuery(c)
	if err != nil {
		return serviceError(c, err)
	}

	fileBytes, err := handler.exportService.WriteWeekReport(week)
	if err != nil {
		return serviceError(c, err)
	}

	fileName := fmt.Sprintf("orders-%s.xlsx", week.Format("2006-01-02"))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(fileBytes)
}
