package controllers

import (
	"log"
	"strconv"

	"Backend-CampusPortal/src/models"
	"Backend-CampusPortal/src/services/attendance"
	"Backend-CampusPortal/src/services/workhours"
	"Backend-CampusPortal/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateWorkLog godoc
// @Summary Log non-teaching hours
// @Description Duration must be > 0; rejected with 400 before it can reach aggregation.
// @Tags workhours
// @Accept json
// @Produce json
// @Param body body workhours.LogHoursRequest true "Work log"
// @Success 201 {object} models.WorkLogRecord
// @Failure 400 {object} models.ErrorResponse
// @Router /worklogs [post]
func CreateWorkLog(c *fiber.Ctx) error {
	var req workhours.LogHoursRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input format"})
	}

	rec, err := workhours.LogHours(c.Context(), req)
	if err != nil {
		return utils.HandleAppError(c, err)
	}

	// ชั่วโมงของเดือนนั้นเปลี่ยน ทิ้ง cache สรุป
	if len(rec.Date) >= 7 {
		if err := utils.InvalidateMonthlySummary(req.FacultyID, rec.Date[:7]); err != nil {
			log.Println("⚠️ Failed to invalidate summary cache:", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(rec)
}

// GetWorkLogs godoc
// @Summary List work logs
// @Tags workhours
// @Produce json
// @Param facultyId path string true "Faculty ID"
// @Param page query int false "Page"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.PaginatedResponse
// @Router /worklogs/{facultyId} [get]
func GetWorkLogs(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		params.Page = page
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		params.Limit = limit
	}

	resp, err := workhours.ListWorkLogs(c.Context(), c.Params("facultyId"), params)
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(resp)
}

// GetWorkHours godoc
// @Summary Daily work-hour aggregation over a date range
// @Description Dense output: every day in [from, to] appears, zero-hour days included.
// @Tags workhours
// @Produce json
// @Param facultyId path string true "Faculty ID"
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD)"
// @Success 200 {array} workhours.DayHours
// @Failure 400 {object} models.ErrorResponse
// @Router /workhours/{facultyId} [get]
func GetWorkHours(c *fiber.Ctx) error {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ต้องระบุ from และ to"})
	}

	days, err := attendance.DaysBetween(from, to)
	if err != nil {
		return utils.HandleAppError(c, models.NewValidationError(err.Error()))
	}
	dayKeys := make([]string, len(days))
	for i, d := range days {
		dayKeys[i] = d.Date
	}

	hours, err := workhours.AggregateRange(c.Context(), c.Params("facultyId"), from, to, dayKeys)
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(hours)
}
