package controllers

import (
	"log"
	"time"

	DB "Backend-CampusPortal/src/database"
	"Backend-CampusPortal/src/jobs"
	"Backend-CampusPortal/src/services/attendance"
	"Backend-CampusPortal/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

// CheckIn godoc
// @Summary Faculty daily check-in
// @Description Check in for today. Fails with 409 if already checked in (re-verified against DB at commit time).
// @Tags attendance
// @Accept json
// @Produce json
// @Param body body object true "facultyId"
// @Success 201 {object} models.CheckInRecord
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /attendance/checkin [post]
func CheckIn(c *fiber.Ctx) error {
	var body struct {
		FacultyID string `json:"facultyId"`
	}
	if err := c.BodyParser(&body); err != nil || body.FacultyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ต้องระบุ facultyId"})
	}

	now := time.Now()
	rec, err := attendance.CheckIn(c.Context(), body.FacultyID, now)
	if err != nil {
		return utils.HandleAppError(c, err)
	}

	// สถานะเดือนนี้เปลี่ยนแล้ว ทิ้ง cache เก่า
	month := now.Format("2006-01")
	if err := utils.InvalidateMonthlySummary(body.FacultyID, month); err != nil {
		log.Println("⚠️ Failed to invalidate summary cache:", err)
	}

	return c.Status(fiber.StatusCreated).JSON(rec)
}

// CheckOut godoc
// @Summary Faculty daily check-out
// @Description Check out for today. 404 without a prior check-in, 409 if already checked out.
// @Tags attendance
// @Accept json
// @Produce json
// @Param body body object true "facultyId"
// @Success 200 {object} models.CheckInRecord
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /attendance/checkout [post]
func CheckOut(c *fiber.Ctx) error {
	var body struct {
		FacultyID string `json:"facultyId"`
	}
	if err := c.BodyParser(&body); err != nil || body.FacultyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ต้องระบุ facultyId"})
	}

	now := time.Now()
	rec, err := attendance.CheckOut(c.Context(), body.FacultyID, now)
	if err != nil {
		return utils.HandleAppError(c, err)
	}

	// refresh สรุปเดือนใน background ให้ dashboard เห็นตัวเลขใหม่ทันที
	month := now.Format("2006-01")
	enqueueRollup(body.FacultyID, month)

	return c.JSON(rec)
}

// GetTodayStatus godoc
// @Summary Today's check-in state
// @Tags attendance
// @Produce json
// @Param facultyId path string true "Faculty ID"
// @Success 200 {object} map[string]interface{}
// @Router /attendance/{facultyId}/today [get]
func GetTodayStatus(c *fiber.Ctx) error {
	facultyID := c.Params("facultyId")
	today := time.Now().Format("2006-01-02")

	state, rec, err := attendance.TodayStatus(c.Context(), facultyID, today)
	if err != nil {
		return utils.HandleAppError(c, err)
	}

	resp := fiber.Map{"date": today, "state": state}
	if rec != nil {
		resp["record"] = rec
	}
	return c.JSON(resp)
}

// GetMonthStatuses godoc
// @Summary Day-by-day statuses for a month
// @Description One DayStatus per calendar day: present/absent/leave/weekend/holiday/upcoming with work hours merged in.
// @Tags attendance
// @Produce json
// @Param facultyId path string true "Faculty ID"
// @Param month path string true "Month (YYYY-MM)"
// @Success 200 {array} models.DayStatus
// @Failure 400 {object} models.ErrorResponse
// @Router /attendance/{facultyId}/month/{month} [get]
func GetMonthStatuses(c *fiber.Ctx) error {
	statuses, err := attendance.ResolveMonthStatuses(c.Context(), c.Params("facultyId"), c.Params("month"))
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(statuses)
}

// GetMonthlySummary godoc
// @Summary Monthly attendance summary
// @Tags attendance
// @Produce json
// @Param facultyId path string true "Faculty ID"
// @Param month path string true "Month (YYYY-MM)"
// @Success 200 {object} models.MonthlySummary
// @Failure 400 {object} models.ErrorResponse
// @Router /attendance/{facultyId}/month/{month}/summary [get]
func GetMonthlySummary(c *fiber.Ctx) error {
	sum, err := attendance.MonthlySummary(c.Context(), c.Params("facultyId"), c.Params("month"))
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(sum)
}

func enqueueRollup(facultyID, month string) {
	if DB.AsynqClient == nil {
		return
	}
	task, err := jobs.NewMonthlyRollupTask(facultyID, month)
	if err != nil {
		return
	}
	taskID := "rollup-" + facultyID + "-" + month + "-" + time.Now().Format("20060102150405")
	if _, err := DB.AsynqClient.Enqueue(task, asynq.TaskID(taskID), asynq.MaxRetry(3)); err != nil {
		log.Println("⚠️ Failed to enqueue rollup task:", err)
	}
}
