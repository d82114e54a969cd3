package controllers

import (
	"Backend-CampusPortal/src/services/sessions"
	"Backend-CampusPortal/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetRoster godoc
// @Summary Active students of a batch for the marking screen
// @Tags sessions
// @Produce json
// @Param batchId path string true "Batch ID"
// @Success 200 {array} models.Student
// @Router /sessions/roster/{batchId} [get]
func GetRoster(c *fiber.Ctx) error {
	students, err := sessions.RosterByBatch(c.Context(), c.Params("batchId"))
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(students)
}

// MarkSession godoc
// @Summary Record a teaching session with per-student attendance
// @Description Session doc and per-student records are committed in one transaction, all-or-nothing.
// @Tags sessions
// @Accept json
// @Produce json
// @Param body body sessions.MarkSessionRequest true "Session attendance"
// @Success 201 {object} models.TeachingSessionRecord
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /sessions [post]
func MarkSession(c *fiber.Ctx) error {
	var req sessions.MarkSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input format"})
	}

	session, err := sessions.MarkSession(c.Context(), req)
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

// GetSessions godoc
// @Summary List teaching sessions for a faculty member
// @Tags sessions
// @Produce json
// @Param facultyId path string true "Faculty ID"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} models.TeachingSessionRecord
// @Router /sessions/{facultyId} [get]
func GetSessions(c *fiber.Ctx) error {
	list, err := sessions.ListSessions(c.Context(), c.Params("facultyId"), c.Query("from"), c.Query("to"))
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(list)
}
