package controllers

import (
	"strconv"

	"Backend-CampusPortal/src/services/leaves"
	"Backend-CampusPortal/src/utils"

	"github.com/gofiber/fiber/v2"
)

// ApplyLeave godoc
// @Summary Apply for leave
// @Tags leaves
// @Accept json
// @Produce json
// @Param body body leaves.ApplyLeaveRequest true "Leave application"
// @Success 201 {object} models.LeaveRecord
// @Failure 400 {object} models.ErrorResponse
// @Router /leaves [post]
func ApplyLeave(c *fiber.Ctx) error {
	var req leaves.ApplyLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input format"})
	}

	rec, err := leaves.ApplyLeave(c.Context(), req)
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

// UpdateLeaveStatus godoc
// @Summary Approve or reject a leave application
// @Description Only pending applications can be decided; approved/rejected ones are immutable.
// @Tags leaves
// @Accept json
// @Produce json
// @Param id path string true "Leave ID"
// @Param body body object true "status: approved | rejected"
// @Success 200 {object} models.LeaveRecord
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /leaves/{id}/status [put]
func UpdateLeaveStatus(c *fiber.Ctx) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil || body.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ต้องระบุ status"})
	}

	rec, err := leaves.UpdateLeaveStatus(c.Context(), c.Params("id"), body.Status)
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(rec)
}

// GetLeaves godoc
// @Summary List leave applications for a user
// @Tags leaves
// @Produce json
// @Param userId path string true "User ID"
// @Param limit query int false "Max records"
// @Success 200 {array} models.LeaveRecord
// @Router /leaves/{userId} [get]
func GetLeaves(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))

	records, err := leaves.ListLeaves(c.Context(), c.Params("userId"), limit)
	if err != nil {
		return utils.HandleAppError(c, err)
	}
	return c.JSON(records)
}
