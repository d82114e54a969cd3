package routes

import (
	"Backend-CampusPortal/src/controllers"
	"Backend-CampusPortal/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// leaveRoutes กำหนดเส้นทางสำหรับ Leave API
func leaveRoutes(router fiber.Router) {
	leaveGroup := router.Group("/leaves")
	leaveGroup.Use(middleware.AuthJWT)
	leaveGroup.Post("/", controllers.ApplyLeave)                 // ยื่นคำขอลา
	leaveGroup.Put("/:id/status", controllers.UpdateLeaveStatus) // อนุมัติ/ปฏิเสธคำขอลา
	leaveGroup.Get("/:userId", controllers.GetLeaves)            // ดึงคำขอลาทั้งหมดของผู้ใช้
}
