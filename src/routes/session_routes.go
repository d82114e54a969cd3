package routes

import (
	"Backend-CampusPortal/src/controllers"
	"Backend-CampusPortal/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// sessionRoutes กำหนดเส้นทางสำหรับ Teaching Session API
func sessionRoutes(router fiber.Router) {
	sessionGroup := router.Group("/sessions")
	sessionGroup.Use(middleware.AuthJWT)
	sessionGroup.Get("/roster/:batchId", controllers.GetRoster) // รายชื่อนักเรียนใน batch
	sessionGroup.Post("/", controllers.MarkSession)             // บันทึกคาบสอน + เช็คชื่อ
	sessionGroup.Get("/:facultyId", controllers.GetSessions)    // ดึงคาบสอนทั้งหมดของอาจารย์
}
