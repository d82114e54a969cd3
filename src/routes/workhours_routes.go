package routes

import (
	"Backend-CampusPortal/src/controllers"
	"Backend-CampusPortal/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// workHourRoutes กำหนดเส้นทางสำหรับ WorkLog / WorkHours API
func workHourRoutes(router fiber.Router) {
	workLogGroup := router.Group("/worklogs")
	workLogGroup.Use(middleware.AuthJWT)
	workLogGroup.Post("/", controllers.CreateWorkLog)        // บันทึกชั่วโมงทำงาน
	workLogGroup.Get("/:facultyId", controllers.GetWorkLogs) // ดึง work log ทั้งหมดของอาจารย์

	workHourGroup := router.Group("/workhours")
	workHourGroup.Use(middleware.AuthJWT)
	workHourGroup.Get("/:facultyId", controllers.GetWorkHours) // ชั่วโมงรวมรายวันในช่วงวันที่
}
