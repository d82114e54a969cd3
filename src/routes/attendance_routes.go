package routes

import (
	"Backend-CampusPortal/src/controllers"
	"Backend-CampusPortal/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// attendanceRoutes กำหนดเส้นทางสำหรับ Attendance API
func attendanceRoutes(router fiber.Router) {
	attendanceGroup := router.Group("/attendance")
	attendanceGroup.Use(middleware.AuthJWT)

	attendanceGroup.Post("/checkin", controllers.CheckIn)   // เช็คอินวันนี้
	attendanceGroup.Post("/checkout", controllers.CheckOut) // เช็คเอาท์วันนี้

	attendanceGroup.Get("/:facultyId/today", controllers.GetTodayStatus)                   // สถานะวันนี้
	attendanceGroup.Get("/:facultyId/month/:month", controllers.GetMonthStatuses)          // ปฏิทินรายเดือน
	attendanceGroup.Get("/:facultyId/month/:month/summary", controllers.GetMonthlySummary) // สรุปรายเดือน
}
