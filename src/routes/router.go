package routes

import (
	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App) {
	api := app.Group("/api")

	// รวม routes จากแต่ละ module
	authRoutes(app)
	attendanceRoutes(api)
	workHourRoutes(api)
	leaveRoutes(api)
	sessionRoutes(api)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
