package meta

import "github.com/gofiber/fiber/v2"

func RegisterIndex(app *fiber.App) {
	app.Get("/api", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"@link":   "https://github.com/andhikaputrab/vgsales-dashboard",
			"message": "Welcome to the VGSales Dashboard API v1",
		})
	})
}
