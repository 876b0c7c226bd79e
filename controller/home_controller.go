package controller

import (
	"time"

	"github.com/gofiber/fiber/v3"
)

type HomeController interface {
	ShowHome(c fiber.Ctx) error
	Health(c fiber.Ctx) error
}

type homeController struct {
	startedAt time.Time
}

func NewHomeController() HomeController {
	return &homeController{
		startedAt: time.Now(),
	}
}

func (controller *homeController) ShowHome(c fiber.Ctx) error {
	return c.Render("index", nil)
}

// Health reports liveness. The service holds no connections or state, so
// being up is being healthy.
func (controller *homeController) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":         "healthy",
		"uptime_seconds": int64(time.Since(controller.startedAt).Seconds()),
	})
}
