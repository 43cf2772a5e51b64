package route

import (
	"fleet-service/src/internal/delivery/http"

	"github.com/gofiber/fiber/v2"
)

type RouteConfig struct {
	App               *fiber.App
	DriverController  *http.DriverController
	VehicleController *http.VehicleController
}

func (c *RouteConfig) Setup() {
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})
	c.SetupDriverRoutes()
	c.SetupVehicleRoutes()
}

func (c *RouteConfig) SetupDriverRoutes() {
	c.App.Get("/drivers", c.DriverController.List)
	c.App.Post("/drivers", c.DriverController.Create)
	c.App.Get("/drivers/:id", c.DriverController.Get)
	c.App.Put("/drivers/:id/details", c.DriverController.UpdateDetails)
	c.App.Patch("/drivers/:id", c.DriverController.Patch)
	c.App.Delete("/drivers/:id/details", c.DriverController.DeleteDetails)
	c.App.Delete("/drivers/:id", c.DriverController.DeleteAccount)
	// The original API exposed the singular path; keep both spellings.
	c.App.Get("/drivers/:id/vehicle", c.DriverController.ListVehicles)
	c.App.Get("/drivers/:id/vehicles", c.DriverController.ListVehicles)
}

func (c *RouteConfig) SetupVehicleRoutes() {
	c.App.Get("/vehicles", c.VehicleController.List)
	c.App.Post("/vehicles", c.VehicleController.Create)
	c.App.Put("/vehicles/:id", c.VehicleController.Update)
	c.App.Delete("/vehicles/:id", c.VehicleController.Delete)
}
