// file: internals/features/rental/maintenance/route/maintenance_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "propertiku_backend/internals/features/rental/maintenance/controller"
)

// ✅ Route landlord: pantau & proses laporan
// Contoh akses: /api/a/maintenance-requests
func MaintenanceAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewMaintenanceRequestController(db)

	reqs := api.Group("/maintenance-requests")
	reqs.Get("/", ctl.List)
	reqs.Patch("/:id/status", ctl.UpdateStatus)
}

// ✅ Route tenant: buat & lihat laporan sendiri
// Contoh akses: /api/u/maintenance-requests
func MaintenanceUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewMaintenanceRequestController(db)

	reqs := api.Group("/maintenance-requests")
	reqs.Post("/", ctl.Create)
	reqs.Get("/", ctl.List)
}
