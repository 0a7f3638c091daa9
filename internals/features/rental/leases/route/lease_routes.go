// file: internals/features/rental/leases/route/lease_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "propertiku_backend/internals/features/rental/leases/controller"
)

// ✅ Route landlord (token + role landlord)
// Contoh akses: /api/a/leases
func LeaseAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewLeaseContractController(db)

	leases := api.Group("/leases")
	leases.Post("/", ctl.Create)
	leases.Get("/", ctl.List)
	leases.Get("/:id", ctl.GetByID)
	leases.Patch("/:id", ctl.Patch)

	// aksi status kontrak
	leases.Post("/:id/activate", ctl.Activate)
	leases.Post("/:id/terminate", ctl.Terminate)
	leases.Post("/:id/renew", ctl.Renew)
}

// ✅ Route tenant (token + role tenant)
// Contoh akses: /api/u/leases
func LeaseUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewLeaseContractController(db)

	leases := api.Group("/leases")
	leases.Get("/", ctl.MyLeases)
}
