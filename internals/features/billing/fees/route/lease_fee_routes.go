// file: internals/features/billing/fees/route/lease_fee_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "propertiku_backend/internals/features/billing/fees/controller"
)

// ✅ Route landlord: katalog biaya per kontrak
// Contoh akses: /api/a/leases/:lease_id/fees
func LeaseFeeAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewLeaseFeeController(db)

	api.Post("/lease-fees", ctl.Create)
	api.Patch("/lease-fees/:id", ctl.Patch)
	api.Delete("/lease-fees/:id", ctl.Delete)
	api.Get("/leases/:lease_id/fees", ctl.ListByLease)
}
