// file: internals/features/billing/usage/route/usage_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "propertiku_backend/internals/features/billing/usage/controller"
)

// ✅ Route landlord: catat pemakaian meteran
// Contoh akses: /api/a/usage-records
func UsageAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewUsageRecordController(db)

	api.Post("/usage-records", ctl.Record)
	api.Post("/usage-records/bulk", ctl.BulkRecord)
	api.Get("/leases/:lease_id/usage-records", ctl.ListByLease)
}
