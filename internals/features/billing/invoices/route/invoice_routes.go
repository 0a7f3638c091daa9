// file: internals/features/billing/invoices/route/invoice_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "propertiku_backend/internals/features/billing/invoices/controller"
)

// ✅ Route landlord: buat & kelola tagihan
// Contoh akses: /api/a/invoices
func InvoiceAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewInvoiceController(db)

	invoices := api.Group("/invoices")
	invoices.Post("/generate", ctl.Generate)
	invoices.Get("/", ctl.List)
	invoices.Get("/:id", ctl.GetByID)
	invoices.Post("/:id/cancel", ctl.Cancel)
}

// ✅ Route tenant: lihat tagihan sendiri
// Contoh akses: /api/u/invoices
func InvoiceUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewInvoiceController(db)

	invoices := api.Group("/invoices")
	invoices.Get("/", ctl.MyInvoices)
	invoices.Get("/:id", ctl.GetByID)
}
