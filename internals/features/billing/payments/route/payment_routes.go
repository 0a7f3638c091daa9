// file: internals/features/billing/payments/route/payment_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "propertiku_backend/internals/features/billing/payments/controller"
)

// ✅ Route landlord: catat pembayaran manual (cash/transfer)
// Contoh akses: /api/a/invoices/:id/pay
func PaymentAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewPaymentController(db)

	api.Post("/invoices/:id/pay", ctl.Pay)
}

// ✅ Route tenant: bayar online via Midtrans Snap
// Contoh akses: /api/u/invoices/:id/checkout
func PaymentUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewPaymentController(db)

	api.Post("/invoices/:id/checkout", ctl.SnapCheckout)
}

// ✅ Webhook Midtrans (tanpa JWT, rate-limit terpisah)
// Contoh akses: /webhooks/midtrans
func PaymentWebhookRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewPaymentController(db)

	api.Post("/midtrans", ctl.MidtransWebhook)
}
