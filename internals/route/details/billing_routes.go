// file: internals/route/details/billing_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	LeaseFeeRoutes "propertiku_backend/internals/features/billing/fees/route"
	InvoiceRoutes "propertiku_backend/internals/features/billing/invoices/route"
	PaymentRoutes "propertiku_backend/internals/features/billing/payments/route"
	UsageRoutes "propertiku_backend/internals/features/billing/usage/route"
)

// ✅ Untuk route landlord (token + role landlord)
// Contoh akses: /api/a/invoices
func BillingAdminRoutes(api fiber.Router, db *gorm.DB) {
	LeaseFeeRoutes.LeaseFeeAdminRoutes(api, db)
	UsageRoutes.UsageAdminRoutes(api, db)
	InvoiceRoutes.InvoiceAdminRoutes(api, db)
	PaymentRoutes.PaymentAdminRoutes(api, db)
}

// ✅ Untuk route tenant (token + role tenant)
// Contoh akses: /api/u/invoices
func BillingUserRoutes(api fiber.Router, db *gorm.DB) {
	InvoiceRoutes.InvoiceUserRoutes(api, db)
	PaymentRoutes.PaymentUserRoutes(api, db)
}

// ✅ Webhook pembayaran (tanpa JWT)
// Contoh akses: /webhooks/midtrans
func BillingWebhookRoutes(api fiber.Router, db *gorm.DB) {
	PaymentRoutes.PaymentWebhookRoutes(api, db)
}
