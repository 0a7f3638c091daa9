// file: internals/route/details/rental_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	LeaseRoutes "propertiku_backend/internals/features/rental/leases/route"
	MaintenanceRoutes "propertiku_backend/internals/features/rental/maintenance/route"
	PropertyRoutes "propertiku_backend/internals/features/rental/properties/route"
)

// ✅ Untuk route landlord (token + role landlord)
// Contoh akses: /api/a/properties
func RentalAdminRoutes(api fiber.Router, db *gorm.DB) {
	PropertyRoutes.PropertyAdminRoutes(api, db)
	LeaseRoutes.LeaseAdminRoutes(api, db)
	MaintenanceRoutes.MaintenanceAdminRoutes(api, db)
}

// ✅ Untuk route tenant (token + role tenant)
// Contoh akses: /api/u/maintenance-requests
func RentalUserRoutes(api fiber.Router, db *gorm.DB) {
	LeaseRoutes.LeaseUserRoutes(api, db)
	MaintenanceRoutes.MaintenanceUserRoutes(api, db)
}
