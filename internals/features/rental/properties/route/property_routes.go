// file: internals/features/rental/properties/route/property_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "propertiku_backend/internals/features/rental/properties/controller"
)

// ✅ Route landlord (token + role landlord)
// Contoh akses: /api/a/properties
func PropertyAdminRoutes(api fiber.Router, db *gorm.DB) {
	propertyCtl := controller.NewPropertyController(db)
	unitCtl := controller.NewUnitController(db)

	properties := api.Group("/properties")
	properties.Post("/", propertyCtl.Create)
	properties.Get("/", propertyCtl.List)
	properties.Get("/:id", propertyCtl.GetByID)
	properties.Patch("/:id", propertyCtl.Patch)
	properties.Delete("/:id", propertyCtl.Delete)

	// unit nested di property
	properties.Post("/:property_id/units", unitCtl.Create)
	properties.Get("/:property_id/units", unitCtl.ListByProperty)

	units := api.Group("/units")
	units.Patch("/:id", unitCtl.Patch)
	units.Delete("/:id", unitCtl.Delete)
}
