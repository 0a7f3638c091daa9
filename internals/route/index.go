// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"propertiku_backend/internals/middlewares"
	"propertiku_backend/internals/middlewares/auth"
	routeDetails "propertiku_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== LANDLORD (/api/a) =====================
	log.Println("[INFO] Setting up LANDLORD group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		auth.AuthJWT(),
		auth.RequireRole(auth.RoleLandlord),
	)
	routeDetails.RentalAdminRoutes(admin, db)
	routeDetails.BillingAdminRoutes(admin, db)

	// ===================== TENANT (/api/u) =====================
	log.Println("[INFO] Setting up TENANT group (Auth + RoleCheck)...")
	user := app.Group("/api/u",
		auth.AuthJWT(),
		auth.RequireRole(auth.RoleTenant),
	)
	routeDetails.RentalUserRoutes(user, db)
	routeDetails.BillingUserRoutes(user, db)

	// ===================== WEBHOOKS =====================
	log.Println("[INFO] Setting up WEBHOOK group...")
	webhooks := app.Group("/webhooks", middlewares.WebhookRateLimiter())
	routeDetails.BillingWebhookRoutes(webhooks, db)
}
