package database

import (
	"log"

	feeModel "propertiku_backend/internals/features/billing/fees/model"
	invoiceModel "propertiku_backend/internals/features/billing/invoices/model"
	usageModel "propertiku_backend/internals/features/billing/usage/model"
	leaseModel "propertiku_backend/internals/features/rental/leases/model"
	maintenanceModel "propertiku_backend/internals/features/rental/maintenance/model"
	propertyModel "propertiku_backend/internals/features/rental/properties/model"
)

// Migrate menjalankan AutoMigrate untuk semua tabel + index tambahan
// yang tidak bisa diekspresikan lewat tag gorm.
func Migrate() {
	if err := DB.AutoMigrate(
		&propertyModel.Property{},
		&propertyModel.Unit{},
		&leaseModel.LeaseContract{},
		&maintenanceModel.MaintenanceRequest{},
		&feeModel.LeaseFee{},
		&usageModel.UsageRecord{},
		&invoiceModel.Invoice{},
		&invoiceModel.InvoiceItem{},
		&invoiceModel.InvoiceSequence{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}

	// Satu invoice terbuka per (lease, periode); invoice cancelled tidak memblok
	// regenerasi, jadi unique constraint-nya partial.
	if DB.Dialector.Name() == "postgres" {
		if err := DB.Exec(`
			CREATE UNIQUE INDEX IF NOT EXISTS uq_invoices_lease_period_open
			ON invoices (invoice_lease_id, invoice_period_start, invoice_period_end)
			WHERE invoice_status <> 'cancelled' AND invoice_deleted_at IS NULL
		`).Error; err != nil {
			log.Fatalf("❌ Gagal membuat index invoice periode: %v", err)
		}
	}

	log.Println("✅ Migrasi skema selesai.")
}
