// file: internals/features/billing/scheduler/overdue_scheduler.go
package scheduler

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	paymentService "propertiku_backend/internals/features/billing/payments/service"
)

// StartInvoiceOverdueScheduler menandai invoice unpaid yang lewat due date
// jadi overdue secara periodik. PayInvoice sendiri tidak pernah mengecek waktu.
func StartInvoiceOverdueScheduler(db *gorm.DB) {
	go func() {
		// interval dari env (default: 6 jam)
		intervalHours := 6
		if val := os.Getenv("INVOICE_OVERDUE_INTERVAL_HOURS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				intervalHours = parsed
			}
		}

		svc := paymentService.NewPaymentService(db)
		for {
			log.Println("[OVERDUE] Menjalankan penandaan invoice overdue...")

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			n, err := svc.MarkOverdueInvoices(ctx, time.Now())
			cancel()
			if err != nil {
				log.Printf("[OVERDUE ERROR] Gagal menandai invoice: %v", err)
			} else if n > 0 {
				log.Printf("[OVERDUE] %d invoice ditandai overdue", n)
			} else {
				log.Println("[OVERDUE] Tidak ada invoice yang jatuh tempo")
			}

			time.Sleep(time.Duration(intervalHours) * time.Hour)
		}
	}()
}
