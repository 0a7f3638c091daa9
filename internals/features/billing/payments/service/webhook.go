// file: internals/features/billing/payments/service/webhook.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"propertiku_backend/internals/features/billing/billingerr"
	invoiceModel "propertiku_backend/internals/features/billing/invoices/model"
)

// HandlePaymentWebhook dipanggil saat menerima notifikasi dari Midtrans.
// order_id = invoice_number; settlement/capture diterapkan sebagai pelunasan
// sisa tagihan lewat PayRemainder (akumulatif, bukan overwrite).
func (s *PaymentService) HandlePaymentWebhook(ctx context.Context, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return fmt.Errorf("invalid payload")
	}

	var inv invoiceModel.Invoice
	if err := s.DB.WithContext(ctx).
		Where("invoice_number = ?", orderID).
		Take(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: invoice number %s", billingerr.ErrNotFound, orderID)
		}
		return err
	}

	switch status {
	case "capture", "settlement":
		// sisa tagihan dihitung di dalam transaksi PayRemainder (setelah lock),
		// jadi notifikasi dobel tidak mengakumulasi dua kali
		_, err := s.PayRemainder(ctx, inv.InvoiceID, "midtrans")
		return err

	case "expire", "cancel", "deny":
		// checkout gagal: invoice tetap unpaid/overdue, tidak ada transisi
		log.Printf("[INFO] Checkout %s untuk %s berstatus %s", orderID, inv.InvoiceID, status)
		return nil

	case "pending":
		return nil

	default:
		log.Printf("[WARN] Status transaksi tidak dikenal: %s", status)
		return nil
	}
}
