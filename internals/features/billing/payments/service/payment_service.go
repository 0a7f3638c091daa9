// file: internals/features/billing/payments/service/payment_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"propertiku_backend/internals/features/billing/billingerr"
	invoiceModel "propertiku_backend/internals/features/billing/invoices/model"
)

// PaymentService menerapkan pembayaran ke invoice dan mengelola transisi status.
type PaymentService struct {
	DB *gorm.DB

	// Now bisa di-override di test
	Now func() time.Time
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{DB: db, Now: time.Now}
}

// PayInvoiceInput: satu pembayaran (bisa partial)
type PayInvoiceInput struct {
	InvoiceID     uuid.UUID
	PaidAmount    decimal.Decimal
	PaymentMethod *string
	PaidAt        *time.Time
}

// PayInvoice mengakumulasi paid_amount (bukan overwrite) di dalam satu
// transaksi dengan row lock, supaya dua partial payment concurrent tidak
// saling menimpa. Akumulasi >= total → paid (terminal); kurang → status tetap.
func (s *PaymentService) PayInvoice(ctx context.Context, in PayInvoiceInput) (*invoiceModel.Invoice, error) {
	if s.Now == nil {
		s.Now = time.Now
	}
	if in.PaidAmount.IsNegative() {
		return nil, fmt.Errorf("%w: paid_amount must be >= 0", billingerr.ErrValidation)
	}

	var out *invoiceModel.Invoice
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inv, err := lockInvoice(tx, in.InvoiceID)
		if err != nil {
			return err
		}
		if !inv.Payable() {
			return fmt.Errorf("%w: invoice %s is %s", billingerr.ErrInvalidInvoiceState, inv.InvoiceNumber, inv.InvoiceStatus)
		}

		paidAt := s.Now().UTC()
		if in.PaidAt != nil {
			paidAt = in.PaidAt.UTC()
		}

		inv.InvoicePaidAmount = inv.InvoicePaidAmount.Add(in.PaidAmount)
		inv.InvoicePaidAt = &paidAt
		if in.PaymentMethod != nil {
			inv.InvoicePaymentMethod = in.PaymentMethod
		}
		if inv.InvoicePaidAmount.GreaterThanOrEqual(inv.InvoiceTotalAmount) {
			inv.InvoiceStatus = invoiceModel.InvoiceStatusPaid
		}

		if err := tx.Model(&invoiceModel.Invoice{}).
			Where("invoice_id = ?", inv.InvoiceID).
			Updates(map[string]any{
				"invoice_paid_amount":    inv.InvoicePaidAmount,
				"invoice_paid_at":        inv.InvoicePaidAt,
				"invoice_payment_method": inv.InvoicePaymentMethod,
				"invoice_status":         inv.InvoiceStatus,
			}).Error; err != nil {
			return err
		}
		out = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PayRemainder melunasi sisa tagihan invoice. Sisa dihitung SETELAH row lock
// di dalam transaksi, supaya dua notifikasi settlement yang datang bersamaan
// tidak sama-sama melihat sisa positif lalu mengakumulasi dua kali. Invoice
// yang sudah lunas → no-op (notifikasi dobel dari gateway).
func (s *PaymentService) PayRemainder(ctx context.Context, invoiceID uuid.UUID, method string) (*invoiceModel.Invoice, error) {
	if s.Now == nil {
		s.Now = time.Now
	}

	var out *invoiceModel.Invoice
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inv, err := lockInvoice(tx, invoiceID)
		if err != nil {
			return err
		}

		outstanding := inv.InvoiceTotalAmount.Sub(inv.InvoicePaidAmount)
		if inv.InvoiceStatus == invoiceModel.InvoiceStatusPaid || !outstanding.IsPositive() {
			out = inv
			return nil
		}
		if !inv.Payable() {
			return fmt.Errorf("%w: invoice %s is %s", billingerr.ErrInvalidInvoiceState, inv.InvoiceNumber, inv.InvoiceStatus)
		}

		paidAt := s.Now().UTC()
		inv.InvoicePaidAmount = inv.InvoicePaidAmount.Add(outstanding)
		inv.InvoicePaidAt = &paidAt
		inv.InvoicePaymentMethod = &method
		inv.InvoiceStatus = invoiceModel.InvoiceStatusPaid

		if err := tx.Model(&invoiceModel.Invoice{}).
			Where("invoice_id = ?", inv.InvoiceID).
			Updates(map[string]any{
				"invoice_paid_amount":    inv.InvoicePaidAmount,
				"invoice_paid_at":        inv.InvoicePaidAt,
				"invoice_payment_method": inv.InvoicePaymentMethod,
				"invoice_status":         inv.InvoiceStatus,
			}).Error; err != nil {
			return err
		}
		out = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CancelInvoice: unpaid|overdue → cancelled (terminal). Invoice cancelled
// membuka jalan regenerasi periode yang sama di invoice builder.
func (s *PaymentService) CancelInvoice(ctx context.Context, invoiceID uuid.UUID) (*invoiceModel.Invoice, error) {
	var out *invoiceModel.Invoice
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inv, err := lockInvoice(tx, invoiceID)
		if err != nil {
			return err
		}
		if !inv.Cancellable() {
			return fmt.Errorf("%w: invoice %s is %s", billingerr.ErrInvalidInvoiceState, inv.InvoiceNumber, inv.InvoiceStatus)
		}
		inv.InvoiceStatus = invoiceModel.InvoiceStatusCancelled
		if err := tx.Model(&invoiceModel.Invoice{}).
			Where("invoice_id = ?", inv.InvoiceID).
			Update("invoice_status", inv.InvoiceStatus).Error; err != nil {
			return err
		}
		out = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MarkOverdueInvoices: unpaid + due_date lewat → overdue. Dipanggil scheduler,
// bukan bagian dari PayInvoice.
func (s *PaymentService) MarkOverdueInvoices(ctx context.Context, now time.Time) (int64, error) {
	res := s.DB.WithContext(ctx).Model(&invoiceModel.Invoice{}).
		Where("invoice_status = ?", invoiceModel.InvoiceStatusUnpaid).
		Where("invoice_due_date < ?", now.UTC().Truncate(24*time.Hour)).
		Update("invoice_status", invoiceModel.InvoiceStatusOverdue)
	return res.RowsAffected, res.Error
}

// lockInvoice: baca invoice dengan row lock (postgres); sqlite test tanpa lock
func lockInvoice(tx *gorm.DB, invoiceID uuid.UUID) (*invoiceModel.Invoice, error) {
	q := tx.Model(&invoiceModel.Invoice{})
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var inv invoiceModel.Invoice
	if err := q.Where("invoice_id = ?", invoiceID).Take(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invoice %s", billingerr.ErrNotFound, invoiceID)
		}
		return nil, err
	}
	return &inv, nil
}
