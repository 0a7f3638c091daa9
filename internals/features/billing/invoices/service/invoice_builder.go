// file: internals/features/billing/invoices/service/invoice_builder.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"propertiku_backend/internals/features/billing/billingerr"
	feeModel "propertiku_backend/internals/features/billing/fees/model"
	invoiceModel "propertiku_backend/internals/features/billing/invoices/model"
	usageModel "propertiku_backend/internals/features/billing/usage/model"
	leaseModel "propertiku_backend/internals/features/rental/leases/model"
)

// InvoiceBuilder menyusun satu Invoice + item-itemnya untuk satu lease+periode.
type InvoiceBuilder struct {
	DB *gorm.DB

	// Now bisa di-override di test
	Now func() time.Time
}

func NewInvoiceBuilder(db *gorm.DB) *InvoiceBuilder {
	return &InvoiceBuilder{DB: db, Now: time.Now}
}

// GenerateOptions: parameter opsional generate.
type GenerateOptions struct {
	// periode eksplisit; kalau kosong diturunkan dari billing_day + cycle lease
	PeriodStart *time.Time
	PeriodEnd   *time.Time

	// fixed fee opsional hanya ikut kalau dipilih eksplisit oleh caller
	IncludeOptionalFeeIDs []uuid.UUID

	// pass-through dari tax policy eksternal (default 0)
	TaxAmount *decimal.Decimal

	// due-date policy eksternal (default: period start)
	DueDate *time.Time
}

// GenerateInvoice menjalankan seluruh pipeline invoice untuk satu lease+periode
// di dalam satu transaksi: rent → fixed fees → variable fees (per bulan usage)
// → diskon → pajak → total, plus penomoran invoice dan guard idempotensi.
func (b *InvoiceBuilder) GenerateInvoice(ctx context.Context, leaseID uuid.UUID, opts GenerateOptions) (*invoiceModel.Invoice, error) {
	if b.Now == nil {
		b.Now = time.Now
	}

	var out *invoiceModel.Invoice
	err := b.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1) lease harus ada & active
		var lease leaseModel.LeaseContract
		if err := tx.Where("lease_contract_id = ?", leaseID).Take(&lease).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: lease %s", billingerr.ErrNotFound, leaseID)
			}
			return err
		}
		if !lease.IsActive() {
			return fmt.Errorf("%w: lease status %s", billingerr.ErrLeaseNotActive, lease.LeaseContractStatus)
		}

		billingDay := int(lease.LeaseContractBillingDay)
		cycle := int(lease.LeaseContractBillingCycleMonths)

		// 2) periode: eksplisit (harus selaras cycle) atau diturunkan dari anchor
		var periodStart, periodEnd time.Time
		switch {
		case opts.PeriodStart != nil && opts.PeriodEnd != nil:
			periodStart = opts.PeriodStart.UTC().Truncate(24 * time.Hour)
			periodEnd = opts.PeriodEnd.UTC().Truncate(24 * time.Hour)
			if err := ValidatePeriod(periodStart, periodEnd, billingDay, cycle); err != nil {
				return err
			}
		case opts.PeriodStart == nil && opts.PeriodEnd == nil:
			periodStart, periodEnd = DerivePeriod(billingDay, cycle, b.Now())
		default:
			return fmt.Errorf("%w: period_start and period_end must be given together", billingerr.ErrInvalidPeriod)
		}

		// 3) idempotensi: satu invoice terbuka per (lease, periode).
		// Regenerasi harus lewat cancel dulu; invoice cancelled tidak memblok.
		var existing int64
		if err := tx.Model(&invoiceModel.Invoice{}).
			Where("invoice_lease_id = ? AND invoice_period_start = ? AND invoice_period_end = ?", leaseID, periodStart, periodEnd).
			Where("invoice_status <> ?", invoiceModel.InvoiceStatusCancelled).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return fmt.Errorf("%w: lease %s period %s..%s", billingerr.ErrInvoiceAlreadyExists,
				leaseID, periodStart.Format("2006-01-02"), periodEnd.Format("2006-01-02"))
		}

		// 4) fee aktif, urutan deterministik (created_at, id) biar item reproducible
		var fees []feeModel.LeaseFee
		if err := tx.Where("lease_fee_lease_id = ? AND lease_fee_is_active", leaseID).
			Order("lease_fee_created_at ASC, lease_fee_id ASC").
			Find(&fees).Error; err != nil {
			return err
		}

		selected := make(map[uuid.UUID]bool, len(opts.IncludeOptionalFeeIDs))
		for _, id := range opts.IncludeOptionalFeeIDs {
			selected[id] = true
		}

		months := CoveredMonths(periodStart, cycle)
		usageByKey, err := loadUsageForFees(tx, fees, months)
		if err != nil {
			return err
		}

		// 5) susun item
		var (
			items     []invoiceModel.InvoiceItem
			subtotal  decimal.Decimal
			sortOrder int16
		)
		push := func(it invoiceModel.InvoiceItem) {
			it.InvoiceItemSortOrder = sortOrder
			sortOrder++
			items = append(items, it)
		}

		qtyMonths := decimal.NewFromInt(int64(cycle))
		ps, pe := periodStart, periodEnd

		// RENT
		rentAmount := qtyMonths.Mul(lease.LeaseContractRentAmount).Round(2)
		push(invoiceModel.InvoiceItem{
			InvoiceItemType:        invoiceModel.InvoiceItemTypeRent,
			InvoiceItemDescription: fmt.Sprintf("Sewa %d bulan", cycle),
			InvoiceItemPeriodStart: &ps,
			InvoiceItemPeriodEnd:   &pe,
			InvoiceItemQuantity:    qtyMonths,
			InvoiceItemUnitPrice:   lease.LeaseContractRentAmount,
			InvoiceItemAmount:      rentAmount,
		})
		subtotal = subtotal.Add(rentAmount)

		for i := range fees {
			fee := fees[i]
			switch fee.LeaseFeeType {
			case feeModel.LeaseFeeTypeFixed:
				// mandatory selalu ikut; opsional hanya kalau dipilih caller
				if !fee.LeaseFeeIsMandatory && !selected[fee.LeaseFeeID] {
					continue
				}
				amount := qtyMonths.Mul(*fee.LeaseFeeAmount).Round(2)
				feeID := fee.LeaseFeeID
				push(invoiceModel.InvoiceItem{
					InvoiceItemType:        invoiceModel.InvoiceItemTypeFixedFee,
					InvoiceItemDescription: fee.LeaseFeeName,
					InvoiceItemFeeID:       &feeID,
					InvoiceItemPeriodStart: &ps,
					InvoiceItemPeriodEnd:   &pe,
					InvoiceItemQuantity:    qtyMonths,
					InvoiceItemUnitPrice:   *fee.LeaseFeeAmount,
					InvoiceItemAmount:      amount,
				})
				subtotal = subtotal.Add(amount)

			case feeModel.LeaseFeeTypeVariable:
				// satu item per bulan tercakup; usage "tidak ada" ≠ usage nol:
				// mandatory tanpa record = data-quality error, bukan 0
				for _, month := range months {
					rec, ok := usageByKey[usageKey{feeID: fee.LeaseFeeID, month: month}]
					if !ok {
						if fee.LeaseFeeIsMandatory {
							return fmt.Errorf("%w: fee %q month %s", billingerr.ErrMissingUsageData, fee.LeaseFeeName, month)
						}
						continue
					}
					feeID := fee.LeaseFeeID
					ims, ime := monthBounds(month)
					push(invoiceModel.InvoiceItem{
						InvoiceItemType:        invoiceModel.InvoiceItemTypeVariableFee,
						InvoiceItemDescription: fmt.Sprintf("%s (%s)", fee.LeaseFeeName, month),
						InvoiceItemFeeID:       &feeID,
						InvoiceItemPeriodStart: &ims,
						InvoiceItemPeriodEnd:   &ime,
						InvoiceItemQuantity:    rec.UsageRecordUsageValue,
						InvoiceItemUnitPrice:   *fee.LeaseFeeUnitPrice,
						InvoiceItemAmount:      rec.UsageRecordTotalAmount,
					})
					subtotal = subtotal.Add(rec.UsageRecordTotalAmount)
				}
			}
		}

		// 6) maksimal satu diskon, dihitung terhadap subtotal
		discount := computeDiscount(&lease, subtotal)
		if discount.IsPositive() {
			push(invoiceModel.InvoiceItem{
				InvoiceItemType:        invoiceModel.InvoiceItemTypeDiscount,
				InvoiceItemDescription: "Diskon kontrak",
				InvoiceItemQuantity:    decimal.NewFromInt(1),
				InvoiceItemUnitPrice:   discount.Neg(),
				InvoiceItemAmount:      discount.Neg(),
			})
		}

		// 7) pajak pass-through (tax policy eksternal, default 0)
		tax := decimal.Zero
		if opts.TaxAmount != nil {
			if opts.TaxAmount.IsNegative() {
				return fmt.Errorf("%w: tax_amount must be >= 0", billingerr.ErrValidation)
			}
			tax = opts.TaxAmount.Round(2)
		}

		total := subtotal.Sub(discount).Add(tax)
		if total.IsNegative() {
			total = decimal.Zero
		}

		now := b.Now().UTC()
		issueDate := now.Truncate(24 * time.Hour)
		dueDate := periodStart
		if opts.DueDate != nil {
			dueDate = opts.DueDate.UTC().Truncate(24 * time.Hour)
		}

		number, err := nextInvoiceNumber(tx, issueDate)
		if err != nil {
			return err
		}

		inv := invoiceModel.Invoice{
			InvoiceLeaseID:        leaseID,
			InvoiceNumber:         number,
			InvoicePeriodStart:    periodStart,
			InvoicePeriodEnd:      periodEnd,
			InvoiceIssueDate:      issueDate,
			InvoiceDueDate:        dueDate,
			InvoiceSubtotal:       subtotal,
			InvoiceDiscountAmount: discount,
			InvoiceTaxAmount:      tax,
			InvoiceTotalAmount:    total,
			InvoiceStatus:         invoiceModel.InvoiceStatusUnpaid,
			InvoicePaidAmount:     decimal.Zero,
			InvoiceItems:          items,
		}
		if err := tx.Create(&inv).Error; err != nil {
			// race concurrent generation → partial unique index menang satu,
			// sisanya diterjemahkan jadi already-exists (tanpa retry di sini)
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: lease %s period %s..%s", billingerr.ErrInvoiceAlreadyExists,
					leaseID, periodStart.Format("2006-01-02"), periodEnd.Format("2006-01-02"))
			}
			return err
		}

		out = &inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

type usageKey struct {
	feeID uuid.UUID
	month string
}

// loadUsageForFees: satu query untuk semua usage record fee variable di periode
func loadUsageForFees(tx *gorm.DB, fees []feeModel.LeaseFee, months []string) (map[usageKey]usageModel.UsageRecord, error) {
	var variableIDs []uuid.UUID
	for _, f := range fees {
		if f.LeaseFeeType == feeModel.LeaseFeeTypeVariable {
			variableIDs = append(variableIDs, f.LeaseFeeID)
		}
	}
	out := make(map[usageKey]usageModel.UsageRecord)
	if len(variableIDs) == 0 {
		return out, nil
	}
	var records []usageModel.UsageRecord
	if err := tx.Where("usage_record_fee_id IN ? AND usage_record_period_month IN ?", variableIDs, months).
		Find(&records).Error; err != nil {
		return nil, err
	}
	for _, r := range records {
		out[usageKey{feeID: r.UsageRecordFeeID, month: r.UsageRecordPeriodMonth}] = r
	}
	return out, nil
}

// computeDiscount: percent → subtotal*value/100; fixed → min(value, subtotal)
// (diskon tidak boleh membalik tanda subtotal)
func computeDiscount(lease *leaseModel.LeaseContract, subtotal decimal.Decimal) decimal.Decimal {
	if lease.LeaseContractDiscountType == nil || lease.LeaseContractDiscountValue == nil {
		return decimal.Zero
	}
	switch *lease.LeaseContractDiscountType {
	case leaseModel.DiscountTypePercent:
		return subtotal.Mul(*lease.LeaseContractDiscountValue).Div(decimal.NewFromInt(100)).Round(2)
	case leaseModel.DiscountTypeFixed:
		if lease.LeaseContractDiscountValue.GreaterThan(subtotal) {
			return subtotal
		}
		return lease.LeaseContractDiscountValue.Round(2)
	}
	return decimal.Zero
}

// monthBounds: batas tanggal untuk item variable per bulan ("2006-01" → 1..akhir)
func monthBounds(month string) (time.Time, time.Time) {
	t, _ := time.Parse("2006-01", month)
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC)
	return start, end
}
