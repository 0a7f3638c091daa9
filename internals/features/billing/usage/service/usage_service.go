// file: internals/features/billing/usage/service/usage_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"propertiku_backend/internals/features/billing/billingerr"
	feeModel "propertiku_backend/internals/features/billing/fees/model"
	usageModel "propertiku_backend/internals/features/billing/usage/model"
	"propertiku_backend/internals/helpers"
)

// UsageService menulis usage ledger: maksimal satu record per (fee, bulan).
type UsageService struct {
	DB *gorm.DB
}

func NewUsageService(db *gorm.DB) *UsageService {
	return &UsageService{DB: db}
}

// RecordUsageInput: satu entri pemakaian
type RecordUsageInput struct {
	FeeID       uuid.UUID
	PeriodMonth string // "YYYY-MM"
	UsageValue  decimal.Decimal
	Notes       *string
}

// RecordUsage menulis satu usage record. Duplikat (fee, bulan) ditolak dengan
// DuplicateUsage — tidak pernah overwrite diam-diam, supaya total invoice
// reproducible saat regenerasi.
func (s *UsageService) RecordUsage(ctx context.Context, in RecordUsageInput) (*usageModel.UsageRecord, error) {
	if !helper.ValidPeriodMonth(in.PeriodMonth) {
		return nil, fmt.Errorf("%w: period_month must be YYYY-MM", billingerr.ErrValidation)
	}
	if in.UsageValue.IsNegative() {
		return nil, fmt.Errorf("%w: usage_value must be >= 0", billingerr.ErrValidation)
	}

	var out *usageModel.UsageRecord
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var fee feeModel.LeaseFee
		if err := tx.Where("lease_fee_id = ?", in.FeeID).Take(&fee).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: fee %s", billingerr.ErrNotFound, in.FeeID)
			}
			return err
		}
		if fee.LeaseFeeType != feeModel.LeaseFeeTypeVariable {
			return fmt.Errorf("%w: fee %q is not a variable fee", billingerr.ErrValidation, fee.LeaseFeeName)
		}
		if !fee.LeaseFeeIsActive {
			return fmt.Errorf("%w: fee %q is inactive", billingerr.ErrValidation, fee.LeaseFeeName)
		}

		rec := usageModel.UsageRecord{
			UsageRecordLeaseID:     fee.LeaseFeeLeaseID,
			UsageRecordFeeID:       fee.LeaseFeeID,
			UsageRecordPeriodMonth: in.PeriodMonth,
			UsageRecordUsageValue:  in.UsageValue,
			// derived: value * unit_price
			UsageRecordTotalAmount: in.UsageValue.Mul(*fee.LeaseFeeUnitPrice).Round(2),
			UsageRecordNotes:       in.Notes,
		}
		if err := tx.Create(&rec).Error; err != nil {
			// unique (fee, period_month) — race maupun input dobel sama-sama
			// jadi DuplicateUsage di boundary persistence
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: fee %s month %s", billingerr.ErrDuplicateUsage, in.FeeID, in.PeriodMonth)
			}
			return err
		}
		out = &rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BulkResult: hasil per entri untuk bulk (entri gagal tidak membatalkan batch)
type BulkResult struct {
	Index  int                     `json:"index"`
	Record *usageModel.UsageRecord `json:"record,omitempty"`
	Error  string                  `json:"error,omitempty"`
	Status int                     `json:"status"`
}

// BulkRecordUsage memproses batch per-entri: tiap entri sukses/gagal sendiri,
// tidak all-or-nothing. Hasilnya deterministik mengikuti urutan input.
func (s *UsageService) BulkRecordUsage(ctx context.Context, entries []RecordUsageInput) []BulkResult {
	results := make([]BulkResult, 0, len(entries))
	for i, in := range entries {
		rec, err := s.RecordUsage(ctx, in)
		if err != nil {
			results = append(results, BulkResult{
				Index:  i,
				Error:  err.Error(),
				Status: billingerr.HTTPStatus(err),
			})
			continue
		}
		results = append(results, BulkResult{Index: i, Record: rec, Status: 201})
	}
	return results
}

// FindUsage: lookup satu record berdasarkan kunci ledger
func (s *UsageService) FindUsage(ctx context.Context, feeID uuid.UUID, periodMonth string) (*usageModel.UsageRecord, error) {
	var rec usageModel.UsageRecord
	err := s.DB.WithContext(ctx).
		Where("usage_record_fee_id = ? AND usage_record_period_month = ?", feeID, periodMonth).
		Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: usage fee %s month %s", billingerr.ErrNotFound, feeID, periodMonth)
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
