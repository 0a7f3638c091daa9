// file: internals/features/billing/usage/dto/usage_record_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	usageModel "propertiku_backend/internals/features/billing/usage/model"
	usageService "propertiku_backend/internals/features/billing/usage/service"
)

////////////////////////////////////////////////////////////////////////////////
// USAGE RECORDS — DTO
////////////////////////////////////////////////////////////////////////////////

type RecordUsageDTO struct {
	UsageRecordFeeID       uuid.UUID       `json:"usage_record_fee_id" validate:"required"`
	UsageRecordPeriodMonth string          `json:"usage_record_period_month" validate:"required,len=7"` // "YYYY-MM"
	UsageRecordUsageValue  decimal.Decimal `json:"usage_record_usage_value" validate:"required"`
	UsageRecordNotes       *string         `json:"usage_record_notes,omitempty" validate:"omitempty,max=500"`
}

type BulkRecordUsageDTO struct {
	Entries []RecordUsageDTO `json:"entries" validate:"required,min=1,max=100,dive"`
}

type UsageRecordResponse struct {
	UsageRecordID          uuid.UUID       `json:"usage_record_id"`
	UsageRecordLeaseID     uuid.UUID       `json:"usage_record_lease_id"`
	UsageRecordFeeID       uuid.UUID       `json:"usage_record_fee_id"`
	UsageRecordPeriodMonth string          `json:"usage_record_period_month"`
	UsageRecordUsageValue  decimal.Decimal `json:"usage_record_usage_value"`
	UsageRecordTotalAmount decimal.Decimal `json:"usage_record_total_amount"`
	UsageRecordNotes       *string         `json:"usage_record_notes,omitempty"`
	UsageRecordCreatedAt   time.Time       `json:"usage_record_created_at"`
}

// Hasil per entri bulk (urut mengikuti input)
type BulkEntryResult struct {
	Index  int                  `json:"index"`
	Status int                  `json:"status"`
	Record *UsageRecordResponse `json:"record,omitempty"`
	Error  string               `json:"error,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func (d RecordUsageDTO) ToInput() usageService.RecordUsageInput {
	return usageService.RecordUsageInput{
		FeeID:       d.UsageRecordFeeID,
		PeriodMonth: d.UsageRecordPeriodMonth,
		UsageValue:  d.UsageRecordUsageValue,
		Notes:       d.UsageRecordNotes,
	}
}

func ToUsageRecordResponse(m usageModel.UsageRecord) UsageRecordResponse {
	return UsageRecordResponse{
		UsageRecordID:          m.UsageRecordID,
		UsageRecordLeaseID:     m.UsageRecordLeaseID,
		UsageRecordFeeID:       m.UsageRecordFeeID,
		UsageRecordPeriodMonth: m.UsageRecordPeriodMonth,
		UsageRecordUsageValue:  m.UsageRecordUsageValue,
		UsageRecordTotalAmount: m.UsageRecordTotalAmount,
		UsageRecordNotes:       m.UsageRecordNotes,
		UsageRecordCreatedAt:   m.UsageRecordCreatedAt,
	}
}

func ToUsageRecordResponses(list []usageModel.UsageRecord) []UsageRecordResponse {
	out := make([]UsageRecordResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToUsageRecordResponse(m))
	}
	return out
}

func ToBulkEntryResults(results []usageService.BulkResult) []BulkEntryResult {
	out := make([]BulkEntryResult, 0, len(results))
	for _, r := range results {
		item := BulkEntryResult{Index: r.Index, Status: r.Status, Error: r.Error}
		if r.Record != nil {
			resp := ToUsageRecordResponse(*r.Record)
			item.Record = &resp
		}
		out = append(out, item)
	}
	return out
}
