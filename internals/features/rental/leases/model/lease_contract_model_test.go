// file: internals/features/rental/leases/model/lease_contract_model_test.go
package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validContract() LeaseContract {
	return LeaseContract{
		LeaseContractStartDate:          time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		LeaseContractEndDate:            time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		LeaseContractRentAmount:         decimal.NewFromInt(2500),
		LeaseContractBillingDay:         1,
		LeaseContractBillingCycleMonths: 1,
		LeaseContractStatus:             LeaseStatusDraft,
	}
}

func TestLeaseContractGuards(t *testing.T) {
	c := validContract()
	assert.NoError(t, c.BeforeSave(nil))

	c = validContract()
	c.LeaseContractBillingDay = 0
	assert.Error(t, c.BeforeSave(nil))

	c = validContract()
	c.LeaseContractBillingDay = 32
	assert.Error(t, c.BeforeSave(nil))

	c = validContract()
	c.LeaseContractBillingCycleMonths = 5
	assert.Error(t, c.BeforeSave(nil))

	c = validContract()
	c.LeaseContractEndDate = c.LeaseContractStartDate
	assert.Error(t, c.BeforeSave(nil))

	c = validContract()
	c.LeaseContractRentAmount = decimal.NewFromInt(-1)
	assert.Error(t, c.BeforeSave(nil))
}

func TestLeaseContractDiscountPair(t *testing.T) {
	dt := DiscountTypePercent
	dv := decimal.NewFromInt(10)

	// type tanpa value
	c := validContract()
	c.LeaseContractDiscountType = &dt
	assert.Error(t, c.BeforeSave(nil))

	// value tanpa type
	c = validContract()
	c.LeaseContractDiscountValue = &dv
	assert.Error(t, c.BeforeSave(nil))

	// pasangan lengkap
	c = validContract()
	c.LeaseContractDiscountType = &dt
	c.LeaseContractDiscountValue = &dv
	assert.NoError(t, c.BeforeSave(nil))

	// type tidak dikenal
	bad := DiscountType("maybe")
	c.LeaseContractDiscountType = &bad
	assert.Error(t, c.BeforeSave(nil))
}

func TestLeaseContractIsActive(t *testing.T) {
	c := validContract()
	assert.False(t, c.IsActive())

	c.LeaseContractStatus = LeaseStatusActive
	assert.True(t, c.IsActive())
}
