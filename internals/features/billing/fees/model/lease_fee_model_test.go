// file: internals/features/billing/fees/model/lease_fee_model_test.go
package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestLeaseFeeFixedVariant(t *testing.T) {
	fee := LeaseFee{
		LeaseFeeName:   "Parkir",
		LeaseFeeType:   LeaseFeeTypeFixed,
		LeaseFeeAmount: decPtr("50"),
	}
	assert.NoError(t, fee.BeforeSave(nil))

	// fixed tanpa amount
	fee.LeaseFeeAmount = nil
	assert.Error(t, fee.BeforeSave(nil))

	// fixed tidak boleh bawa field variable
	fee.LeaseFeeAmount = decPtr("50")
	fee.LeaseFeeUnitPrice = decPtr("1.5")
	assert.Error(t, fee.BeforeSave(nil))
}

func TestLeaseFeeVariableVariant(t *testing.T) {
	fee := LeaseFee{
		LeaseFeeName:        "Listrik",
		LeaseFeeType:        LeaseFeeTypeVariable,
		LeaseFeeUnitPrice:   decPtr("1.50"),
		LeaseFeeBillingUnit: strPtr("kWh"),
	}
	assert.NoError(t, fee.BeforeSave(nil))

	// variable tanpa unit price
	fee.LeaseFeeUnitPrice = nil
	assert.Error(t, fee.BeforeSave(nil))

	// variable tanpa billing unit
	fee.LeaseFeeUnitPrice = decPtr("1.50")
	fee.LeaseFeeBillingUnit = nil
	assert.Error(t, fee.BeforeSave(nil))

	// variable tidak boleh bawa amount fixed
	fee.LeaseFeeBillingUnit = strPtr("kWh")
	fee.LeaseFeeAmount = decPtr("50")
	assert.Error(t, fee.BeforeSave(nil))
}

func TestLeaseFeeInvalidType(t *testing.T) {
	fee := LeaseFee{LeaseFeeName: "X", LeaseFeeType: "weird"}
	assert.Error(t, fee.BeforeSave(nil))
}
