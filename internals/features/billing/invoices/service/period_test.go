// file: internals/features/billing/invoices/service/period_test.go
package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"propertiku_backend/internals/features/billing/billingerr"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDerivePeriodMonthly(t *testing.T) {
	start, end := DerivePeriod(1, 1, date(2026, time.March, 15))
	assert.Equal(t, date(2026, time.March, 1), start)
	assert.Equal(t, date(2026, time.April, 1), end)
}

func TestDerivePeriodQuarterly(t *testing.T) {
	start, end := DerivePeriod(10, 3, date(2026, time.November, 20))
	assert.Equal(t, date(2026, time.November, 10), start)
	assert.Equal(t, date(2027, time.February, 10), end)
}

func TestDerivePeriodClampsShortMonth(t *testing.T) {
	// billing day 31 di Februari harus jatuh ke akhir bulan, bukan meluber ke Maret
	start, end := DerivePeriod(31, 1, date(2026, time.February, 5))
	assert.Equal(t, date(2026, time.February, 28), start)
	assert.Equal(t, date(2026, time.March, 31), end)
}

func TestAddMonthsClamped(t *testing.T) {
	got := AddMonthsClamped(date(2026, time.January, 31), 1, 31)
	assert.Equal(t, date(2026, time.February, 28), got)

	// tahun kabisat
	got = AddMonthsClamped(date(2024, time.January, 31), 1, 31)
	assert.Equal(t, date(2024, time.February, 29), got)

	// lintas tahun
	got = AddMonthsClamped(date(2026, time.November, 1), 3, 1)
	assert.Equal(t, date(2027, time.February, 1), got)
}

func TestValidatePeriod(t *testing.T) {
	// selaras
	err := ValidatePeriod(date(2026, time.March, 1), date(2026, time.April, 1), 1, 1)
	assert.NoError(t, err)

	// end <= start
	err = ValidatePeriod(date(2026, time.April, 1), date(2026, time.March, 1), 1, 1)
	assert.True(t, errors.Is(err, billingerr.ErrInvalidPeriod))

	// tidak selaras cycle
	err = ValidatePeriod(date(2026, time.March, 1), date(2026, time.March, 20), 1, 1)
	assert.True(t, errors.Is(err, billingerr.ErrInvalidPeriod))
}

func TestCoveredMonths(t *testing.T) {
	assert.Equal(t, []string{"2026-03"}, CoveredMonths(date(2026, time.March, 1), 1))
	assert.Equal(t,
		[]string{"2026-11", "2026-12", "2027-01"},
		CoveredMonths(date(2026, time.November, 1), 3))
}
