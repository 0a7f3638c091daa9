// file: internals/features/billing/invoices/service/period.go
package service

import (
	"fmt"
	"time"

	"propertiku_backend/internals/features/billing/billingerr"
)

// lastDayOfMonth: jumlah hari di bulan tsb
func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// dateOnDay: tanggal billingDay pada (year, month), di-clamp ke akhir bulan pendek
func dateOnDay(year int, month time.Month, day int) time.Time {
	if last := lastDayOfMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// AddMonthsClamped: maju n bulan dari t dengan hari target billingDay
// (31 Jan + 1 bulan → 28/29 Feb, bukan 2/3 Mar seperti AddDate)
func AddMonthsClamped(t time.Time, months int, billingDay int) time.Time {
	y, m, _ := t.Date()
	total := int(m) - 1 + months
	return dateOnDay(y+total/12, time.Month(total%12+1), billingDay)
}

// DerivePeriod: turunkan periode tagihan dari billing_day + cycle relatif ke now.
// Periode = cycle bulan kalender, mulai billing_day bulan anchor (bulan now).
func DerivePeriod(billingDay, cycleMonths int, now time.Time) (start, end time.Time) {
	y, m, _ := now.UTC().Date()
	start = dateOnDay(y, m, billingDay)
	end = AddMonthsClamped(start, cycleMonths, billingDay)
	return start, end
}

// ValidatePeriod: periode eksplisit dari caller harus end > start dan
// selaras dengan cycle (end == start maju cycle bulan pada billing_day).
func ValidatePeriod(start, end time.Time, billingDay, cycleMonths int) error {
	if !end.After(start) {
		return fmt.Errorf("%w: period end %s <= start %s", billingerr.ErrInvalidPeriod, end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	if want := AddMonthsClamped(start, cycleMonths, billingDay); !end.Equal(want) {
		return fmt.Errorf("%w: period not aligned to %d-month cycle (want end %s)", billingerr.ErrInvalidPeriod, cycleMonths, want.Format("2006-01-02"))
	}
	return nil
}

// CoveredMonths: daftar "YYYY-MM" yang dicakup periode (kunci usage ledger)
func CoveredMonths(start time.Time, cycleMonths int) []string {
	out := make([]string, 0, cycleMonths)
	y, m, _ := start.Date()
	for i := 0; i < cycleMonths; i++ {
		total := int(m) - 1 + i
		out = append(out, fmt.Sprintf("%04d-%02d", y+total/12, total%12+1))
	}
	return out
}
