package attendance

import (
	"math"
	"time"

	"github.com/clinicore/staffops-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

// Classify determines the attendance status of a clock-in against the end of
// the grace period. A clock-in at or before graceEnd is on time; anything
// later is late with the delay rounded to whole minutes. Lateness never
// reduces pay: the payable interval always starts at the actual clock-in.
func Classify(clockIn, graceEnd time.Time) (attendance.Status, int) {
	if !clockIn.After(graceEnd) {
		return attendance.StatusPresent, 0
	}

	lateMinutes := int(math.Round(clockIn.Sub(graceEnd).Minutes()))
	return attendance.StatusLate, lateMinutes
}

// HourBuckets is the payable-hours split for one completed attendance record.
type HourBuckets struct {
	Total    decimal.Decimal
	Regular  decimal.Decimal
	Overtime decimal.Decimal
}

// ComputeHours splits the worked interval into total, regular and overtime
// hours, each rounded to 2 decimal places. Regular hours are capped at the
// standard shift length; the remainder is overtime.
//
// Both times are interpreted on the same nominal day. A clock-out earlier than
// the clock-in is taken to mean the shift crossed midnight and the clock-out
// belongs to the next day.
func ComputeHours(clockIn, clockOut time.Time, standardShiftHours int) HourBuckets {
	if clockOut.Before(clockIn) {
		clockOut = clockOut.Add(24 * time.Hour)
	}

	standard := decimal.NewFromInt(int64(standardShiftHours))
	total := decimal.NewFromFloat(clockOut.Sub(clockIn).Hours()).Round(2)

	regular := total
	if regular.GreaterThan(standard) {
		regular = standard
	}

	overtime := total.Sub(standard)
	if overtime.IsNegative() {
		overtime = decimal.Zero
	}

	return HourBuckets{
		Total:    total,
		Regular:  regular.Round(2),
		Overtime: overtime.Round(2),
	}
}
