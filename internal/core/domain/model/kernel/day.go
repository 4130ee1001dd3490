package kernel

import (
	"fmt"
	"time"

	"routeboard/internal/pkg/errs"
	"routeboard/internal/pkg/guard"
)

// DayLayout is the calendar date format used on the wire and in logs.
const DayLayout = "2006-01-02"

var ErrDayIsNotConstructed = errs.NewValueIsRequiredError(
	"day must be created via DayOf or ParseDay constructors")

// Day is a calendar date a delivery board is scoped to. It carries no time of day
// and no zone: two instants on the same local date map to the same Day.
// Day is comparable and may be used as a map key.
type Day struct {
	year  int
	month time.Month
	day   int
	guard guard.ConstructorGuard
}

// DayOf returns the calendar date of t in t's own location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{year: y, month: m, day: d, guard: guard.NewConstructorGuard()}
}

// ParseDay reads a YYYY-MM-DD date.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return Day{}, errs.NewValueIsInvalidErrorWithCause("day", fmt.Errorf("%q is not a %s date", s, DayLayout))
	}
	return DayOf(t), nil
}

func (d Day) Validate() error {
	return d.guard.Validate(ErrDayIsNotConstructed)
}

// Time returns midnight UTC of the day. It is the form stored in the database.
func (d Day) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the day n days later (or earlier for negative n).
func (d Day) AddDays(n int) Day {
	return DayOf(d.Time().AddDate(0, 0, n))
}

func (d Day) IsEqual(other Day) bool {
	return d.year == other.year && d.month == other.month && d.day == other.day
}

func (d Day) String() string {
	return d.Time().Format(DayLayout)
}

func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Day) UnmarshalText(data []byte) error {
	parsed, err := ParseDay(string(data))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
