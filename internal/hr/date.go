package hr

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

// Date is a civil date (no time of day, no location).
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, errors.Wrap(err, "invalid date")
	}

	return Date{t: t}, nil
}

func (d Date) String() string {
	return d.t.Format(dateLayout)
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

func (d Date) AddDays(days int) Date {
	return Date{t: d.t.AddDate(0, 0, days)}
}

func (d Date) Weekday() time.Weekday {
	return d.t.Weekday()
}

// DaysUntil returns the number of days from d to other (negative when other
// precedes d).
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t) / (24 * time.Hour))
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

// BusinessDays counts the Mon-Fri days in [start, end], both inclusive.
// A span that starts after it ends contains no business days.
func BusinessDays(start, end Date) int {
	if start.After(end) {
		return 0
	}

	days := start.DaysUntil(end) + 1

	count := 0
	for i := 0; i < days; i++ {
		wd := start.AddDays(i).Weekday()
		if wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}

	return count
}
