package core

import (
	"fmt"
	"time"
)

// MonthBucket identifies a calendar month. Transactions are grouped into
// buckets for the month-over-month comparisons on the dashboard.
type MonthBucket struct {
	Year  int
	Month int // 1-12
}

// Bucket returns the month bucket the date falls into.
func (d Date) Bucket() MonthBucket {
	return MonthBucket{Year: d.Year(), Month: d.Month()}
}

// SameMonth reports whether two dates fall in the same calendar month.
func SameMonth(a, b Date) bool {
	return a.Bucket() == b.Bucket()
}

// Previous returns the preceding month, rolling the year back at the
// January boundary: (2024, 1) -> (2023, 12).
func (b MonthBucket) Previous() MonthBucket {
	if b.Month == 1 {
		return MonthBucket{Year: b.Year - 1, Month: 12}
	}
	return MonthBucket{Year: b.Year, Month: b.Month - 1}
}

// Contains reports whether the date falls inside this bucket.
func (b MonthBucket) Contains(d Date) bool {
	return d.Bucket() == b
}

func (b MonthBucket) String() string {
	return fmt.Sprintf("%04d-%02d", b.Year, b.Month)
}

// ParseMonthBucket parses a YYYY-MM string. Anything beyond the seven
// canonical characters is rejected.
func ParseMonthBucket(s string) (MonthBucket, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return MonthBucket{}, ErrInvalidDate
	}
	if t.Year() < 1 {
		return MonthBucket{}, ErrInvalidDate
	}
	return MonthBucket{Year: t.Year(), Month: int(t.Month())}, nil
}
