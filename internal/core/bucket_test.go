package core

import "testing"

func TestSameMonth(t *testing.T) {
	a := NewDate(2024, 3, 1)
	b := NewDate(2024, 3, 31)
	c := NewDate(2024, 4, 1)

	if !SameMonth(a, a) {
		t.Fatal("SameMonth must be reflexive")
	}
	if !SameMonth(a, b) || !SameMonth(b, a) {
		t.Fatal("SameMonth must be symmetric for dates in one month")
	}
	if SameMonth(a, c) || SameMonth(c, a) {
		t.Fatal("adjacent months must not compare equal")
	}
}

func TestPreviousMonth(t *testing.T) {
	cases := []struct {
		in, want MonthBucket
	}{
		{MonthBucket{2024, 6}, MonthBucket{2024, 5}},
		{MonthBucket{2024, 1}, MonthBucket{2023, 12}},
		{MonthBucket{2000, 2}, MonthBucket{2000, 1}},
	}
	for _, tc := range cases {
		if got := tc.in.Previous(); got != tc.want {
			t.Fatalf("%v.Previous() = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestBucketContains(t *testing.T) {
	b := MonthBucket{Year: 2024, Month: 2}
	if !b.Contains(NewDate(2024, 2, 29)) {
		t.Fatal("leap day belongs to February bucket")
	}
	if b.Contains(NewDate(2023, 2, 1)) {
		t.Fatal("same month of another year is a different bucket")
	}
}

func TestParseMonthBucket(t *testing.T) {
	b, err := ParseMonthBucket("2024-06")
	if err != nil || b != (MonthBucket{2024, 6}) {
		t.Fatalf("got %v err=%v", b, err)
	}
	for _, bad := range []string{"", "2024", "2024-13", "2024-00", "junk", "2024-01-15", "2024-01x", "2024-1"} {
		if _, err := ParseMonthBucket(bad); err == nil {
			t.Fatalf("%q should not parse", bad)
		}
	}
}
