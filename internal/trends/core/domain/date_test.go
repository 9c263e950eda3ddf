package domain

import (
	"testing"
	"time"
)

func TestParseDate_Layouts(t *testing.T) {
	tests := []struct {
		in   string
		want Date
	}{
		{"2024-01-02", Date{2024, time.January, 2}},
		{" 2024-01-02 ", Date{2024, time.January, 2}},
		{"2024-01-02T23:59:59Z", Date{2024, time.January, 2}},
		{"2024-01-02T10:00:00+05:00", Date{2024, time.January, 2}},
		{"2024-01-02 08:30:00", Date{2024, time.January, 2}},
	}

	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if err != nil {
			t.Fatalf("ParseDate(%q) unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseDate(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, in := range []string{"", "yesterday", "2024-13-01", "01/02/2024"} {
		if _, err := ParseDate(in); err == nil {
			t.Fatalf("ParseDate(%q): expected error", in)
		}
	}
}

func TestDate_CompareIsCalendarOrder(t *testing.T) {
	// "999-..." would sort after "1999-..." as a string
	a := NewDate(999, time.June, 1)
	b := NewDate(1999, time.January, 1)
	if !a.Before(b) || !b.After(a) {
		t.Fatalf("expected %s before %s", a, b)
	}
	if a.Compare(a) != 0 {
		t.Fatalf("expected equal dates to compare 0")
	}
	if NewDate(2024, time.February, 10).Compare(NewDate(2024, time.February, 9)) != 1 {
		t.Fatalf("expected later day to compare 1")
	}
}

func TestDate_String(t *testing.T) {
	if s := NewDate(999, time.June, 1).String(); s != "0999-06-01" {
		t.Fatalf("unexpected string %s", s)
	}
	if NewDate(2024, time.February, 30).String() != "2024-03-01" {
		t.Fatalf("expected normalization of out-of-range day")
	}
}

func TestClassifyGrowth(t *testing.T) {
	if ClassifyGrowth(0.1) != TrendRising || ClassifyGrowth(-0.1) != TrendDeclining || ClassifyGrowth(0) != TrendStable {
		t.Fatalf("unexpected classification")
	}
}

func TestNormalizeKeyword(t *testing.T) {
	if got := NormalizeKeyword("  Running Shoes "); got != "running shoes" {
		t.Fatalf("unexpected keyword %q", got)
	}
}
