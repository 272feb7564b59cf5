package dateutil

import (
	"testing"
	"time"
)

func TestParseAndFormat(t *testing.T) {
	got, err := Parse(" 2024-03-01 ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("unexpected date: %s", got)
	}
	if Format(got) != "2024-03-01" {
		t.Fatalf("unexpected format: %s", Format(got))
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, raw := range []string{"", "01/03/2024", "2024-13-01"} {
		if _, err := Parse(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestParseOptional(t *testing.T) {
	got, err := ParseOptional("")
	if err != nil || !got.IsZero() {
		t.Fatalf("expected zero time, got %s err=%v", got, err)
	}
	if Format(time.Time{}) != "" {
		t.Fatalf("zero time must format as empty string")
	}
}

func TestDay(t *testing.T) {
	loc := time.FixedZone("COT", -5*60*60)
	in := time.Date(2024, time.March, 1, 22, 30, 0, 0, loc)
	if got := Day(in); Format(got) != "2024-03-02" {
		t.Fatalf("expected utc day 2024-03-02, got %s", Format(got))
	}
}
