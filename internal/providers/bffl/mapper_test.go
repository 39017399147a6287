package bffl

import "testing"

func TestMapStatus(t *testing.T) {
	cases := []struct {
		status  string
		isLive  bool
		isFinal bool
	}{
		{"live", true, false},
		{"Halftime", true, false},
		{"final", false, true},
		{"ENDED", false, true},
		{"scheduled", false, false},
		{"postponed", false, false},
	}
	for _, tc := range cases {
		isLive, isFinal := mapStatus(tc.status)
		if isLive != tc.isLive || isFinal != tc.isFinal {
			t.Fatalf("mapStatus(%q) = (%v, %v), want (%v, %v)", tc.status, isLive, isFinal, tc.isLive, tc.isFinal)
		}
	}
}

func TestMapQuarterFallbacks(t *testing.T) {
	if got := mapQuarter("Q2", true, false); got != "Q2" {
		t.Fatalf("expected feed quarter to pass through, got %q", got)
	}
	if got := mapQuarter("", true, false); got != "Q4" {
		t.Fatalf("expected Q4 fallback for live game, got %q", got)
	}
	if got := mapQuarter("", false, true); got != "Q4" {
		t.Fatalf("expected Q4 fallback for final game, got %q", got)
	}
	if got := mapQuarter("  ", false, false); got != "Scheduled" {
		t.Fatalf("expected Scheduled fallback, got %q", got)
	}
}
