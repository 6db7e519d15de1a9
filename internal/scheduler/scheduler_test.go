package scheduler

import "testing"

func TestParseDailyRunTime(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"03:00", "0 3 * * *"},
		{"04:30", "30 4 * * *"},
		{"23:59", "59 23 * * *"},
		{"0:05", "5 0 * * *"},
	}
	for _, tt := range tests {
		if got := parseDailyRunTime(tt.input, "03:00"); got != tt.want {
			t.Errorf("parseDailyRunTime(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseDailyRunTimeFallback(t *testing.T) {
	for _, input := range []string{"", "midnight", "25"} {
		if got := parseDailyRunTime(input, "04:00"); got != "0 4 * * *" {
			t.Errorf("parseDailyRunTime(%q) = %q, want fallback spec", input, got)
		}
	}
}
