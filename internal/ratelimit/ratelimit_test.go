package ratelimit

import "testing"

func TestAllowRequestMinuteLimit(t *testing.T) {
	rl := NewRateLimiter(2, 100, true)

	if !rl.AllowRequest() || !rl.AllowRequest() {
		t.Fatal("first two requests should be allowed")
	}
	if rl.AllowRequest() {
		t.Fatal("third request within the minute should be rejected")
	}
}

func TestAllowRequestHourLimit(t *testing.T) {
	rl := NewRateLimiter(0, 3, true)

	for i := 0; i < 3; i++ {
		if !rl.AllowRequest() {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.AllowRequest() {
		t.Fatal("fourth request within the hour should be rejected")
	}
}

func TestDisabledLimiterAlwaysAllows(t *testing.T) {
	rl := NewRateLimiter(1, 1, false)

	for i := 0; i < 10; i++ {
		if !rl.AllowRequest() {
			t.Fatal("disabled limiter must never reject")
		}
	}
}

func TestResetClearsWindows(t *testing.T) {
	rl := NewRateLimiter(1, 10, true)

	rl.AllowRequest()
	if rl.AllowRequest() {
		t.Fatal("limit should be hit before reset")
	}

	rl.Reset()
	if !rl.AllowRequest() {
		t.Fatal("request after reset should be allowed")
	}
}

func TestGetStats(t *testing.T) {
	rl := NewRateLimiter(5, 50, true)

	rl.AllowRequest()
	rl.AllowRequest()

	stats := rl.GetStats()
	if !stats.Enabled {
		t.Fatal("stats should report enabled")
	}
	if stats.RequestsLastMinute != 2 || stats.RequestsLastHour != 2 {
		t.Errorf("usage = %d/%d, want 2/2", stats.RequestsLastMinute, stats.RequestsLastHour)
	}
	if stats.RemainingThisMinute != 3 || stats.RemainingThisHour != 48 {
		t.Errorf("remaining = %d/%d, want 3/48", stats.RemainingThisMinute, stats.RemainingThisHour)
	}
}

func TestGetStatsDisabled(t *testing.T) {
	rl := NewRateLimiter(5, 50, false)
	if stats := rl.GetStats(); stats.Enabled {
		t.Fatal("disabled limiter should report Enabled=false")
	}
}
