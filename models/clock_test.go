package models

import (
	"encoding/json"
	"testing"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    Clock
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"9:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"not-a-time", 0, true},
	}

	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestClockString(t *testing.T) {
	if got := Clock(540).String(); got != "09:00" {
		t.Errorf("Clock(540).String() = %q, want %q", got, "09:00")
	}
	if got := Clock(0).String(); got != "00:00" {
		t.Errorf("Clock(0).String() = %q, want %q", got, "00:00")
	}
}

func TestClockJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(Clock(615))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `"10:15"` {
		t.Errorf("marshal = %s, want %q", data, `"10:15"`)
	}

	var c Clock
	if err := json.Unmarshal(data, &c); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if c != 615 {
		t.Errorf("unmarshal = %d, want 615", c)
	}
}
