package cryptofolio

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	today := Today()
	currentYear := today.Year()
	currentMonth := today.Month()

	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		// Standard ISO Format (Fallback)
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{"invalid-date", Date{}, true},

		// Relative Duration Format
		{"-1d", today.Add(-1), false},
		{"+1d", today.Add(1), false},
		{"1d", Date{}, true},
		{"-2w", today.Add(-14), false},
		{"+1m", NewDate(currentYear, currentMonth+1, today.Day()), false},
		{"-1y", NewDate(currentYear-1, currentMonth, today.Day()), false},

		// [MM-]DD Format
		{"27", NewDate(currentYear, currentMonth, 27), false},
		{"1-15", NewDate(currentYear, time.January, 15), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.err {
				if err == nil {
					t.Fatalf("ParseDate(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) error = %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{`"2024-01-01"`, NewDate(2024, time.January, 1), false},
		// the backend serializes purchase dates as full timestamps too
		{`"2024-01-01T00:00:00.000Z"`, NewDate(2024, time.January, 1), false},
		{`"not a date"`, Date{}, true},
		{`42`, Date{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.err {
				if err == nil {
					t.Fatalf("Unmarshal(%s) = %v, want error", tt.input, d)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.input, err)
			}
			if d != tt.expected {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.input, d, tt.expected)
			}
		})
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(NewDate(2024, time.March, 7))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(b) != `"2024-03-07"` {
		t.Errorf("Marshal() = %s, want %q", b, `"2024-03-07"`)
	}
}
