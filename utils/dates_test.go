package utils

import (
	"testing"
	"time"
)

func TestIsValidDisplayDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"empty is valid", "", true},
		{"normal date", "15-06-2024", true},
		{"leap day", "29-02-2024", true},
		{"no leap day", "29-02-2023", false},
		{"no feb 31", "31-02-2024", false},
		{"no month 13", "10-13-2024", false},
		{"no day zero", "00-05-2024", false},
		{"year below window", "01-01-2019", false},
		{"year above window", "01-01-2031", false},
		{"window edges", "01-01-2020", true},
		{"window top edge", "31-12-2030", true},
		{"iso order rejected", "2024-06-15", false},
		{"missing zero pad", "5-06-2024", false},
		{"garbage", "aa-bb-cccc", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidDisplayDate(tt.in); got != tt.want {
				t.Errorf("IsValidDisplayDate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestToBackendDateRoundTrip(t *testing.T) {
	dates := []string{"01-01-2020", "29-02-2024", "15-06-2025", "31-12-2030"}
	for _, d := range dates {
		back := ToBackendDate(d)
		if got := ToDisplayDate(back); got != d {
			t.Errorf("round trip %q -> %q -> %q", d, back, got)
		}
	}
}

func TestToBackendDateFallback(t *testing.T) {
	// Invalid input silently becomes today's date.
	today := time.Now().Format(BackendDateLayout)
	if got := ToBackendDate("31-02-2024"); got != today {
		t.Errorf("ToBackendDate(invalid) = %q, want today %q", got, today)
	}
	if got := ToBackendDate(""); got != "" {
		t.Errorf("ToBackendDate(\"\") = %q, want empty", got)
	}
}

func TestAutoFormatDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"1", "1"},
		{"15", "15"},
		{"150", "15-0"},
		{"1506", "15-06"},
		{"15062", "15-06-2"},
		{"15062024", "15-06-2024"},
		{"15-06-2024", "15-06-2024"},
		{"150620249999", "15-06-2024"},
		{"15/06/2024", "15-06-2024"},
	}
	for _, tt := range tests {
		if got := AutoFormatDate(tt.in); got != tt.want {
			t.Errorf("AutoFormatDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStayOrderOK(t *testing.T) {
	tests := []struct {
		name     string
		in, out  string
		expected bool
	}{
		{"checkout after checkin", "10-06-2024", "12-06-2024", true},
		{"same day stay", "10-06-2024", "10-06-2024", true},
		{"checkout before checkin", "12-06-2024", "10-06-2024", false},
		{"missing checkout", "10-06-2024", "", true},
		{"missing checkin", "", "10-06-2024", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StayOrderOK(tt.in, tt.out); got != tt.expected {
				t.Errorf("StayOrderOK(%q, %q) = %v, want %v", tt.in, tt.out, got, tt.expected)
			}
		})
	}
}
