package brformat

import (
	"testing"
	"time"
)

func TestDate(t *testing.T) {
	got := Date(time.Date(2025, 9, 9, 0, 0, 0, 0, time.UTC))
	if got != "9 de Set, 2025" {
		t.Errorf("Date = %q, want %q", got, "9 de Set, 2025")
	}
}

func TestTime(t *testing.T) {
	tests := []struct {
		hour, minute int
		want         string
	}{
		{14, 30, "14h30"},
		{14, 0, "14h"},
		{8, 5, "8h05"},
	}
	for _, tt := range tests {
		ts := time.Date(2025, 1, 1, tt.hour, tt.minute, 0, 0, time.UTC)
		if got := Time(ts); got != tt.want {
			t.Errorf("Time(%02d:%02d) = %q, want %q", tt.hour, tt.minute, got, tt.want)
		}
	}
}

func TestPrice(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{100, "R$ 100,00"},
		{99.9, "R$ 99,90"},
		{1234.56, "R$ 1.234,56"},
		{1000000, "R$ 1.000.000,00"},
		{0, "R$ 0,00"},
	}
	for _, tt := range tests {
		if got := Price(tt.value); got != tt.want {
			t.Errorf("Price(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		status, want string
	}{
		{"SCHEDULED", "Agendado"},
		{"IN_PROGRESS", "Em Consulta"},
		{"FINISHED", "Finalizado"},
		{"CANCELED", "Cancelado"},
		{"UNKNOWN", "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := StatusLabel(tt.status); got != tt.want {
			t.Errorf("StatusLabel(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestWeekDayRange(t *testing.T) {
	if got := WeekDayRange(1, 5); got != "Segunda a Sexta" {
		t.Errorf("WeekDayRange(1,5) = %q", got)
	}
	if got := WeekDayRange(5, 1); got != "Sexta a Segunda" {
		t.Errorf("WeekDayRange(5,1) = %q", got)
	}
}

func TestTimeDisplay(t *testing.T) {
	tests := []struct {
		clock, want string
	}{
		{"08:00:00", "8h"},
		{"08:30:00", "8h30"},
		{"17:00:00", "17h"},
		{"00:15:00", "0h15"},
	}
	for _, tt := range tests {
		if got := TimeDisplay(tt.clock); got != tt.want {
			t.Errorf("TimeDisplay(%q) = %q, want %q", tt.clock, got, tt.want)
		}
	}
}

func TestTimeRange(t *testing.T) {
	if got := TimeRange("08:00:00", "17:30:00"); got != "8h às 17h30" {
		t.Errorf("TimeRange = %q, want %q", got, "8h às 17h30")
	}
}
