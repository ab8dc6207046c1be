// Package brformat renders dates, times, prices, and appointment statuses as
// pt-BR display strings for API responses and notification emails.
package brformat

import (
	"fmt"
	"math"
	"strings"
	"time"
)

var months = [12]string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

var weekDays = [7]string{
	"Domingo", "Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado",
}

var statusLabels = map[string]string{
	"SCHEDULED":   "Agendado",
	"IN_PROGRESS": "Em Consulta",
	"FINISHED":    "Finalizado",
	"CANCELED":    "Cancelado",
}

// Date formats an instant as "9 de Set, 2025".
func Date(t time.Time) string {
	return fmt.Sprintf("%d de %s, %d", t.Day(), months[t.Month()-1], t.Year())
}

// Time formats an instant as "14h30", or "14h" when minutes are zero.
func Time(t time.Time) string {
	if t.Minute() > 0 {
		return fmt.Sprintf("%dh%02d", t.Hour(), t.Minute())
	}
	return fmt.Sprintf("%dh", t.Hour())
}

// Price formats a value in reais as "R$ 1.234,56".
func Price(value float64) string {
	cents := int64(math.Round(value * 100))
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, b.String(), frac)
}

// StatusLabel maps a stored appointment status to its display label.
// Unknown statuses pass through unchanged.
func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

// WeekDayRange formats a day range as "Segunda a Sexta".
func WeekDayRange(from, to int) string {
	return fmt.Sprintf("%s a %s", weekDays[from], weekDays[to])
}

// TimeDisplay formats a stored "HH:MM:SS" clock string as "8h30", dropping
// the minutes when they are zero ("8h").
func TimeDisplay(clock string) string {
	parts := strings.SplitN(clock, ":", 3)
	hours := strings.TrimPrefix(parts[0], "0")
	if hours == "" {
		hours = "0"
	}
	if len(parts) > 1 && parts[1] != "00" {
		return hours + "h" + parts[1]
	}
	return hours + "h"
}

// TimeRange formats two stored clock strings as "8h às 17h".
func TimeRange(from, to string) string {
	return TimeDisplay(from) + " às " + TimeDisplay(to)
}
