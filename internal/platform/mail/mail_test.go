package mail

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

var testConfirmation = Confirmation{
	PatientName:   "Maria Silva",
	PatientEmail:  "maria@example.com",
	DoctorName:    "Dr. João Souza",
	Specialty:     "Cardiologia",
	AppointmentAt: time.Date(2025, 9, 9, 14, 30, 0, 0, time.UTC),
	Price:         250,
}

func TestRenderConfirmation_Subject(t *testing.T) {
	subject, _, _ := renderConfirmation(testConfirmation)

	want := "Consulta Confirmada - 9 de Set, 2025 às 14h30"
	if subject != want {
		t.Errorf("subject = %q, want %q", subject, want)
	}
}

func TestRenderConfirmation_TextBody(t *testing.T) {
	_, text, _ := renderConfirmation(testConfirmation)

	for _, want := range []string{
		"Olá, Maria Silva!",
		"Data: 9 de Set, 2025",
		"Horário: 14h30",
		"Médico: Dr. João Souza",
		"Especialidade: Cardiologia",
		"Valor: R$ 250,00",
		"2 horas de antecedência",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("text body missing %q", want)
		}
	}
}

func TestRenderConfirmation_HTMLBody(t *testing.T) {
	_, _, html := renderConfirmation(testConfirmation)

	for _, want := range []string{
		"<strong>Maria Silva</strong>",
		"9 de Set, 2025",
		"14h30",
		"Dr. João Souza",
		"Cardiologia",
		"R$ 250,00",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("html body missing %q", want)
		}
	}
}

func TestSendAppointmentConfirmation_DisabledIsNoop(t *testing.T) {
	s := NewSender(Config{Enabled: false}, zerolog.Nop())

	if err := s.SendAppointmentConfirmation(context.Background(), testConfirmation); err != nil {
		t.Errorf("disabled sender should be a no-op, got %v", err)
	}
}
