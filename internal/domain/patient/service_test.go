package patient

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/medsched/medsched/internal/platform/web"
)

// -- Mock Repository --

type mockRepo struct {
	patients     map[uuid.UUID]*Patient
	appointments map[uuid.UUID][]*AppointmentSummary
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		patients:     make(map[uuid.UUID]*Patient),
		appointments: make(map[uuid.UUID][]*AppointmentSummary),
	}
}

func (m *mockRepo) Create(_ context.Context, p *Patient) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
	m.patients[p.ID] = p
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (m *mockRepo) GetByEmail(_ context.Context, email string) (*Patient, error) {
	for _, p := range m.patients {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Patient, int, error) {
	var result []*Patient
	for _, p := range m.patients {
		result = append(result, p)
	}
	return result, len(result), nil
}

func (m *mockRepo) ListAppointments(_ context.Context, patientID uuid.UUID) ([]*AppointmentSummary, error) {
	return m.appointments[patientID], nil
}

// -- Tests --

func TestCreatePatient(t *testing.T) {
	svc := NewService(newMockRepo())

	p, err := svc.Create(context.Background(), CreateInput{Name: "Maria Silva", Email: "maria@example.com"})
	if err != nil {
		t.Fatal(err)
	}
	if p.ID == uuid.Nil {
		t.Error("expected generated id")
	}
	if p.Name != "Maria Silva" {
		t.Errorf("name = %q", p.Name)
	}
}

func TestCreatePatient_DuplicateEmail(t *testing.T) {
	svc := NewService(newMockRepo())
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateInput{Name: "Maria Silva", Email: "maria@example.com"}); err != nil {
		t.Fatal(err)
	}

	_, err := svc.Create(ctx, CreateInput{Name: "Outra Maria", Email: "maria@example.com"})
	var appErr *web.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected app error, got %v", err)
	}
	if appErr.Code != "CONFLICT" {
		t.Errorf("code = %q, want CONFLICT", appErr.Code)
	}
	if appErr.Message != "Já existe um paciente cadastrado com este email" {
		t.Errorf("unexpected message: %q", appErr.Message)
	}
}

func TestGetPatient_NotFound(t *testing.T) {
	svc := NewService(newMockRepo())

	_, err := svc.GetByID(context.Background(), uuid.New())
	var appErr *web.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected app error, got %v", err)
	}
	if appErr.Code != "NOT_FOUND" {
		t.Errorf("code = %q, want NOT_FOUND", appErr.Code)
	}
	if appErr.Message != "Paciente não encontrado(a)" {
		t.Errorf("unexpected message: %q", appErr.Message)
	}
}

func TestGetPatient_FormatsAppointments(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	ctx := context.Background()

	p, err := svc.Create(ctx, CreateInput{Name: "Maria Silva", Email: "maria@example.com"})
	if err != nil {
		t.Fatal(err)
	}
	repo.appointments[p.ID] = []*AppointmentSummary{{
		ID:            uuid.New(),
		AppointmentAt: time.Date(2025, 9, 9, 14, 30, 0, 0, time.UTC),
		Status:        "SCHEDULED",
		DoctorName:    "Dr. João Souza",
		Specialty:     "Cardiologia",
		Price:         250,
	}}

	detail, err := svc.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(detail.Appointments) != 1 {
		t.Fatalf("expected 1 appointment, got %d", len(detail.Appointments))
	}

	a := detail.Appointments[0]
	if a.Date != "9 de Set, 2025" {
		t.Errorf("date = %q", a.Date)
	}
	if a.Time != "14h30" {
		t.Errorf("time = %q", a.Time)
	}
	if a.Status != "Agendado" {
		t.Errorf("status = %q", a.Status)
	}
	if a.Doctor.Price != "R$ 250,00" {
		t.Errorf("price = %q", a.Doctor.Price)
	}
}

func TestGetPatient_NoAppointments(t *testing.T) {
	svc := NewService(newMockRepo())
	ctx := context.Background()

	p, err := svc.Create(ctx, CreateInput{Name: "Maria Silva", Email: "maria@example.com"})
	if err != nil {
		t.Fatal(err)
	}

	detail, err := svc.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if detail.Appointments == nil {
		t.Error("appointments should be an empty slice, not nil")
	}
	if len(detail.Appointments) != 0 {
		t.Errorf("expected no appointments, got %d", len(detail.Appointments))
	}
}
