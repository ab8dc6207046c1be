package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/medsched/medsched/internal/platform/web"
	"github.com/medsched/medsched/pkg/brformat"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*Patient, error) {
	_, err := s.repo.GetByEmail(ctx, in.Email)
	if err == nil {
		return nil, web.Conflict("Já existe um paciente cadastrado com este email")
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	p := &Patient{Name: in.Name, Email: in.Email}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Detail, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, web.NotFound("Paciente")
		}
		return nil, err
	}

	summaries, err := s.repo.ListAppointments(ctx, id)
	if err != nil {
		return nil, err
	}

	appointments := make([]AppointmentView, 0, len(summaries))
	for _, a := range summaries {
		appointments = append(appointments, AppointmentView{
			ID:     a.ID.String(),
			Date:   brformat.Date(a.AppointmentAt),
			Time:   brformat.Time(a.AppointmentAt),
			Status: brformat.StatusLabel(a.Status),
			Doctor: DoctorView{
				Name:      a.DoctorName,
				Specialty: a.Specialty,
				Price:     brformat.Price(a.Price),
			},
		})
	}

	return &Detail{Patient: *p, Appointments: appointments}, nil
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.repo.List(ctx, limit, offset)
}
