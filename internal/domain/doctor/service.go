package doctor

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/medsched/medsched/internal/platform/web"
	"github.com/medsched/medsched/pkg/weektime"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*Doctor, error) {
	d := &Doctor{Name: in.Name, Specialty: in.Specialty, AppointmentPrice: in.AppointmentPrice}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Detail, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, web.NotFound("Médico")
		}
		return nil, err
	}

	agendas, err := s.repo.ListAgendasByDoctor(ctx, id)
	if err != nil {
		return nil, err
	}

	views := make([]AgendaView, 0, len(agendas))
	for _, a := range agendas {
		views = append(views, newAgendaView(a))
	}
	return &Detail{Doctor: *d, Agendas: views}, nil
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Doctor, int, error) {
	return s.repo.List(ctx, limit, offset)
}

// CreateAgenda adds a weekly availability window for a doctor after checking
// it does not collide with any window the doctor already has.
func (s *Service) CreateAgenda(ctx context.Context, doctorID uuid.UUID, in CreateAgendaInput) (*AgendaView, error) {
	if _, err := s.repo.GetByID(ctx, doctorID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, web.NotFound("Médico")
		}
		return nil, err
	}

	candidate := Agenda{
		DoctorID:    doctorID,
		FromWeekDay: in.FromWeekDay,
		ToWeekDay:   in.ToWeekDay,
		FromTime:    weektime.NormalizeTime(in.FromTime),
		ToTime:      weektime.NormalizeTime(in.ToTime),
	}

	fromMin, err := weektime.TimeToMinutes(candidate.FromTime)
	if err != nil {
		return nil, web.Validation("Horário inválido")
	}
	toMin, err := weektime.TimeToMinutes(candidate.ToTime)
	if err != nil {
		return nil, web.Validation("Horário inválido")
	}
	if fromMin >= toMin {
		return nil, web.Validation("O horário inicial deve ser anterior ao horário final")
	}

	existing, err := s.repo.ListAgendasByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	conflicts, err := agendaConflicts(candidate, existing)
	if err != nil {
		return nil, err
	}
	if conflicts {
		return nil, web.Conflict("Esta agenda conflita com uma agenda já existente do médico")
	}

	if err := s.repo.CreateAgenda(ctx, &candidate); err != nil {
		return nil, err
	}
	view := newAgendaView(candidate)
	return &view, nil
}

func (s *Service) ListAgendas(ctx context.Context, limit, offset int) ([]*AgendaListItem, int, error) {
	return s.repo.ListAgendas(ctx, limit, offset)
}
