package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/medsched/medsched/internal/domain/doctor"
	"github.com/medsched/medsched/internal/platform/mail"
	"github.com/medsched/medsched/internal/platform/web"
	"github.com/medsched/medsched/pkg/weektime"
)

// PatientInfo is what the booking engine needs to know about a patient.
type PatientInfo struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// DoctorInfo is what the booking engine needs to know about a doctor,
// agendas included.
type DoctorInfo struct {
	ID        uuid.UUID
	Name      string
	Specialty string
	Price     float64
	Agendas   []doctor.Agenda
}

// PatientDirectory looks up patients for booking. Implementations return
// ErrNotFound when the patient does not exist.
type PatientDirectory interface {
	GetPatient(ctx context.Context, id uuid.UUID) (*PatientInfo, error)
}

// DoctorDirectory looks up doctors with their agendas for booking.
// Implementations return ErrNotFound when the doctor does not exist.
type DoctorDirectory interface {
	GetDoctor(ctx context.Context, id uuid.UUID) (*DoctorInfo, error)
}

// Mailer sends the booking confirmation. Delivery is best effort.
type Mailer interface {
	SendAppointmentConfirmation(ctx context.Context, conf mail.Confirmation) error
}

type Service struct {
	repo     Repository
	patients PatientDirectory
	doctors  DoctorDirectory
	mailer   Mailer
	logger   zerolog.Logger
	now      func() time.Time
}

func NewService(repo Repository, patients PatientDirectory, doctors DoctorDirectory, mailer Mailer, logger zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		patients: patients,
		doctors:  doctors,
		mailer:   mailer,
		logger:   logger,
		now:      time.Now,
	}
}

// Create books an appointment. The checks run in a fixed order so the
// client always gets the most specific error: missing patient, missing
// doctor, no agenda availability, doctor already booked, patient already
// booked. The unique indexes on the appointment table close the race the
// last two checks leave open.
func (s *Service) Create(ctx context.Context, patientID, doctorID uuid.UUID, at time.Time) (*View, error) {
	p, err := s.patients.GetPatient(ctx, patientID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, web.NotFound("Paciente")
		}
		return nil, err
	}

	d, err := s.doctors.GetDoctor(ctx, doctorID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, web.NotFound("Médico")
		}
		return nil, err
	}

	available, err := s.hasAvailability(d.Agendas, at)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, web.Validation(fmt.Sprintf(
			"O médico %s não possui disponibilidade na agenda para este dia e horário", d.Name))
	}

	doctorBusy, err := s.repo.HasActiveForDoctorAt(ctx, doctorID, at)
	if err != nil {
		return nil, err
	}
	if doctorBusy {
		return nil, web.Conflict("Já existe uma consulta agendada para este médico neste horário")
	}

	patientBusy, err := s.repo.HasActiveForPatientAt(ctx, patientID, at)
	if err != nil {
		return nil, err
	}
	if patientBusy {
		return nil, web.Conflict("O paciente já possui uma consulta agendada neste horário")
	}

	a := Appointment{
		PatientID:     patientID,
		DoctorID:      doctorID,
		AppointmentAt: at,
		Status:        StatusScheduled,
	}
	if err := s.repo.Create(ctx, &a); err != nil {
		return nil, err
	}

	if err := s.mailer.SendAppointmentConfirmation(ctx, mail.Confirmation{
		PatientName:   p.Name,
		PatientEmail:  p.Email,
		DoctorName:    d.Name,
		Specialty:     d.Specialty,
		AppointmentAt: at,
		Price:         d.Price,
	}); err != nil {
		s.logger.Error().Err(err).
			Str("appointment_id", a.ID.String()).
			Msg("confirmation email failed")
	}

	return newView(&Record{
		Appointment:  a,
		PatientName:  p.Name,
		PatientEmail: p.Email,
		DoctorName:   d.Name,
		Specialty:    d.Specialty,
		Price:        d.Price,
	}), nil
}

// hasAvailability reports whether any of the doctor's agendas covers the
// appointment's week day and clock time.
func (s *Service) hasAvailability(agendas []doctor.Agenda, at time.Time) (bool, error) {
	day := int(at.Weekday())
	clock := weektime.ClockString(at)

	for _, a := range agendas {
		if !weektime.IsWeekDayInRange(day, a.FromWeekDay, a.ToWeekDay) {
			continue
		}
		inRange, err := weektime.IsTimeInRange(clock, a.FromTime, a.ToTime)
		if err != nil {
			return false, err
		}
		if inRange {
			return true, nil
		}
	}
	return false, nil
}

// Cancel cancels an appointment. Canceling twice is a validation error,
// in-progress and finished appointments cannot be canceled at all, and the
// cutoff is two hours before the start, so appointments already past cannot
// be canceled either.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*View, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, web.NotFound("Agendamento")
		}
		return nil, err
	}

	switch rec.Status {
	case StatusCanceled:
		return nil, web.Validation("Este agendamento já foi cancelado")
	case StatusInProgress:
		return nil, web.Forbidden("Não é possível cancelar uma consulta em andamento")
	case StatusFinished:
		return nil, web.Forbidden("Não é possível cancelar uma consulta já finalizada")
	}

	if rec.AppointmentAt.Sub(s.now()) < 2*time.Hour {
		return nil, web.Forbidden("Não é possível cancelar a consulta com menos de 2 horas de antecedência")
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusCanceled); err != nil {
		return nil, err
	}
	rec.Status = StatusCanceled
	return newCancelView(rec), nil
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*View, int, error) {
	records, total, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	views := make([]*View, 0, len(records))
	for _, rec := range records {
		views = append(views, newView(rec))
	}
	return views, total, nil
}
