package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned by repositories when no patient matches.
var ErrNotFound = errors.New("patient not found")

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	GetByEmail(ctx context.Context, email string) (*Patient, error)
	List(ctx context.Context, limit, offset int) ([]*Patient, int, error)
	// ListAppointments returns the patient's appointments joined with the
	// doctor, newest first.
	ListAppointments(ctx context.Context, patientID uuid.UUID) ([]*AppointmentSummary, error)
}
