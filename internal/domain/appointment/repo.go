package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when the referenced record does not exist. The
// patient and doctor directories reuse it for their own lookups.
var ErrNotFound = errors.New("record not found")

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	// GetByID returns the appointment joined with its patient and doctor.
	GetByID(ctx context.Context, id uuid.UUID) (*Record, error)
	// HasActiveForDoctorAt reports whether the doctor has a non-canceled
	// appointment at the given instant.
	HasActiveForDoctorAt(ctx context.Context, doctorID uuid.UUID, at time.Time) (bool, error)
	// HasActiveForPatientAt reports whether the patient has a non-canceled
	// appointment at the given instant.
	HasActiveForPatientAt(ctx context.Context, patientID uuid.UUID, at time.Time) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	// List returns appointments with relations, newest first.
	List(ctx context.Context, limit, offset int) ([]*Record, int, error)
}
