package doctor

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned by repositories when no doctor matches.
var ErrNotFound = errors.New("doctor not found")

type Repository interface {
	Create(ctx context.Context, d *Doctor) error
	GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error)
	List(ctx context.Context, limit, offset int) ([]*Doctor, int, error)

	CreateAgenda(ctx context.Context, a *Agenda) error
	ListAgendasByDoctor(ctx context.Context, doctorID uuid.UUID) ([]Agenda, error)
	// ListAgendas returns all agendas joined with their doctor, newest first.
	ListAgendas(ctx context.Context, limit, offset int) ([]*AgendaListItem, int, error)
}
