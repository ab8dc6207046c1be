package doctor

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const doctorCols = `id, name, specialty, appointment_price, created_at, updated_at`

func scanDoctor(row pgx.Row) (*Doctor, error) {
	var d Doctor
	err := row.Scan(&d.ID, &d.Name, &d.Specialty, &d.AppointmentPrice, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &d, err
}

func (r *repoPG) Create(ctx context.Context, d *Doctor) error {
	d.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO doctor (id, name, specialty, appointment_price)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`,
		d.ID, d.Name, d.Specialty, d.AppointmentPrice).Scan(&d.CreatedAt, &d.UpdatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return scanDoctor(r.pool.QueryRow(ctx, `SELECT `+doctorCols+` FROM doctor WHERE id = $1`, id))
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Doctor, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM doctor`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+doctorCols+` FROM doctor ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Doctor
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, d)
	}
	return items, total, rows.Err()
}

const agendaCols = `id, doctor_id, from_week_day, to_week_day, from_time::text, to_time::text, created_at`

func (r *repoPG) CreateAgenda(ctx context.Context, a *Agenda) error {
	a.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO agenda (id, doctor_id, from_week_day, to_week_day, from_time, to_time)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`,
		a.ID, a.DoctorID, a.FromWeekDay, a.ToWeekDay, a.FromTime, a.ToTime).Scan(&a.CreatedAt)
}

func (r *repoPG) ListAgendasByDoctor(ctx context.Context, doctorID uuid.UUID) ([]Agenda, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+agendaCols+` FROM agenda WHERE doctor_id = $1 ORDER BY created_at`, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Agenda
	for rows.Next() {
		var a Agenda
		if err := rows.Scan(&a.ID, &a.DoctorID, &a.FromWeekDay, &a.ToWeekDay, &a.FromTime, &a.ToTime, &a.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func (r *repoPG) ListAgendas(ctx context.Context, limit, offset int) ([]*AgendaListItem, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM agenda`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.doctor_id, a.from_week_day, a.to_week_day, a.from_time::text, a.to_time::text, a.created_at,
			d.name, d.specialty
		FROM agenda a
		JOIN doctor d ON d.id = a.doctor_id
		ORDER BY a.created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*AgendaListItem
	for rows.Next() {
		var a Agenda
		var item AgendaListItem
		if err := rows.Scan(&a.ID, &a.DoctorID, &a.FromWeekDay, &a.ToWeekDay, &a.FromTime, &a.ToTime, &a.CreatedAt,
			&item.Doctor.Name, &item.Doctor.Specialty); err != nil {
			return nil, 0, err
		}
		item.AgendaView = newAgendaView(a)
		items = append(items, &item)
	}
	return items, total, rows.Err()
}
