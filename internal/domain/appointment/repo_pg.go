package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const recordCols = `a.id, a.patient_id, a.doctor_id, a.appointment_at, a.status, a.created_at, a.updated_at,
	p.name, p.email, d.name, d.specialty, d.appointment_price`

const recordJoins = `FROM appointment a
	JOIN patient p ON p.id = a.patient_id
	JOIN doctor d ON d.id = a.doctor_id`

func scanRecord(row pgx.Row) (*Record, error) {
	var r Record
	err := row.Scan(&r.ID, &r.PatientID, &r.DoctorID, &r.AppointmentAt, &r.Status, &r.CreatedAt, &r.UpdatedAt,
		&r.PatientName, &r.PatientEmail, &r.DoctorName, &r.Specialty, &r.Price)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &r, err
}

func (r *repoPG) Create(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO appointment (id, patient_id, doctor_id, appointment_at, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`,
		a.ID, a.PatientID, a.DoctorID, a.AppointmentAt, a.Status).Scan(&a.CreatedAt, &a.UpdatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	return scanRecord(r.pool.QueryRow(ctx, `SELECT `+recordCols+` `+recordJoins+` WHERE a.id = $1`, id))
}

func (r *repoPG) HasActiveForDoctorAt(ctx context.Context, doctorID uuid.UUID, at time.Time) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM appointment
			WHERE doctor_id = $1 AND appointment_at = $2 AND status <> 'CANCELED'
		)`, doctorID, at).Scan(&exists)
	return exists, err
}

func (r *repoPG) HasActiveForPatientAt(ctx context.Context, patientID uuid.UUID, at time.Time) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM appointment
			WHERE patient_id = $1 AND appointment_at = $2 AND status <> 'CANCELED'
		)`, patientID, at).Scan(&exists)
	return exists, err
}

func (r *repoPG) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE appointment SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Record, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM appointment`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+recordCols+` `+recordJoins+` ORDER BY a.appointment_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, rec)
	}
	return items, total, rows.Err()
}
