package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patient table.
type Patient struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// CreateInput is the request body for registering a patient.
type CreateInput struct {
	Name  string `json:"name" validate:"required,min=3"`
	Email string `json:"email" validate:"required,email"`
}

// AppointmentSummary is one of the patient's appointments joined with the
// doctor it was booked with. Produced by the repository, formatted by the
// service.
type AppointmentSummary struct {
	ID            uuid.UUID
	AppointmentAt time.Time
	Status        string
	DoctorName    string
	Specialty     string
	Price         float64
}

// AppointmentView is the display form of an appointment on the patient
// detail payload.
type AppointmentView struct {
	ID     string     `json:"id"`
	Date   string     `json:"date"`
	Time   string     `json:"time"`
	Status string     `json:"status"`
	Doctor DoctorView `json:"doctor"`
}

type DoctorView struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Price     string `json:"price"`
}

// Detail is the GET /patients/:id payload.
type Detail struct {
	Patient
	Appointments []AppointmentView `json:"appointments"`
}
