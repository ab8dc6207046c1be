package appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/medsched/medsched/pkg/brformat"
)

// Appointment statuses as stored. Display labels live in pkg/brformat.
const (
	StatusScheduled  = "SCHEDULED"
	StatusInProgress = "IN_PROGRESS"
	StatusFinished   = "FINISHED"
	StatusCanceled   = "CANCELED"
)

// Appointment maps to the appointment table.
type Appointment struct {
	ID            uuid.UUID `db:"id" json:"id"`
	PatientID     uuid.UUID `db:"patient_id" json:"patientId"`
	DoctorID      uuid.UUID `db:"doctor_id" json:"doctorId"`
	AppointmentAt time.Time `db:"appointment_at" json:"appointmentAt"`
	Status        string    `db:"status" json:"status"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`
}

// Record is an appointment joined with its patient and doctor.
type Record struct {
	Appointment
	PatientName  string
	PatientEmail string
	DoctorName   string
	Specialty    string
	Price        float64
}

// CreateInput is the request body for booking an appointment.
type CreateInput struct {
	PatientID     string `json:"patientId" validate:"required,uuid"`
	DoctorID      string `json:"doctorId" validate:"required,uuid"`
	AppointmentAt string `json:"appointmentAt" validate:"required"`
}

// PatientView is the patient portion of a formatted appointment.
type PatientView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// DoctorView is the doctor portion of a formatted appointment.
type DoctorView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Price     string `json:"price,omitempty"`
}

// View is the formatted appointment payload: pt-BR date, time and status
// label plus the people involved.
type View struct {
	ID      string      `json:"id"`
	Date    string      `json:"date"`
	Time    string      `json:"time"`
	Status  string      `json:"status"`
	Patient PatientView `json:"patient"`
	Doctor  DoctorView  `json:"doctor"`
}

func newView(r *Record) *View {
	return &View{
		ID:     r.ID.String(),
		Date:   brformat.Date(r.AppointmentAt),
		Time:   brformat.Time(r.AppointmentAt),
		Status: brformat.StatusLabel(r.Status),
		Patient: PatientView{
			ID:    r.PatientID.String(),
			Name:  r.PatientName,
			Email: r.PatientEmail,
		},
		Doctor: DoctorView{
			ID:        r.DoctorID.String(),
			Name:      r.DoctorName,
			Specialty: r.Specialty,
			Price:     brformat.Price(r.Price),
		},
	}
}

// newCancelView is newView without the patient email and doctor price,
// matching the cancellation payload.
func newCancelView(r *Record) *View {
	v := newView(r)
	v.Patient.Email = ""
	v.Doctor.Price = ""
	return v
}
