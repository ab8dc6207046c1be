package doctor

import (
	"time"

	"github.com/google/uuid"

	"github.com/medsched/medsched/pkg/brformat"
)

// Doctor maps to the doctor table.
type Doctor struct {
	ID               uuid.UUID `db:"id" json:"id"`
	Name             string    `db:"name" json:"name"`
	Specialty        string    `db:"specialty" json:"specialty"`
	AppointmentPrice float64   `db:"appointment_price" json:"appointmentPrice"`
	CreatedAt        time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time `db:"updated_at" json:"updatedAt"`
}

// Agenda maps to the agenda table. Week days run 0 (Sunday) through
// 6 (Saturday); a range whose FromWeekDay is greater than its ToWeekDay
// wraps around the weekend. Times are stored normalized as HH:MM:SS.
type Agenda struct {
	ID          uuid.UUID `db:"id" json:"id"`
	DoctorID    uuid.UUID `db:"doctor_id" json:"doctorId"`
	FromWeekDay int       `db:"from_week_day" json:"fromWeekDay"`
	ToWeekDay   int       `db:"to_week_day" json:"toWeekDay"`
	FromTime    string    `db:"from_time" json:"fromTime"`
	ToTime      string    `db:"to_time" json:"toTime"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// CreateInput is the request body for registering a doctor.
type CreateInput struct {
	Name             string  `json:"name" validate:"required,min=3"`
	Specialty        string  `json:"specialty" validate:"required,min=3"`
	AppointmentPrice float64 `json:"appointmentPrice" validate:"required,gt=0"`
}

// CreateAgendaInput is the request body for adding a weekly agenda.
type CreateAgendaInput struct {
	FromWeekDay int    `json:"fromWeekDay" validate:"min=0,max=6"`
	ToWeekDay   int    `json:"toWeekDay" validate:"min=0,max=6"`
	FromTime    string `json:"fromTime" validate:"required,clocktime"`
	ToTime      string `json:"toTime" validate:"required,clocktime"`
}

// AgendaView is an agenda with its pt-BR display fields.
type AgendaView struct {
	Agenda
	WeekDayRange string `json:"weekDayRange"`
	TimeRange    string `json:"timeRange"`
}

// AgendaListItem is one entry of the agenda listing, joined with the doctor
// it belongs to.
type AgendaListItem struct {
	AgendaView
	Doctor struct {
		Name      string `json:"name"`
		Specialty string `json:"specialty"`
	} `json:"doctor"`
}

// Detail is the GET /doctors/:id payload.
type Detail struct {
	Doctor
	Agendas []AgendaView `json:"agendas"`
}

func newAgendaView(a Agenda) AgendaView {
	return AgendaView{
		Agenda:       a,
		WeekDayRange: brformat.WeekDayRange(a.FromWeekDay, a.ToWeekDay),
		TimeRange:    brformat.TimeRange(a.FromTime, a.ToTime),
	}
}
