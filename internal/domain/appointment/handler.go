package appointment

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/medsched/medsched/internal/platform/web"
	"github.com/medsched/medsched/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/appointments", h.Create)
	api.GET("/appointments", h.List)
	api.PATCH("/appointments/:appointmentId/cancel", h.Cancel)
}

func (h *Handler) Create(c echo.Context) error {
	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return web.Validation("Corpo da requisição inválido")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	patientID, err := uuid.Parse(in.PatientID)
	if err != nil {
		return web.NotFound("Paciente")
	}
	doctorID, err := uuid.Parse(in.DoctorID)
	if err != nil {
		return web.NotFound("Médico")
	}
	at, err := time.Parse(time.RFC3339, in.AppointmentAt)
	if err != nil {
		return web.Validation("Data da consulta inválida")
	}

	view, err := h.svc.Create(c.Request().Context(), patientID, doctorID, at)
	if err != nil {
		return err
	}
	return web.Created(c, view)
}

func (h *Handler) Cancel(c echo.Context) error {
	id, err := uuid.Parse(c.Param("appointmentId"))
	if err != nil {
		return web.NotFound("Agendamento")
	}

	view, err := h.svc.Cancel(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return web.OKMessage(c, view, "Agendamento cancelado com sucesso")
}

func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)
	views, total, err := h.svc.List(c.Request().Context(), pg.Limit, pg.Offset())
	if err != nil {
		return err
	}
	return web.OKPaged(c, views, pagination.NewMeta(total, pg))
}
