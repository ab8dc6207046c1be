package doctor

import (
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
	api.POST("/doctors", h.Create)
	api.GET("/doctors", h.List)
	api.GET("/doctors/:doctorId", h.GetByID)
	api.POST("/doctors/:doctorId/agenda", h.CreateAgenda)
	api.GET("/agendas", h.ListAgendas)
}

func (h *Handler) Create(c echo.Context) error {
	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return web.Validation("Corpo da requisição inválido")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	d, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return web.Created(c, d)
}

func (h *Handler) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("doctorId"))
	if err != nil {
		return web.NotFound("Médico")
	}

	detail, err := h.svc.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return web.OK(c, detail)
}

func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.List(c.Request().Context(), pg.Limit, pg.Offset())
	if err != nil {
		return err
	}
	return web.OKPaged(c, items, pagination.NewMeta(total, pg))
}

func (h *Handler) CreateAgenda(c echo.Context) error {
	id, err := uuid.Parse(c.Param("doctorId"))
	if err != nil {
		return web.NotFound("Médico")
	}

	var in CreateAgendaInput
	if err := c.Bind(&in); err != nil {
		return web.Validation("Corpo da requisição inválido")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	view, err := h.svc.CreateAgenda(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return web.Created(c, view)
}

func (h *Handler) ListAgendas(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListAgendas(c.Request().Context(), pg.Limit, pg.Offset())
	if err != nil {
		return err
	}
	return web.OKPaged(c, items, pagination.NewMeta(total, pg))
}
