package patient

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
	api.POST("/patients", h.Create)
	api.GET("/patients", h.List)
	api.GET("/patients/:patientId", h.GetByID)
}

func (h *Handler) Create(c echo.Context) error {
	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return web.Validation("Corpo da requisição inválido")
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	p, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return web.Created(c, p)
}

func (h *Handler) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("patientId"))
	if err != nil {
		return web.NotFound("Paciente")
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
