package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cerveceria-api/internal/application/dto"
	"github.com/jhoicas/Cerveceria-api/internal/domain/planificacion"
	"github.com/jhoicas/Cerveceria-api/internal/domain/repository"
)

// ConsultaHandler expone lecturas de almacén y planificación: stock de
// materiales, movimientos del libro y calendario laboral.
type ConsultaHandler struct {
	matRepo        repository.MaterialRepository
	movRepo        repository.MovimientoMaterialRepository
	calendarioRepo repository.CalendarioRepository
}

// NewConsultaHandler construye el handler.
func NewConsultaHandler(
	matRepo repository.MaterialRepository,
	movRepo repository.MovimientoMaterialRepository,
	calendarioRepo repository.CalendarioRepository,
) *ConsultaHandler {
	return &ConsultaHandler{matRepo: matRepo, movRepo: movRepo, calendarioRepo: calendarioRepo}
}

// ListMateriales godoc
// @Summary      Listar stock de materiales
// @Tags         almacen
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite de resultados (default 20)"
// @Param        offset  query  int  false  "Offset de paginación"
// @Success      200  {array}   dto.MaterialResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/materiales [get]
func (h *ConsultaHandler) ListMateriales(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	list, err := h.matRepo.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.ToMaterialResponse(m))
	}
	return c.JSON(fiber.Map{"total": len(out), "materiales": out})
}

// GetMaterial godoc
// @Summary      Consultar stock de un material
// @Tags         almacen
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del material"
// @Success      200  {object}  dto.MaterialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materiales/{id} [get]
func (h *ConsultaHandler) GetMaterial(c *fiber.Ctx) error {
	m, err := h.matRepo.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if m == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "material no encontrado"})
	}
	return c.JSON(dto.ToMaterialResponse(m))
}

// ListMovimientos godoc
// @Summary      Movimientos de un material
// @Description  Registro de auditoría del libro de materiales, filtrable por rango
//
//	de fechas (RFC3339).
//
// @Tags         almacen
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del material"
// @Param        from    query  string  false  "Fecha inicial (RFC3339)"
// @Param        to      query  string  false  "Fecha final (RFC3339)"
// @Param        limit   query  int     false  "Límite de resultados (default 20)"
// @Param        offset  query  int     false  "Offset de paginación"
// @Success      200  {array}   dto.MovimientoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/materiales/{id}/movimientos [get]
func (h *ConsultaHandler) ListMovimientos(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	from, err := parseFecha(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido (RFC3339)"})
	}
	to, err := parseFecha(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido (RFC3339)"})
	}

	list, err := h.movRepo.ListByMaterial(c.Params("id"), from, to, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.MovimientoResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.ToMovimientoResponse(m))
	}
	return c.JSON(fiber.Map{"total": len(out), "movimientos": out})
}

// ListMovimientosOrden godoc
// @Summary      Movimientos de una orden
// @Tags         almacen
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {array}   dto.MovimientoResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/ordenes/{id}/movimientos [get]
func (h *ConsultaHandler) ListMovimientosOrden(c *fiber.Ctx) error {
	list, err := h.movRepo.ListByOrden(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.MovimientoResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.ToMovimientoResponse(m))
	}
	return c.JSON(fiber.Map{"total": len(out), "movimientos": out})
}

// GetCalendario godoc
// @Summary      Calendario laboral de la planta
// @Description  Horario de apertura y cierre por día de semana. Los días ausentes
//
//	no son laborables.
//
// @Tags         planificacion
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/calendario [get]
func (h *ConsultaHandler) GetCalendario(c *fiber.Ctx) error {
	cal, err := h.calendarioRepo.GetCalendario()
	if err != nil {
		return respondError(c, err)
	}
	dias := make(map[string]fiber.Map, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		cfg := cal.Dia(d)
		if !cfg.EsLaborable {
			continue
		}
		dias[d.String()] = fiber.Map{
			"apertura": formatHora(cfg.Apertura),
			"cierre":   formatHora(cfg.Cierre),
		}
	}
	return c.JSON(fiber.Map{"dias": dias})
}

func formatHora(h planificacion.HoraDia) string {
	return fmt.Sprintf("%02d:%02d", int(h)/60, int(h)%60)
}

func parseFecha(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
