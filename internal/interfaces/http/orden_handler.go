package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cerveceria-api/internal/application/dto"
	"github.com/jhoicas/Cerveceria-api/internal/application/ordenes"
)

// OrdenHandler maneja las peticiones HTTP de órdenes de producción (protegido).
type OrdenHandler struct {
	uc *ordenes.OrdenUseCase
}

// NewOrdenHandler construye el handler.
func NewOrdenHandler(uc *ordenes.OrdenUseCase) *OrdenHandler {
	return &OrdenHandler{uc: uc}
}

// Create godoc
// @Summary      Crear orden de producción
// @Description  Valida producto y envase, estima la fecha de fin contra el calendario
//
//	laboral y reserva el stock de la receta escalada. La orden queda PENDIENTE.
//
// @Tags         ordenes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearOrdenRequest  true  "producto_id, envase_id, cantidad, fecha_planificada"
// @Success      201   {object}  dto.OrdenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ordenes [post]
func (h *OrdenHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearOrdenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	orden, err := h.uc.CrearOrden(c.Context(), ordenes.CrearOrdenInput{
		ProductoID:       in.ProductoID,
		EnvaseID:         in.EnvaseID,
		Cantidad:         in.Cantidad,
		FechaPlanificada: in.FechaPlanificada,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToOrdenResponse(orden))
}

// Approve godoc
// @Summary      Aprobar orden de producción
// @Description  Confirma la reserva de materiales (descuenta stock físico) y pasa
//
//	la orden de PENDIENTE a APROBADA.
//
// @Tags         ordenes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.OrdenResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/ordenes/{id}/aprobar [post]
func (h *OrdenHandler) Approve(c *fiber.Ctx) error {
	orden, err := h.uc.AprobarOrden(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToOrdenResponse(orden))
}

// Return godoc
// @Summary      Cancelar o rechazar orden de producción
// @Description  Libera la reserva de materiales y pasa la orden PENDIENTE al destino
//
//	indicado (CANCELADA o RECHAZADA). El lote asociado queda CANCELADO.
//
// @Tags         ordenes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la orden"
// @Param        body  body  dto.DevolverOrdenRequest  true  "destino: CANCELADA | RECHAZADA"
// @Success      200   {object}  dto.OrdenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ordenes/{id}/devolver [post]
func (h *OrdenHandler) Return(c *fiber.Ctx) error {
	var in dto.DevolverOrdenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	orden, err := h.uc.DevolverOrden(c.Context(), c.Params("id"), in.Destino)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToOrdenResponse(orden))
}

// GetByID godoc
// @Summary      Consultar orden de producción
// @Tags         ordenes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.OrdenResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ordenes/{id} [get]
func (h *OrdenHandler) GetByID(c *fiber.Ctx) error {
	orden, err := h.uc.GetOrden(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToOrdenResponse(orden))
}

// List godoc
// @Summary      Listar órdenes de producción
// @Tags         ordenes
// @Security     Bearer
// @Produce      json
// @Param        estado  query  string  false  "Filtrar por estado (PENDIENTE, APROBADA, CANCELADA, RECHAZADA)"
// @Param        limit   query  int     false  "Límite de resultados (default 20)"
// @Param        offset  query  int     false  "Offset de paginación"
// @Success      200  {array}   dto.OrdenResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/ordenes [get]
func (h *OrdenHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	list, err := h.uc.ListOrdenes(c.Context(), c.Query("estado"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.OrdenResponse, 0, len(list))
	for _, o := range list {
		out = append(out, dto.ToOrdenResponse(o))
	}
	return c.JSON(fiber.Map{"total": len(out), "ordenes": out})
}
