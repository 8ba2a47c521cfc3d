package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cerveceria-api/internal/application/dto"
	"github.com/jhoicas/Cerveceria-api/internal/application/fases"
)

// FaseHandler maneja las peticiones HTTP de fases en curso y su revisión de calidad (protegido).
type FaseHandler struct {
	uc *fases.FaseUseCase
}

// NewFaseHandler construye el handler.
func NewFaseHandler(uc *fases.FaseUseCase) *FaseHandler {
	return &FaseHandler{uc: uc}
}

// Start godoc
// @Summary      Iniciar fase
// @Description  Pasa la fase de PENDIENTE a EN_PROCESO. Exige las fases anteriores
//
//	COMPLETADA y ninguna otra fase del lote en curso. La primera fase arranca el lote.
//
// @Tags         fases
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la fase"
// @Success      200  {object}  dto.FaseResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/fases/{id}/iniciar [post]
func (h *FaseHandler) Start(c *fiber.Ctx) error {
	fase, err := h.uc.IniciarFase(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToFaseResponse(fase))
}

// SendToReview godoc
// @Summary      Enviar fase a revisión
// @Description  Registra las cantidades reales de entrada y salida y pasa la fase a
//
//	BAJO_REVISION. Válido desde EN_PROCESO y desde SIENDO_AJUSTADA (reenvío).
//
// @Tags         fases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID de la fase"
// @Param        body  body  dto.RevisionRequest  true  "entrada y salida reales"
// @Success      200   {object}  dto.FaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/fases/{id}/revision [post]
func (h *FaseHandler) SendToReview(c *fiber.Ctx) error {
	var in dto.RevisionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	fase, err := h.uc.PonerEnRevision(c.Context(), c.Params("id"), in.Entrada, in.Salida)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToFaseResponse(fase))
}

// RegisterEvaluations godoc
// @Summary      Registrar evaluaciones de calidad
// @Description  Crea las filas activas de la ronda vigente para una fase BAJO_REVISION.
// @Tags         fases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                            true  "ID de la fase"
// @Param        body  body  dto.RegistrarEvaluacionesRequest  true  "evaluaciones de la ronda"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/fases/{id}/evaluaciones [post]
func (h *FaseHandler) RegisterEvaluations(c *fiber.Ctx) error {
	var in dto.RegistrarEvaluacionesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	evaluaciones := make([]fases.EvaluacionInput, 0, len(in.Evaluaciones))
	for _, ev := range in.Evaluaciones {
		evaluaciones = append(evaluaciones, fases.EvaluacionInput{
			ParametroID: ev.ParametroID,
			Valor:       ev.Valor,
			Aprobado:    ev.Aprobado,
		})
	}
	if err := h.uc.RegistrarEvaluaciones(c.Context(), c.Params("id"), evaluaciones); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "evaluaciones registradas"})
}

// Review godoc
// @Summary      Resolver revisión de calidad
// @Description  Evalúa la ronda activa: todo aprobado completa la fase; un parámetro
//
//	crítico desaprobado la rechaza; cualquier otro desaprobado la manda a ajuste.
//
// @Tags         fases
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la fase"
// @Success      200  {object}  dto.FaseResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fases/{id}/revisar [post]
func (h *FaseHandler) Review(c *fiber.Ctx) error {
	fase, err := h.uc.Revisar(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToFaseResponse(fase))
}

// GetByID godoc
// @Summary      Consultar fase
// @Tags         fases
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la fase"
// @Success      200  {object}  dto.FaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fases/{id} [get]
func (h *FaseHandler) GetByID(c *fiber.Ctx) error {
	fase, err := h.uc.GetFase(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToFaseResponse(fase))
}

// ListByLote godoc
// @Summary      Listar fases de un lote
// @Tags         fases
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del lote"
// @Success      200  {array}   dto.FaseResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/lotes/{id}/fases [get]
func (h *FaseHandler) ListByLote(c *fiber.Ctx) error {
	list, err := h.uc.ListFasesDeLote(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.FaseResponse, 0, len(list))
	for _, f := range list {
		out = append(out, dto.ToFaseResponse(f))
	}
	return c.JSON(fiber.Map{"total": len(out), "fases": out})
}

// QualityHistory godoc
// @Summary      Historial de calidad de una fase
// @Description  Devuelve todas las rondas de evaluación, activas e históricas,
//
//	ordenadas por versión.
//
// @Tags         fases
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la fase"
// @Success      200  {array}   dto.CalidadResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/fases/{id}/calidad [get]
func (h *FaseHandler) QualityHistory(c *fiber.Ctx) error {
	list, err := h.uc.HistorialCalidad(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.CalidadResponse, 0, len(list))
	for _, ev := range list {
		out = append(out, dto.ToCalidadResponse(ev))
	}
	return c.JSON(fiber.Map{"total": len(out), "evaluaciones": out})
}
