package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cerveceria-api/internal/application/fases"
	"github.com/jhoicas/Cerveceria-api/internal/application/ordenes"
	"github.com/jhoicas/Cerveceria-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OrdenUC        *ordenes.OrdenUseCase
	FaseUC         *fases.FaseUseCase
	MaterialRepo   repository.MaterialRepository
	MovimientoRepo repository.MovimientoMaterialRepository
	CalendarioRepo repository.CalendarioRepository
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Órdenes de producción (protegido)
	ordenesGroup := protected.Group("/ordenes")
	ordenHandler := NewOrdenHandler(deps.OrdenUC)
	ordenesGroup.Post("/", RequireRole("admin", "operario"), ordenHandler.Create)
	ordenesGroup.Get("/", ordenHandler.List)
	ordenesGroup.Get("/:id", ordenHandler.GetByID)
	ordenesGroup.Post("/:id/aprobar", RequireRole("admin"), ordenHandler.Approve)
	ordenesGroup.Post("/:id/devolver", RequireRole("admin"), ordenHandler.Return)

	// Fases en curso y revisión de calidad (protegido)
	fasesGroup := protected.Group("/fases")
	faseHandler := NewFaseHandler(deps.FaseUC)
	fasesGroup.Get("/:id", faseHandler.GetByID)
	fasesGroup.Post("/:id/iniciar", RequireRole("admin", "operario"), faseHandler.Start)
	fasesGroup.Post("/:id/revision", RequireRole("admin", "operario"), faseHandler.SendToReview)
	fasesGroup.Post("/:id/evaluaciones", RequireRole("admin", "calidad"), faseHandler.RegisterEvaluations)
	fasesGroup.Post("/:id/revisar", RequireRole("admin", "calidad"), faseHandler.Review)
	fasesGroup.Get("/:id/calidad", faseHandler.QualityHistory)

	// Lotes (protegido, lectura)
	lotes := protected.Group("/lotes")
	lotes.Get("/:id/fases", faseHandler.ListByLote)

	// Almacén y planificación (protegido, lectura)
	consultaHandler := NewConsultaHandler(deps.MaterialRepo, deps.MovimientoRepo, deps.CalendarioRepo)
	materiales := protected.Group("/materiales")
	materiales.Get("/", consultaHandler.ListMateriales)
	materiales.Get("/:id", consultaHandler.GetMaterial)
	materiales.Get("/:id/movimientos", consultaHandler.ListMovimientos)
	ordenesGroup.Get("/:id/movimientos", consultaHandler.ListMovimientosOrden)
	protected.Get("/calendario", consultaHandler.GetCalendario)
}
