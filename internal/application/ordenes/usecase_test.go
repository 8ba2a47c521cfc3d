package ordenes_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cerveceria-api/internal/application/ordenes"
	"github.com/jhoicas/Cerveceria-api/internal/domain"
	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/Cerveceria-api/internal/domain/planificacion"
	"github.com/jhoicas/Cerveceria-api/internal/domain/repository"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ── Fakes en memoria ──────────────────────────────────────────────────────────

type ordenesFake struct {
	porID map[string]*entity.OrdenProduccion
}

func (f *ordenesFake) Create(o *entity.OrdenProduccion) error { f.porID[o.ID] = o; return nil }
func (f *ordenesFake) GetByID(id string) (*entity.OrdenProduccion, error) {
	return f.porID[id], nil
}
func (f *ordenesFake) GetForUpdate(id string) (*entity.OrdenProduccion, error) {
	return f.porID[id], nil
}
func (f *ordenesFake) ActualizarEstado(o *entity.OrdenProduccion) error {
	f.porID[o.ID] = o
	return nil
}
func (f *ordenesFake) List(estado string, limit, offset int) ([]*entity.OrdenProduccion, error) {
	var out []*entity.OrdenProduccion
	for _, o := range f.porID {
		if estado == "" || o.Estado == estado {
			out = append(out, o)
		}
	}
	return out, nil
}

type lotesFake struct{ porID map[string]*entity.Lote }

func (f *lotesFake) Create(l *entity.Lote) error             { f.porID[l.ID] = l; return nil }
func (f *lotesFake) GetByID(id string) (*entity.Lote, error) { return f.porID[id], nil }
func (f *lotesFake) Actualizar(l *entity.Lote) error         { f.porID[l.ID] = l; return nil }

type fasesFake struct{ creadas []*entity.FaseProduccion }

func (f *fasesFake) CreateBatch(fs []*entity.FaseProduccion) error {
	f.creadas = append(f.creadas, fs...)
	return nil
}
func (f *fasesFake) GetByID(string) (*entity.FaseProduccion, error)      { return nil, nil }
func (f *fasesFake) GetForUpdate(string) (*entity.FaseProduccion, error) { return nil, nil }
func (f *fasesFake) Actualizar(*entity.FaseProduccion) error             { return nil }
func (f *fasesFake) ListByLote(string) ([]*entity.FaseProduccion, error) { return nil, nil }

type materialesFake struct{ porID map[string]*entity.Material }

func (f *materialesFake) GetByID(id string) (*entity.Material, error)      { return f.porID[id], nil }
func (f *materialesFake) GetForUpdate(id string) (*entity.Material, error) { return f.porID[id], nil }
func (f *materialesFake) ActualizarStock(m *entity.Material) error {
	f.porID[m.ID] = m
	return nil
}
func (f *materialesFake) List(int, int) ([]*entity.Material, error) { return nil, nil }

type movimientosFake struct{ creados []*entity.MovimientoMaterial }

func (f *movimientosFake) Create(m *entity.MovimientoMaterial) error {
	f.creados = append(f.creados, m)
	return nil
}
func (f *movimientosFake) ListByMaterial(string, *time.Time, *time.Time, int, int) ([]*entity.MovimientoMaterial, error) {
	return nil, nil
}
func (f *movimientosFake) ListByOrden(string) ([]*entity.MovimientoMaterial, error) { return nil, nil }

type productosFake struct {
	producto *entity.Producto
	fases    []*entity.FaseProducto
	receta   []*entity.LineaReceta
}

func (f *productosFake) GetByID(id string) (*entity.Producto, error) {
	if f.producto != nil && f.producto.ID == id {
		return f.producto, nil
	}
	return nil, nil
}
func (f *productosFake) ListFases(string) ([]*entity.FaseProducto, error) { return f.fases, nil }
func (f *productosFake) ListReceta(string) ([]*entity.LineaReceta, error) { return f.receta, nil }

type envasesFake struct{ envase *entity.Envase }

func (f *envasesFake) GetByID(id string) (*entity.Envase, error) {
	if f.envase != nil && f.envase.ID == id {
		return f.envase, nil
	}
	return nil, nil
}

type calendarioFake struct{}

func (calendarioFake) GetCalendario() (*planificacion.Calendario, error) {
	return planificacion.CalendarioLunesViernes(
		planificacion.NuevaHora(8, 0), planificacion.NuevaHora(17, 0)), nil
}

type notificadorFake struct {
	ordenes []string
	bajos   []string
}

func (n *notificadorFake) OrdenCreada(_, ordenID string) { n.ordenes = append(n.ordenes, ordenID) }
func (n *notificadorFake) StockBajo(materialID, _ string, _ decimal.Decimal) {
	n.bajos = append(n.bajos, materialID)
}

type txFake struct {
	ordenes     *ordenesFake
	lotes       *lotesFake
	fases       *fasesFake
	materiales  *materialesFake
	movimientos *movimientosFake
}

func (t *txFake) Run(_ context.Context, fn func(
	repository.OrdenRepository,
	repository.LoteRepository,
	repository.FaseProduccionRepository,
	repository.MaterialRepository,
	repository.MovimientoMaterialRepository,
) error) error {
	return fn(t.ordenes, t.lotes, t.fases, t.materiales, t.movimientos)
}

// ── Armado ───────────────────────────────────────────────────────────────────

type escenario struct {
	uc          *ordenes.OrdenUseCase
	ordenes     *ordenesFake
	lotes       *lotesFake
	fases       *fasesFake
	materiales  *materialesFake
	movimientos *movimientosFake
	notifica    *notificadorFake
}

// Producto: IPA con estándar de 100 l, dos fases y receta de malta+lúpulo.
// Envase: barril de 50 l. Stock: 100 kg de malta, 10 kg de lúpulo.
func armar() *escenario {
	ords := &ordenesFake{porID: map[string]*entity.OrdenProduccion{}}
	lotes := &lotesFake{porID: map[string]*entity.Lote{}}
	fss := &fasesFake{}
	mats := &materialesFake{porID: map[string]*entity.Material{
		"malta":  {ID: "malta", Nombre: "Malta Pilsen", StockTotal: d("100"), StockMinimo: d("10")},
		"lupulo": {ID: "lupulo", Nombre: "Lúpulo Cascade", StockTotal: d("10"), StockMinimo: d("1")},
	}}
	movs := &movimientosFake{}
	notifica := &notificadorFake{}

	productos := &productosFake{
		producto: &entity.Producto{
			ID: "ipa", Nombre: "IPA Andina", UnidadMedida: "l",
			CantidadEstandar: d("100"), EstaListo: true,
		},
		fases: []*entity.FaseProducto{
			{ID: "p1", ProductoID: "ipa", Tipo: entity.FaseMOLIENDA, Orden: 1, HorasEstimadas: d("4"), EsActiva: true, UnidadSalida: "kg"},
			{ID: "p2", ProductoID: "ipa", Tipo: entity.FaseFERMENTACION, Orden: 2, HorasEstimadas: d("168"), EsActiva: false, UnidadSalida: "l"},
		},
		receta: []*entity.LineaReceta{
			{ID: "l1", FaseProductoID: "p1", MaterialID: "malta", CantidadPorUnidad: d("20")},
			{ID: "l2", FaseProductoID: "p1", MaterialID: "lupulo", CantidadPorUnidad: d("1.5")},
		},
	}
	envases := &envasesFake{envase: &entity.Envase{ID: "barril", Nombre: "Barril 50l", UnidadMedida: "l", Cantidad: d("50")}}

	uc := ordenes.NewOrdenUseCase(
		&txFake{ordenes: ords, lotes: lotes, fases: fss, materiales: mats, movimientos: movs},
		ords, productos, envases, calendarioFake{}, notifica,
	)
	return &escenario{uc: uc, ordenes: ords, lotes: lotes, fases: fss, materiales: mats, movimientos: movs, notifica: notifica}
}

// Lunes 2026-01-05 08:00.
var planificada = time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)

func crearInput(cantidad string) ordenes.CrearOrdenInput {
	return ordenes.CrearOrdenInput{
		ProductoID:       "ipa",
		EnvaseID:         "barril",
		Cantidad:         d(cantidad),
		FechaPlanificada: planificada,
	}
}

// ── Creación ─────────────────────────────────────────────────────────────────

func TestCrearOrden_ReservaYPersisteTodo(t *testing.T) {
	e := armar()

	orden, err := e.uc.CrearOrden(context.Background(), crearInput("200"))
	require.NoError(t, err)
	require.NotNil(t, orden)

	assert.Equal(t, entity.OrdenPENDIENTE, orden.Estado)
	assert.Nil(t, orden.FechaValidacion)

	// Factor 2: 40 kg de malta y 3 kg de lúpulo reservados.
	assert.True(t, e.materiales.porID["malta"].StockReservado.Equal(d("40")))
	assert.True(t, e.materiales.porID["lupulo"].StockReservado.Equal(d("3")))

	// Lote: 200 l / barril de 50 l = 4 envases.
	lote := e.lotes.porID[orden.LoteID]
	require.NotNil(t, lote)
	assert.Equal(t, 4, lote.Cantidad)
	assert.Equal(t, entity.LotePENDIENTE, lote.Estado)
	assert.NotEmpty(t, lote.Codigo)

	// Una fase instanciada por plantilla, todas PENDIENTE y en orden.
	require.Len(t, e.fases.creadas, 2)
	assert.Equal(t, entity.FaseMOLIENDA, e.fases.creadas[0].Tipo)
	assert.Equal(t, entity.FaseProduccionPENDIENTE, e.fases.creadas[0].Estado)
	assert.Equal(t, orden.LoteID, e.fases.creadas[0].LoteID)

	// Fecha estimada: 4h activas (lunes 12:00) + 168h pasivas = lunes 12 de enero, 12:00.
	assert.Equal(t, time.Date(2026, 1, 12, 12, 0, 0, 0, time.UTC), orden.FechaEstimadaFin)

	// Movimientos RESERVA y notificación al jefe de planta.
	require.Len(t, e.movimientos.creados, 2)
	assert.Equal(t, entity.MovimientoRESERVA, e.movimientos.creados[0].Tipo)
	assert.Equal(t, []string{orden.ID}, e.notifica.ordenes)
}

func TestCrearOrden_CantidadParcialRedondeaEnvasesHaciaArriba(t *testing.T) {
	e := armar()

	orden, err := e.uc.CrearOrden(context.Background(), crearInput("130"))
	require.NoError(t, err)
	assert.Equal(t, 3, e.lotes.porID[orden.LoteID].Cantidad, "130 l en barriles de 50 l son 3 barriles")
}

func TestCrearOrden_ProductoNoListo(t *testing.T) {
	eNoListo := armar()
	ucProductos := &productosFake{producto: &entity.Producto{ID: "ipa", EstaListo: false, UnidadMedida: "l", CantidadEstandar: d("100")}}
	uc := ordenes.NewOrdenUseCase(
		&txFake{ordenes: eNoListo.ordenes, lotes: eNoListo.lotes, fases: eNoListo.fases, materiales: eNoListo.materiales, movimientos: eNoListo.movimientos},
		eNoListo.ordenes, ucProductos, &envasesFake{envase: &entity.Envase{ID: "barril", UnidadMedida: "l", Cantidad: d("50")}},
		calendarioFake{}, eNoListo.notifica,
	)

	_, err := uc.CrearOrden(context.Background(), crearInput("100"))
	assert.ErrorIs(t, err, domain.ErrProductoNoListo)
	assert.Empty(t, eNoListo.ordenes.porID)
}

func TestCrearOrden_UnidadIncompatible(t *testing.T) {
	e := armar()
	ucProductos := &productosFake{producto: &entity.Producto{ID: "ipa", EstaListo: true, UnidadMedida: "l", CantidadEstandar: d("100")}}
	uc := ordenes.NewOrdenUseCase(
		&txFake{ordenes: e.ordenes, lotes: e.lotes, fases: e.fases, materiales: e.materiales, movimientos: e.movimientos},
		e.ordenes, ucProductos, &envasesFake{envase: &entity.Envase{ID: "barril", UnidadMedida: "kg", Cantidad: d("50")}},
		calendarioFake{}, e.notifica,
	)

	_, err := uc.CrearOrden(context.Background(), crearInput("100"))
	assert.ErrorIs(t, err, domain.ErrUnidadIncompatible)
}

func TestCrearOrden_StockInsuficienteNoCreaNada(t *testing.T) {
	e := armar()

	// Factor 6: requiere 9 kg de lúpulo, hay 10 pero el factor también exige
	// 120 kg de malta contra 100 disponibles.
	_, err := e.uc.CrearOrden(context.Background(), crearInput("600"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Empty(t, e.ordenes.porID, "la orden no debe quedar creada")
	assert.Empty(t, e.lotes.porID)
	assert.Empty(t, e.fases.creadas)
	assert.Empty(t, e.movimientos.creados)
	assert.True(t, e.materiales.porID["malta"].StockReservado.IsZero())
	assert.Empty(t, e.notifica.ordenes)
}

func TestCrearOrden_CantidadInvalida(t *testing.T) {
	e := armar()
	in := crearInput("0")
	_, err := e.uc.CrearOrden(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ── Aprobación ───────────────────────────────────────────────────────────────

func TestAprobarOrden_ConfirmaReservaYValida(t *testing.T) {
	e := armar()
	orden, err := e.uc.CrearOrden(context.Background(), crearInput("200"))
	require.NoError(t, err)

	aprobada, err := e.uc.AprobarOrden(context.Background(), orden.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrdenAPROBADA, aprobada.Estado)
	require.NotNil(t, aprobada.FechaValidacion, "la fecha de validación se fija al salir de PENDIENTE")

	malta := e.materiales.porID["malta"]
	assert.True(t, malta.StockTotal.Equal(d("60")), "el total baja en lo consumido")
	assert.True(t, malta.StockReservado.IsZero())

	confirmados := 0
	for _, mov := range e.movimientos.creados {
		if mov.Tipo == entity.MovimientoCONFIRMADO {
			confirmados++
		}
	}
	assert.Equal(t, 2, confirmados)
}

func TestAprobarOrden_EmiteStockBajo(t *testing.T) {
	e := armar()
	// 450 l → factor 4.5: 90 kg malta (quedan 10, igual al mínimo, no avisa) y
	// 6.75 kg lúpulo (quedan 3.25, sobre el mínimo de 1).
	// Bajamos el mínimo de malta a 15 para forzar el aviso.
	e.materiales.porID["malta"].StockMinimo = d("15")

	orden, err := e.uc.CrearOrden(context.Background(), crearInput("450"))
	require.NoError(t, err)
	_, err = e.uc.AprobarOrden(context.Background(), orden.ID)
	require.NoError(t, err)

	assert.Equal(t, []string{"malta"}, e.notifica.bajos)
}

func TestAprobarOrden_SoloDesdePendiente(t *testing.T) {
	e := armar()
	orden, err := e.uc.CrearOrden(context.Background(), crearInput("100"))
	require.NoError(t, err)

	_, err = e.uc.AprobarOrden(context.Background(), orden.ID)
	require.NoError(t, err)

	_, err = e.uc.AprobarOrden(context.Background(), orden.ID)
	assert.ErrorIs(t, err, domain.ErrEstadoInvalido, "no se aprueba dos veces")
}

func TestAprobarOrden_Inexistente(t *testing.T) {
	e := armar()
	_, err := e.uc.AprobarOrden(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── Devolución ───────────────────────────────────────────────────────────────

func TestDevolverOrden_CancelaLiberandoReserva(t *testing.T) {
	e := armar()
	orden, err := e.uc.CrearOrden(context.Background(), crearInput("200"))
	require.NoError(t, err)

	totalAntes := e.materiales.porID["malta"].StockTotal

	devuelta, err := e.uc.DevolverOrden(context.Background(), orden.ID, entity.OrdenCANCELADA)
	require.NoError(t, err)
	assert.Equal(t, entity.OrdenCANCELADA, devuelta.Estado)
	assert.NotNil(t, devuelta.FechaValidacion)

	malta := e.materiales.porID["malta"]
	assert.True(t, malta.StockTotal.Equal(totalAntes), "devolver no toca el total")
	assert.True(t, malta.StockReservado.IsZero(), "la reserva queda liberada")

	assert.Equal(t, entity.LoteCANCELADO, e.lotes.porID[orden.LoteID].Estado)
}

func TestDevolverOrden_RechazoTambienLibera(t *testing.T) {
	e := armar()
	orden, err := e.uc.CrearOrden(context.Background(), crearInput("100"))
	require.NoError(t, err)

	devuelta, err := e.uc.DevolverOrden(context.Background(), orden.ID, entity.OrdenRECHAZADA)
	require.NoError(t, err)
	assert.Equal(t, entity.OrdenRECHAZADA, devuelta.Estado)

	devueltos := 0
	for _, mov := range e.movimientos.creados {
		if mov.Tipo == entity.MovimientoDEVUELTO {
			devueltos++
		}
	}
	assert.Equal(t, 2, devueltos)
}

func TestDevolverOrden_PendienteNoEsDestino(t *testing.T) {
	e := armar()
	orden, err := e.uc.CrearOrden(context.Background(), crearInput("100"))
	require.NoError(t, err)

	_, err = e.uc.DevolverOrden(context.Background(), orden.ID, entity.OrdenPENDIENTE)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = e.uc.DevolverOrden(context.Background(), orden.ID, "APROBADA")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDevolverOrden_SoloDesdePendiente(t *testing.T) {
	e := armar()
	orden, err := e.uc.CrearOrden(context.Background(), crearInput("100"))
	require.NoError(t, err)
	_, err = e.uc.AprobarOrden(context.Background(), orden.ID)
	require.NoError(t, err)

	_, err = e.uc.DevolverOrden(context.Background(), orden.ID, entity.OrdenCANCELADA)
	assert.ErrorIs(t, err, domain.ErrEstadoInvalido)
}
