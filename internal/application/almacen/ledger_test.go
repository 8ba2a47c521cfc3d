package almacen_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cerveceria-api/internal/application/almacen"
	"github.com/jhoicas/Cerveceria-api/internal/domain"
	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
)

// ── Fakes en memoria ──────────────────────────────────────────────────────────

type materialesFake struct {
	porID map[string]*entity.Material
}

func (f *materialesFake) GetByID(id string) (*entity.Material, error)      { return f.porID[id], nil }
func (f *materialesFake) GetForUpdate(id string) (*entity.Material, error) { return f.porID[id], nil }
func (f *materialesFake) ActualizarStock(m *entity.Material) error {
	f.porID[m.ID] = m
	return nil
}
func (f *materialesFake) List(limit, offset int) ([]*entity.Material, error) { return nil, nil }

type movimientosFake struct {
	creados []*entity.MovimientoMaterial
}

func (f *movimientosFake) Create(m *entity.MovimientoMaterial) error {
	f.creados = append(f.creados, m)
	return nil
}
func (f *movimientosFake) ListByMaterial(string, *time.Time, *time.Time, int, int) ([]*entity.MovimientoMaterial, error) {
	return nil, nil
}
func (f *movimientosFake) ListByOrden(string) ([]*entity.MovimientoMaterial, error) { return nil, nil }

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func fixtures() (*materialesFake, *movimientosFake, []*entity.LineaReceta) {
	mats := &materialesFake{porID: map[string]*entity.Material{
		"malta":  {ID: "malta", Nombre: "Malta Pilsen", StockTotal: d("100"), StockReservado: d("0")},
		"lupulo": {ID: "lupulo", Nombre: "Lúpulo Cascade", StockTotal: d("10"), StockReservado: d("2")},
	}}
	movs := &movimientosFake{}
	receta := []*entity.LineaReceta{
		{ID: "l1", MaterialID: "malta", CantidadPorUnidad: d("20")},
		{ID: "l2", MaterialID: "lupulo", CantidadPorUnidad: d("1.5")},
	}
	return mats, movs, receta
}

var ahora = time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)

// ── Reservar ─────────────────────────────────────────────────────────────────

func TestReservar_IncrementaReservadoYAudita(t *testing.T) {
	mats, movs, receta := fixtures()
	var ledger almacen.Ledger

	// Factor 2: 40 de malta y 3 de lúpulo.
	err := ledger.Reservar(mats, movs, "orden-1", receta, d("2"), ahora)
	require.NoError(t, err)

	malta := mats.porID["malta"]
	assert.True(t, malta.StockReservado.Equal(d("40")))
	assert.True(t, malta.StockTotal.Equal(d("100")), "reservar no toca el total")
	assert.True(t, malta.StockDisponible().Equal(d("60")))

	lupulo := mats.porID["lupulo"]
	assert.True(t, lupulo.StockReservado.Equal(d("5"))) // 2 previos + 3

	require.Len(t, movs.creados, 2)
	for _, mov := range movs.creados {
		assert.Equal(t, entity.MovimientoRESERVA, mov.Tipo)
		assert.Equal(t, "orden-1", mov.OrdenID)
		assert.True(t, mov.Cantidad.GreaterThan(decimal.Zero))
	}
}

func TestReservar_InsuficienteNoMutaNada(t *testing.T) {
	mats, movs, receta := fixtures()
	var ledger almacen.Ledger

	// Factor 6: el lúpulo requiere 9 pero solo hay 8 disponibles (10 - 2).
	err := ledger.Reservar(mats, movs, "orden-1", receta, d("6"), ahora)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.StockInsuficienteError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "lupulo", stockErr.MaterialID, "el error debe identificar al material ofensor")

	// Atomicidad: ninguna línea aplicada, ningún movimiento registrado.
	assert.True(t, mats.porID["malta"].StockReservado.Equal(d("0")))
	assert.True(t, mats.porID["lupulo"].StockReservado.Equal(d("2")))
	assert.Empty(t, movs.creados)
}

func TestReservar_MaterialInexistente(t *testing.T) {
	mats, movs, _ := fixtures()
	var ledger almacen.Ledger

	receta := []*entity.LineaReceta{{MaterialID: "levadura", CantidadPorUnidad: d("1")}}
	err := ledger.Reservar(mats, movs, "orden-1", receta, d("1"), ahora)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReservar_AgregaLineasDelMismoMaterial(t *testing.T) {
	mats, movs, _ := fixtures()
	var ledger almacen.Ledger

	// Dos fases usan malta: la demanda se agrega antes de verificar.
	receta := []*entity.LineaReceta{
		{MaterialID: "malta", CantidadPorUnidad: d("60")},
		{MaterialID: "malta", CantidadPorUnidad: d("50")},
	}
	err := ledger.Reservar(mats, movs, "orden-1", receta, d("1"), ahora)
	require.Error(t, err, "60+50 = 110 > 100 disponibles aunque cada línea alcance por separado")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

// ── Confirmar ────────────────────────────────────────────────────────────────

func TestConfirmar_ConsumeReservaSinCambiarDisponible(t *testing.T) {
	mats, movs, receta := fixtures()
	var ledger almacen.Ledger

	require.NoError(t, ledger.Reservar(mats, movs, "orden-1", receta, d("2"), ahora))
	disponibleAntes := mats.porID["malta"].StockDisponible()

	actualizados, err := ledger.Confirmar(mats, movs, "orden-1", receta, d("2"), ahora)
	require.NoError(t, err)
	require.Len(t, actualizados, 2)

	malta := mats.porID["malta"]
	assert.True(t, malta.StockTotal.Equal(d("60")), "el total baja en lo confirmado")
	assert.True(t, malta.StockReservado.Equal(d("0")))
	assert.True(t, malta.StockDisponible().Equal(disponibleAntes), "confirmar no cambia el disponible")

	confirmados := 0
	for _, mov := range movs.creados {
		if mov.Tipo == entity.MovimientoCONFIRMADO {
			confirmados++
		}
	}
	assert.Equal(t, 2, confirmados)
}

func TestConfirmar_SinReservaVigenteFalla(t *testing.T) {
	mats, movs, receta := fixtures()
	var ledger almacen.Ledger

	_, err := ledger.Confirmar(mats, movs, "orden-1", receta, d("2"), ahora)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// ── Devolver ─────────────────────────────────────────────────────────────────

func TestReservarDevolver_RestauraStockExacto(t *testing.T) {
	mats, movs, receta := fixtures()
	var ledger almacen.Ledger

	totalAntes := mats.porID["malta"].StockTotal
	reservadoAntes := mats.porID["lupulo"].StockReservado

	require.NoError(t, ledger.Reservar(mats, movs, "orden-1", receta, d("3"), ahora))
	require.NoError(t, ledger.Devolver(mats, movs, "orden-1", receta, d("3"), ahora))

	assert.True(t, mats.porID["malta"].StockTotal.Equal(totalAntes))
	assert.True(t, mats.porID["malta"].StockReservado.Equal(d("0")))
	assert.True(t, mats.porID["lupulo"].StockReservado.Equal(reservadoAntes))

	devueltos := 0
	for _, mov := range movs.creados {
		if mov.Tipo == entity.MovimientoDEVUELTO {
			devueltos++
		}
	}
	assert.Equal(t, 2, devueltos)
}

// Invariante: 0 ≤ reservado ≤ total antes y después de cada operación.
func TestInvariante_ReservadoNuncaExcedeTotal(t *testing.T) {
	mats, movs, receta := fixtures()
	var ledger almacen.Ledger

	verificar := func() {
		for _, m := range mats.porID {
			assert.False(t, m.StockReservado.IsNegative(), "reservado negativo en %s", m.ID)
			assert.True(t, m.StockReservado.LessThanOrEqual(m.StockTotal),
				"reservado %s > total %s en %s", m.StockReservado, m.StockTotal, m.ID)
		}
	}

	verificar()
	require.NoError(t, ledger.Reservar(mats, movs, "o1", receta, d("2"), ahora))
	verificar()
	require.NoError(t, ledger.Reservar(mats, movs, "o2", receta, d("1"), ahora))
	verificar()
	_, err := ledger.Confirmar(mats, movs, "o1", receta, d("2"), ahora)
	require.NoError(t, err)
	verificar()
	require.NoError(t, ledger.Devolver(mats, movs, "o2", receta, d("1"), ahora))
	verificar()
}

func TestCantidadesRequeridas_OrdenEstable(t *testing.T) {
	receta := []*entity.LineaReceta{
		{MaterialID: "z", CantidadPorUnidad: d("1")},
		{MaterialID: "a", CantidadPorUnidad: d("2")},
		{MaterialID: "z", CantidadPorUnidad: d("3")},
	}
	reqs := almacen.CantidadesRequeridas(receta, d("2"))
	require.Len(t, reqs, 2)
	assert.Equal(t, "a", reqs[0].MaterialID)
	assert.True(t, reqs[0].Cantidad.Equal(d("4")))
	assert.Equal(t, "z", reqs[1].MaterialID)
	assert.True(t, reqs[1].Cantidad.Equal(d("8")))
}
