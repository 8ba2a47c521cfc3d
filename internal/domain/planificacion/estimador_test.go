package planificacion_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cerveceria-api/internal/domain/planificacion"
)

// Calendario de referencia: lunes a viernes, 08:00–17:00 (9 horas por día).
func calendarioLV() *planificacion.Calendario {
	return planificacion.CalendarioLunesViernes(
		planificacion.NuevaHora(8, 0),
		planificacion.NuevaHora(17, 0),
	)
}

// Fechas ancla: 2026-01-05 es lunes y 2026-01-03 sábado.
var (
	lunes  = time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)
	sabado = time.Date(2026, 1, 3, 10, 0, 0, 0, time.UTC)
)

func activa(horas float64) planificacion.FaseDuracion {
	return planificacion.FaseDuracion{Horas: decimal.NewFromFloat(horas), EsActiva: true}
}

func pasiva(horas float64) planificacion.FaseDuracion {
	return planificacion.FaseDuracion{Horas: decimal.NewFromFloat(horas), EsActiva: false}
}

func TestEstimar_ListaVaciaDevuelveInicioAlineado(t *testing.T) {
	cal := calendarioLV()

	// Sábado 10:00 → lunes 08:00 (próxima apertura laborable)
	fin := planificacion.EstimarFechaFin(nil, sabado, cal)
	assert.Equal(t, lunes, fin)

	// Dentro del horario: queda igual (truncado a minuto)
	enHorario := time.Date(2026, 1, 5, 10, 30, 45, 0, time.UTC)
	fin = planificacion.EstimarFechaFin(nil, enHorario, cal)
	assert.Equal(t, time.Date(2026, 1, 5, 10, 30, 0, 0, time.UTC), fin)
}

func TestEstimar_InicioAntesDeAperturaMueveAApertura(t *testing.T) {
	cal := calendarioLV()
	madrugada := time.Date(2026, 1, 5, 6, 15, 0, 0, time.UTC)

	fin := planificacion.EstimarFechaFin([]planificacion.FaseDuracion{activa(1)}, madrugada, cal)
	assert.Equal(t, time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC), fin,
		"la hora debe contarse desde la apertura, no desde la madrugada")
}

func TestEstimar_InicioTrasCierreMueveAlDiaSiguiente(t *testing.T) {
	cal := calendarioLV()
	noche := time.Date(2026, 1, 5, 18, 30, 0, 0, time.UTC)

	fin := planificacion.EstimarFechaFin([]planificacion.FaseDuracion{activa(2)}, noche, cal)
	assert.Equal(t, time.Date(2026, 1, 6, 10, 0, 0, 0, time.UTC), fin)
}

// Una fase activa de 9.0 horas iniciando lunes 08:00 termina lunes 17:00 en
// punto: la duración calza exacta con el día y no desborda al martes.
func TestEstimar_DuracionExactaTerminaAlCierre(t *testing.T) {
	cal := calendarioLV()

	fin := planificacion.EstimarFechaFin([]planificacion.FaseDuracion{activa(9)}, lunes, cal)
	assert.Equal(t, time.Date(2026, 1, 5, 17, 0, 0, 0, time.UTC), fin)
}

// 20 horas activas desde lunes 08:00: 9h lunes + 9h martes + 2h miércoles.
func TestEstimar_FaseActivaMultidia(t *testing.T) {
	cal := calendarioLV()

	fin := planificacion.EstimarFechaFin([]planificacion.FaseDuracion{activa(20)}, lunes, cal)
	assert.Equal(t, time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC), fin)
}

// Una fase pasiva ignora el calendario por completo: 48 horas corridas desde el
// inicio alineado. Sábado 10:00 se alinea a lunes 08:00 y termina miércoles 08:00.
func TestEstimar_FasePasivaEsContinua(t *testing.T) {
	cal := calendarioLV()

	fin := planificacion.EstimarFechaFin([]planificacion.FaseDuracion{pasiva(48)}, sabado, cal)
	assert.Equal(t, time.Date(2026, 1, 7, 8, 0, 0, 0, time.UTC), fin)
}

// Tras una fase pasiva que termina fuera de horario, la siguiente fase activa
// vuelve a alinearse contra el calendario.
func TestEstimar_ActivaTrasPasivaSeRealinea(t *testing.T) {
	cal := calendarioLV()

	// Pasiva de 10h desde lunes 08:00 → lunes 18:00 (tras el cierre).
	// La activa de 3h se realinea a martes 08:00 → termina martes 11:00.
	fases := []planificacion.FaseDuracion{pasiva(10), activa(3)}
	fin := planificacion.EstimarFechaFin(fases, lunes, cal)
	assert.Equal(t, time.Date(2026, 1, 6, 11, 0, 0, 0, time.UTC), fin)
}

// Horas fraccionarias: 2.5 horas son exactamente 150 minutos.
func TestEstimar_HorasFraccionarias(t *testing.T) {
	cal := calendarioLV()

	fin := planificacion.EstimarFechaFin([]planificacion.FaseDuracion{activa(2.5)}, lunes, cal)
	assert.Equal(t, time.Date(2026, 1, 5, 10, 30, 0, 0, time.UTC), fin)
}

// Spans de varias semanas: 50 horas activas = 45h (lun–vie) + 5h el lunes
// siguiente, saltando el fin de semana.
func TestEstimar_SaltaFinDeSemana(t *testing.T) {
	cal := calendarioLV()

	fin := planificacion.EstimarFechaFin([]planificacion.FaseDuracion{activa(50)}, lunes, cal)
	assert.Equal(t, time.Date(2026, 1, 12, 13, 0, 0, 0, time.UTC), fin)
}

// Secuencia realista de elaboración: molienda y cocción activas, fermentación
// pasiva de una semana completa en medio.
func TestEstimar_SecuenciaMixta(t *testing.T) {
	cal := calendarioLV()

	fases := []planificacion.FaseDuracion{
		activa(4),    // lunes 08:00 → 12:00
		pasiva(168),  // 7 días corridos → lunes 12 de enero, 12:00
		activa(6),    // 5h hasta cierre lunes + 1h martes → martes 09:00
	}
	fin := planificacion.EstimarFechaFin(fases, lunes, cal)
	assert.Equal(t, time.Date(2026, 1, 13, 9, 0, 0, 0, time.UTC), fin)
}

func TestEstimar_FaseDeCeroHorasNoAvanza(t *testing.T) {
	cal := calendarioLV()

	fases := []planificacion.FaseDuracion{{Horas: decimal.Zero, EsActiva: true}}
	fin := planificacion.EstimarFechaFin(fases, lunes, cal)
	assert.Equal(t, lunes, fin)
}

func TestCalendario_DiasAusentesNoSonLaborables(t *testing.T) {
	cal := planificacion.NuevoCalendario(map[time.Weekday]planificacion.DiaLaboral{
		time.Monday: {EsLaborable: true, Apertura: planificacion.NuevaHora(8, 0), Cierre: planificacion.NuevaHora(12, 0)},
	})
	require.True(t, cal.TieneDiasLaborables())
	assert.False(t, cal.Dia(time.Tuesday).EsLaborable)

	// 5 horas con un solo día laborable de 4h: termina el lunes siguiente 09:00.
	fin := planificacion.EstimarFechaFin([]planificacion.FaseDuracion{activa(5)}, lunes, cal)
	assert.Equal(t, time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC), fin)
}

func TestCalendario_SinDiasLaborablesNoBloquea(t *testing.T) {
	cal := planificacion.NuevoCalendario(nil)
	require.False(t, cal.TieneDiasLaborables())

	// Sin días laborables el estimador no puede alinear: devuelve el cursor
	// tal cual para las activas y avanza normal las pasivas.
	fases := []planificacion.FaseDuracion{pasiva(24)}
	fin := planificacion.EstimarFechaFin(fases, lunes, cal)
	assert.Equal(t, lunes.Add(24*time.Hour), fin)
}
