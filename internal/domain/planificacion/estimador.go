package planificacion

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
)

// FaseDuracion es la entrada del estimador: una duración en horas fraccionarias
// y si la fase consume solo horario laboral (activa) o transcurre 24/7 (pasiva).
type FaseDuracion struct {
	Horas    decimal.Decimal
	EsActiva bool
}

// DesdePlantillas proyecta las fases de un producto a la entrada del estimador.
// El llamador debe pasarlas ya ordenadas por Orden.
func DesdePlantillas(fases []*entity.FaseProducto) []FaseDuracion {
	out := make([]FaseDuracion, 0, len(fases))
	for _, f := range fases {
		out = append(out, FaseDuracion{Horas: f.HorasEstimadas, EsActiva: f.EsActiva})
	}
	return out
}

var sesenta = decimal.NewFromInt(60)

// EstimarFechaFin calcula la fecha de finalización de una secuencia de fases a
// partir de inicio, respetando el calendario para las fases activas. La
// aritmética es en minutos: una duración de 2.5 horas consume exactamente 150
// minutos de calendario. Una lista vacía devuelve el inicio alineado a la
// próxima apertura laborable.
func EstimarFechaFin(fases []FaseDuracion, inicio time.Time, cal *Calendario) time.Time {
	cursor := alinear(inicio, cal)
	for _, fase := range fases {
		minutos := fase.Horas.Mul(sesenta).Round(0).IntPart()
		if minutos <= 0 {
			continue
		}
		if !fase.EsActiva {
			// Fase pasiva: tiempo continuo, sin alineación. El calendario
			// vuelve a aplicar recién en la siguiente fase activa.
			cursor = cursor.Add(time.Duration(minutos) * time.Minute)
			continue
		}
		cursor = consumirActiva(cursor, minutos, cal)
	}
	return cursor
}

// consumirActiva avanza el cursor consumiendo minutos solo dentro del horario
// laboral, saltando a la apertura del siguiente día laborable cuando el día se
// agota. Una duración que calza exacto con el resto del día termina justo al
// cierre, sin desbordar al día siguiente.
func consumirActiva(cursor time.Time, minutos int64, cal *Calendario) time.Time {
	if !cal.TieneDiasLaborables() {
		return cursor
	}
	cursor = alinear(cursor, cal)
	restante := minutos
	for restante > 0 {
		dia := cal.Dia(cursor.Weekday())
		disponible := int64(dia.Cierre - HoraDe(cursor))
		if restante <= disponible {
			return cursor.Add(time.Duration(restante) * time.Minute)
		}
		restante -= disponible
		cursor = siguienteApertura(cursor, cal)
	}
	return cursor
}

// alinear mueve el cursor al próximo instante hábil: apertura del mismo día si
// aún no abre, o apertura del siguiente día laborable si el día no es laborable
// o ya cerró. Dentro del horario, solo trunca a minuto.
func alinear(cursor time.Time, cal *Calendario) time.Time {
	if !cal.TieneDiasLaborables() {
		return cursor.Truncate(time.Minute)
	}
	dia := cal.Dia(cursor.Weekday())
	hora := HoraDe(cursor)
	switch {
	case !dia.EsLaborable || hora >= dia.Cierre:
		return siguienteApertura(cursor, cal)
	case hora < dia.Apertura:
		return conHora(cursor, dia.Apertura)
	default:
		return cursor.Truncate(time.Minute)
	}
}

// siguienteApertura devuelve la apertura del primer día laborable posterior al
// día del cursor.
func siguienteApertura(cursor time.Time, cal *Calendario) time.Time {
	for i := 1; i <= 7; i++ {
		dia := cursor.AddDate(0, 0, i)
		cfg := cal.Dia(dia.Weekday())
		if cfg.EsLaborable {
			return conHora(dia, cfg.Apertura)
		}
	}
	return cursor.Truncate(time.Minute)
}

func conHora(t time.Time, h HoraDia) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), int(h)/60, int(h)%60, 0, 0, t.Location())
}
