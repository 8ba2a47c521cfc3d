package planificacion

import "time"

// HoraDia es una hora del día expresada en minutos desde medianoche.
type HoraDia int

// NuevaHora construye una HoraDia a partir de hora y minuto.
func NuevaHora(hora, minuto int) HoraDia {
	return HoraDia(hora*60 + minuto)
}

// HoraDe extrae la HoraDia de un timestamp.
func HoraDe(t time.Time) HoraDia {
	return HoraDia(t.Hour()*60 + t.Minute())
}

// DiaLaboral configura un día de la semana del calendario de la planta.
// Cierre debe ser mayor que Apertura cuando EsLaborable es true.
type DiaLaboral struct {
	EsLaborable bool
	Apertura    HoraDia
	Cierre      HoraDia
}

// Calendario resuelve, por día de semana, si se trabaja y en qué horario.
// Es una estructura de solo lectura: el motor nunca la muta.
type Calendario struct {
	dias map[time.Weekday]DiaLaboral
}

// NuevoCalendario construye el calendario. Los días ausentes del mapa se
// consideran no laborables.
func NuevoCalendario(dias map[time.Weekday]DiaLaboral) *Calendario {
	copia := make(map[time.Weekday]DiaLaboral, len(dias))
	for d, cfg := range dias {
		copia[d] = cfg
	}
	return &Calendario{dias: copia}
}

// CalendarioLunesViernes es el calendario típico de planta: lunes a viernes
// con el horario indicado. Útil para valores por defecto y tests.
func CalendarioLunesViernes(apertura, cierre HoraDia) *Calendario {
	dias := make(map[time.Weekday]DiaLaboral, 5)
	for d := time.Monday; d <= time.Friday; d++ {
		dias[d] = DiaLaboral{EsLaborable: true, Apertura: apertura, Cierre: cierre}
	}
	return NuevoCalendario(dias)
}

// Dia devuelve la configuración del día de semana dado.
func (c *Calendario) Dia(d time.Weekday) DiaLaboral {
	return c.dias[d]
}

// TieneDiasLaborables indica si existe al menos un día laborable. Un calendario
// sin días laborables no puede planificar fases activas.
func (c *Calendario) TieneDiasLaborables() bool {
	for _, cfg := range c.dias {
		if cfg.EsLaborable {
			return true
		}
	}
	return false
}
