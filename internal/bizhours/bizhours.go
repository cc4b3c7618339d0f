// Package bizhours implementa la aritmética de horas hábiles usada para los
// vencimientos de reservas.
package bizhours

import "time"

// Calendario conoce la zona horaria fija del negocio y el listado de
// feriados configurados (claves con formato YYYY-MM-DD).
type Calendario struct {
	loc      *time.Location
	feriados map[string]bool
}

func Nuevo(loc *time.Location, feriados []string) *Calendario {
	set := make(map[string]bool, len(feriados))
	for _, f := range feriados {
		if f != "" {
			set[f] = true
		}
	}
	return &Calendario{loc: loc, feriados: set}
}

// EsHabil indica si el instante cae en día hábil: lunes a sábado y fuera del
// listado de feriados.
func (c *Calendario) EsHabil(t time.Time) bool {
	t = t.In(c.loc)
	if t.Weekday() == time.Sunday {
		return false
	}
	return !c.feriados[t.Format("2006-01-02")]
}

// SumarHorasHabiles avanza hora por hora desde el instante dado hasta
// acumular la cantidad pedida de horas hábiles. Las horas que aterrizan en
// domingo o feriado no consumen el contador, pero el tiempo avanza igual a
// través de ellas.
func (c *Calendario) SumarHorasHabiles(desde time.Time, horas int) time.Time {
	t := desde.In(c.loc)
	for contadas := 0; contadas < horas; {
		t = t.Add(time.Hour)
		if c.EsHabil(t) {
			contadas++
		}
	}
	return t
}
