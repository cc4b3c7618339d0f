package handlers

import (
	"time"

	"github.com/pablodexsa/autos-backend-sub000/config"
	"github.com/pablodexsa/autos-backend-sub000/internal/bizhours"
	"github.com/pablodexsa/autos-backend-sub000/internal/settings"
)

// parseFecha interpreta una fecha calendario YYYY-MM-DD en la zona fija del
// negocio.
func parseFecha(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, config.Location)
}

// calendarioActual arma el calendario de horas hábiles con los feriados
// configurados.
func calendarioActual() *bizhours.Calendario {
	return bizhours.Nuevo(config.Location, settings.Feriados())
}
