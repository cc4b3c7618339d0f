package jobs

import (
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/pablodexsa/autos-backend-sub000/config"
)

// Iniciar programa los procesos periódicos: el barrido de reservas cada hora
// y los avisos de vencimiento una vez por día a las 08:00 de la zona del
// negocio. Corren en timers independientes, sin exclusión mutua entre sí.
func Iniciar() *cron.Cron {
	c := cron.New(cron.WithLocation(config.Location))

	if _, err := c.AddFunc("@hourly", func() {
		BarrerReservasVencidas(config.DB, time.Now().In(config.Location))
	}); err != nil {
		slog.Error("No se pudo programar el barrido de reservas", "error", err)
	}

	if _, err := c.AddFunc("0 8 * * *", func() {
		NuevoAvisador(config.DB, config.Location).Correr()
	}); err != nil {
		slog.Error("No se pudo programar los avisos de vencimiento", "error", err)
	}

	c.Start()
	slog.Info("Procesos periódicos iniciados")
	return c
}
