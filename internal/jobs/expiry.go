// Package jobs agrupa los procesos periódicos: el barrido de reservas
// vencidas y los avisos de vencimiento de cuotas.
package jobs

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/pablodexsa/autos-backend-sub000/models"
)

// BarrerReservasVencidas pasa a Vencida toda reserva vigente cuyo vencimiento
// quedó atrás y libera su vehículo. Cada reserva se resuelve en su propia
// transacción: una falla puntual no frena el resto del barrido.
func BarrerReservasVencidas(db *gorm.DB, ahora time.Time) int {
	var reservas []models.Reserva
	err := db.Where("estado = ? AND fecha_vencimiento < ?", models.ReservaVigente, ahora).
		Find(&reservas).Error
	if err != nil {
		slog.Error("Barrido de reservas: no se pudieron consultar las vigentes", "error", err)
		return 0
	}

	vencidas := 0
	for _, reserva := range reservas {
		tx := db.Begin()
		if tx.Error != nil {
			slog.Error("Barrido de reservas: no se pudo abrir la transacción", "error", tx.Error)
			continue
		}

		res := tx.Model(&models.Reserva{}).
			Where("id = ? AND estado = ?", reserva.ID, models.ReservaVigente).
			Update("estado", models.ReservaVencida)
		if res.Error != nil || res.RowsAffected == 0 {
			// Otra operación la movió de estado en el medio; no es nuestra.
			tx.Rollback()
			continue
		}

		if err := tx.Model(&models.Vehiculo{}).
			Where("id = ? AND estado = ?", reserva.VehiculoID, models.VehiculoReservado).
			Update("estado", models.VehiculoDisponible).Error; err != nil {
			tx.Rollback()
			slog.Error("Barrido de reservas: no se pudo liberar el vehículo", "reserva_id", reserva.ID, "error", err)
			continue
		}

		if err := tx.Commit().Error; err != nil {
			slog.Error("Barrido de reservas: no se pudo confirmar", "reserva_id", reserva.ID, "error", err)
			continue
		}

		vencidas++
		slog.Info("Reserva vencida por el barrido automático", "reserva_id", reserva.ID, "vehiculo_id", reserva.VehiculoID)
	}
	return vencidas
}
