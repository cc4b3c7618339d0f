package jobs

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/pablodexsa/autos-backend-sub000/internal/finance"
	"github.com/pablodexsa/autos-backend-sub000/internal/mailer"
	"github.com/pablodexsa/autos-backend-sub000/models"
)

// OffsetsAviso son los días de anticipación con los que se avisa un
// vencimiento. Cada offset es un tipo de notificación distinto.
var OffsetsAviso = []int{5, 2, 0}

const canalEmail = "email"

// Avisador corre el job diario de avisos de vencimiento. El reloj y el envío
// se inyectan para que el job sea determinista en las pruebas.
type Avisador struct {
	DB     *gorm.DB
	Loc    *time.Location
	Ahora  func() time.Time
	Enviar func(destino, asunto, html string) (mailer.Resultado, error)
}

func NuevoAvisador(db *gorm.DB, loc *time.Location) *Avisador {
	return &Avisador{
		DB:    db,
		Loc:   loc,
		Ahora: time.Now,
		Enviar: func(destino, asunto, html string) (mailer.Resultado, error) {
			return mailer.Enviar(destino, asunto, html)
		},
	}
}

// Correr procesa los tres offsets del día. Devuelve la cantidad de correos
// efectivamente enviados.
func (a *Avisador) Correr() int {
	enviados := 0
	for _, offset := range OffsetsAviso {
		enviados += a.correrOffset(offset)
	}
	return enviados
}

func (a *Avisador) correrOffset(offset int) int {
	hoy := finance.SoloFecha(a.Ahora(), a.Loc)
	objetivo := hoy.AddDate(0, 0, offset)
	tipo := fmt.Sprintf("vencimiento_%d", offset)

	var cuotas []models.Cuota
	err := a.DB.Preload("Cliente").
		Where("pagada = ? AND estado = ? AND fecha_vencimiento >= ? AND fecha_vencimiento < ?",
			false, models.CuotaPendiente, objetivo, objetivo.AddDate(0, 0, 1)).
		Find(&cuotas).Error
	if err != nil {
		slog.Error("Avisos de vencimiento: no se pudieron consultar las cuotas", "tipo", tipo, "error", err)
		return 0
	}

	enviados := 0
	for _, cuota := range cuotas {
		if cuota.Cliente == nil || cuota.Cliente.Email == "" {
			continue
		}

		// La garantía de "a lo sumo una vez" la da el índice único sobre
		// (tipo, canal, cuota): si ya hay registro, ni se intenta.
		var existente models.NotificacionLog
		err := a.DB.Where("tipo = ? AND canal = ? AND cuota_id = ?", tipo, canalEmail, cuota.ID).
			First(&existente).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			slog.Error("Avisos de vencimiento: error al consultar el log", "cuota_id", cuota.ID, "error", err)
			continue
		}

		asunto, html := plantillaAviso(&cuota, offset)
		resultado, err := a.Enviar(cuota.Cliente.Email, asunto, html)

		if err == nil && resultado == mailer.Omitido {
			// Mailer degradado: se sigue sin registrar, así el aviso puede
			// salir cuando el mailer esté configurado.
			continue
		}

		registro := models.NotificacionLog{
			Tipo:         tipo,
			Canal:        canalEmail,
			CuotaID:      cuota.ID,
			Destinatario: cuota.Cliente.Email,
		}
		if err != nil {
			registro.Estado = models.NotificacionErronea
			registro.Mensaje = err.Error()
			slog.Error("Avisos de vencimiento: falló el envío", "cuota_id", cuota.ID, "error", err)
		} else {
			registro.Estado = models.NotificacionEnviada
			enviados++
		}

		// Éxito o error, el registro queda: una corrida posterior del mismo
		// día no reintenta el envío.
		if err := a.DB.Create(&registro).Error; err != nil {
			slog.Error("Avisos de vencimiento: no se pudo registrar el intento", "cuota_id", cuota.ID, "error", err)
		}
	}
	return enviados
}

func plantillaAviso(cuota *models.Cuota, offset int) (asunto, html string) {
	vencimiento := cuota.FechaVencimiento.Format("02/01/2006")
	switch offset {
	case 0:
		asunto = "Su cuota vence hoy"
	default:
		asunto = fmt.Sprintf("Su cuota vence en %d días", offset)
	}
	html = fmt.Sprintf(
		"<p>Le recordamos que la cuota %d de %d (%s), por $ %.2f, vence el %s.</p>",
		cuota.NumeroCuota, cuota.TotalCuotas, cuota.Concepto, cuota.Monto, vencimiento,
	)
	return asunto, html
}
