package models

import "gorm.io/gorm"

const (
	NotificacionEnviada = "ENVIADA"
	NotificacionErronea = "ERROR"
)

// NotificacionLog deja constancia de cada intento de aviso de vencimiento.
// El índice único sobre (tipo, canal, cuota) es la garantía de envío a lo
// sumo una vez: corridas repetidas del job no reenvían ni tras un error.
type NotificacionLog struct {
	gorm.Model
	Tipo    string `json:"tipo" gorm:"uniqueIndex:idx_notif_unica;not null"`
	Canal   string `json:"canal" gorm:"uniqueIndex:idx_notif_unica;not null"`
	CuotaID uint   `json:"cuotaId" gorm:"uniqueIndex:idx_notif_unica;not null"`

	Destinatario string `json:"destinatario"`
	Estado       string `json:"estado"`
	Mensaje      string `json:"mensaje"`
}

func (NotificacionLog) TableName() string { return "notificaciones_log" }
