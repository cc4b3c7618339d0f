package models

import (
	"time"

	"gorm.io/gorm"
)

// PagoCuota es un evento de pago aplicado a exactamente una cuota.
type PagoCuota struct {
	gorm.Model
	CuotaID   uint     `json:"cuotaId" gorm:"not null;index"`
	Cuota     *Cuota   `json:"cuota,omitempty"`
	ClienteID uint     `json:"clienteId" gorm:"not null"`
	Cliente   *Cliente `json:"cliente,omitempty"`

	Monto     float64   `json:"monto" gorm:"type:numeric(12,2);not null"`
	FechaPago time.Time `json:"fechaPago" gorm:"not null"`

	// ReciboPath guarda la ruta del PDF en disco; en la base solo va la ruta.
	ReciboPath string `json:"reciboPath"`
	Pagado     bool   `json:"pagado"`
}

func (PagoCuota) TableName() string { return "pagos_cuotas" }
