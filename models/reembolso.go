package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ReembolsoPendiente = "PENDIENTE"
	ReembolsoEntregado = "ENTREGADO"
)

// Reembolso es el registro compensatorio de la seña de una reserva cancelada.
// El índice único sobre ReservaID garantiza uno por reserva aunque la
// cancelación se intente dos veces.
type Reembolso struct {
	gorm.Model
	ReservaID uint     `json:"reservaId" gorm:"uniqueIndex;not null"`
	Reserva   *Reserva `json:"reserva,omitempty"`

	MontoEsperado float64 `json:"montoEsperado" gorm:"type:numeric(12,2)"`
	Estado        string  `json:"estado" gorm:"default:PENDIENTE"`

	// Se completan recién al entregar el dinero.
	MontoPagado    *float64   `json:"montoPagado,omitempty" gorm:"type:numeric(12,2)"`
	EntregadoEn    *time.Time `json:"entregadoEn,omitempty"`
	EntregadoPorID *uint      `json:"entregadoPorId,omitempty"`
}

func (Reembolso) TableName() string { return "reembolsos" }
