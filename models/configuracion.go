package models

import "gorm.io/gorm"

// Configuracion guarda parámetros administrables como texto plano
// (montos de reserva, tope de financiación personal, feriados).
type Configuracion struct {
	gorm.Model
	Clave string `json:"clave" gorm:"uniqueIndex;not null"`
	Valor string `json:"valor"`
}

func (Configuracion) TableName() string { return "configuraciones" }
