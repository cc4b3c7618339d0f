package models

import "gorm.io/gorm"

// TasaInteres es una celda de la matriz de tasas: porcentaje por
// (tipo de crédito, tramo de meses). Los tramos soportados son 12, 24 y 36.
type TasaInteres struct {
	gorm.Model
	Tipo       string  `json:"tipo" gorm:"uniqueIndex:idx_tasa_tipo_meses;not null"`
	Meses      int     `json:"meses" gorm:"uniqueIndex:idx_tasa_tipo_meses;not null"`
	Porcentaje float64 `json:"porcentaje" gorm:"type:numeric(5,2)"`
}

func (TasaInteres) TableName() string { return "tasas_interes" }
