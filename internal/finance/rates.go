package finance

import (
	"github.com/pablodexsa/autos-backend-sub000/models"
	"gorm.io/gorm"
)

// TramoMeses normaliza una cantidad de meses al tramo soportado más cercano
// de la matriz de tasas. Más de 36 meses no tiene tramo: devuelve 0 y el
// crédito se calcula sin interés.
func TramoMeses(meses int) int {
	switch {
	case meses <= 12:
		return 12
	case meses <= 24:
		return 24
	case meses <= 36:
		return 36
	default:
		return 0
	}
}

// BuscarTasa devuelve el porcentaje configurado para (tipo, tramo).
// Una celda ausente devuelve 0%: "sin tasa configurada" es un estado de
// negocio válido, no un error.
func BuscarTasa(db *gorm.DB, tipo string, meses int) float64 {
	tramo := TramoMeses(meses)
	if tramo == 0 {
		return 0
	}

	var tasa models.TasaInteres
	if err := db.Where("tipo = ? AND meses = ?", tipo, tramo).First(&tasa).Error; err != nil {
		return 0
	}
	return tasa.Porcentaje
}
