package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Estados posibles de un vehículo. El campo es de un solo escritor por vez:
// reservas y ventas lo mutan siempre con un UPDATE condicional sobre el estado
// anterior, nunca con una escritura ciega.
const (
	VehiculoDisponible = "Disponible"
	VehiculoReservado  = "Reservado"
	VehiculoVendido    = "Vendido"
)

type Vehiculo struct {
	gorm.Model
	Dominio string  `json:"dominio" gorm:"uniqueIndex;not null"`
	Marca   string  `json:"marca"`
	Modelo  string  `json:"modelo"`
	Version string  `json:"version"`
	Anio    int     `json:"anio"`
	Precio  float64 `json:"precio" gorm:"type:numeric(12,2)"`
	Estado  string  `json:"estado" gorm:"default:Disponible;index"`
}

func (Vehiculo) TableName() string { return "vehiculos" }

// Etiqueta arma la descripción corta que se congela en reservas y recibos.
func (v *Vehiculo) Etiqueta() string {
	return fmt.Sprintf("%s %s %s %d", v.Marca, v.Modelo, v.Version, v.Anio)
}
