package models

import (
	"time"

	"gorm.io/gorm"
)

// Estados de una reserva. Vigente es el único estado que el barrido
// automático procesa; los demás son terminales para el procesamiento.
const (
	ReservaVigente   = "Vigente"
	ReservaVencida   = "Vencida"
	ReservaCancelada = "Cancelada"
	ReservaAceptada  = "Aceptada"
)

// Reserva retiene un vehículo a nombre de un cliente contra una seña.
type Reserva struct {
	gorm.Model
	ClienteID  uint      `json:"clienteId" gorm:"not null;index"`
	Cliente    *Cliente  `json:"cliente,omitempty"`
	VehiculoID uint      `json:"vehiculoId" gorm:"not null;index"`
	Vehiculo   *Vehiculo `json:"vehiculo,omitempty"`
	VendedorID *uint     `json:"vendedorId,omitempty"`
	Vendedor   *Usuario  `json:"vendedor,omitempty"`

	Monto float64   `json:"monto" gorm:"type:numeric(12,2)"`
	Fecha time.Time `json:"fecha"`

	// FechaVencimiento = Fecha + 48 horas hábiles. Se corre 24 horas hábiles
	// más cada vez que entra un garante nuevo estando la reserva vigente.
	FechaVencimiento time.Time `json:"fechaVencimiento" gorm:"index"`

	Estado string `json:"estado" gorm:"default:Vigente;index"`

	// Copias congeladas al momento de reservar, para listados y comprobantes.
	Dominio          string `json:"dominio"`
	VehiculoEtiqueta string `json:"vehiculoEtiqueta"`

	Garantes []Garante `json:"garantes" gorm:"foreignKey:ReservaID"`
}

func (Reserva) TableName() string { return "reservas" }

type Garante struct {
	gorm.Model
	ReservaID uint   `json:"reservaId" gorm:"not null;index"`
	Nombre    string `json:"nombre"`
	Documento string `json:"documento"`
	Telefono  string `json:"telefono"`
}

func (Garante) TableName() string { return "garantes" }
