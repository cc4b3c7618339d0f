package models

import (
	"time"

	"gorm.io/gorm"
)

// Tipos de crédito que pueden componer una venta financiada.
const (
	CreditoPrendario    = "prendario"
	CreditoPersonal     = "personal"
	CreditoFinanciacion = "financiacion"
)

// Venta registra la operación de venta de un vehículo. La composición del
// financiamiento se modela como una lista ordenada de CreditoVenta en lugar de
// campos opcionales en paralelo: cada componente activo es una fila.
type Venta struct {
	gorm.Model
	ClienteID  uint      `json:"clienteId" gorm:"not null;index"`
	Cliente    *Cliente  `json:"cliente,omitempty"`
	VehiculoID uint      `json:"vehiculoId" gorm:"not null;index"`
	Vehiculo   *Vehiculo `json:"vehiculo,omitempty"`
	VendedorID uint      `json:"vendedorId"`
	Vendedor   *Usuario  `json:"vendedor,omitempty"`

	Fecha       time.Time `json:"fecha"`
	PrecioVenta float64   `json:"precioVenta" gorm:"type:numeric(12,2)"`
	Anticipo    float64   `json:"anticipo" gorm:"type:numeric(12,2)"`

	Creditos []CreditoVenta `json:"creditos" gorm:"foreignKey:VentaID"`
	Cuotas   []Cuota        `json:"cuotas,omitempty" gorm:"foreignKey:VentaID"`
}

func (Venta) TableName() string { return "ventas" }

// CreditoVenta es un componente de financiamiento de la venta.
// Monto es el capital sin interés; MontoTotal el capital con el interés de la
// tasa aplicada, del cual salen las cuotas iguales.
type CreditoVenta struct {
	gorm.Model
	VentaID        uint    `json:"ventaId" gorm:"not null;index"`
	Tipo           string  `json:"tipo" gorm:"not null"`
	Monto          float64 `json:"monto" gorm:"type:numeric(12,2);not null"`
	MontoTotal     float64 `json:"montoTotal" gorm:"type:numeric(12,2)"`
	TasaPorcentaje float64 `json:"tasaPorcentaje" gorm:"type:numeric(5,2)"`
	CantidadCuotas int     `json:"cantidadCuotas" gorm:"not null"`
	AnioInicio     int     `json:"anioInicio"`
	MesInicio      int     `json:"mesInicio"`
	DiaPago        int     `json:"diaPago"`
}

func (CreditoVenta) TableName() string { return "ventas_creditos" }
