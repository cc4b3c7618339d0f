package models

import (
	"time"

	"gorm.io/gorm"
)

// Estados de una cuota.
const (
	CuotaPendiente = "PENDIENTE"
	CuotaPagada    = "PAGADA"
)

// Conceptos con los que el planificador etiqueta las cuotas, para que los
// reportes puedan filtrar por tipo de financiamiento sin recorrer la venta.
const (
	ConceptoPrendario    = "Crédito prendario"
	ConceptoPersonal     = "Financiación personal"
	ConceptoFinanciacion = "Financiación de la agencia"
)

// Cuota es una obligación de pago del plan de financiamiento de una venta.
// Cada registro es una fila del cronograma.
type Cuota struct {
	gorm.Model

	// VentaID enlaza con la venta dueña del plan.
	VentaID uint `json:"ventaId" gorm:"not null;index"`

	// ClienteID se fija siempre al crear la cuota con el cliente de la venta;
	// nunca se infiere después. Evita que la cuota y su venta diverjan.
	ClienteID uint     `json:"clienteId" gorm:"not null;index"`
	Cliente   *Cliente `json:"cliente,omitempty"`

	// Monto es el valor original planificado de la cuota.
	Monto float64 `json:"monto" gorm:"type:numeric(12,2);not null"`

	// SaldoRestante arranca igual a Monto y solo lo muta la conciliación de
	// pagos. El interés por mora NO se persiste acá: se recalcula en cada
	// lectura sobre este valor.
	SaldoRestante float64 `json:"saldoRestante" gorm:"type:numeric(12,2)"`

	// FechaVencimiento es una fecha calendario, sin componente horario.
	FechaVencimiento time.Time `json:"fechaVencimiento" gorm:"not null;index"`

	Concepto string `json:"concepto"`

	// NumeroCuota y TotalCuotas son etiquetas de presentación ("3 de 12");
	// el orden real del plan lo da FechaVencimiento.
	NumeroCuota int `json:"numeroCuota"`
	TotalCuotas int `json:"totalCuotas"`

	Pagada bool   `json:"pagada"`
	Estado string `json:"estado" gorm:"default:PENDIENTE;index"`
}

func (Cuota) TableName() string { return "cuotas" }
