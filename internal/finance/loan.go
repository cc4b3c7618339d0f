package finance

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrSinCuotas       = errors.New("la cantidad de cuotas debe ser mayor a cero")
	ErrCapitalInvalido = errors.New("el capital debe ser mayor a cero")
)

var (
	uno  = decimal.NewFromInt(1)
	cien = decimal.NewFromInt(100)
)

// TotalConInteres aplica interés simple una sola vez sobre todo el capital:
// total = capital × (1 + tasa/100). No es amortización francesa ni interés
// compuesto por período; todas las cuotas del plan valen lo mismo.
func TotalConInteres(capital, tasaPorcentaje decimal.Decimal) decimal.Decimal {
	return capital.Mul(uno.Add(tasaPorcentaje.Div(cien)))
}

// Neto recupera el capital sin interés a partir de un total ya recargado:
// neto = total / (1 + tasa/100). Lo usan los reportes que muestran neto y
// cuota a la vez.
func Neto(total, tasaPorcentaje decimal.Decimal) decimal.Decimal {
	return total.Div(uno.Add(tasaPorcentaje.Div(cien)))
}

// ValorCuota reparte el total con interés en partes iguales, redondeado a dos
// decimales. Cero cuotas es un error del llamador, no un plan de valor cero.
func ValorCuota(capital, tasaPorcentaje decimal.Decimal, cantidad int) (decimal.Decimal, error) {
	if cantidad <= 0 {
		return decimal.Zero, ErrSinCuotas
	}
	return TotalConInteres(capital, tasaPorcentaje).Div(decimal.NewFromInt(int64(cantidad))).Round(2), nil
}
