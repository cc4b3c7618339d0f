package finance

import (
	"time"

	"github.com/pablodexsa/autos-backend-sub000/models"
	"github.com/shopspring/decimal"
)

var unoPorCiento = decimal.NewFromFloat(0.01)

// SoloFecha trunca un instante a la medianoche de su fecha calendario en la
// zona fija del negocio.
func SoloFecha(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// DiasDeAtraso cuenta los días calendario transcurridos desde el vencimiento,
// con ambas fechas truncadas a medianoche. Nunca es negativo.
func DiasDeAtraso(vencimiento, al time.Time, loc *time.Location) int {
	v := SoloFecha(vencimiento, loc)
	a := SoloFecha(al, loc)
	if !a.After(v) {
		return 0
	}
	return int(a.Sub(v).Hours() / 24)
}

// SaldoActualExacto calcula el saldo de la cuota al día consultado con el
// recargo por mora: 1% simple por día calendario de atraso, sin tope.
//
// El recargo se recalcula en cada lectura sobre SaldoRestante y nunca se
// persiste: así el cálculo es idempotente y no hay doble recargo, a costa de
// que dos lecturas en días distintos muestren saldos distintos para la misma
// cuota impaga.
func SaldoActualExacto(c *models.Cuota, al time.Time, loc *time.Location) decimal.Decimal {
	saldo := decimal.NewFromFloat(c.SaldoRestante)

	dias := DiasDeAtraso(c.FechaVencimiento, al, loc)
	if dias <= 0 {
		// Antes del vencimiento no hay descuento ni recargo.
		return saldo
	}

	factor := uno.Add(unoPorCiento.Mul(decimal.NewFromInt(int64(dias))))
	return saldo.Mul(factor)
}

// SaldoActual es SaldoActualExacto redondeado a dos decimales, para mostrar.
func SaldoActual(c *models.Cuota, al time.Time, loc *time.Location) float64 {
	return SaldoActualExacto(c, al, loc).Round(2).InexactFloat64()
}
