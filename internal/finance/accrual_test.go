package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pablodexsa/autos-backend-sub000/models"
)

func cuotaVence(dia time.Time, saldo float64) *models.Cuota {
	return &models.Cuota{
		Monto:            saldo,
		SaldoRestante:    saldo,
		FechaVencimiento: dia,
		Estado:           models.CuotaPendiente,
	}
}

func TestSaldoAntesDelVencimiento(t *testing.T) {
	vencimiento := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)
	cuota := cuotaVence(vencimiento, 100_000)

	// Hasta el día del vencimiento inclusive no hay recargo ni descuento.
	assert.Equal(t, 100_000.00, SaldoActual(cuota, vencimiento.AddDate(0, 0, -30), time.UTC))
	assert.Equal(t, 100_000.00, SaldoActual(cuota, vencimiento.AddDate(0, 0, -1), time.UTC))
	assert.Equal(t, 100_000.00, SaldoActual(cuota, vencimiento, time.UTC))
}

func TestSaldoConMora(t *testing.T) {
	vencimiento := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)
	cuota := cuotaVence(vencimiento, 100_000)

	// 1% simple por día calendario de atraso, sin tope.
	assert.Equal(t, 101_000.00, SaldoActual(cuota, vencimiento.AddDate(0, 0, 1), time.UTC))
	assert.Equal(t, 110_000.00, SaldoActual(cuota, vencimiento.AddDate(0, 0, 10), time.UTC))
	assert.Equal(t, 200_000.00, SaldoActual(cuota, vencimiento.AddDate(0, 0, 100), time.UTC))
	// Un año entero de mora (365 días): factor 4,65.
	assert.Equal(t, 465_000.00, SaldoActual(cuota, vencimiento.AddDate(1, 0, 0), time.UTC))
}

func TestSaldoIgnoraLaHoraDelDia(t *testing.T) {
	vencimiento := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)
	cuota := cuotaVence(vencimiento, 50_000)

	// Las dos fechas se truncan a medianoche: consultar a las 23:59 del día
	// siguiente es un solo día de atraso.
	casi := time.Date(2026, time.May, 11, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, 50_500.00, SaldoActual(cuota, casi, time.UTC))
}

func TestSaldoEsMonotonoEnElAtraso(t *testing.T) {
	vencimiento := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)
	cuota := cuotaVence(vencimiento, 73_450.33)

	anterior := 0.0
	for dias := -5; dias <= 120; dias++ {
		saldo := SaldoActual(cuota, vencimiento.AddDate(0, 0, dias), time.UTC)
		assert.GreaterOrEqual(t, saldo, anterior, "el saldo retrocedió en el día %d", dias)
		anterior = saldo
	}
}

func TestSaldoSeRecalculaEnCadaLectura(t *testing.T) {
	// El recargo nunca se persiste: dos lecturas en días distintos muestran
	// montos distintos sobre el mismo SaldoRestante sin componerse entre sí.
	vencimiento := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)
	cuota := cuotaVence(vencimiento, 100_000)

	dia5 := SaldoActual(cuota, vencimiento.AddDate(0, 0, 5), time.UTC)
	dia6 := SaldoActual(cuota, vencimiento.AddDate(0, 0, 6), time.UTC)

	assert.Equal(t, 105_000.00, dia5)
	assert.Equal(t, 106_000.00, dia6)
	// El saldo almacenado quedó intacto tras ambas lecturas.
	assert.Equal(t, 100_000.00, cuota.SaldoRestante)
}

func TestDiasDeAtraso(t *testing.T) {
	vencimiento := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DiasDeAtraso(vencimiento, vencimiento, time.UTC))
	assert.Equal(t, 0, DiasDeAtraso(vencimiento, vencimiento.AddDate(0, 0, -3), time.UTC))
	assert.Equal(t, 1, DiasDeAtraso(vencimiento, vencimiento.AddDate(0, 0, 1), time.UTC))
	assert.Equal(t, 31, DiasDeAtraso(vencimiento, time.Date(2026, time.June, 10, 12, 30, 0, 0, time.UTC), time.UTC))
}
