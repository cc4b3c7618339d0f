package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalConInteres(t *testing.T) {
	tests := []struct {
		nombre  string
		capital float64
		tasa    float64
		total   float64
	}{
		{"escenario de referencia", 1_000_000, 20, 1_200_000},
		{"tasa cero deja el capital intacto", 500_000, 0, 500_000},
		{"tasa con decimales", 100_000, 12.5, 112_500},
	}

	for _, tt := range tests {
		t.Run(tt.nombre, func(t *testing.T) {
			total := TotalConInteres(decimal.NewFromFloat(tt.capital), decimal.NewFromFloat(tt.tasa))
			assert.True(t, decimal.NewFromFloat(tt.total).Equal(total), "total = %s", total)
		})
	}
}

func TestValorCuotaEscenarioReferencia(t *testing.T) {
	// 1.000.000 al 20% en 12 cuotas: total 1.200.000, cuota 100.000,00.
	valor, err := ValorCuota(decimal.NewFromInt(1_000_000), decimal.NewFromInt(20), 12)
	require.NoError(t, err)
	assert.Equal(t, "100000.00", valor.StringFixed(2))
}

func TestValorCuotaRechazaCeroCuotas(t *testing.T) {
	_, err := ValorCuota(decimal.NewFromInt(100_000), decimal.NewFromInt(10), 0)
	assert.ErrorIs(t, err, ErrSinCuotas)

	_, err = ValorCuota(decimal.NewFromInt(100_000), decimal.NewFromInt(10), -3)
	assert.ErrorIs(t, err, ErrSinCuotas)
}

func TestSumaDeCuotasCubreElTotal(t *testing.T) {
	// La suma de las cuotas redondeadas tiene que quedar dentro de la
	// tolerancia de redondeo: una diferencia de a lo sumo un centavo por cuota.
	casos := []struct {
		capital  float64
		tasa     float64
		cantidad int
	}{
		{1_000_000, 20, 12},
		{777_777.77, 15, 24},
		{123_456.78, 33.33, 36},
		{999_999.99, 0, 7},
	}

	for _, caso := range casos {
		valor, err := ValorCuota(decimal.NewFromFloat(caso.capital), decimal.NewFromFloat(caso.tasa), caso.cantidad)
		require.NoError(t, err)

		suma := valor.Mul(decimal.NewFromInt(int64(caso.cantidad)))
		total := TotalConInteres(decimal.NewFromFloat(caso.capital), decimal.NewFromFloat(caso.tasa))
		tolerancia := decimal.NewFromFloat(0.01).Mul(decimal.NewFromInt(int64(caso.cantidad)))

		diff := suma.Sub(total).Abs()
		assert.True(t, diff.LessThanOrEqual(tolerancia),
			"capital %.2f tasa %.2f x%d: diferencia %s supera la tolerancia %s",
			caso.capital, caso.tasa, caso.cantidad, diff, tolerancia)
	}
}

func TestNetoRecuperaElCapital(t *testing.T) {
	casos := []struct {
		capital float64
		tasa    float64
	}{
		{1_000_000, 20},
		{350_000.50, 12.5},
		{99_999.99, 0},
		{1, 100},
	}

	for _, caso := range casos {
		capital := decimal.NewFromFloat(caso.capital)
		tasa := decimal.NewFromFloat(caso.tasa)

		neto := Neto(TotalConInteres(capital, tasa), tasa)
		assert.Equal(t, capital.Round(2).StringFixed(2), neto.Round(2).StringFixed(2),
			"capital %.2f tasa %.2f", caso.capital, caso.tasa)
	}
}
