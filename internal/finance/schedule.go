package finance

import (
	"errors"
	"time"

	"github.com/pablodexsa/autos-backend-sub000/models"
	"github.com/shopspring/decimal"
)

var (
	ErrDiaPagoInvalido = errors.New("el día de pago debe estar entre 1 y 31")
	ErrMesInvalido     = errors.New("el mes de inicio debe estar entre 1 y 12")
)

// PlanParams describe un componente de financiamiento a planificar.
type PlanParams struct {
	VentaID        uint
	ClienteID      uint
	Capital        float64
	TasaPorcentaje float64
	Cantidad       int
	AnioInicio     int
	MesInicio      int // 1..12
	DiaPago        int // 1..31
	Concepto       string
}

// GenerarPlan arma las filas del cronograma de cuotas de un componente.
// Los vencimientos avanzan de a un mes manteniendo fijo el día de pago; si el
// día no existe en el mes destino (31 en un mes de 30, 29+ en febrero) la
// aritmética de fechas desborda al mes siguiente. Ese comportamiento se
// conserva tal cual.
//
// Las filas devueltas deben persistirse todas dentro de una misma transacción
// junto con la venta: un plan a medias no es un estado válido.
func GenerarPlan(p PlanParams, loc *time.Location) ([]models.Cuota, error) {
	if p.Cantidad <= 0 {
		return nil, ErrSinCuotas
	}
	if p.Capital <= 0 {
		return nil, ErrCapitalInvalido
	}
	if p.DiaPago < 1 || p.DiaPago > 31 {
		return nil, ErrDiaPagoInvalido
	}
	if p.MesInicio < 1 || p.MesInicio > 12 {
		return nil, ErrMesInvalido
	}

	valor, err := ValorCuota(decimal.NewFromFloat(p.Capital), decimal.NewFromFloat(p.TasaPorcentaje), p.Cantidad)
	if err != nil {
		return nil, err
	}
	monto := valor.InexactFloat64()

	cuotas := make([]models.Cuota, 0, p.Cantidad)
	for i := 0; i < p.Cantidad; i++ {
		// time.Date normaliza meses fuera de rango, con lo que el cruce de
		// año sale solo.
		vencimiento := time.Date(p.AnioInicio, time.Month(p.MesInicio+i), p.DiaPago, 0, 0, 0, 0, loc)

		cuotas = append(cuotas, models.Cuota{
			VentaID:          p.VentaID,
			ClienteID:        p.ClienteID,
			Monto:            monto,
			SaldoRestante:    monto,
			FechaVencimiento: vencimiento,
			Concepto:         p.Concepto,
			NumeroCuota:      i + 1,
			TotalCuotas:      p.Cantidad,
			Pagada:           false,
			Estado:           models.CuotaPendiente,
		})
	}
	return cuotas, nil
}

// ConceptoPorTipo mapea el tipo de crédito a la etiqueta de concepto de sus
// cuotas.
func ConceptoPorTipo(tipo string) string {
	switch tipo {
	case models.CreditoPrendario:
		return models.ConceptoPrendario
	case models.CreditoPersonal:
		return models.ConceptoPersonal
	case models.CreditoFinanciacion:
		return models.ConceptoFinanciacion
	}
	return tipo
}
