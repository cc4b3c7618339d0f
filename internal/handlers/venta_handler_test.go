package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pablodexsa/autos-backend-sub000/models"
)

func routerVentas() *gin.Engine {
	r := gin.New()
	r.POST("/ventas", CreateVentaHandler)
	r.GET("/ventas/:id", GetVentaHandler)
	r.DELETE("/ventas/:id", DeleteVentaHandler)
	return r
}

func TestCreateVentaGeneraElPlanCompleto(t *testing.T) {
	db := prepararAPI(t)
	cliente := crearCliente(t, db, "30100200")
	vehiculo := crearVehiculo(t, db, "AA111AA", models.VehiculoDisponible)
	require.NoError(t, db.Create(&models.TasaInteres{
		Tipo: models.CreditoPersonal, Meses: 12, Porcentaje: 20,
	}).Error)

	w := hacerJSON(routerVentas(), http.MethodPost, "/ventas", gin.H{
		"clienteId":   cliente.ID,
		"vehiculoId":  vehiculo.ID,
		"fecha":       "2026-02-20",
		"precioVenta": 9_000_000,
		"anticipo":    500_000,
		"creditos": []gin.H{{
			"tipo":           models.CreditoPersonal,
			"monto":          1_000_000,
			"cantidadCuotas": 12,
			"anioInicio":     2026,
			"mesInicio":      3,
			"diaPago":        10,
		}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Capital de 1.000.000 al 20%: total 1.200.000 en 12 cuotas iguales.
	var credito models.CreditoVenta
	require.NoError(t, db.First(&credito).Error)
	assert.Equal(t, 20.0, credito.TasaPorcentaje)
	assert.Equal(t, 1_200_000.00, credito.MontoTotal)

	var cuotas []models.Cuota
	require.NoError(t, db.Order("fecha_vencimiento ASC").Find(&cuotas).Error)
	require.Len(t, cuotas, 12)
	for _, cuota := range cuotas {
		assert.Equal(t, 100_000.00, cuota.Monto)
		assert.Equal(t, 100_000.00, cuota.SaldoRestante)
		assert.Equal(t, cliente.ID, cuota.ClienteID)
		assert.Equal(t, models.ConceptoPersonal, cuota.Concepto)
	}

	var vendido models.Vehiculo
	require.NoError(t, db.First(&vendido, vehiculo.ID).Error)
	assert.Equal(t, models.VehiculoVendido, vendido.Estado)
}

func TestCreateVentaSinTasaConfiguradaUsaCero(t *testing.T) {
	db := prepararAPI(t)
	cliente := crearCliente(t, db, "30100201")
	vehiculo := crearVehiculo(t, db, "AA222AA", models.VehiculoDisponible)

	w := hacerJSON(routerVentas(), http.MethodPost, "/ventas", gin.H{
		"clienteId":   cliente.ID,
		"vehiculoId":  vehiculo.ID,
		"precioVenta": 9_000_000,
		"creditos": []gin.H{{
			"tipo":           models.CreditoPrendario,
			"monto":          600_000,
			"cantidadCuotas": 6,
			"anioInicio":     2026,
			"mesInicio":      4,
			"diaPago":        5,
		}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Sin fila en la matriz de tasas el interés es cero, no un error.
	var cuotas []models.Cuota
	require.NoError(t, db.Find(&cuotas).Error)
	require.Len(t, cuotas, 6)
	assert.Equal(t, 100_000.00, cuotas[0].Monto)
}

func TestCreateVentaRechazaVehiculoVendido(t *testing.T) {
	db := prepararAPI(t)
	cliente := crearCliente(t, db, "30100202")
	vehiculo := crearVehiculo(t, db, "AA333AA", models.VehiculoVendido)

	w := hacerJSON(routerVentas(), http.MethodPost, "/ventas", gin.H{
		"clienteId":   cliente.ID,
		"vehiculoId":  vehiculo.ID,
		"precioVenta": 9_000_000,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	var ventas int64
	db.Model(&models.Venta{}).Count(&ventas)
	assert.EqualValues(t, 0, ventas)
}

func TestCreateVentaFallidaNoDejaRastro(t *testing.T) {
	db := prepararAPI(t)
	cliente := crearCliente(t, db, "30100203")
	vehiculo := crearVehiculo(t, db, "AA444AA", models.VehiculoDisponible)

	// El segundo crédito trae un día de pago imposible: la transacción entera
	// se revierte, incluido el pase del vehículo a Vendido.
	w := hacerJSON(routerVentas(), http.MethodPost, "/ventas", gin.H{
		"clienteId":   cliente.ID,
		"vehiculoId":  vehiculo.ID,
		"precioVenta": 9_000_000,
		"creditos": []gin.H{
			{
				"tipo":           models.CreditoPrendario,
				"monto":          600_000,
				"cantidadCuotas": 6,
				"anioInicio":     2026,
				"mesInicio":      4,
				"diaPago":        5,
			},
			{
				"tipo":           models.CreditoPersonal,
				"monto":          200_000,
				"cantidadCuotas": 12,
				"anioInicio":     2026,
				"mesInicio":      4,
				"diaPago":        32,
			},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var ventas, creditos, cuotas int64
	db.Model(&models.Venta{}).Count(&ventas)
	db.Model(&models.CreditoVenta{}).Count(&creditos)
	db.Model(&models.Cuota{}).Count(&cuotas)
	assert.EqualValues(t, 0, ventas)
	assert.EqualValues(t, 0, creditos)
	assert.EqualValues(t, 0, cuotas)

	var libre models.Vehiculo
	require.NoError(t, db.First(&libre, vehiculo.ID).Error)
	assert.Equal(t, models.VehiculoDisponible, libre.Estado)
}

func TestCreateVentaRespetaElTopePersonal(t *testing.T) {
	db := prepararAPI(t)
	cliente := crearCliente(t, db, "30100204")
	vehiculo := crearVehiculo(t, db, "AA555AA", models.VehiculoDisponible)
	require.NoError(t, db.Create(&models.Configuracion{
		Clave: "financiacion.personal.max", Valor: "500000",
	}).Error)

	w := hacerJSON(routerVentas(), http.MethodPost, "/ventas", gin.H{
		"clienteId":   cliente.ID,
		"vehiculoId":  vehiculo.ID,
		"precioVenta": 9_000_000,
		"creditos": []gin.H{{
			"tipo":           models.CreditoPersonal,
			"monto":          800_000,
			"cantidadCuotas": 12,
			"anioInicio":     2026,
			"mesInicio":      3,
			"diaPago":        10,
		}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteVentaLiberaElVehiculo(t *testing.T) {
	db := prepararAPI(t)
	cliente := crearCliente(t, db, "30100205")
	vehiculo := crearVehiculo(t, db, "AA666AA", models.VehiculoDisponible)
	router := routerVentas()

	w := hacerJSON(router, http.MethodPost, "/ventas", gin.H{
		"clienteId":   cliente.ID,
		"vehiculoId":  vehiculo.ID,
		"precioVenta": 9_000_000,
		"creditos": []gin.H{{
			"tipo":           models.CreditoFinanciacion,
			"monto":          300_000,
			"cantidadCuotas": 3,
			"anioInicio":     2026,
			"mesInicio":      5,
			"diaPago":        1,
		}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var venta models.Venta
	require.NoError(t, db.First(&venta).Error)

	w = hacerJSON(router, http.MethodDelete, fmt.Sprintf("/ventas/%d", venta.ID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var cuotas int64
	db.Model(&models.Cuota{}).Count(&cuotas)
	assert.EqualValues(t, 0, cuotas)

	var libre models.Vehiculo
	require.NoError(t, db.First(&libre, vehiculo.ID).Error)
	assert.Equal(t, models.VehiculoDisponible, libre.Estado)
}
