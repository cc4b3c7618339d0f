package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pablodexsa/autos-backend-sub000/models"
)

func routerCuotas() *gin.Engine {
	r := gin.New()
	r.GET("/cuotas", ListCuotasHandler)
	r.GET("/cuotas/:id", GetCuotaHandler)
	r.GET("/cuotas/export", ExportCuotasHandler)
	return r
}

func TestGetCuotaCalculaElSaldoAlDia(t *testing.T) {
	db := prepararAPI(t)
	cliente := crearCliente(t, db, "30400100")
	cuota := crearCuotaPendiente(t, db, cliente, 100_000)
	router := routerCuotas()

	// Diez días después del vencimiento del 10/03: 10% de recargo.
	w := hacerJSON(router, http.MethodGet, fmt.Sprintf("/cuotas/%d?al=2026-03-20", cuota.ID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var item CuotaListItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, 110_000.00, item.SaldoActual)
	assert.Equal(t, 10, item.DiasAtraso)

	// El saldo guardado sigue intacto: el recargo vive solo en la respuesta.
	var persistida models.Cuota
	require.NoError(t, db.First(&persistida, cuota.ID).Error)
	assert.Equal(t, 100_000.00, persistida.SaldoRestante)
}

func TestGetCuotaAntesDelVencimiento(t *testing.T) {
	db := prepararAPI(t)
	cliente := crearCliente(t, db, "30400101")
	cuota := crearCuotaPendiente(t, db, cliente, 100_000)

	w := hacerJSON(routerCuotas(), http.MethodGet, fmt.Sprintf("/cuotas/%d?al=2026-03-01", cuota.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var item CuotaListItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, 100_000.00, item.SaldoActual)
	assert.Equal(t, 0, item.DiasAtraso)
}

func TestListCuotasFiltraPorEstado(t *testing.T) {
	db := prepararAPI(t)
	cliente := crearCliente(t, db, "30400102")
	crearCuotaPendiente(t, db, cliente, 100_000)
	pagada := models.Cuota{
		VentaID: 1, ClienteID: cliente.ID,
		Monto: 80_000, SaldoRestante: 80_000,
		FechaVencimiento: time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC),
		NumeroCuota:      1, TotalCuotas: 6,
		Pagada: true, Estado: models.CuotaPagada,
	}
	require.NoError(t, db.Create(&pagada).Error)

	w := hacerJSON(routerCuotas(), http.MethodGet, "/cuotas?estado=PENDIENTE&al=2026-03-01", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp PaginatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 1, resp.TotalRows)
}

func TestListCuotasRechazaFechaInvalida(t *testing.T) {
	prepararAPI(t)

	w := hacerJSON(routerCuotas(), http.MethodGet, "/cuotas?al=20-03-2026", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportCuotasDevuelveExcel(t *testing.T) {
	db := prepararAPI(t)
	cliente := crearCliente(t, db, "30400103")
	crearCuotaPendiente(t, db, cliente, 100_000)

	w := hacerJSON(routerCuotas(), http.MethodGet, "/cuotas/export?al=2026-03-20", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
	assert.NotZero(t, w.Body.Len())
}
