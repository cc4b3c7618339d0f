package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pablodexsa/autos-backend-sub000/config"
	"github.com/pablodexsa/autos-backend-sub000/internal/testdb"
	"github.com/pablodexsa/autos-backend-sub000/models"
)

// prepararAPI deja los globales de config apuntando a una base en memoria
// aislada. Sin Redis: el caché de configuración degrada a consulta directa.
func prepararAPI(t *testing.T) *gorm.DB {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.DB = testdb.Abrir(t)
	config.RDB = nil
	config.Location = time.UTC
	t.Setenv("RECIBOS_DIR", t.TempDir())
	return config.DB
}

func hacerJSON(router *gin.Engine, metodo, ruta string, cuerpo interface{}) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if cuerpo != nil {
		_ = json.NewEncoder(&body).Encode(cuerpo)
	}
	req := httptest.NewRequest(metodo, ruta, &body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func crearCliente(t *testing.T, db *gorm.DB, documento string) models.Cliente {
	t.Helper()
	cliente := models.Cliente{
		Nombre: "Carla", Apellido: "Gimenez",
		Documento: documento, Email: documento + "@test.com",
	}
	require.NoError(t, db.Create(&cliente).Error)
	return cliente
}

func crearVehiculo(t *testing.T, db *gorm.DB, dominio, estado string) models.Vehiculo {
	t.Helper()
	vehiculo := models.Vehiculo{
		Dominio: dominio, Marca: "Ford", Modelo: "Fiesta", Version: "SE", Anio: 2020,
		Precio: 8_000_000, Estado: estado,
	}
	require.NoError(t, db.Create(&vehiculo).Error)
	return vehiculo
}
