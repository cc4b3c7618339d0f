package jobs

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pablodexsa/autos-backend-sub000/internal/mailer"
	"github.com/pablodexsa/autos-backend-sub000/internal/testdb"
	"github.com/pablodexsa/autos-backend-sub000/models"
)

type envioRegistrado struct {
	destino string
	asunto  string
}

func avisadorDePrueba(db *gorm.DB, hoy time.Time) (*Avisador, *[]envioRegistrado) {
	var envios []envioRegistrado
	a := &Avisador{
		DB:    db,
		Loc:   time.UTC,
		Ahora: func() time.Time { return hoy },
		Enviar: func(destino, asunto, html string) (mailer.Resultado, error) {
			envios = append(envios, envioRegistrado{destino: destino, asunto: asunto})
			return mailer.Enviado, nil
		},
	}
	return a, &envios
}

func crearCuotaConCliente(t *testing.T, db *gorm.DB, email string, vence time.Time) models.Cuota {
	t.Helper()
	cliente := models.Cliente{Nombre: "Luz", Apellido: "Juarez", Documento: email + "-doc", Email: email}
	require.NoError(t, db.Create(&cliente).Error)

	cuota := models.Cuota{
		VentaID: 1, ClienteID: cliente.ID,
		Monto: 100_000, SaldoRestante: 100_000,
		FechaVencimiento: vence,
		Concepto:         models.ConceptoPersonal,
		NumeroCuota:      1, TotalCuotas: 12,
		Estado: models.CuotaPendiente,
	}
	require.NoError(t, db.Create(&cuota).Error)
	return cuota
}

func TestAvisosPorCadaOffset(t *testing.T) {
	db := testdb.Abrir(t)
	hoy := time.Date(2026, time.June, 10, 8, 0, 0, 0, time.UTC)

	crearCuotaConCliente(t, db, "hoy@test.com", time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC))
	crearCuotaConCliente(t, db, "dos@test.com", time.Date(2026, time.June, 12, 0, 0, 0, 0, time.UTC))
	crearCuotaConCliente(t, db, "cinco@test.com", time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC))
	// Fuera de los offsets: no se avisa.
	crearCuotaConCliente(t, db, "lejos@test.com", time.Date(2026, time.June, 13, 0, 0, 0, 0, time.UTC))

	a, envios := avisadorDePrueba(db, hoy)
	assert.Equal(t, 3, a.Correr())
	assert.Len(t, *envios, 3)

	var logs int64
	db.Model(&models.NotificacionLog{}).Count(&logs)
	assert.EqualValues(t, 3, logs)
}

func TestAvisosSonIdempotentesPorDia(t *testing.T) {
	db := testdb.Abrir(t)
	hoy := time.Date(2026, time.June, 10, 8, 0, 0, 0, time.UTC)
	crearCuotaConCliente(t, db, "unica@test.com", time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC))

	a, envios := avisadorDePrueba(db, hoy)
	assert.Equal(t, 1, a.Correr())

	// Segunda corrida del mismo día: cero envíos nuevos y cero filas nuevas.
	assert.Equal(t, 0, a.Correr())
	assert.Len(t, *envios, 1)

	var logs int64
	db.Model(&models.NotificacionLog{}).Count(&logs)
	assert.EqualValues(t, 1, logs)
}

func TestAvisoFallidoNoSeReintenta(t *testing.T) {
	db := testdb.Abrir(t)
	hoy := time.Date(2026, time.June, 10, 8, 0, 0, 0, time.UTC)
	cuota := crearCuotaConCliente(t, db, "falla@test.com", time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC))

	intentos := 0
	a := &Avisador{
		DB:    db,
		Loc:   time.UTC,
		Ahora: func() time.Time { return hoy },
		Enviar: func(destino, asunto, html string) (mailer.Resultado, error) {
			intentos++
			return mailer.Omitido, errors.New("smtp caído")
		},
	}

	assert.Equal(t, 0, a.Correr())
	require.Equal(t, 1, intentos)

	var registro models.NotificacionLog
	require.NoError(t, db.Where("cuota_id = ?", cuota.ID).First(&registro).Error)
	assert.Equal(t, models.NotificacionErronea, registro.Estado)
	assert.Contains(t, registro.Mensaje, "smtp caído")

	// El error quedó registrado: la corrida siguiente del día no reintenta.
	a.Correr()
	assert.Equal(t, 1, intentos)
}

func TestAvisosSaltanClientesSinEmail(t *testing.T) {
	db := testdb.Abrir(t)
	hoy := time.Date(2026, time.June, 10, 8, 0, 0, 0, time.UTC)
	crearCuotaConCliente(t, db, "", time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC))

	a, envios := avisadorDePrueba(db, hoy)
	assert.Equal(t, 0, a.Correr())
	assert.Empty(t, *envios)

	var logs int64
	db.Model(&models.NotificacionLog{}).Count(&logs)
	assert.EqualValues(t, 0, logs)
}

func TestAvisosNoTocanCuotasPagadas(t *testing.T) {
	db := testdb.Abrir(t)
	hoy := time.Date(2026, time.June, 10, 8, 0, 0, 0, time.UTC)
	cuota := crearCuotaConCliente(t, db, "pagada@test.com", time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, db.Model(&cuota).Updates(map[string]interface{}{
		"pagada": true,
		"estado": models.CuotaPagada,
	}).Error)

	a, envios := avisadorDePrueba(db, hoy)
	assert.Equal(t, 0, a.Correr())
	assert.Empty(t, *envios)
}

func TestMailerOmitidoNoRegistra(t *testing.T) {
	// Con el mailer sin configurar el aviso no cuenta como enviado ni queda
	// registrado: podrá salir cuando haya configuración.
	db := testdb.Abrir(t)
	hoy := time.Date(2026, time.June, 10, 8, 0, 0, 0, time.UTC)
	crearCuotaConCliente(t, db, "luego@test.com", time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC))

	a := &Avisador{
		DB:    db,
		Loc:   time.UTC,
		Ahora: func() time.Time { return hoy },
		Enviar: func(destino, asunto, html string) (mailer.Resultado, error) {
			return mailer.Omitido, nil
		},
	}

	assert.Equal(t, 0, a.Correr())

	var logs int64
	db.Model(&models.NotificacionLog{}).Count(&logs)
	assert.EqualValues(t, 0, logs)
}
