// Package testdb abre bases SQLite en memoria para las pruebas, con el
// esquema completo migrado. Solo se usa desde archivos _test.
package testdb

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pablodexsa/autos-backend-sub000/models"
)

// Abrir crea una base en memoria aislada para la prueba.
func Abrir(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("no se pudo abrir la base de prueba: %v", err)
	}

	err = db.AutoMigrate(
		&models.Usuario{},
		&models.Cliente{},
		&models.Vehiculo{},
		&models.Venta{},
		&models.CreditoVenta{},
		&models.Cuota{},
		&models.PagoCuota{},
		&models.Reserva{},
		&models.Garante{},
		&models.Reembolso{},
		&models.TasaInteres{},
		&models.Configuracion{},
		&models.NotificacionLog{},
	)
	if err != nil {
		t.Fatalf("no se pudo migrar el esquema de prueba: %v", err)
	}
	return db
}
