package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/pablodexsa/autos-backend-sub000/config"
	"github.com/pablodexsa/autos-backend-sub000/internal/jobs"
	"github.com/pablodexsa/autos-backend-sub000/internal/routes"
	"github.com/pablodexsa/autos-backend-sub000/models"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("Sin archivo .env, se usan las variables de entorno del sistema")
	}

	config.LoadLocation()
	config.LoadJWT()
	config.ConnectDB()
	config.ConnectRedis()

	if err := config.DB.AutoMigrate(
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
	); err != nil {
		slog.Error("Error en la migración automática", "error", err)
		os.Exit(1)
	}

	seedTasas()

	cronRunner := jobs.Iniciar()
	defer cronRunner.Stop()

	r := gin.Default()
	routes.SetupRoutes(r)

	puerto := os.Getenv("PORT")
	if puerto == "" {
		puerto = "8080"
	}
	if err := r.Run(":" + puerto); err != nil {
		slog.Error("El servidor terminó con error", "error", err)
		os.Exit(1)
	}
}

// seedTasas deja la matriz de tasas con todas sus celdas creadas en cero si
// la tabla está vacía; los porcentajes reales los carga administración.
func seedTasas() {
	var total int64
	if err := config.DB.Model(&models.TasaInteres{}).Count(&total).Error; err != nil || total > 0 {
		return
	}

	tipos := []string{models.CreditoPrendario, models.CreditoPersonal, models.CreditoFinanciacion}
	tramos := []int{12, 24, 36}
	for _, tipo := range tipos {
		for _, meses := range tramos {
			fila := models.TasaInteres{Tipo: tipo, Meses: meses, Porcentaje: 0}
			if err := config.DB.Create(&fila).Error; err != nil {
				slog.Warn("No se pudo inicializar la matriz de tasas", "tipo", tipo, "meses", meses, "error", err)
				return
			}
		}
	}
	slog.Info("Matriz de tasas inicializada en cero")
}
