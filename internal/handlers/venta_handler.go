package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pablodexsa/autos-backend-sub000/config"
	"github.com/pablodexsa/autos-backend-sub000/internal/finance"
	"github.com/pablodexsa/autos-backend-sub000/internal/settings"
	"github.com/pablodexsa/autos-backend-sub000/models"
)

// CreditoRequest es un componente de financiamiento de la venta entrante.
type CreditoRequest struct {
	Tipo           string  `json:"tipo" binding:"required"`
	Monto          float64 `json:"monto" binding:"required"`
	CantidadCuotas int     `json:"cantidadCuotas" binding:"required"`
	AnioInicio     int     `json:"anioInicio" binding:"required"`
	MesInicio      int     `json:"mesInicio" binding:"required"`
	DiaPago        int     `json:"diaPago" binding:"required"`
}

// CreateVentaRequest define la estructura de los datos entrantes.
type CreateVentaRequest struct {
	ClienteID   uint             `json:"clienteId" binding:"required"`
	VehiculoID  uint             `json:"vehiculoId" binding:"required"`
	Fecha       string           `json:"fecha"`
	PrecioVenta float64          `json:"precioVenta" binding:"required"`
	Anticipo    float64          `json:"anticipo"`
	Creditos    []CreditoRequest `json:"creditos"`
}

func tipoCreditoValido(tipo string) bool {
	switch tipo {
	case models.CreditoPrendario, models.CreditoPersonal, models.CreditoFinanciacion:
		return true
	}
	return false
}

// CreateVentaHandler registra la venta y genera el cronograma completo de
// cuotas de cada componente dentro de una única transacción: o queda el plan
// entero o no queda nada.
func CreateVentaHandler(c *gin.Context) {
	var req CreateVentaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos: " + err.Error()})
		return
	}

	// Validación completa antes de tocar la base.
	for _, cr := range req.Creditos {
		if !tipoCreditoValido(cr.Tipo) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Tipo de crédito no soportado: " + cr.Tipo})
			return
		}
		if cr.Monto <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "El monto del crédito debe ser mayor a cero"})
			return
		}
		if cr.CantidadCuotas <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "La cantidad de cuotas debe ser mayor a cero"})
			return
		}
		if cr.Tipo == models.CreditoPersonal {
			if tope := settings.Numero(settings.ClaveTopePersonal, 0); tope > 0 && cr.Monto > tope {
				c.JSON(http.StatusBadRequest, gin.H{"error": "El monto supera el tope de financiación personal"})
				return
			}
		}
	}

	fecha := time.Now().In(config.Location)
	if req.Fecha != "" {
		parsed, err := parseFecha(req.Fecha)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Formato de fecha inválido. Use YYYY-MM-DD."})
			return
		}
		fecha = parsed
	}

	var cliente models.Cliente
	if err := config.DB.First(&cliente, req.ClienteID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cliente no encontrado"})
		return
	}

	var vehiculo models.Vehiculo
	if err := config.DB.First(&vehiculo, req.VehiculoID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehículo no encontrado"})
		return
	}
	if vehiculo.Estado == models.VehiculoVendido {
		c.JSON(http.StatusConflict, gin.H{"error": "El vehículo ya fue vendido"})
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo iniciar la transacción"})
		return
	}

	// Cambio de estado condicional: si otra operación vendió el vehículo en
	// el medio, RowsAffected queda en cero y no pisamos nada.
	res := tx.Model(&models.Vehiculo{}).
		Where("id = ? AND estado IN ?", vehiculo.ID, []string{models.VehiculoDisponible, models.VehiculoReservado}).
		Update("estado", models.VehiculoVendido)
	if res.Error != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo actualizar el vehículo"})
		return
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		c.JSON(http.StatusConflict, gin.H{"error": "El vehículo no está disponible para la venta"})
		return
	}

	venta := models.Venta{
		ClienteID:   cliente.ID,
		VehiculoID:  vehiculo.ID,
		Fecha:       fecha,
		PrecioVenta: req.PrecioVenta,
		Anticipo:    req.Anticipo,
	}
	if id, ok := c.Get("userID"); ok {
		if uid, ok := id.(uint); ok {
			venta.VendedorID = uid
		}
	}

	if err := tx.Create(&venta).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo guardar la venta"})
		return
	}

	for _, cr := range req.Creditos {
		tasa := finance.BuscarTasa(tx, cr.Tipo, cr.CantidadCuotas)
		total := finance.TotalConInteres(decimal.NewFromFloat(cr.Monto), decimal.NewFromFloat(tasa))

		credito := models.CreditoVenta{
			VentaID:        venta.ID,
			Tipo:           cr.Tipo,
			Monto:          cr.Monto,
			MontoTotal:     total.Round(2).InexactFloat64(),
			TasaPorcentaje: tasa,
			CantidadCuotas: cr.CantidadCuotas,
			AnioInicio:     cr.AnioInicio,
			MesInicio:      cr.MesInicio,
			DiaPago:        cr.DiaPago,
		}
		if err := tx.Create(&credito).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo guardar el crédito"})
			return
		}

		cuotas, err := finance.GenerarPlan(finance.PlanParams{
			VentaID:        venta.ID,
			ClienteID:      cliente.ID,
			Capital:        cr.Monto,
			TasaPorcentaje: tasa,
			Cantidad:       cr.CantidadCuotas,
			AnioInicio:     cr.AnioInicio,
			MesInicio:      cr.MesInicio,
			DiaPago:        cr.DiaPago,
			Concepto:       finance.ConceptoPorTipo(cr.Tipo),
		}, config.Location)
		if err != nil {
			tx.Rollback()
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := tx.Create(&cuotas).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo guardar el cronograma de cuotas"})
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo confirmar la transacción"})
		return
	}

	c.JSON(http.StatusCreated, venta)
}

// GetVentaHandler devuelve la venta con sus créditos y cuotas.
func GetVentaHandler(c *gin.Context) {
	var venta models.Venta
	err := config.DB.
		Preload("Cliente").
		Preload("Vehiculo").
		Preload("Creditos").
		Preload("Cuotas", func(db *gorm.DB) *gorm.DB {
			return db.Order("fecha_vencimiento ASC")
		}).
		First(&venta, c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Venta no encontrada"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo obtener la venta"})
		return
	}
	c.JSON(http.StatusOK, venta)
}

// ListVentasHandler lista las ventas paginadas.
func ListVentasHandler(c *gin.Context) {
	var ventas []models.Venta
	var totalRows int64

	query := config.DB.Model(&models.Venta{}).Preload("Cliente").Preload("Vehiculo")
	if clienteID := c.Query("cliente_id"); clienteID != "" {
		query = query.Where("cliente_id = ?", clienteID)
	}

	if err := query.Count(&totalRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron contar las ventas"})
		return
	}

	if err := query.Scopes(Paginate(c)).Order("fecha DESC").Find(&ventas).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron obtener las ventas"})
		return
	}

	if ventas == nil {
		ventas = make([]models.Venta, 0)
	}
	c.JSON(http.StatusOK, CreatePaginatedResponse(c, ventas, totalRows))
}

// DeleteVentaHandler borra la venta con su plan completo (créditos, cuotas y
// pagos) y libera el vehículo.
func DeleteVentaHandler(c *gin.Context) {
	var venta models.Venta
	if err := config.DB.First(&venta, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Venta no encontrada"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error de base de datos"})
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo iniciar la transacción"})
		return
	}

	if err := tx.Where("cuota_id IN (?)",
		tx.Model(&models.Cuota{}).Select("id").Where("venta_id = ?", venta.ID),
	).Delete(&models.PagoCuota{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron borrar los pagos"})
		return
	}
	if err := tx.Where("venta_id = ?", venta.ID).Delete(&models.Cuota{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron borrar las cuotas"})
		return
	}
	if err := tx.Where("venta_id = ?", venta.ID).Delete(&models.CreditoVenta{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron borrar los créditos"})
		return
	}
	if err := tx.Delete(&venta).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo borrar la venta"})
		return
	}

	if err := tx.Model(&models.Vehiculo{}).
		Where("id = ? AND estado = ?", venta.VehiculoID, models.VehiculoVendido).
		Update("estado", models.VehiculoDisponible).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo liberar el vehículo"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo confirmar la transacción"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Venta eliminada"})
}
