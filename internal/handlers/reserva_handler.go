package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pablodexsa/autos-backend-sub000/config"
	"github.com/pablodexsa/autos-backend-sub000/internal/settings"
	"github.com/pablodexsa/autos-backend-sub000/models"
)

// CreateReservaRequest define la estructura de los datos entrantes.
type CreateReservaRequest struct {
	ClienteID  uint     `json:"clienteId" binding:"required"`
	VehiculoID uint     `json:"vehiculoId" binding:"required"`
	Monto      *float64 `json:"monto"`
}

// horasVencimientoReserva es la ventana de retención: 48 horas hábiles desde
// la creación.
const horasVencimientoReserva = 48

// horasExtensionGarante es lo que se corre el vencimiento cuando entra un
// garante nuevo con la reserva vigente.
const horasExtensionGarante = 24

// CreateReservaHandler crea la reserva y bloquea el vehículo. El pase
// Disponible→Reservado es un UPDATE condicional: dos reservas simultáneas
// sobre el mismo vehículo no pueden ganar las dos.
func CreateReservaHandler(c *gin.Context) {
	var req CreateReservaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos: " + err.Error()})
		return
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
	switch vehiculo.Estado {
	case models.VehiculoVendido:
		c.JSON(http.StatusConflict, gin.H{"error": "El vehículo ya fue vendido"})
		return
	case models.VehiculoReservado:
		c.JSON(http.StatusConflict, gin.H{"error": "El vehículo ya está reservado"})
		return
	}

	monto := settings.Numero(settings.ClaveMontoReserva, settings.MontoReservaDefault)
	if req.Monto != nil {
		if *req.Monto <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "El monto de la seña debe ser mayor a cero"})
			return
		}
		monto = *req.Monto
	}

	ahora := time.Now().In(config.Location)
	vencimiento := calendarioActual().SumarHorasHabiles(ahora, horasVencimientoReserva)

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo iniciar la transacción"})
		return
	}

	res := tx.Model(&models.Vehiculo{}).
		Where("id = ? AND estado = ?", vehiculo.ID, models.VehiculoDisponible).
		Update("estado", models.VehiculoReservado)
	if res.Error != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo actualizar el vehículo"})
		return
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		c.JSON(http.StatusConflict, gin.H{"error": "El vehículo dejó de estar disponible"})
		return
	}

	reserva := models.Reserva{
		ClienteID:        cliente.ID,
		VehiculoID:       vehiculo.ID,
		Monto:            monto,
		Fecha:            ahora,
		FechaVencimiento: vencimiento,
		Estado:           models.ReservaVigente,
		Dominio:          vehiculo.Dominio,
		VehiculoEtiqueta: vehiculo.Etiqueta(),
	}
	if id, ok := c.Get("userID"); ok {
		if uid, ok := id.(uint); ok {
			reserva.VendedorID = &uid
		}
	}

	if err := tx.Create(&reserva).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo guardar la reserva"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo confirmar la transacción"})
		return
	}

	c.JSON(http.StatusCreated, reserva)
}

// UpdateEstadoReservaRequest define la estructura de los datos entrantes.
type UpdateEstadoReservaRequest struct {
	Estado string `json:"estado" binding:"required"`
}

// UpdateEstadoReservaHandler aplica los pases de estado explícitos:
//   - Cancelada: libera el vehículo y crea el reembolso de la seña (una sola
//     vez por reserva, aunque se cancele dos veces).
//   - Aceptada: la reserva se convierte en venta; el vehículo sigue reservado.
//   - Vigente: reapertura, vuelve a bloquear el vehículo.
//
// Vencida no se acepta acá: a ese estado solo llega el barrido automático.
func UpdateEstadoReservaHandler(c *gin.Context) {
	var req UpdateEstadoReservaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos: " + err.Error()})
		return
	}

	switch req.Estado {
	case models.ReservaCancelada, models.ReservaAceptada, models.ReservaVigente:
	case models.ReservaVencida:
		c.JSON(http.StatusBadRequest, gin.H{"error": "El estado Vencida lo asigna el proceso automático"})
		return
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Estado de reserva no soportado: " + req.Estado})
		return
	}

	var reserva models.Reserva
	if err := config.DB.First(&reserva, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reserva no encontrada"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error de base de datos"})
		return
	}

	// Reserva, vehículo y reembolso se mueven juntos o no se mueve nada:
	// una cancelación a medias dejaría la seña sin registro compensatorio.
	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo iniciar la transacción"})
		return
	}

	// El estado del vehículo por sí solo no dice quién lo retiene: antes de
	// moverlo hay que saber si otra reserva viva lo está ocupando.
	var otrasActivas int64
	if err := tx.Model(&models.Reserva{}).
		Where("vehiculo_id = ? AND id <> ? AND estado IN ?",
			reserva.VehiculoID, reserva.ID, []string{models.ReservaVigente, models.ReservaAceptada}).
		Count(&otrasActivas).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al verificar las reservas del vehículo"})
		return
	}

	switch req.Estado {
	case models.ReservaCancelada:
		// El vehículo se libera solo si esta reserva es la que lo retiene:
		// cancelar una reserva ya vencida no puede soltarle el vehículo a la
		// reserva vigente de otro cliente.
		if otrasActivas == 0 {
			if err := tx.Model(&models.Vehiculo{}).
				Where("id = ? AND estado = ?", reserva.VehiculoID, models.VehiculoReservado).
				Update("estado", models.VehiculoDisponible).Error; err != nil {
				tx.Rollback()
				c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo liberar el vehículo"})
				return
			}
		}

		var existente models.Reembolso
		err := tx.Where("reserva_id = ?", reserva.ID).First(&existente).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			reembolso := models.Reembolso{
				ReservaID:     reserva.ID,
				MontoEsperado: settings.Numero(settings.ClaveMontoReembolso, reserva.Monto),
				Estado:        models.ReembolsoPendiente,
			}
			// El índice único sobre reserva_id respalda este chequeo ante dos
			// cancelaciones simultáneas. Si el registro apareció en el medio es
			// un conflicto; cualquier otra falla de escritura no lo es.
			if err := tx.Create(&reembolso).Error; err != nil {
				tx.Rollback()
				var repetido models.Reembolso
				if config.DB.Where("reserva_id = ?", reserva.ID).First(&repetido).Error == nil {
					c.JSON(http.StatusConflict, gin.H{"error": "El reembolso de la reserva ya existe"})
					return
				}
				c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo crear el reembolso"})
				return
			}
		case err != nil:
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al verificar el reembolso"})
			return
		}

	case models.ReservaVigente:
		// Puede haber a lo sumo una reserva activa por vehículo: si otra lo
		// retiene, la reapertura no pasa.
		if otrasActivas > 0 {
			tx.Rollback()
			c.JSON(http.StatusConflict, gin.H{"error": "El vehículo ya está retenido por otra reserva"})
			return
		}
		res := tx.Model(&models.Vehiculo{}).
			Where("id = ? AND estado = ?", reserva.VehiculoID, models.VehiculoDisponible).
			Update("estado", models.VehiculoReservado)
		if res.Error != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo bloquear el vehículo"})
			return
		}
		if res.RowsAffected == 0 {
			var vehiculo models.Vehiculo
			if err := tx.First(&vehiculo, reserva.VehiculoID).Error; err != nil {
				tx.Rollback()
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al verificar el vehículo"})
				return
			}
			if vehiculo.Estado == models.VehiculoVendido {
				tx.Rollback()
				c.JSON(http.StatusConflict, gin.H{"error": "El vehículo ya fue vendido"})
				return
			}
			// Reservado sin otra reserva activa: lo retiene esta misma.
		}

	case models.ReservaAceptada:
		// El vehículo queda reservado: este es el camino que termina en venta.
	}

	if err := tx.Model(&reserva).Update("estado", req.Estado).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo actualizar la reserva"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo confirmar la transacción"})
		return
	}

	reserva.Estado = req.Estado
	c.JSON(http.StatusOK, reserva)
}

// AddGaranteRequest define la estructura de los datos entrantes.
type AddGaranteRequest struct {
	Nombre    string `json:"nombre" binding:"required"`
	Documento string `json:"documento" binding:"required"`
	Telefono  string `json:"telefono"`
}

// AddGaranteHandler suma un garante a una reserva vigente y corre el
// vencimiento 24 horas hábiles más. Mientras sigan entrando garantes la
// reserva se puede extender las veces que haga falta.
func AddGaranteHandler(c *gin.Context) {
	var req AddGaranteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos: " + err.Error()})
		return
	}

	var reserva models.Reserva
	if err := config.DB.First(&reserva, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reserva no encontrada"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error de base de datos"})
		return
	}
	if reserva.Estado != models.ReservaVigente {
		c.JSON(http.StatusConflict, gin.H{"error": "Solo se pueden agregar garantes a reservas vigentes"})
		return
	}

	nuevoVencimiento := calendarioActual().SumarHorasHabiles(reserva.FechaVencimiento, horasExtensionGarante)

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo iniciar la transacción"})
		return
	}

	garante := models.Garante{
		ReservaID: reserva.ID,
		Nombre:    req.Nombre,
		Documento: req.Documento,
		Telefono:  req.Telefono,
	}
	if err := tx.Create(&garante).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo guardar el garante"})
		return
	}

	if err := tx.Model(&reserva).Update("fecha_vencimiento", nuevoVencimiento).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo extender la reserva"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo confirmar la transacción"})
		return
	}

	reserva.FechaVencimiento = nuevoVencimiento
	c.JSON(http.StatusCreated, gin.H{"garante": garante, "reserva": reserva})
}

// GetReservaHandler devuelve la reserva con sus garantes.
func GetReservaHandler(c *gin.Context) {
	var reserva models.Reserva
	err := config.DB.Preload("Cliente").Preload("Vehiculo").Preload("Garantes").
		First(&reserva, c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reserva no encontrada"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo obtener la reserva"})
		return
	}
	c.JSON(http.StatusOK, reserva)
}

// ListReservasHandler lista reservas paginadas, con filtro por estado.
func ListReservasHandler(c *gin.Context) {
	var reservas []models.Reserva
	var totalRows int64

	query := config.DB.Model(&models.Reserva{}).Preload("Cliente")
	if estado := c.Query("estado"); estado != "" {
		query = query.Where("estado = ?", estado)
	}

	if err := query.Count(&totalRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron contar las reservas"})
		return
	}
	if err := query.Scopes(Paginate(c)).Order("fecha DESC").Find(&reservas).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron obtener las reservas"})
		return
	}

	if reservas == nil {
		reservas = make([]models.Reserva, 0)
	}
	c.JSON(http.StatusOK, CreatePaginatedResponse(c, reservas, totalRows))
}
