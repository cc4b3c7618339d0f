package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pablodexsa/autos-backend-sub000/config"
	"github.com/pablodexsa/autos-backend-sub000/internal/pdfgen"
	"github.com/pablodexsa/autos-backend-sub000/models"
)

// CreatePagoRequest define la estructura de los datos entrantes.
type CreatePagoRequest struct {
	CuotaID   uint    `json:"cuotaId" binding:"required"`
	Monto     float64 `json:"monto" binding:"required"`
	FechaPago string  `json:"fechaPago" binding:"required"`
}

func directorioRecibos() string {
	if dir := os.Getenv("RECIBOS_DIR"); dir != "" {
		return dir
	}
	return "recibos"
}

// CreatePagoHandler registra un pago sobre una cuota. El modelo es de
// liquidación única: el pago cierra la cuota (pagada, estado PAGADA) sin
// importar si el monto cubre el saldo al día. SaldoRestante no se toca.
func CreatePagoHandler(c *gin.Context) {
	var req CreatePagoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos: " + err.Error()})
		return
	}
	if req.Monto <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El monto del pago debe ser mayor a cero"})
		return
	}

	fechaPago, err := parseFecha(req.FechaPago)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato de fecha inválido. Use YYYY-MM-DD."})
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo iniciar la transacción"})
		return
	}

	var cuota models.Cuota
	if err := tx.First(&cuota, req.CuotaID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cuota no encontrada"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al buscar la cuota"})
		return
	}

	var cliente models.Cliente
	if err := tx.First(&cliente, cuota.ClienteID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cliente de la cuota no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al buscar el cliente"})
		return
	}

	pago := models.PagoCuota{
		CuotaID:   cuota.ID,
		ClienteID: cuota.ClienteID,
		Monto:     req.Monto,
		FechaPago: fechaPago,
		Pagado:    true,
	}
	if err := tx.Create(&pago).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo guardar el pago"})
		return
	}

	if err := tx.Model(&cuota).Updates(map[string]interface{}{
		"pagada": true,
		"estado": models.CuotaPagada,
	}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo actualizar la cuota"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo confirmar la transacción"})
		return
	}

	// El comprobante en PDF es de mejor esfuerzo: su falla se loguea y no
	// afecta al pago ya confirmado.
	dir := directorioRecibos()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		slog.Warn("No se pudo crear el directorio de recibos", "dir", dir, "error", err)
	} else {
		ruta := filepath.Join(dir, fmt.Sprintf("recibo_%s.pdf", uuid.NewString()))
		err := pdfgen.ReciboPago(pdfgen.DatosRecibo{Pago: &pago, Cuota: &cuota, Cliente: &cliente}, ruta)
		if err != nil {
			slog.Warn("No se pudo generar el recibo en PDF", "pago_id", pago.ID, "error", err)
		} else if err := config.DB.Model(&pago).Update("recibo_path", ruta).Error; err != nil {
			slog.Warn("No se pudo guardar la ruta del recibo", "pago_id", pago.ID, "error", err)
		}
	}

	c.JSON(http.StatusCreated, pago)
}

// DeletePagoHandler elimina el pago y revierte la cuota a pendiente. Si por
// fuera del flujo normal existieran varios pagos para la misma cuota, borrar
// cualquiera la revierte igual: es el comportamiento del modelo de
// liquidación única.
func DeletePagoHandler(c *gin.Context) {
	var pago models.PagoCuota
	if err := config.DB.First(&pago, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pago no encontrado"})
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

	if err := tx.Delete(&pago).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo borrar el pago"})
		return
	}

	if err := tx.Model(&models.Cuota{}).Where("id = ?", pago.CuotaID).Updates(map[string]interface{}{
		"pagada": false,
		"estado": models.CuotaPendiente,
	}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo revertir la cuota"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo confirmar la transacción"})
		return
	}

	// Borrado del archivo después del commit: perder el PDF no debe frenar la
	// reversión financiera.
	if pago.ReciboPath != "" {
		if err := os.Remove(pago.ReciboPath); err != nil && !os.IsNotExist(err) {
			slog.Warn("No se pudo borrar el recibo en disco", "ruta", pago.ReciboPath, "error", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pago eliminado"})
}

// ListPagosHandler lista pagos, opcionalmente filtrados por cuota o cliente.
func ListPagosHandler(c *gin.Context) {
	var pagos []models.PagoCuota
	var totalRows int64

	query := config.DB.Model(&models.PagoCuota{}).Preload("Cuota").Preload("Cliente")
	if cuotaID := c.Query("cuota_id"); cuotaID != "" {
		query = query.Where("cuota_id = ?", cuotaID)
	}
	if clienteID := c.Query("cliente_id"); clienteID != "" {
		query = query.Where("cliente_id = ?", clienteID)
	}

	if err := query.Count(&totalRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron contar los pagos"})
		return
	}
	if err := query.Scopes(Paginate(c)).Order("fecha_pago DESC").Find(&pagos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron obtener los pagos"})
		return
	}

	if pagos == nil {
		pagos = make([]models.PagoCuota, 0)
	}
	c.JSON(http.StatusOK, CreatePaginatedResponse(c, pagos, totalRows))
}

// GetReciboHandler descarga el comprobante en PDF del pago.
func GetReciboHandler(c *gin.Context) {
	var pago models.PagoCuota
	if err := config.DB.First(&pago, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pago no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error de base de datos"})
		return
	}

	if pago.ReciboPath == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "El pago no tiene recibo generado"})
		return
	}
	if _, err := os.Stat(pago.ReciboPath); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "El archivo del recibo no está disponible"})
		return
	}

	c.FileAttachment(pago.ReciboPath, filepath.Base(pago.ReciboPath))
}
