package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pablodexsa/autos-backend-sub000/config"
	"github.com/pablodexsa/autos-backend-sub000/models"
)

// EntregarReembolsoRequest define la estructura de los datos entrantes.
type EntregarReembolsoRequest struct {
	MontoPagado float64 `json:"montoPagado" binding:"required"`
}

// EntregarReembolsoHandler marca la entrega del dinero de la seña. El pase
// PENDIENTE→ENTREGADO ocurre exactamente una vez: entregar un reembolso ya
// entregado es un conflicto, no una operación repetible.
func EntregarReembolsoHandler(c *gin.Context) {
	var req EntregarReembolsoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos: " + err.Error()})
		return
	}
	if req.MontoPagado <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El monto entregado debe ser mayor a cero"})
		return
	}

	var reembolso models.Reembolso
	if err := config.DB.First(&reembolso, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reembolso no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error de base de datos"})
		return
	}
	if reembolso.Estado == models.ReembolsoEntregado {
		c.JSON(http.StatusConflict, gin.H{"error": "El reembolso ya fue entregado"})
		return
	}

	ahora := time.Now().In(config.Location)
	valores := map[string]interface{}{
		"estado":       models.ReembolsoEntregado,
		"monto_pagado": req.MontoPagado,
		"entregado_en": ahora,
	}
	if id, ok := c.Get("userID"); ok {
		if uid, ok := id.(uint); ok {
			valores["entregado_por_id"] = uid
		}
	}

	// UPDATE condicional sobre el estado anterior: dos entregas simultáneas
	// no pueden pasar las dos.
	res := config.DB.Model(&models.Reembolso{}).
		Where("id = ? AND estado = ?", reembolso.ID, models.ReembolsoPendiente).
		Updates(valores)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo registrar la entrega"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "El reembolso ya fue entregado"})
		return
	}

	if err := config.DB.First(&reembolso, reembolso.ID).Error; err == nil {
		c.JSON(http.StatusOK, reembolso)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reembolso entregado"})
}

// ListReembolsosHandler lista reembolsos paginados, con filtro por estado.
func ListReembolsosHandler(c *gin.Context) {
	var reembolsos []models.Reembolso
	var totalRows int64

	query := config.DB.Model(&models.Reembolso{}).Preload("Reserva")
	if estado := c.Query("estado"); estado != "" {
		query = query.Where("estado = ?", estado)
	}

	if err := query.Count(&totalRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron contar los reembolsos"})
		return
	}
	if err := query.Scopes(Paginate(c)).Order("created_at DESC").Find(&reembolsos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron obtener los reembolsos"})
		return
	}

	if reembolsos == nil {
		reembolsos = make([]models.Reembolso, 0)
	}
	c.JSON(http.StatusOK, CreatePaginatedResponse(c, reembolsos, totalRows))
}
