package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pablodexsa/autos-backend-sub000/config"
	"github.com/pablodexsa/autos-backend-sub000/internal/finance"
	"github.com/pablodexsa/autos-backend-sub000/models"
)

// GetTasasHandler devuelve la matriz de tasas completa.
func GetTasasHandler(c *gin.Context) {
	var tasas []models.TasaInteres
	if err := config.DB.Order("tipo asc, meses asc").Find(&tasas).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron obtener las tasas"})
		return
	}
	c.JSON(http.StatusOK, tasas)
}

// UpdateTasasHandler actualiza varias celdas de la matriz de una vez.
func UpdateTasasHandler(c *gin.Context) {
	var tasas []models.TasaInteres
	if err := c.ShouldBindJSON(&tasas); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	for _, tasa := range tasas {
		if !tipoCreditoValido(tasa.Tipo) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Tipo de crédito no soportado: " + tasa.Tipo})
			return
		}
		if finance.TramoMeses(tasa.Meses) != tasa.Meses {
			c.JSON(http.StatusBadRequest, gin.H{"error": "El tramo de meses debe ser 12, 24 o 36"})
			return
		}
		if tasa.Porcentaje < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "El porcentaje no puede ser negativo"})
			return
		}
	}

	tx := config.DB.Begin()
	for _, tasa := range tasas {
		res := tx.Model(&models.TasaInteres{}).
			Where("tipo = ? AND meses = ?", tasa.Tipo, tasa.Meses).
			Update("porcentaje", tasa.Porcentaje)
		if res.Error != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron actualizar las tasas"})
			return
		}
		if res.RowsAffected == 0 {
			fila := models.TasaInteres{Tipo: tasa.Tipo, Meses: tasa.Meses, Porcentaje: tasa.Porcentaje}
			if err := tx.Create(&fila).Error; err != nil {
				tx.Rollback()
				c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo crear la celda de la matriz"})
				return
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al confirmar la transacción"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tasas actualizadas"})
}
