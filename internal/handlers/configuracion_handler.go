package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pablodexsa/autos-backend-sub000/config"
	"github.com/pablodexsa/autos-backend-sub000/internal/settings"
	"github.com/pablodexsa/autos-backend-sub000/models"
)

// GetConfiguracionesHandler lista todos los parámetros administrables.
func GetConfiguracionesHandler(c *gin.Context) {
	var filas []models.Configuracion
	if err := config.DB.Order("clave asc").Find(&filas).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron obtener las configuraciones"})
		return
	}
	c.JSON(http.StatusOK, filas)
}

// UpdateConfiguracionesHandler actualiza varios parámetros de una vez e
// invalida su caché.
func UpdateConfiguracionesHandler(c *gin.Context) {
	var filas []models.Configuracion
	if err := c.ShouldBindJSON(&filas); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	tx := config.DB.Begin()
	for _, fila := range filas {
		if fila.Clave == "" {
			tx.Rollback()
			c.JSON(http.StatusBadRequest, gin.H{"error": "Toda configuración necesita una clave"})
			return
		}
		res := tx.Model(&models.Configuracion{}).
			Where("clave = ?", fila.Clave).
			Update("valor", fila.Valor)
		if res.Error != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron actualizar las configuraciones"})
			return
		}
		if res.RowsAffected == 0 {
			nueva := models.Configuracion{Clave: fila.Clave, Valor: fila.Valor}
			if err := tx.Create(&nueva).Error; err != nil {
				tx.Rollback()
				c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo crear la configuración"})
				return
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al confirmar la transacción"})
		return
	}

	for _, fila := range filas {
		settings.Invalidar(fila.Clave)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Configuraciones actualizadas"})
}
