package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pablodexsa/autos-backend-sub000/config"
	"github.com/pablodexsa/autos-backend-sub000/models"
)

// CreateVehiculoHandler da de alta un vehículo en el inventario.
func CreateVehiculoHandler(c *gin.Context) {
	var vehiculo models.Vehiculo
	if err := c.ShouldBindJSON(&vehiculo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos: " + err.Error()})
		return
	}
	if vehiculo.Dominio == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El dominio es obligatorio"})
		return
	}

	// El estado inicial siempre es Disponible; reservas y ventas son las
	// únicas que lo mueven de ahí.
	vehiculo.Estado = models.VehiculoDisponible

	if err := config.DB.Create(&vehiculo).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "No se pudo dar de alta el vehículo (¿dominio repetido?)"})
		return
	}
	c.JSON(http.StatusCreated, vehiculo)
}

// GetVehiculoHandler devuelve un vehículo por id.
func GetVehiculoHandler(c *gin.Context) {
	var vehiculo models.Vehiculo
	if err := config.DB.First(&vehiculo, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehículo no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error de base de datos"})
		return
	}
	c.JSON(http.StatusOK, vehiculo)
}

// ListVehiculosHandler lista el inventario paginado, con filtro por estado.
func ListVehiculosHandler(c *gin.Context) {
	var vehiculos []models.Vehiculo
	var totalRows int64

	query := config.DB.Model(&models.Vehiculo{})
	if estado := c.Query("estado"); estado != "" {
		query = query.Where("estado = ?", estado)
	}

	if err := query.Count(&totalRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron contar los vehículos"})
		return
	}
	if err := query.Scopes(Paginate(c)).Order("id ASC").Find(&vehiculos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron obtener los vehículos"})
		return
	}

	if vehiculos == nil {
		vehiculos = make([]models.Vehiculo, 0)
	}
	c.JSON(http.StatusOK, CreatePaginatedResponse(c, vehiculos, totalRows))
}
