package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pablodexsa/autos-backend-sub000/config"
	"github.com/pablodexsa/autos-backend-sub000/models"
)

// CreateClienteHandler da de alta un cliente en la cartera.
func CreateClienteHandler(c *gin.Context) {
	var cliente models.Cliente
	if err := c.ShouldBindJSON(&cliente); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos: " + err.Error()})
		return
	}
	if cliente.Nombre == "" || cliente.Apellido == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nombre y apellido son obligatorios"})
		return
	}

	if err := config.DB.Create(&cliente).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "No se pudo dar de alta el cliente (¿documento repetido?)"})
		return
	}
	c.JSON(http.StatusCreated, cliente)
}

// GetClienteHandler devuelve un cliente por id.
func GetClienteHandler(c *gin.Context) {
	var cliente models.Cliente
	if err := config.DB.First(&cliente, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cliente no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error de base de datos"})
		return
	}
	c.JSON(http.StatusOK, cliente)
}

// UpdateClienteHandler actualiza los datos de contacto del cliente.
func UpdateClienteHandler(c *gin.Context) {
	var cliente models.Cliente
	if err := config.DB.First(&cliente, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cliente no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error de base de datos"})
		return
	}

	var datos models.Cliente
	if err := c.ShouldBindJSON(&datos); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos: " + err.Error()})
		return
	}

	actualizables := map[string]interface{}{
		"nombre":    datos.Nombre,
		"apellido":  datos.Apellido,
		"email":     datos.Email,
		"telefono":  datos.Telefono,
		"domicilio": datos.Domicilio,
	}
	if err := config.DB.Model(&cliente).Updates(actualizables).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo actualizar el cliente"})
		return
	}
	c.JSON(http.StatusOK, cliente)
}

// ListClientesHandler lista la cartera paginada, con búsqueda por apellido o
// documento.
func ListClientesHandler(c *gin.Context) {
	var clientes []models.Cliente
	var totalRows int64

	query := config.DB.Model(&models.Cliente{})
	if q := c.Query("q"); q != "" {
		query = query.Where("apellido LIKE ? OR documento LIKE ?", "%"+q+"%", "%"+q+"%")
	}

	if err := query.Count(&totalRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron contar los clientes"})
		return
	}
	if err := query.Scopes(Paginate(c)).Order("apellido ASC, nombre ASC").Find(&clientes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron obtener los clientes"})
		return
	}

	if clientes == nil {
		clientes = make([]models.Cliente, 0)
	}
	c.JSON(http.StatusOK, CreatePaginatedResponse(c, clientes, totalRows))
}
