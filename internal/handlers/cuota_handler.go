package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/pablodexsa/autos-backend-sub000/config"
	"github.com/pablodexsa/autos-backend-sub000/internal/finance"
	"github.com/pablodexsa/autos-backend-sub000/models"
)

// CuotaListItem agrega a la cuota el saldo al día, que se calcula en cada
// lectura y nunca se guarda.
type CuotaListItem struct {
	models.Cuota
	SaldoActual float64 `json:"saldoActual"`
	DiasAtraso  int     `json:"diasAtraso"`
}

// fechaConsulta resuelve el "al" de la consulta: por defecto hoy, o una fecha
// YYYY-MM-DD explícita para reportes retroactivos.
func fechaConsulta(c *gin.Context) (time.Time, error) {
	if al := c.Query("al"); al != "" {
		return parseFecha(al)
	}
	return time.Now().In(config.Location), nil
}

func conSaldo(cuota models.Cuota, al time.Time) CuotaListItem {
	return CuotaListItem{
		Cuota:       cuota,
		SaldoActual: finance.SaldoActual(&cuota, al, config.Location),
		DiasAtraso:  finance.DiasDeAtraso(cuota.FechaVencimiento, al, config.Location),
	}
}

func cuotasQuery(c *gin.Context) *gorm.DB {
	query := config.DB.Model(&models.Cuota{}).Preload("Cliente")
	if ventaID := c.Query("venta_id"); ventaID != "" {
		query = query.Where("venta_id = ?", ventaID)
	}
	if clienteID := c.Query("cliente_id"); clienteID != "" {
		query = query.Where("cliente_id = ?", clienteID)
	}
	if estado := c.Query("estado"); estado != "" {
		query = query.Where("estado = ?", estado)
	}
	if concepto := c.Query("concepto"); concepto != "" {
		query = query.Where("concepto = ?", concepto)
	}
	return query
}

// ListCuotasHandler lista cuotas con el saldo vigente al día consultado.
func ListCuotasHandler(c *gin.Context) {
	al, err := fechaConsulta(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato de fecha inválido en 'al'. Use YYYY-MM-DD."})
		return
	}

	query := cuotasQuery(c)

	var totalRows int64
	if err := query.Count(&totalRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron contar las cuotas"})
		return
	}

	var cuotas []models.Cuota
	if err := query.Scopes(Paginate(c)).Order("fecha_vencimiento ASC").Find(&cuotas).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron obtener las cuotas"})
		return
	}

	items := make([]CuotaListItem, 0, len(cuotas))
	for _, cuota := range cuotas {
		items = append(items, conSaldo(cuota, al))
	}

	c.JSON(http.StatusOK, CreatePaginatedResponse(c, items, totalRows))
}

// GetCuotaHandler devuelve una cuota con su saldo al día.
func GetCuotaHandler(c *gin.Context) {
	al, err := fechaConsulta(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato de fecha inválido en 'al'. Use YYYY-MM-DD."})
		return
	}

	var cuota models.Cuota
	if err := config.DB.Preload("Cliente").First(&cuota, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cuota no encontrada"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo obtener la cuota"})
		return
	}

	c.JSON(http.StatusOK, conSaldo(cuota, al))
}

// ExportCuotasHandler exporta el listado filtrado a Excel.
func ExportCuotasHandler(c *gin.Context) {
	al, err := fechaConsulta(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formato de fecha inválido en 'al'. Use YYYY-MM-DD."})
		return
	}

	var cuotas []models.Cuota
	if err := cuotasQuery(c).Order("fecha_vencimiento ASC").Find(&cuotas).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudieron obtener las cuotas para exportar"})
		return
	}

	f := excelize.NewFile()
	sheetName := "Cuotas"
	index, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Cliente", "Concepto", "Cuota", "Vencimiento", "Monto", "Saldo restante", "Saldo al día", "Días de atraso", "Estado"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, cuota := range cuotas {
		row := i + 2
		item := conSaldo(cuota, al)
		nombre := ""
		if cuota.Cliente != nil {
			nombre = cuota.Cliente.Apellido + " " + cuota.Cliente.Nombre
		}
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), nombre)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), cuota.Concepto)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), fmt.Sprintf("%d de %d", cuota.NumeroCuota, cuota.TotalCuotas))
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), cuota.FechaVencimiento.Format("02.01.2006"))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), cuota.Monto)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), cuota.SaldoRestante)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), item.SaldoActual)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), item.DiasAtraso)
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), cuota.Estado)
	}

	fileName := fmt.Sprintf("cuotas_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo escribir el archivo Excel"})
	}
}
