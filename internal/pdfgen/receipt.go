// Package pdfgen arma los comprobantes en PDF. Solo recibe los datos ya
// resueltos (montos, fechas, nombres); no consulta la base.
package pdfgen

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/pablodexsa/autos-backend-sub000/models"
)

// DatosRecibo es lo mínimo que necesita el comprobante de pago de cuota.
type DatosRecibo struct {
	Pago    *models.PagoCuota
	Cuota   *models.Cuota
	Cliente *models.Cliente
}

// ReciboPago escribe el comprobante en la ruta dada.
func ReciboPago(d DatosRecibo, ruta string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Recibo de pago de cuota"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	linea := func(etiqueta, valor string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(55, 8, tr(etiqueta), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, tr(valor), "", 1, "L", false, 0, "")
	}

	linea("Recibo Nº:", fmt.Sprintf("%06d", d.Pago.ID))
	linea("Fecha de pago:", d.Pago.FechaPago.Format("02/01/2006"))
	linea("Cliente:", fmt.Sprintf("%s, %s (Doc. %s)", d.Cliente.Apellido, d.Cliente.Nombre, d.Cliente.Documento))
	linea("Concepto:", d.Cuota.Concepto)
	linea("Cuota:", fmt.Sprintf("%d de %d", d.Cuota.NumeroCuota, d.Cuota.TotalCuotas))
	linea("Vencimiento:", d.Cuota.FechaVencimiento.Format("02/01/2006"))
	linea("Importe abonado:", fmt.Sprintf("$ %.2f", d.Pago.Monto))

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, tr("Este comprobante acredita el pago de la cuota indicada. Conservar junto con la documentación de la operación."), "", "L", false)

	return pdf.OutputFileAndClose(ruta)
}
