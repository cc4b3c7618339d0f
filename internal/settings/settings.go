// Package settings lee los parámetros administrables de la tabla
// configuraciones, con caché en Redis cuando está disponible.
package settings

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/pablodexsa/autos-backend-sub000/config"
	"github.com/pablodexsa/autos-backend-sub000/models"
)

// Claves conocidas.
const (
	ClaveMontoReserva   = "reserva.monto"
	ClaveMontoReembolso = "reserva.reembolso"
	ClaveTopePersonal   = "financiacion.personal.max"
	ClaveFeriados       = "feriados"
)

// MontoReservaDefault se usa cuando no hay monto de seña configurado.
const MontoReservaDefault = 500000

const cacheTTL = 10 * time.Minute

func cacheKey(clave string) string { return "config:" + clave }

// Valor devuelve el texto configurado para la clave, o "" si no existe.
func Valor(clave string) string {
	if config.RDB != nil {
		if v, err := config.RDB.Get(config.Ctx, cacheKey(clave)).Result(); err == nil {
			return v
		}
	}

	var fila models.Configuracion
	if err := config.DB.Where("clave = ?", clave).First(&fila).Error; err != nil {
		return ""
	}

	if config.RDB != nil {
		if err := config.RDB.Set(config.Ctx, cacheKey(clave), fila.Valor, cacheTTL).Err(); err != nil {
			slog.Warn("No se pudo cachear la configuración", "clave", clave, "error", err)
		}
	}
	return fila.Valor
}

// Numero interpreta el valor como número; ante ausencia o texto inválido
// devuelve el fallback.
func Numero(clave string, fallback float64) float64 {
	v := strings.TrimSpace(Valor(clave))
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("Configuración numérica inválida", "clave", clave, "valor", v)
		return fallback
	}
	return f
}

// Feriados devuelve el listado de fechas no hábiles configurado, como
// cadenas YYYY-MM-DD separadas por coma en la tabla.
func Feriados() []string {
	v := Valor(ClaveFeriados)
	if strings.TrimSpace(v) == "" {
		return nil
	}
	partes := strings.Split(v, ",")
	out := make([]string, 0, len(partes))
	for _, p := range partes {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Invalidar borra la clave del caché; se llama tras cada actualización
// administrativa.
func Invalidar(clave string) {
	if config.RDB == nil {
		return
	}
	if err := config.RDB.Del(config.Ctx, cacheKey(clave)).Err(); err != nil {
		slog.Warn("No se pudo invalidar el caché de configuración", "clave", clave, "error", err)
	}
}
