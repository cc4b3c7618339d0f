// config/jwt.go
package config

import (
	"log/slog"
	"os"
	"time"
)

// JwtKey firma los tokens de sesión. Sin JWT_SECRET se usa un valor de
// desarrollo y se deja constancia en el log.
var JwtKey []byte

// Zona horaria fija del negocio: todas las fechas de vencimiento y los
// cálculos de días hábiles se hacen en esta zona, nunca en UTC.
var Location *time.Location

func LoadJWT() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		slog.Warn("JWT_SECRET no definido, se usa la clave de desarrollo.")
		secret = "dev-secret"
	}
	JwtKey = []byte(secret)
}

func LoadLocation() {
	name := os.Getenv("TZ_NEGOCIO")
	if name == "" {
		name = "America/Argentina/Buenos_Aires"
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		slog.Error("Zona horaria inválida, se usa la local", "tz", name, "error", err)
		loc = time.Local
	}
	Location = loc
}
