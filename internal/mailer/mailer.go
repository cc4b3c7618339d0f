// Package mailer envía correos por SMTP. Un mailer sin configurar no es un
// error: los avisos son de mejor esfuerzo y nunca frenan la operación
// principal.
package mailer

import (
	"log/slog"
	"os"
	"strconv"

	gomail "gopkg.in/gomail.v2"
)

type Resultado int

const (
	Enviado Resultado = iota
	Omitido
)

// Enviar manda un correo HTML con adjuntos opcionales. Sin SMTP_HOST definido
// devuelve Omitido y deja constancia en el log.
func Enviar(destino, asunto, html string, adjuntos ...string) (Resultado, error) {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		slog.Warn("Mailer sin configurar, se omite el envío", "destino", destino, "asunto", asunto)
		return Omitido, nil
	}

	puerto, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		puerto = 587
	}

	remitente := os.Getenv("SMTP_FROM")
	if remitente == "" {
		remitente = os.Getenv("SMTP_USER")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", remitente)
	m.SetHeader("To", destino)
	m.SetHeader("Subject", asunto)
	m.SetBody("text/html", html)
	for _, adj := range adjuntos {
		m.Attach(adj)
	}

	d := gomail.NewDialer(host, puerto, os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASS"))
	if err := d.DialAndSend(m); err != nil {
		return Omitido, err
	}
	return Enviado, nil
}
