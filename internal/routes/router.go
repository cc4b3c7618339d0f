package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pablodexsa/autos-backend-sub000/internal/handlers"
	"github.com/pablodexsa/autos-backend-sub000/internal/middleware"
)

// SetupRoutes inicializa todas las rutas de la aplicación.
func SetupRoutes(r *gin.Engine) {
	// Rutas públicas: solo el login.
	r.POST("/login", handlers.LoginHandler)

	// Todo el resto exige un token de sesión válido.
	authRequired := r.Group("/")
	authRequired.Use(middleware.AuthMiddleware())
	{
		RegisterAPIRoutes(authRequired)
	}
}
