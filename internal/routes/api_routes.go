package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pablodexsa/autos-backend-sub000/internal/handlers"
)

// RegisterAPIRoutes registra los endpoints de la API protegida.
func RegisterAPIRoutes(api *gin.RouterGroup) {
	apiGroup := api.Group("/api")
	{
		// --- CLIENTES ---
		clientes := apiGroup.Group("/clientes")
		{
			clientes.GET("", handlers.ListClientesHandler)
			clientes.POST("", handlers.CreateClienteHandler)
			clientes.GET("/:id", handlers.GetClienteHandler)
			clientes.PUT("/:id", handlers.UpdateClienteHandler)
		}

		// --- VEHÍCULOS ---
		vehiculos := apiGroup.Group("/vehiculos")
		{
			vehiculos.GET("", handlers.ListVehiculosHandler)
			vehiculos.POST("", handlers.CreateVehiculoHandler)
			vehiculos.GET("/:id", handlers.GetVehiculoHandler)
		}

		// --- VENTAS Y PLAN DE CUOTAS ---
		ventas := apiGroup.Group("/ventas")
		{
			ventas.GET("", handlers.ListVentasHandler)
			ventas.POST("", handlers.CreateVentaHandler)
			ventas.GET("/:id", handlers.GetVentaHandler)
			ventas.DELETE("/:id", handlers.DeleteVentaHandler)
		}

		// --- CUOTAS ---
		cuotas := apiGroup.Group("/cuotas")
		{
			cuotas.GET("", handlers.ListCuotasHandler)
			cuotas.GET("/export", handlers.ExportCuotasHandler)
			cuotas.GET("/:id", handlers.GetCuotaHandler)
		}

		// --- PAGOS ---
		pagos := apiGroup.Group("/pagos")
		{
			pagos.GET("", handlers.ListPagosHandler)
			pagos.POST("", handlers.CreatePagoHandler)
			pagos.DELETE("/:id", handlers.DeletePagoHandler)
			pagos.GET("/:id/recibo", handlers.GetReciboHandler)
		}

		// --- RESERVAS ---
		reservas := apiGroup.Group("/reservas")
		{
			reservas.GET("", handlers.ListReservasHandler)
			reservas.POST("", handlers.CreateReservaHandler)
			reservas.GET("/:id", handlers.GetReservaHandler)
			reservas.PUT("/:id/estado", handlers.UpdateEstadoReservaHandler)
			reservas.POST("/:id/garantes", handlers.AddGaranteHandler)
		}

		// --- REEMBOLSOS ---
		reembolsos := apiGroup.Group("/reembolsos")
		{
			reembolsos.GET("", handlers.ListReembolsosHandler)
			reembolsos.POST("/:id/entregar", handlers.EntregarReembolsoHandler)
		}

		// --- MATRIZ DE TASAS ---
		tasas := apiGroup.Group("/tasas")
		{
			tasas.GET("", handlers.GetTasasHandler)
			tasas.POST("", handlers.UpdateTasasHandler)
		}

		// --- CONFIGURACIONES ---
		configuraciones := apiGroup.Group("/configuraciones")
		{
			configuraciones.GET("", handlers.GetConfiguracionesHandler)
			configuraciones.POST("", handlers.UpdateConfiguracionesHandler)
		}
	}
}
