package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/pablodexsa/autos-backend-sub000/config"
	"github.com/pablodexsa/autos-backend-sub000/models"
)

// cachedUser es lo mínimo del usuario que vale la pena tener en caché.
type cachedUser struct {
	UserID uint   `json:"user_id"`
	Login  string `json:"login"`
}

// AuthMiddleware valida el token de sesión (cookie o header Authorization) y
// deja el usuario resuelto en el contexto.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie("auth_token")
		if err != nil || tokenStr == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				abortAuth(c, "Falta el token de autenticación")
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				abortAuth(c, "Formato inválido del header Authorization")
				return
			}
			tokenStr = parts[1]
		}

		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("método de firma inesperado: %v", token.Header["alg"])
			}
			return config.JwtKey, nil
		})
		if err != nil || !token.Valid {
			c.SetCookie("auth_token", "", -1, "/", "", false, true)
			abortAuth(c, "Token inválido o vencido")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortAuth(c, "Claims inválidos en el token")
			return
		}
		userIDFloat, ok := claims["user_id"].(float64)
		if !ok {
			abortAuth(c, "ID de usuario inválido en el token")
			return
		}
		userID := uint(userIDFloat)

		cacheKey := fmt.Sprintf("usuario:%d:datos", userID)
		if config.RDB != nil {
			if cached, err := config.RDB.Get(config.Ctx, cacheKey).Result(); err == nil {
				var datos cachedUser
				if json.Unmarshal([]byte(cached), &datos) == nil {
					proceed(c, &datos)
					return
				}
			}
		}

		var usuario models.Usuario
		if err := config.DB.First(&usuario, userID).Error; err != nil {
			abortAuth(c, "Usuario inexistente")
			return
		}

		datos := cachedUser{UserID: usuario.ID, Login: usuario.Login}
		if config.RDB != nil {
			if raw, err := json.Marshal(datos); err == nil {
				config.RDB.Set(config.Ctx, cacheKey, raw, 15*time.Minute)
			}
		}

		proceed(c, &datos)
	}
}

func proceed(c *gin.Context, datos *cachedUser) {
	c.Set("userID", datos.UserID)
	c.Set("login", datos.Login)
	c.Next()
}

func abortAuth(c *gin.Context, mensaje string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": mensaje})
}
