package middleware

import (
	"strings"

	"biocatalog_backend/internal/config"
	"biocatalog_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware exige un token Bearer válido. Sin token responde 401;
// con un token inválido o expirado responde 403.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			util.Unauthorized(c, "token no proporcionado")
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Forbidden(c, "token inválido o expirado")
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}
