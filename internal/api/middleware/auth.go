package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/pkg/jwt"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/pkg/redis"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/pkg/response"
)

// JWTAuth middleware de autenticação JWT.
// Extrai e valida o Access Token de Authorization: Bearer <token>.
// Com Redis disponível, rejeita tokens cujo jti está na blacklist;
// sem Redis, a verificação de blacklist é pulada.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "cabeçalho de autenticação ausente")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "cabeçalho de autenticação malformado")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "token inválido ou expirado")
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			response.Unauthorized(c, 10002, "tipo de token inválido")
			c.Abort()
			return
		}

		if rdb != nil {
			bloqueado, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && bloqueado {
				response.Unauthorized(c, 10002, "token revogado")
				c.Abort()
				return
			}
			// erro de Redis degrada para aceitar o token
		}

		// injeta a identidade no contexto
		c.Set("usuario_id", claims.UsuarioID)
		c.Set("role", claims.Role)
		c.Set("claims", claims)

		c.Next()
	}
}

// RoleAuth middleware de autorização por papel.
// Verifica se o usuário autenticado possui um dos papéis permitidos.
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Unauthorized(c, 10002, "não autenticado")
			c.Abort()
			return
		}

		userRole := role.(string)
		for _, r := range allowedRoles {
			if userRole == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, 10003, "sem permissão de acesso")
		c.Abort()
	}
}
