package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/pkg/jwt"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/pkg/response"
)

// MustGetUsuarioID extrai o usuario_id injetado pelo middleware JWT.
// Se o middleware não injetou corretamente, escreve 401 e retorna
// ok=false; o chamador deve apenas dar return.
func MustGetUsuarioID(c *gin.Context) (string, bool) {
	v, exists := c.Get("usuario_id")
	if !exists {
		response.Unauthorized(c, 10002, "não autenticado")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "não autenticado")
		return "", false
	}
	return s, true
}

// MustGetRole extrai o papel do usuário do contexto Gin
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, 10002, "não autenticado")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "não autenticado")
		return "", false
	}
	return s, true
}

// MustGetClaims extrai as claims completas do token, usadas no logout
func MustGetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get("claims")
	if !exists {
		response.Unauthorized(c, 10002, "não autenticado")
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	if !ok {
		response.Unauthorized(c, 10002, "não autenticado")
		return nil, false
	}
	return claims, true
}
