package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/dto"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/service"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/pkg/response"
)

// AuthHandler handlers HTTP do módulo de autenticação
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler cria o AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login autentica com email e senha
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "falha na validação dos parâmetros")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrCredenciaisInvalidas) {
			response.Error(c, http.StatusUnauthorized, 11001, "email ou senha incorretos")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Logout invalida o token atual via blacklist
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}
	if err := h.authSvc.Logout(c.Request.Context(), claims); err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// RefreshToken renova o par de tokens
// POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "falha na validação dos parâmetros")
		return
	}

	result, err := h.authSvc.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrRefreshTokenInvalido) {
			response.Error(c, http.StatusUnauthorized, 11002, "refresh token inválido ou expirado")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Me retorna os dados do usuário autenticado
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	usuarioID, ok := MustGetUsuarioID(c)
	if !ok {
		return
	}

	usuario, err := h.authSvc.GetCurrentUser(c.Request.Context(), usuarioID)
	if err != nil {
		if errors.Is(err, service.ErrUsuarioNaoEncontrado) {
			response.NotFound(c, 12001, "usuário não encontrado")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, usuario)
}

// ChangePassword troca a senha do usuário autenticado
// PUT /api/v1/auth/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	usuarioID, ok := MustGetUsuarioID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "falha na validação dos parâmetros")
		return
	}

	if err := h.authSvc.ChangePassword(c.Request.Context(), usuarioID, &req); err != nil {
		switch {
		case errors.Is(err, service.ErrSenhaAtualIncorreta):
			response.BadRequest(c, 11003, "senha atual incorreta")
		case errors.Is(err, service.ErrUsuarioNaoEncontrado):
			response.NotFound(c, 12001, "usuário não encontrado")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, nil)
}
