package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/dto"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/service"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/pkg/response"
)

// UsuarioHandler handlers HTTP da administração de usuários
// (rotas exclusivas de admin — o guard está no router)
type UsuarioHandler struct {
	usuarioSvc service.UsuarioService
}

// NewUsuarioHandler cria o UsuarioHandler
func NewUsuarioHandler(usuarioSvc service.UsuarioService) *UsuarioHandler {
	return &UsuarioHandler{usuarioSvc: usuarioSvc}
}

// Criar cadastra um usuário
// POST /api/v1/usuarios
func (h *UsuarioHandler) Criar(c *gin.Context) {
	var req dto.CriarUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "falha na validação dos parâmetros")
		return
	}

	usuario, err := h.usuarioSvc.Criar(c.Request.Context(), &req)
	if err != nil {
		handleUsuarioError(c, err)
		return
	}
	response.Created(c, usuario)
}

// BuscarPorID retorna um usuário
// GET /api/v1/usuarios/:id
func (h *UsuarioHandler) BuscarPorID(c *gin.Context) {
	usuario, err := h.usuarioSvc.BuscarPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleUsuarioError(c, err)
		return
	}
	response.OK(c, usuario)
}

// Atualizar atualização parcial de um usuário
// PUT /api/v1/usuarios/:id
func (h *UsuarioHandler) Atualizar(c *gin.Context) {
	var req dto.AtualizarUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "falha na validação dos parâmetros")
		return
	}

	usuario, err := h.usuarioSvc.Atualizar(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleUsuarioError(c, err)
		return
	}
	response.OK(c, usuario)
}

// Excluir remove um usuário
// DELETE /api/v1/usuarios/:id
func (h *UsuarioHandler) Excluir(c *gin.Context) {
	if err := h.usuarioSvc.Excluir(c.Request.Context(), c.Param("id")); err != nil {
		handleUsuarioError(c, err)
		return
	}
	response.OK(c, nil)
}

// Listar lista todos os usuários
// GET /api/v1/usuarios
func (h *UsuarioHandler) Listar(c *gin.Context) {
	usuarios, err := h.usuarioSvc.Listar(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, usuarios)
}

func handleUsuarioError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUsuarioNaoEncontrado):
		response.NotFound(c, 12001, "usuário não encontrado")
	case errors.Is(err, service.ErrEmailJaCadastrado):
		response.BadRequest(c, 12002, "email já cadastrado")
	default:
		response.InternalError(c)
	}
}
