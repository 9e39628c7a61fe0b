package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/dto"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/service"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/pkg/response"
)

// BoletimHandler handlers HTTP do módulo de boletins
type BoletimHandler struct {
	boletimSvc service.BoletimService
}

// NewBoletimHandler cria o BoletimHandler
func NewBoletimHandler(boletimSvc service.BoletimService) *BoletimHandler {
	return &BoletimHandler{boletimSvc: boletimSvc}
}

// Criar registra um novo boletim de campo
// POST /api/v1/boletins
func (h *BoletimHandler) Criar(c *gin.Context) {
	usuarioID, ok := MustGetUsuarioID(c)
	if !ok {
		return
	}

	var req dto.CriarBoletimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "falha na validação dos parâmetros")
		return
	}

	boletim, err := h.boletimSvc.Criar(c.Request.Context(), usuarioID, &req)
	if err != nil {
		handleBoletimError(c, err)
		return
	}

	response.Created(c, boletim)
}

// BuscarPorID retorna um boletim, respeitando o escopo de acesso
// GET /api/v1/boletins/:id
func (h *BoletimHandler) BuscarPorID(c *gin.Context) {
	usuarioID, ok := MustGetUsuarioID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	boletim, err := h.boletimSvc.BuscarPorID(c.Request.Context(), usuarioID, role, c.Param("id"))
	if err != nil {
		handleBoletimError(c, err)
		return
	}

	response.OK(c, boletim)
}

// Atualizar substitui o payload de um boletim
// PUT /api/v1/boletins/:id
func (h *BoletimHandler) Atualizar(c *gin.Context) {
	usuarioID, ok := MustGetUsuarioID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	var req dto.AtualizarBoletimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "falha na validação dos parâmetros")
		return
	}

	boletim, err := h.boletimSvc.Atualizar(c.Request.Context(), usuarioID, role, c.Param("id"), &req)
	if err != nil {
		handleBoletimError(c, err)
		return
	}

	response.OK(c, boletim)
}

// Excluir remove um boletim
// DELETE /api/v1/boletins/:id
func (h *BoletimHandler) Excluir(c *gin.Context) {
	usuarioID, ok := MustGetUsuarioID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	if err := h.boletimSvc.Excluir(c.Request.Context(), usuarioID, role, c.Param("id")); err != nil {
		handleBoletimError(c, err)
		return
	}

	response.OK(c, nil)
}

// Listar lista boletins dentro do escopo, com filtros opcionais
// GET /api/v1/boletins
func (h *BoletimHandler) Listar(c *gin.Context) {
	usuarioID, ok := MustGetUsuarioID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	var filtro dto.FiltroBoletimRequest
	if err := c.ShouldBindQuery(&filtro); err != nil {
		response.BadRequest(c, 10001, "falha na validação dos parâmetros")
		return
	}

	boletins, err := h.boletimSvc.Listar(c.Request.Context(), usuarioID, role, &filtro)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, boletins)
}

func handleBoletimError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBoletimNaoEncontrado):
		response.NotFound(c, 13001, "boletim não encontrado")
	case errors.Is(err, service.ErrBoletimAcessoNegado):
		response.Forbidden(c, 13002, "boletim fora do escopo de acesso")
	case errors.Is(err, service.ErrSemanaInvalida):
		response.BadRequest(c, 13003, "semana epidemiológica fora da faixa aceita")
	case errors.Is(err, service.ErrCicloInvalido):
		response.BadRequest(c, 13004, "ciclo fora da faixa aceita")
	default:
		response.InternalError(c)
	}
}
