package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/dto"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/service"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/pkg/response"
)

// HierarquiaHandler handlers HTTP da administração da hierarquia
// (rotas exclusivas de admin — o guard está no router)
type HierarquiaHandler struct {
	hierarquiaSvc service.HierarquiaService
}

// NewHierarquiaHandler cria o HierarquiaHandler
func NewHierarquiaHandler(hierarquiaSvc service.HierarquiaService) *HierarquiaHandler {
	return &HierarquiaHandler{hierarquiaSvc: hierarquiaSvc}
}

// ListarGerais árvore completa da hierarquia
// GET /api/v1/hierarquia
func (h *HierarquiaHandler) ListarGerais(c *gin.Context) {
	gerais, err := h.hierarquiaSvc.ListarGerais(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gerais)
}

// CriarGeral cria um supervisor geral
// POST /api/v1/hierarquia/gerais
func (h *HierarquiaHandler) CriarGeral(c *gin.Context) {
	var req dto.CriarSupervisorGeralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "falha na validação dos parâmetros")
		return
	}

	geral, err := h.hierarquiaSvc.CriarGeral(c.Request.Context(), &req)
	if err != nil {
		handleHierarquiaError(c, err)
		return
	}
	response.Created(c, geral)
}

// ExcluirGeral remove um supervisor geral e toda a subárvore
// DELETE /api/v1/hierarquia/gerais/:id
func (h *HierarquiaHandler) ExcluirGeral(c *gin.Context) {
	if err := h.hierarquiaSvc.ExcluirGeral(c.Request.Context(), c.Param("id")); err != nil {
		handleHierarquiaError(c, err)
		return
	}
	response.OK(c, nil)
}

// CriarArea cria um supervisor de área sob um geral
// POST /api/v1/hierarquia/areas
func (h *HierarquiaHandler) CriarArea(c *gin.Context) {
	var req dto.CriarSupervisorAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "falha na validação dos parâmetros")
		return
	}

	area, err := h.hierarquiaSvc.CriarArea(c.Request.Context(), &req)
	if err != nil {
		handleHierarquiaError(c, err)
		return
	}
	response.Created(c, area)
}

// ExcluirArea remove um supervisor de área e suas localidades
// DELETE /api/v1/hierarquia/areas/:id
func (h *HierarquiaHandler) ExcluirArea(c *gin.Context) {
	if err := h.hierarquiaSvc.ExcluirArea(c.Request.Context(), c.Param("id")); err != nil {
		handleHierarquiaError(c, err)
		return
	}
	response.OK(c, nil)
}

// AtualizarLocalidades substitui as localidades de um supervisor de área
// PUT /api/v1/hierarquia/areas/:id/localidades
func (h *HierarquiaHandler) AtualizarLocalidades(c *gin.Context) {
	var req dto.AtualizarLocalidadesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "falha na validação dos parâmetros")
		return
	}

	if err := h.hierarquiaSvc.AtualizarLocalidades(c.Request.Context(), c.Param("id"), &req); err != nil {
		handleHierarquiaError(c, err)
		return
	}
	response.OK(c, nil)
}

func handleHierarquiaError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSupervisorGeralNaoEncontrado):
		response.NotFound(c, 14001, "supervisor geral não encontrado")
	case errors.Is(err, service.ErrSupervisorAreaNaoEncontrado):
		response.NotFound(c, 14002, "supervisor de área não encontrado")
	case errors.Is(err, service.ErrUsuarioNaoEncontrado):
		response.NotFound(c, 12001, "usuário não encontrado")
	default:
		response.InternalError(c)
	}
}
