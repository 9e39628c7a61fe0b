package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/dto"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/service"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/pkg/response"
)

// PainelHandler handlers HTTP das visões consolidadas do painel.
// Todas as rotas aplicam o recorte de escopo na camada de serviço —
// aqui só se faz bind de filtros e despacho.
type PainelHandler struct {
	painelSvc service.PainelService
}

// NewPainelHandler cria o PainelHandler
func NewPainelHandler(painelSvc service.PainelService) *PainelHandler {
	return &PainelHandler{painelSvc: painelSvc}
}

// Consolidado totais gerais do escopo
// GET /api/v1/painel/consolidado
func (h *PainelHandler) Consolidado(c *gin.Context) {
	usuarioID, role, filtro, ok := h.bindFiltro(c)
	if !ok {
		return
	}

	consolidado, err := h.painelSvc.Consolidado(c.Request.Context(), usuarioID, role, filtro)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, consolidado)
}

// SeriePorSemana série temporal por semana epidemiológica
// GET /api/v1/painel/serie-semanal
func (h *PainelHandler) SeriePorSemana(c *gin.Context) {
	usuarioID, role, filtro, ok := h.bindFiltro(c)
	if !ok {
		return
	}

	serie, err := h.painelSvc.SeriePorSemana(c.Request.Context(), usuarioID, role, filtro)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, serie)
}

// RankingLocalidades ranking crescente por taxa de pendência
// GET /api/v1/painel/ranking
func (h *PainelHandler) RankingLocalidades(c *gin.Context) {
	usuarioID, role, filtro, ok := h.bindFiltro(c)
	if !ok {
		return
	}

	ranking, err := h.painelSvc.RankingLocalidades(c.Request.Context(), usuarioID, role, filtro)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, ranking)
}

// TabelaAgrupada tabela analítica por localidade, semana ou ciclo
// GET /api/v1/painel/tabela
func (h *PainelHandler) TabelaAgrupada(c *gin.Context) {
	usuarioID, ok := MustGetUsuarioID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	var req dto.TabelaAgrupadaRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "falha na validação dos parâmetros")
		return
	}

	tabela, err := h.painelSvc.TabelaAgrupada(c.Request.Context(), usuarioID, role, &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, tabela)
}

func (h *PainelHandler) bindFiltro(c *gin.Context) (string, string, *dto.FiltroPainelRequest, bool) {
	usuarioID, ok := MustGetUsuarioID(c)
	if !ok {
		return "", "", nil, false
	}
	role, ok := MustGetRole(c)
	if !ok {
		return "", "", nil, false
	}

	var filtro dto.FiltroPainelRequest
	if err := c.ShouldBindQuery(&filtro); err != nil {
		response.BadRequest(c, 10001, "falha na validação dos parâmetros")
		return "", "", nil, false
	}
	return usuarioID, role, &filtro, true
}
