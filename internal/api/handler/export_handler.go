package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/dto"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/service"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/pkg/response"
)

// ExportHandler handlers HTTP do módulo de exportação
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler cria o ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportarTabela exporta a tabela agrupada como planilha
// GET /api/v1/export/tabela?agrupar_por=localidade
func (h *ExportHandler) ExportarTabela(c *gin.Context) {
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

	buf, nome, err := h.exportSvc.ExportarTabela(c.Request.Context(), usuarioID, role, &req)
	if err != nil {
		if errors.Is(err, service.ErrExportSemDados) {
			response.NotFound(c, 15001, "nenhum dado no escopo para exportar")
			return
		}
		response.InternalError(c)
		return
	}

	nomeCodificado := url.QueryEscape(nome)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+nomeCodificado)
	c.Header("Content-Type", xlsxContentType)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
