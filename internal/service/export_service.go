package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/dto"
)

var ErrExportSemDados = errors.New("nenhum dado no escopo para exportar")

// ExportService geração de planilhas da tabela analítica agrupada.
// A exportação passa pelo mesmo recorte de acesso do painel: o arquivo
// contém exatamente o que o usuário veria na tela.
type ExportService interface {
	ExportarTabela(ctx context.Context, usuarioID, role string, req *dto.TabelaAgrupadaRequest) (*bytes.Buffer, string, error)
}

type exportService struct {
	painel PainelService
	logger *zap.Logger
}

// NewExportService cria uma instância de ExportService
func NewExportService(painel PainelService, logger *zap.Logger) ExportService {
	return &exportService{painel: painel, logger: logger}
}

var rotuloDimensao = map[string]string{
	"localidade": "Localidade",
	"semana":     "Semana",
	"ciclo":      "Ciclo",
}

// ExportarTabela gera um .xlsx com a tabela agrupada e retorna o buffer
// e o nome sugerido do arquivo
func (s *exportService) ExportarTabela(ctx context.Context, usuarioID, role string, req *dto.TabelaAgrupadaRequest) (*bytes.Buffer, string, error) {
	linhas, err := s.painel.TabelaAgrupada(ctx, usuarioID, role, req)
	if err != nil {
		return nil, "", err
	}
	if len(linhas) == 0 {
		return nil, "", ErrExportSemDados
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Consolidado"
	f.SetSheetName("Sheet1", sheet)

	rotulo := rotuloDimensao[req.AgruparPor]
	cabecalho := []string{
		rotulo, "Imóveis", "Fechados", "Recuperados", "Informados",
		"Larvicida (g)", "Boletins", "Concluídos", "Taxa de Pendência (%)", "% Concluído",
	}
	for i, titulo := range cabecalho {
		celula, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, celula, titulo)
	}

	estiloCabecalho, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DCE6F1"}, Pattern: 1},
	})
	if err == nil {
		ultima, _ := excelize.CoordinatesToCellName(len(cabecalho), 1)
		f.SetCellStyle(sheet, "A1", ultima, estiloCabecalho)
	}

	for i, linha := range linhas {
		valores := []interface{}{
			linha.Chave, linha.Imoveis, linha.Fechados, linha.Recuperados,
			linha.Informados, linha.LarvicidaGramas, linha.Boletins,
			linha.Concluidos, linha.TaxaPendencia, linha.PercentualConcluido,
		}
		for j, v := range valores {
			celula, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, celula, v)
		}
	}

	f.SetColWidth(sheet, "A", "A", 28)
	f.SetColWidth(sheet, "B", "J", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("falha ao gerar planilha", zap.Error(err))
		return nil, "", fmt.Errorf("falha ao gerar planilha: %w", err)
	}

	nome := fmt.Sprintf("consolidado_por_%s.xlsx", req.AgruparPor)
	s.logger.Info("planilha exportada",
		zap.String("usuario_id", usuarioID),
		zap.String("agrupar_por", req.AgruparPor),
		zap.Int("linhas", len(linhas)))
	return buf, nome, nil
}
