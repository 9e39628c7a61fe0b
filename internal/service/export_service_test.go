package service

import (
	"context"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/dto"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/model"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/repository"
)

// ── Auxiliares de teste ──

func setupTestExportService() (ExportService, *mockBoletimRepo, *mockHierarquiaRepo) {
	boletimRepo := newMockBoletimRepo()
	hierRepo := newMockHierarquiaRepo()
	repo := &repository.Repository{
		Usuario:    newMockUsuarioRepo(),
		Boletim:    boletimRepo,
		Hierarquia: hierRepo,
	}
	logger := zap.NewNop()
	acesso := NewAcessoService(repo, logger)
	consolidacao := NewConsolidacaoService(model.CategoriasDeposito)
	painel := NewPainelService(repo, acesso, consolidacao, logger)
	svc := NewExportService(painel, logger)
	return svc, boletimRepo, hierRepo
}

// ── ExportarTabela ──

func TestExportService_ExportarTabela(t *testing.T) {
	svc, boletimRepo, _ := setupTestExportService()
	ctx := context.Background()
	boletimRepo.Create(ctx, &model.Boletim{Localidade: "Centro", Semana: "SE 1", Informados: 10, Fechados: 2, Residencias: 5})
	boletimRepo.Create(ctx, &model.Boletim{Localidade: "Norte", Semana: "SE 1", Informados: 8, Residencias: 3})

	buf, nome, err := svc.ExportarTabela(ctx, "usr-admin", model.RoleAdmin, &dto.TabelaAgrupadaRequest{
		AgruparPor: "localidade",
	})
	if err != nil {
		t.Fatalf("ExportarTabela deveria ter sucesso: %v", err)
	}
	if nome != "consolidado_por_localidade.xlsx" {
		t.Errorf("nome do arquivo inesperado: %s", nome)
	}

	// a planilha gerada deve ser legível e conter as linhas agrupadas
	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("planilha gerada deveria abrir: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Consolidado")
	if err != nil {
		t.Fatalf("aba Consolidado deveria existir: %v", err)
	}
	// cabeçalho + 2 localidades
	if len(rows) != 3 {
		t.Errorf("esperadas 3 linhas (cabeçalho + 2), obtidas %d", len(rows))
	}
	if rows[0][0] != "Localidade" {
		t.Errorf("primeira coluna do cabeçalho esperada Localidade, obtida %s", rows[0][0])
	}
}

func TestExportService_ExportarTabela_SemDados(t *testing.T) {
	svc, _, _ := setupTestExportService()

	_, _, err := svc.ExportarTabela(context.Background(), "usr-admin", model.RoleAdmin, &dto.TabelaAgrupadaRequest{
		AgruparPor: "semana",
	})
	if !errors.Is(err, ErrExportSemDados) {
		t.Errorf("esperado ErrExportSemDados, obtido: %v", err)
	}
}

func TestExportService_ExportarTabela_RespeitaEscopo(t *testing.T) {
	svc, boletimRepo, _ := setupTestExportService()
	ctx := context.Background()
	boletimRepo.Create(ctx, &model.Boletim{Localidade: "Centro", Informados: 10})

	// supervisor sem nó na hierarquia: escopo vazio, nada a exportar
	_, _, err := svc.ExportarTabela(ctx, "usr-fantasma", model.RoleSupervisorArea, &dto.TabelaAgrupadaRequest{
		AgruparPor: "localidade",
	})
	if !errors.Is(err, ErrExportSemDados) {
		t.Errorf("escopo vazio deveria resultar em ErrExportSemDados, obtido: %v", err)
	}
}
