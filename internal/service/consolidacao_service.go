package service

import (
	"sort"
	"strconv"

	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/dto"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/model"
)

// ── ConsolidacaoService ──────────────────────────────────────
//
// Motor de consolidação: quatro operações puras sobre a MESMA coleção
// de boletins já filtrada por escopo. Nenhuma delas aplica filtro de
// acesso — isso é responsabilidade do chamador, uma única vez, antes
// de chegar aqui. A separação mantém a aritmética de agregação pura e
// testável independentemente da autorização.
//
// Boletins malformados (contadores ausentes) valem zero e nunca
// abortam a agregação.
// ─────────────────────────────────────────────────────────────

// DimensaoAgrupamento dimensão da tabela analítica agrupada
type DimensaoAgrupamento string

const (
	AgruparPorLocalidade DimensaoAgrupamento = "localidade"
	AgruparPorSemana     DimensaoAgrupamento = "semana"
	AgruparPorCiclo      DimensaoAgrupamento = "ciclo"
)

// ConsolidacaoService operações de agregação sobre boletins
type ConsolidacaoService interface {
	// Consolidar totais gerais, incluindo a taxa de pendência
	// recalculada sobre as somas
	Consolidar(boletins []model.Boletim) *dto.Consolidado
	// SeriePorSemana série agrupada por semana epidemiológica,
	// ordenada pelo número da semana
	SeriePorSemana(boletins []model.Boletim) []dto.LinhaSemana
	// RankingLocalidades ranking crescente por taxa de pendência
	RankingLocalidades(boletins []model.Boletim) []dto.LinhaRanking
	// TabelaAgrupada tabela por localidade, semana ou ciclo
	TabelaAgrupada(boletins []model.Boletim, dimensao DimensaoAgrupamento) []dto.LinhaAgrupada
}

type consolidacaoService struct {
	categorias []string // categorias de depósito, injetadas para os testes
}

// NewConsolidacaoService cria o motor com a tabela de categorias de
// depósito explícita (em produção, model.CategoriasDeposito)
func NewConsolidacaoService(categorias []string) ConsolidacaoService {
	copia := make([]string, len(categorias))
	copy(copia, categorias)
	return &consolidacaoService{categorias: copia}
}

// ════════════════════════════════════════════════════════════
// Consolidar — totais gerais
// ════════════════════════════════════════════════════════════

func (s *consolidacaoService) Consolidar(boletins []model.Boletim) *dto.Consolidado {
	c := &dto.Consolidado{
		DepositosPorCategoria: make(map[string]int, len(s.categorias)),
	}
	for _, cat := range s.categorias {
		c.DepositosPorCategoria[cat] = 0
	}

	for i := range boletins {
		b := &boletins[i]

		c.Imoveis += b.TotalImoveis()
		c.Informados += b.Informados
		c.Fechados += b.Fechados
		c.Recusados += b.Recusados
		c.Recuperados += b.Recuperados
		c.Amostras += b.Amostras

		c.Inspecionados += b.Inspecionados
		c.TratamentoFocal += b.TratamentoFocal
		c.TratamentoPerifocal += b.TratamentoPerifocal

		porCategoria := b.DepositosPorCategoria()
		for _, cat := range s.categorias {
			qtd := porCategoria[cat]
			c.DepositosPorCategoria[cat] += qtd
			c.DepositosTotal += qtd
		}
		c.DepositosEliminados += b.DepositosEliminados

		// os dois campos de larvicida somam juntos
		c.LarvicidaGramas += b.Larvicida1Gramas + b.Larvicida2Gramas
		c.LarvicidaDepositos += b.Larvicida1Depositos + b.Larvicida2Depositos

		c.QtdAgentes += b.QtdAgentes
		c.DiasTrabalhados += b.DiasTrabalhados

		c.Boletins++
	}

	c.TaxaPendencia = taxaPendencia(c.Fechados, c.Recuperados, c.Informados)

	return c
}

// ════════════════════════════════════════════════════════════
// SeriePorSemana — série temporal por semana epidemiológica
// ════════════════════════════════════════════════════════════

func (s *consolidacaoService) SeriePorSemana(boletins []model.Boletim) []dto.LinhaSemana {
	porSemana := make(map[string]*dto.LinhaSemana)
	var ordem []string

	for i := range boletins {
		b := &boletins[i]
		linha, ok := porSemana[b.Semana]
		if !ok {
			linha = &dto.LinhaSemana{
				Semana:       b.Semana,
				NumeroSemana: numeroSemana(b.Semana),
			}
			porSemana[b.Semana] = linha
			ordem = append(ordem, b.Semana)
		}
		linha.Imoveis += b.TotalImoveis()
		linha.Depositos += b.TotalDepositos()
		linha.DepositosEliminados += b.DepositosEliminados
		linha.QtdAgentes += b.QtdAgentes
		linha.Boletins++
	}

	serie := make([]dto.LinhaSemana, 0, len(ordem))
	for _, semana := range ordem {
		serie = append(serie, *porSemana[semana])
	}

	// ordenação pelo número da semana, não pelo rótulo
	sort.SliceStable(serie, func(i, j int) bool {
		return serie[i].NumeroSemana < serie[j].NumeroSemana
	})

	return serie
}

// ════════════════════════════════════════════════════════════
// RankingLocalidades — pendência menor ranqueia melhor
// ════════════════════════════════════════════════════════════

func (s *consolidacaoService) RankingLocalidades(boletins []model.Boletim) []dto.LinhaRanking {
	porLocalidade := make(map[string]*dto.LinhaRanking)
	var ordem []string

	for i := range boletins {
		b := &boletins[i]
		linha, ok := porLocalidade[b.Localidade]
		if !ok {
			linha = &dto.LinhaRanking{Localidade: b.Localidade}
			porLocalidade[b.Localidade] = linha
			ordem = append(ordem, b.Localidade)
		}
		linha.DepositosEliminados += b.DepositosEliminados
		linha.Depositos += b.TotalDepositos()
		linha.Imoveis += b.TotalImoveis()
		linha.QtdAgentes += b.QtdAgentes
		linha.Fechados += b.Fechados
		linha.Recuperados += b.Recuperados
		linha.Informados += b.Informados
	}

	ranking := make([]dto.LinhaRanking, 0, len(ordem))
	for _, localidade := range ordem {
		linha := porLocalidade[localidade]
		linha.TaxaPendencia = taxaPendencia(linha.Fechados, linha.Recuperados, linha.Informados)
		ranking = append(ranking, *linha)
	}

	// crescente por pendência; empates preservam a ordem de entrada
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].TaxaPendencia < ranking[j].TaxaPendencia
	})
	for i := range ranking {
		ranking[i].Posicao = i + 1
	}

	return ranking
}

// ════════════════════════════════════════════════════════════
// TabelaAgrupada — tabela analítica por dimensão arbitrária
// ════════════════════════════════════════════════════════════

func (s *consolidacaoService) TabelaAgrupada(boletins []model.Boletim, dimensao DimensaoAgrupamento) []dto.LinhaAgrupada {
	chaveDe := func(b *model.Boletim) string {
		switch dimensao {
		case AgruparPorSemana:
			return b.Semana
		case AgruparPorCiclo:
			return strconv.Itoa(b.Ciclo)
		default:
			return b.Localidade
		}
	}

	porChave := make(map[string]*dto.LinhaAgrupada)
	var ordem []string

	for i := range boletins {
		b := &boletins[i]
		chave := chaveDe(b)
		linha, ok := porChave[chave]
		if !ok {
			linha = &dto.LinhaAgrupada{Chave: chave}
			porChave[chave] = linha
			ordem = append(ordem, chave)
		}
		linha.Imoveis += b.TotalImoveis()
		linha.Fechados += b.Fechados
		linha.Recuperados += b.Recuperados
		linha.Informados += b.Informados
		linha.LarvicidaGramas += b.Larvicida1Gramas + b.Larvicida2Gramas
		linha.Boletins++
		if b.Concluido {
			linha.Concluidos++
		}
	}

	linhas := make([]dto.LinhaAgrupada, 0, len(ordem))
	for _, chave := range ordem {
		linha := porChave[chave]
		linha.TaxaPendencia = taxaPendencia(linha.Fechados, linha.Recuperados, linha.Informados)
		linha.PercentualConcluido = percentualConcluido(linha.Concluidos, linha.Boletins)
		linhas = append(linhas, *linha)
	}

	switch dimensao {
	case AgruparPorSemana:
		sort.SliceStable(linhas, func(i, j int) bool {
			return numeroSemana(linhas[i].Chave) < numeroSemana(linhas[j].Chave)
		})
	case AgruparPorCiclo:
		sort.SliceStable(linhas, func(i, j int) bool {
			return numeroCiclo(linhas[i].Chave) < numeroCiclo(linhas[j].Chave)
		})
	default:
		sort.SliceStable(linhas, func(i, j int) bool {
			return linhas[i].Chave < linhas[j].Chave
		})
	}

	return linhas
}
