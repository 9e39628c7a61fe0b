package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/dto"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/model"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/repository"
)

// ── PainelService ────────────────────────────────────────────
//
// Composição do painel: resolve o escopo de acesso PRIMEIRO, compõe o
// filtro efetivo (interseção com o filtro do usuário, curto-circuito
// quando vazia) e só então consulta a loja e entrega os boletins ao
// motor de consolidação. A regra de escopo é aplicada aqui uma única
// vez — as quatro visões derivadas recebem a mesma coleção filtrada.
// ─────────────────────────────────────────────────────────────

// PainelService visões consolidadas do painel, já recortadas por acesso
type PainelService interface {
	Consolidado(ctx context.Context, usuarioID, role string, filtro *dto.FiltroPainelRequest) (*dto.Consolidado, error)
	SeriePorSemana(ctx context.Context, usuarioID, role string, filtro *dto.FiltroPainelRequest) ([]dto.LinhaSemana, error)
	RankingLocalidades(ctx context.Context, usuarioID, role string, filtro *dto.FiltroPainelRequest) ([]dto.LinhaRanking, error)
	TabelaAgrupada(ctx context.Context, usuarioID, role string, req *dto.TabelaAgrupadaRequest) ([]dto.LinhaAgrupada, error)
}

type painelService struct {
	repo         *repository.Repository
	acesso       AcessoService
	consolidacao ConsolidacaoService
	logger       *zap.Logger
}

// NewPainelService cria uma instância de PainelService
func NewPainelService(
	repo *repository.Repository,
	acesso AcessoService,
	consolidacao ConsolidacaoService,
	logger *zap.Logger,
) PainelService {
	return &painelService{
		repo:         repo,
		acesso:       acesso,
		consolidacao: consolidacao,
		logger:       logger,
	}
}

func (s *painelService) Consolidado(ctx context.Context, usuarioID, role string, filtro *dto.FiltroPainelRequest) (*dto.Consolidado, error) {
	boletins, err := s.buscarEscopado(ctx, usuarioID, role, filtro)
	if err != nil {
		return nil, err
	}
	return s.consolidacao.Consolidar(boletins), nil
}

func (s *painelService) SeriePorSemana(ctx context.Context, usuarioID, role string, filtro *dto.FiltroPainelRequest) ([]dto.LinhaSemana, error) {
	boletins, err := s.buscarEscopado(ctx, usuarioID, role, filtro)
	if err != nil {
		return nil, err
	}
	return s.consolidacao.SeriePorSemana(boletins), nil
}

func (s *painelService) RankingLocalidades(ctx context.Context, usuarioID, role string, filtro *dto.FiltroPainelRequest) ([]dto.LinhaRanking, error) {
	boletins, err := s.buscarEscopado(ctx, usuarioID, role, filtro)
	if err != nil {
		return nil, err
	}
	return s.consolidacao.RankingLocalidades(boletins), nil
}

func (s *painelService) TabelaAgrupada(ctx context.Context, usuarioID, role string, req *dto.TabelaAgrupadaRequest) ([]dto.LinhaAgrupada, error) {
	boletins, err := s.buscarEscopado(ctx, usuarioID, role, &req.FiltroPainelRequest)
	if err != nil {
		return nil, err
	}
	return s.consolidacao.TabelaAgrupada(boletins, DimensaoAgrupamento(req.AgruparPor)), nil
}

// buscarEscopado resolve o acesso, compõe o filtro efetivo e consulta
// a loja. Quando a interseção entre o filtro do usuário e o conjunto
// autorizado é vazia, retorna coleção vazia SEM consultar a loja.
func (s *painelService) buscarEscopado(ctx context.Context, usuarioID, role string, filtro *dto.FiltroPainelRequest) ([]model.Boletim, error) {
	acesso, err := s.acesso.ResolverLocalidades(ctx, usuarioID, role)
	if err != nil {
		s.logger.Error("falha ao resolver escopo de acesso",
			zap.Error(err), zap.String("usuario_id", usuarioID))
		return nil, err
	}

	efetivas, consultar := acesso.Restringir(filtro.Localidades)
	if !consultar {
		return []model.Boletim{}, nil
	}

	boletins, err := s.repo.Boletim.List(ctx, repository.BoletimFiltro{
		Localidades: efetivas,
		Semanas:     filtro.Semanas,
		Ciclos:      filtro.Ciclos,
		Ano:         filtro.Ano,
	})
	if err != nil {
		s.logger.Error("falha ao consultar boletins", zap.Error(err))
		return nil, err
	}
	return boletins, nil
}
