package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/config"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/dto"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/model"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/repository"
)

var (
	ErrBoletimNaoEncontrado = errors.New("boletim não encontrado")
	ErrBoletimAcessoNegado  = errors.New("boletim fora do escopo de acesso do usuário")
	ErrSemanaInvalida       = errors.New("semana epidemiológica fora da faixa aceita")
	ErrCicloInvalido        = errors.New("ciclo fora da faixa aceita")
)

// BoletimService ciclo de vida dos boletins de campo.
// Toda leitura individual e toda listagem passam pelo mesmo recorte de
// escopo do painel: um supervisor só enxerga boletins das localidades
// que a hierarquia lhe atribui.
type BoletimService interface {
	Criar(ctx context.Context, usuarioID string, req *dto.CriarBoletimRequest) (*model.Boletim, error)
	BuscarPorID(ctx context.Context, usuarioID, role, boletimID string) (*model.Boletim, error)
	Atualizar(ctx context.Context, usuarioID, role, boletimID string, req *dto.AtualizarBoletimRequest) (*model.Boletim, error)
	Excluir(ctx context.Context, usuarioID, role, boletimID string) error
	Listar(ctx context.Context, usuarioID, role string, filtro *dto.FiltroBoletimRequest) ([]model.Boletim, error)
}

type boletimService struct {
	repo   *repository.Repository
	acesso AcessoService
	campo  *config.CampoConfig
	logger *zap.Logger
}

// NewBoletimService cria uma instância de BoletimService
func NewBoletimService(
	repo *repository.Repository,
	acesso AcessoService,
	campo *config.CampoConfig,
	logger *zap.Logger,
) BoletimService {
	return &boletimService{repo: repo, acesso: acesso, campo: campo, logger: logger}
}

func (s *boletimService) Criar(ctx context.Context, usuarioID string, req *dto.CriarBoletimRequest) (*model.Boletim, error) {
	if err := s.validarFaixas(req); err != nil {
		return nil, err
	}

	boletim := req.ToModel()
	boletim.CriadoPor = &usuarioID

	if err := s.repo.Boletim.Create(ctx, &boletim); err != nil {
		s.logger.Error("falha ao criar boletim", zap.Error(err))
		return nil, fmt.Errorf("falha ao criar boletim: %w", err)
	}

	s.logger.Info("boletim criado",
		zap.String("boletim_id", boletim.BoletimID),
		zap.String("localidade", boletim.Localidade),
		zap.String("semana", boletim.Semana))

	return &boletim, nil
}

func (s *boletimService) BuscarPorID(ctx context.Context, usuarioID, role, boletimID string) (*model.Boletim, error) {
	boletim, err := s.repo.Boletim.GetByID(ctx, boletimID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoletimNaoEncontrado
		}
		return nil, fmt.Errorf("falha ao buscar boletim: %w", err)
	}

	if err := s.verificarEscopo(ctx, usuarioID, role, boletim.Localidade); err != nil {
		return nil, err
	}
	return boletim, nil
}

// Atualizar substitui o payload inteiro do boletim, preservando a
// identidade (id, autoria, data de criação).
func (s *boletimService) Atualizar(ctx context.Context, usuarioID, role, boletimID string, req *dto.AtualizarBoletimRequest) (*model.Boletim, error) {
	if err := s.validarFaixas(req); err != nil {
		return nil, err
	}

	existente, err := s.BuscarPorID(ctx, usuarioID, role, boletimID)
	if err != nil {
		return nil, err
	}

	atualizado := req.ToModel()
	atualizado.BoletimID = existente.BoletimID
	atualizado.CriadoPor = existente.CriadoPor
	atualizado.CreatedAt = existente.CreatedAt

	if err := s.repo.Boletim.Update(ctx, &atualizado); err != nil {
		s.logger.Error("falha ao atualizar boletim",
			zap.Error(err), zap.String("boletim_id", boletimID))
		return nil, fmt.Errorf("falha ao atualizar boletim: %w", err)
	}
	return &atualizado, nil
}

func (s *boletimService) Excluir(ctx context.Context, usuarioID, role, boletimID string) error {
	if _, err := s.BuscarPorID(ctx, usuarioID, role, boletimID); err != nil {
		return err
	}
	if err := s.repo.Boletim.Delete(ctx, boletimID); err != nil {
		return fmt.Errorf("falha ao excluir boletim: %w", err)
	}
	s.logger.Info("boletim excluído", zap.String("boletim_id", boletimID))
	return nil
}

func (s *boletimService) Listar(ctx context.Context, usuarioID, role string, filtro *dto.FiltroBoletimRequest) ([]model.Boletim, error) {
	acesso, err := s.acesso.ResolverLocalidades(ctx, usuarioID, role)
	if err != nil {
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
		return nil, fmt.Errorf("falha ao listar boletins: %w", err)
	}
	return boletins, nil
}

// verificarEscopo garante que a localidade do boletim pertence ao
// conjunto autorizado do usuário
func (s *boletimService) verificarEscopo(ctx context.Context, usuarioID, role, localidade string) error {
	acesso, err := s.acesso.ResolverLocalidades(ctx, usuarioID, role)
	if err != nil {
		return err
	}
	if acesso.Irrestrito() {
		return nil
	}
	for _, l := range acesso.Localidades() {
		if l == localidade {
			return nil
		}
	}
	return ErrBoletimAcessoNegado
}

func (s *boletimService) validarFaixas(req *dto.CriarBoletimRequest) error {
	n := numeroSemana(req.Semana)
	if n < s.campo.SemanaMin || n > s.campo.SemanaMax {
		return ErrSemanaInvalida
	}
	if req.Ciclo < s.campo.CicloMin || req.Ciclo > s.campo.CicloMax {
		return ErrCicloInvalido
	}
	return nil
}
