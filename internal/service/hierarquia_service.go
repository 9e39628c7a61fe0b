package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/dto"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/model"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/repository"
)

var (
	ErrSupervisorGeralNaoEncontrado = errors.New("supervisor geral não encontrado")
	ErrSupervisorAreaNaoEncontrado  = errors.New("supervisor de área não encontrado")
)

// HierarquiaService administração da hierarquia de supervisão.
// A escrita é exclusiva do admin; o resolvedor de acesso só lê.
type HierarquiaService interface {
	CriarGeral(ctx context.Context, req *dto.CriarSupervisorGeralRequest) (*model.SupervisorGeral, error)
	ExcluirGeral(ctx context.Context, geralID string) error
	ListarGerais(ctx context.Context) ([]dto.SupervisorGeralResponse, error)

	CriarArea(ctx context.Context, req *dto.CriarSupervisorAreaRequest) (*model.SupervisorArea, error)
	ExcluirArea(ctx context.Context, areaID string) error
	AtualizarLocalidades(ctx context.Context, areaID string, req *dto.AtualizarLocalidadesRequest) error
}

type hierarquiaService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewHierarquiaService cria uma instância de HierarquiaService
func NewHierarquiaService(repo *repository.Repository, logger *zap.Logger) HierarquiaService {
	return &hierarquiaService{repo: repo, logger: logger}
}

func (s *hierarquiaService) CriarGeral(ctx context.Context, req *dto.CriarSupervisorGeralRequest) (*model.SupervisorGeral, error) {
	if _, err := s.repo.Usuario.GetByID(ctx, req.UsuarioID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUsuarioNaoEncontrado
		}
		return nil, fmt.Errorf("falha ao verificar usuário: %w", err)
	}

	geral := &model.SupervisorGeral{
		UsuarioID: req.UsuarioID,
		Nome:      req.Nome,
	}
	if err := s.repo.Hierarquia.CreateGeral(ctx, geral); err != nil {
		return nil, fmt.Errorf("falha ao criar supervisor geral: %w", err)
	}

	s.logger.Info("supervisor geral criado",
		zap.String("supervisor_geral_id", geral.SupervisorGeralID),
		zap.String("nome", geral.Nome))
	return geral, nil
}

func (s *hierarquiaService) ExcluirGeral(ctx context.Context, geralID string) error {
	if _, err := s.repo.Hierarquia.GetGeralByID(ctx, geralID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSupervisorGeralNaoEncontrado
		}
		return fmt.Errorf("falha ao buscar supervisor geral: %w", err)
	}
	// a cascata remove áreas e localidades da subárvore
	if err := s.repo.Hierarquia.DeleteGeral(ctx, geralID); err != nil {
		return fmt.Errorf("falha ao excluir supervisor geral: %w", err)
	}
	s.logger.Info("supervisor geral excluído", zap.String("supervisor_geral_id", geralID))
	return nil
}

func (s *hierarquiaService) ListarGerais(ctx context.Context) ([]dto.SupervisorGeralResponse, error) {
	gerais, err := s.repo.Hierarquia.ListGerais(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar hierarquia: %w", err)
	}

	resp := make([]dto.SupervisorGeralResponse, 0, len(gerais))
	for _, g := range gerais {
		areas := make([]dto.SupervisorAreaResponse, 0, len(g.Areas))
		for _, a := range g.Areas {
			nomes := make([]string, 0, len(a.Localidades))
			for _, l := range a.Localidades {
				nomes = append(nomes, l.Nome)
			}
			areas = append(areas, dto.SupervisorAreaResponse{
				ID:          a.SupervisorAreaID,
				UsuarioID:   a.UsuarioID,
				Nome:        a.Nome,
				Localidades: nomes,
			})
		}
		resp = append(resp, dto.SupervisorGeralResponse{
			ID:        g.SupervisorGeralID,
			UsuarioID: g.UsuarioID,
			Nome:      g.Nome,
			Areas:     areas,
		})
	}
	return resp, nil
}

func (s *hierarquiaService) CriarArea(ctx context.Context, req *dto.CriarSupervisorAreaRequest) (*model.SupervisorArea, error) {
	if _, err := s.repo.Usuario.GetByID(ctx, req.UsuarioID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUsuarioNaoEncontrado
		}
		return nil, fmt.Errorf("falha ao verificar usuário: %w", err)
	}
	if _, err := s.repo.Hierarquia.GetGeralByID(ctx, req.SupervisorGeralID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupervisorGeralNaoEncontrado
		}
		return nil, fmt.Errorf("falha ao buscar supervisor geral: %w", err)
	}

	area := &model.SupervisorArea{
		SupervisorGeralID: req.SupervisorGeralID,
		UsuarioID:         req.UsuarioID,
		Nome:              req.Nome,
	}
	if err := s.repo.Hierarquia.CreateArea(ctx, area); err != nil {
		return nil, fmt.Errorf("falha ao criar supervisor de área: %w", err)
	}

	if len(req.Localidades) > 0 {
		if err := s.repo.Hierarquia.ReplaceLocalidades(ctx, area.SupervisorAreaID, req.Localidades); err != nil {
			return nil, fmt.Errorf("falha ao atribuir localidades: %w", err)
		}
	}

	s.logger.Info("supervisor de área criado",
		zap.String("supervisor_area_id", area.SupervisorAreaID),
		zap.Int("localidades", len(req.Localidades)))
	return area, nil
}

func (s *hierarquiaService) ExcluirArea(ctx context.Context, areaID string) error {
	if _, err := s.repo.Hierarquia.GetAreaByID(ctx, areaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSupervisorAreaNaoEncontrado
		}
		return fmt.Errorf("falha ao buscar supervisor de área: %w", err)
	}
	if err := s.repo.Hierarquia.DeleteArea(ctx, areaID); err != nil {
		return fmt.Errorf("falha ao excluir supervisor de área: %w", err)
	}
	s.logger.Info("supervisor de área excluído", zap.String("supervisor_area_id", areaID))
	return nil
}

// AtualizarLocalidades substitui integralmente o conjunto de
// localidades da área — sem diff, sem merge
func (s *hierarquiaService) AtualizarLocalidades(ctx context.Context, areaID string, req *dto.AtualizarLocalidadesRequest) error {
	if _, err := s.repo.Hierarquia.GetAreaByID(ctx, areaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSupervisorAreaNaoEncontrado
		}
		return fmt.Errorf("falha ao buscar supervisor de área: %w", err)
	}
	if err := s.repo.Hierarquia.ReplaceLocalidades(ctx, areaID, req.Localidades); err != nil {
		return fmt.Errorf("falha ao atualizar localidades: %w", err)
	}
	s.logger.Info("localidades atualizadas",
		zap.String("supervisor_area_id", areaID),
		zap.Int("total", len(req.Localidades)))
	return nil
}
