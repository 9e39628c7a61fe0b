package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/dto"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/model"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/repository"
)

var (
	ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")
	ErrEmailJaCadastrado    = errors.New("email já cadastrado")
)

// UsuarioService administração de contas (apenas admin)
type UsuarioService interface {
	Criar(ctx context.Context, req *dto.CriarUsuarioRequest) (*dto.UsuarioResponse, error)
	BuscarPorID(ctx context.Context, usuarioID string) (*dto.UsuarioResponse, error)
	Atualizar(ctx context.Context, usuarioID string, req *dto.AtualizarUsuarioRequest) (*dto.UsuarioResponse, error)
	Excluir(ctx context.Context, usuarioID string) error
	Listar(ctx context.Context) ([]dto.UsuarioResponse, error)
}

type usuarioService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUsuarioService cria uma instância de UsuarioService
func NewUsuarioService(repo *repository.Repository, logger *zap.Logger) UsuarioService {
	return &usuarioService{repo: repo, logger: logger}
}

func (s *usuarioService) Criar(ctx context.Context, req *dto.CriarUsuarioRequest) (*dto.UsuarioResponse, error) {
	if _, err := s.repo.Usuario.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailJaCadastrado
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("falha ao verificar email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("falha ao gerar hash de senha: %w", err)
	}

	usuario := &model.Usuario{
		Nome:         req.Nome,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
	}
	if err := s.repo.Usuario.Create(ctx, usuario); err != nil {
		return nil, fmt.Errorf("falha ao criar usuário: %w", err)
	}

	s.logger.Info("usuário criado",
		zap.String("usuario_id", usuario.UsuarioID),
		zap.String("role", usuario.Role))
	return toUsuarioResponse(usuario), nil
}

func (s *usuarioService) BuscarPorID(ctx context.Context, usuarioID string) (*dto.UsuarioResponse, error) {
	usuario, err := s.repo.Usuario.GetByID(ctx, usuarioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUsuarioNaoEncontrado
		}
		return nil, fmt.Errorf("falha ao buscar usuário: %w", err)
	}
	return toUsuarioResponse(usuario), nil
}

func (s *usuarioService) Atualizar(ctx context.Context, usuarioID string, req *dto.AtualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	usuario, err := s.repo.Usuario.GetByID(ctx, usuarioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUsuarioNaoEncontrado
		}
		return nil, fmt.Errorf("falha ao buscar usuário: %w", err)
	}

	if req.Email != nil && *req.Email != usuario.Email {
		if _, err := s.repo.Usuario.GetByEmail(ctx, *req.Email); err == nil {
			return nil, ErrEmailJaCadastrado
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("falha ao verificar email: %w", err)
		}
		usuario.Email = *req.Email
	}
	if req.Nome != nil {
		usuario.Nome = *req.Nome
	}
	if req.Role != nil && *req.Role != usuario.Role {
		// trocar de papel invalida o nó de hierarquia do papel antigo;
		// sem esta remoção o nó órfão continuaria concedendo escopo
		if err := s.removerNoHierarquia(ctx, usuarioID); err != nil {
			return nil, err
		}
		usuario.Role = *req.Role
	}

	if err := s.repo.Usuario.Update(ctx, usuario); err != nil {
		return nil, fmt.Errorf("falha ao atualizar usuário: %w", err)
	}
	return toUsuarioResponse(usuario), nil
}

func (s *usuarioService) Excluir(ctx context.Context, usuarioID string) error {
	if _, err := s.repo.Usuario.GetByID(ctx, usuarioID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUsuarioNaoEncontrado
		}
		return fmt.Errorf("falha ao buscar usuário: %w", err)
	}
	// o nó de hierarquia vive e morre com a conta do supervisor;
	// removê-lo primeiro também libera as FKs de usuario_id
	if err := s.removerNoHierarquia(ctx, usuarioID); err != nil {
		return err
	}
	if err := s.repo.Usuario.Delete(ctx, usuarioID); err != nil {
		return fmt.Errorf("falha ao excluir usuário: %w", err)
	}
	s.logger.Info("usuário excluído", zap.String("usuario_id", usuarioID))
	return nil
}

// removerNoHierarquia remove o nó de supervisão vinculado ao usuário,
// se existir. A exclusão de um geral arrasta a subárvore inteira
// (áreas e localidades) via cascata. Usuário sem nó não é erro.
func (s *usuarioService) removerNoHierarquia(ctx context.Context, usuarioID string) error {
	geral, err := s.repo.Hierarquia.GetGeralByUsuario(ctx, usuarioID)
	if err == nil {
		if err := s.repo.Hierarquia.DeleteGeral(ctx, geral.SupervisorGeralID); err != nil {
			return fmt.Errorf("falha ao remover supervisor geral do usuário: %w", err)
		}
		s.logger.Info("nó de supervisor geral removido junto com o usuário",
			zap.String("usuario_id", usuarioID),
			zap.String("supervisor_geral_id", geral.SupervisorGeralID))
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("falha ao buscar supervisor geral do usuário: %w", err)
	}

	area, err := s.repo.Hierarquia.GetAreaByUsuario(ctx, usuarioID)
	if err == nil {
		if err := s.repo.Hierarquia.DeleteArea(ctx, area.SupervisorAreaID); err != nil {
			return fmt.Errorf("falha ao remover supervisor de área do usuário: %w", err)
		}
		s.logger.Info("nó de supervisor de área removido junto com o usuário",
			zap.String("usuario_id", usuarioID),
			zap.String("supervisor_area_id", area.SupervisorAreaID))
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("falha ao buscar supervisor de área do usuário: %w", err)
	}

	return nil
}

func (s *usuarioService) Listar(ctx context.Context) ([]dto.UsuarioResponse, error) {
	usuarios, err := s.repo.Usuario.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar usuários: %w", err)
	}
	resp := make([]dto.UsuarioResponse, 0, len(usuarios))
	for i := range usuarios {
		resp = append(resp, *toUsuarioResponse(&usuarios[i]))
	}
	return resp, nil
}

func toUsuarioResponse(u *model.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:    u.UsuarioID,
		Nome:  u.Nome,
		Email: u.Email,
		Role:  u.Role,
	}
}
