package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/config"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/dto"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/repository"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/pkg/jwt"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/pkg/redis"
)

var (
	ErrCredenciaisInvalidas = errors.New("email ou senha incorretos")
	ErrRefreshTokenInvalido = errors.New("refresh token inválido ou expirado")
	ErrSenhaAtualIncorreta  = errors.New("senha atual incorreta")
)

// AuthService autenticação e ciclo de vida de sessão
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	// Logout coloca o jti do token na blacklist pelo tempo de vida
	// restante. Sem Redis, degrada para no-op.
	Logout(ctx context.Context, claims *jwt.Claims) error
	GetCurrentUser(ctx context.Context, usuarioID string) (*dto.UsuarioResponse, error)
	ChangePassword(ctx context.Context, usuarioID string, req *dto.ChangePasswordRequest) error
}

type authService struct {
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client // pode ser nil
	cfg    *config.AuthConfig
	logger *zap.Logger
}

// NewAuthService cria uma instância de AuthService
func NewAuthService(
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	cfg *config.AuthConfig,
	logger *zap.Logger,
) AuthService {
	return &authService{repo: repo, jwtMgr: jwtMgr, rdb: rdb, cfg: cfg, logger: logger}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	usuario, err := s.repo.Usuario.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// mesma resposta para email inexistente e senha errada
			return nil, ErrCredenciaisInvalidas
		}
		return nil, fmt.Errorf("falha ao buscar usuário: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrCredenciaisInvalidas
	}

	resp, err := s.gerarTokens(usuario.UsuarioID, usuario.Role)
	if err != nil {
		return nil, err
	}
	resp.Usuario = dto.UsuarioResponse{
		ID:    usuario.UsuarioID,
		Nome:  usuario.Nome,
		Email: usuario.Email,
		Role:  usuario.Role,
	}

	s.logger.Info("login realizado",
		zap.String("usuario_id", usuario.UsuarioID),
		zap.String("role", usuario.Role))
	return resp, nil
}

func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(refreshToken)
	if err != nil {
		return nil, ErrRefreshTokenInvalido
	}
	if claims.TokenType != "refresh" {
		return nil, ErrRefreshTokenInvalido
	}

	if s.rdb != nil {
		bloqueado, err := s.rdb.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			s.logger.Warn("falha ao consultar blacklist", zap.Error(err))
		} else if bloqueado {
			return nil, ErrRefreshTokenInvalido
		}
	}

	// o usuário precisa ainda existir; o papel pode ter mudado
	usuario, err := s.repo.Usuario.GetByID(ctx, claims.UsuarioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefreshTokenInvalido
		}
		return nil, fmt.Errorf("falha ao buscar usuário: %w", err)
	}

	resp, err := s.gerarTokens(usuario.UsuarioID, usuario.Role)
	if err != nil {
		return nil, err
	}
	resp.Usuario = dto.UsuarioResponse{
		ID:    usuario.UsuarioID,
		Nome:  usuario.Nome,
		Email: usuario.Email,
		Role:  usuario.Role,
	}
	return resp, nil
}

func (s *authService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if s.rdb == nil {
		return nil
	}
	restante := time.Until(claims.ExpiresAt.Time)
	if err := s.rdb.BlacklistToken(ctx, claims.ID, restante); err != nil {
		s.logger.Warn("falha ao adicionar token à blacklist", zap.Error(err))
		return nil
	}
	s.logger.Info("logout realizado", zap.String("usuario_id", claims.UsuarioID))
	return nil
}

func (s *authService) GetCurrentUser(ctx context.Context, usuarioID string) (*dto.UsuarioResponse, error) {
	usuario, err := s.repo.Usuario.GetByID(ctx, usuarioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUsuarioNaoEncontrado
		}
		return nil, fmt.Errorf("falha ao buscar usuário: %w", err)
	}
	return toUsuarioResponse(usuario), nil
}

func (s *authService) ChangePassword(ctx context.Context, usuarioID string, req *dto.ChangePasswordRequest) error {
	usuario, err := s.repo.Usuario.GetByID(ctx, usuarioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUsuarioNaoEncontrado
		}
		return fmt.Errorf("falha ao buscar usuário: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return ErrSenhaAtualIncorreta
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("falha ao gerar hash de senha: %w", err)
	}

	usuario.PasswordHash = string(hash)
	if err := s.repo.Usuario.Update(ctx, usuario); err != nil {
		return fmt.Errorf("falha ao atualizar senha: %w", err)
	}

	s.logger.Info("senha alterada", zap.String("usuario_id", usuarioID))
	return nil
}

func (s *authService) gerarTokens(usuarioID, role string) (*dto.TokenResponse, error) {
	accessToken, err := s.jwtMgr.GenerateAccessToken(usuarioID, role)
	if err != nil {
		return nil, fmt.Errorf("falha ao gerar access token: %w", err)
	}
	refreshToken, err := s.jwtMgr.GenerateRefreshToken(usuarioID, role)
	if err != nil {
		return nil, fmt.Errorf("falha ao gerar refresh token: %w", err)
	}
	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.cfg.AccessTokenTTL.Seconds()),
	}, nil
}
