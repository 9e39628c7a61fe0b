package service

import (
	"go.uber.org/zap"

	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/config"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/model"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/repository"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/pkg/jwt"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/pkg/redis"
)

// Service ponto de agregação de todos os serviços
type Service struct {
	Auth       AuthService
	Usuario    UsuarioService
	Boletim    BoletimService
	Hierarquia HierarquiaService
	Acesso     AcessoService
	Painel     PainelService
	Export     ExportService
}

// NewService cria a agregação de serviços.
// rdb pode ser nil: a aplicação sobe sem Redis, perdendo apenas a
// blacklist de tokens e o rate limiting.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	acesso := NewAcessoService(repo, logger)
	consolidacao := NewConsolidacaoService(model.CategoriasDeposito)
	painel := NewPainelService(repo, acesso, consolidacao, logger)

	return &Service{
		Auth:       NewAuthService(repo, jwtMgr, rdb, &cfg.Auth, logger),
		Usuario:    NewUsuarioService(repo, logger),
		Boletim:    NewBoletimService(repo, acesso, &cfg.Campo, logger),
		Hierarquia: NewHierarquiaService(repo, logger),
		Acesso:     acesso,
		Painel:     painel,
		Export:     NewExportService(painel, logger),
	}
}
