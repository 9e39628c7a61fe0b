package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/model"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/repository"
)

// ── Acesso: variante etiquetada ──────────────────────────────
//
// Resultado da resolução de escopo: ou IRRESTRITO (nenhum filtro deve
// ser aplicado), ou um conjunto explícito de localidades autorizadas.
// Os dois estados são deliberadamente inconfundíveis: lista vazia
// significa "não vê nada", nunca "vê tudo". Confundir os dois é o bug
// de autorização mais grave possível neste sistema — ou esconde todos
// os dados de um administrador, ou expõe todos os dados a um
// supervisor restrito. Todo chamador deve decidir por Irrestrito()
// antes de montar qualquer filtro de localidade.
// ─────────────────────────────────────────────────────────────

// Acesso escopo de localidades resolvido para um usuário
type Acesso struct {
	irrestrito  bool
	localidades []string
}

// AcessoIrrestrito acesso sem filtro (admin, gestor)
func AcessoIrrestrito() Acesso {
	return Acesso{irrestrito: true}
}

// AcessoRestrito acesso limitado ao conjunto dado (possivelmente vazio)
func AcessoRestrito(localidades []string) Acesso {
	copia := make([]string, len(localidades))
	copy(copia, localidades)
	return Acesso{localidades: copia}
}

// Irrestrito indica se nenhum filtro de localidade deve ser aplicado
func (a Acesso) Irrestrito() bool { return a.irrestrito }

// Localidades conjunto autorizado; sem significado quando Irrestrito()
func (a Acesso) Localidades() []string {
	copia := make([]string, len(a.localidades))
	copy(copia, a.localidades)
	return copia
}

// Restringir compõe o filtro escolhido pelo usuário com o escopo:
//   - irrestrito: o filtro do usuário passa inalterado
//   - restrito sem filtro do usuário: consulta com o conjunto autorizado
//   - restrito com filtro do usuário: interseção dos dois conjuntos
//
// consultar=false indica curto-circuito — o resultado efetivo é vazio
// e a loja de dados NÃO deve ser consultada.
func (a Acesso) Restringir(escolhidas []string) (efetivas []string, consultar bool) {
	if a.irrestrito {
		return escolhidas, true
	}
	if len(escolhidas) == 0 {
		if len(a.localidades) == 0 {
			return nil, false
		}
		return a.Localidades(), true
	}
	autorizadas := make(map[string]bool, len(a.localidades))
	for _, l := range a.localidades {
		autorizadas[l] = true
	}
	for _, e := range escolhidas {
		if autorizadas[e] {
			efetivas = append(efetivas, e)
		}
	}
	if len(efetivas) == 0 {
		return nil, false
	}
	return efetivas, true
}

// ── AcessoService ──

// AcessoService resolve o conjunto de localidades que um usuário pode
// ver, percorrendo a hierarquia de supervisão em três níveis
type AcessoService interface {
	// ResolverLocalidades aplica a regra de escopo por papel.
	// Nó de hierarquia ausente para papel que exige um NÃO é erro:
	// é o estado "ainda não provisionado" e resolve para acesso
	// vazio (fail closed), nunca para irrestrito.
	ResolverLocalidades(ctx context.Context, usuarioID, role string) (Acesso, error)
}

type acessoService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAcessoService cria uma instância de AcessoService
func NewAcessoService(repo *repository.Repository, logger *zap.Logger) AcessoService {
	return &acessoService{repo: repo, logger: logger}
}

func (s *acessoService) ResolverLocalidades(ctx context.Context, usuarioID, role string) (Acesso, error) {
	switch role {
	case model.RoleAdmin, model.RoleGestor:
		return AcessoIrrestrito(), nil

	case model.RoleSupervisorGeral:
		return s.resolverGeral(ctx, usuarioID)

	case model.RoleSupervisorArea:
		return s.resolverArea(ctx, usuarioID)

	default:
		// papel desconhecido: nenhum acesso
		return AcessoRestrito(nil), nil
	}
}

// resolverGeral coleta a união deduplicada das localidades de todos os
// supervisores de área subordinados. Três consultas sequenciais — cada
// uma depende das chaves da anterior.
func (s *acessoService) resolverGeral(ctx context.Context, usuarioID string) (Acesso, error) {
	geral, err := s.repo.Hierarquia.GetGeralByUsuario(ctx, usuarioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("supervisor geral sem nó na hierarquia — acesso vazio",
				zap.String("usuario_id", usuarioID))
			return AcessoRestrito(nil), nil
		}
		return Acesso{}, err
	}

	areas, err := s.repo.Hierarquia.ListAreasByGeral(ctx, geral.SupervisorGeralID)
	if err != nil {
		return Acesso{}, err
	}
	if len(areas) == 0 {
		// geral sem áreas subordinadas: vazio, nunca irrestrito
		return AcessoRestrito(nil), nil
	}

	areaIDs := make([]string, 0, len(areas))
	for _, a := range areas {
		areaIDs = append(areaIDs, a.SupervisorAreaID)
	}

	nomes, err := s.repo.Hierarquia.ListLocalidadesByAreas(ctx, areaIDs)
	if err != nil {
		return Acesso{}, err
	}

	// união deduplicada, preservando a ordem de chegada
	vistas := make(map[string]bool, len(nomes))
	unicas := make([]string, 0, len(nomes))
	for _, nome := range nomes {
		if !vistas[nome] {
			vistas[nome] = true
			unicas = append(unicas, nome)
		}
	}

	return AcessoRestrito(unicas), nil
}

func (s *acessoService) resolverArea(ctx context.Context, usuarioID string) (Acesso, error) {
	area, err := s.repo.Hierarquia.GetAreaByUsuario(ctx, usuarioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("supervisor de área sem nó na hierarquia — acesso vazio",
				zap.String("usuario_id", usuarioID))
			return AcessoRestrito(nil), nil
		}
		return Acesso{}, err
	}

	nomes := make([]string, 0, len(area.Localidades))
	for _, l := range area.Localidades {
		nomes = append(nomes, l.Nome)
	}
	return AcessoRestrito(nomes), nil
}
