package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/dto"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/model"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/repository"
)

// ── Auxiliares de teste ──

func setupTestUsuarioService() (UsuarioService, *mockUsuarioRepo, *mockHierarquiaRepo) {
	usuarioRepo := newMockUsuarioRepo()
	hierRepo := newMockHierarquiaRepo()
	repo := &repository.Repository{
		Usuario:    usuarioRepo,
		Boletim:    newMockBoletimRepo(),
		Hierarquia: hierRepo,
	}
	svc := NewUsuarioService(repo, zap.NewNop())
	return svc, usuarioRepo, hierRepo
}

// ── Criar ──

func TestUsuarioService_Criar_Success(t *testing.T) {
	svc, usuarioRepo, _ := setupTestUsuarioService()

	result, err := svc.Criar(context.Background(), &dto.CriarUsuarioRequest{
		Nome:     "Maria Souza",
		Email:    "maria@endemias.gov.br",
		Password: "senha123",
		Role:     model.RoleSupervisorArea,
	})
	if err != nil {
		t.Fatalf("Criar deveria ter sucesso: %v", err)
	}
	if result.ID == "" {
		t.Error("usuário criado deveria receber ID")
	}

	// a senha nunca sai em texto puro
	guardado := usuarioRepo.usuarios[result.ID]
	if guardado.PasswordHash == "senha123" || guardado.PasswordHash == "" {
		t.Error("a senha deveria ser armazenada como hash bcrypt")
	}
}

func TestUsuarioService_Criar_EmailDuplicado(t *testing.T) {
	svc, _, _ := setupTestUsuarioService()
	ctx := context.Background()

	req := &dto.CriarUsuarioRequest{
		Nome:     "Maria Souza",
		Email:    "maria@endemias.gov.br",
		Password: "senha123",
		Role:     model.RoleGestor,
	}
	if _, err := svc.Criar(ctx, req); err != nil {
		t.Fatalf("primeiro Criar deveria ter sucesso: %v", err)
	}

	_, err := svc.Criar(ctx, req)
	if !errors.Is(err, ErrEmailJaCadastrado) {
		t.Errorf("esperado ErrEmailJaCadastrado, obtido: %v", err)
	}
}

// ── Atualizar ──

func TestUsuarioService_Atualizar_Parcial(t *testing.T) {
	svc, _, _ := setupTestUsuarioService()
	ctx := context.Background()

	criado, _ := svc.Criar(ctx, &dto.CriarUsuarioRequest{
		Nome:     "Maria Souza",
		Email:    "maria@endemias.gov.br",
		Password: "senha123",
		Role:     model.RoleSupervisorArea,
	})

	novoRole := model.RoleSupervisorGeral
	result, err := svc.Atualizar(ctx, criado.ID, &dto.AtualizarUsuarioRequest{Role: &novoRole})
	if err != nil {
		t.Fatalf("Atualizar deveria ter sucesso: %v", err)
	}
	if result.Role != model.RoleSupervisorGeral {
		t.Errorf("papel esperado supervisor_geral, obtido %s", result.Role)
	}
	// campos não enviados permanecem
	if result.Nome != "Maria Souza" || result.Email != "maria@endemias.gov.br" {
		t.Errorf("campos não enviados deveriam permanecer: %+v", result)
	}
}

func TestUsuarioService_Atualizar_NaoEncontrado(t *testing.T) {
	svc, _, _ := setupTestUsuarioService()

	nome := "Novo Nome"
	_, err := svc.Atualizar(context.Background(), "usr-fantasma", &dto.AtualizarUsuarioRequest{Nome: &nome})
	if !errors.Is(err, ErrUsuarioNaoEncontrado) {
		t.Errorf("esperado ErrUsuarioNaoEncontrado, obtido: %v", err)
	}
}

// ── Excluir ──

func TestUsuarioService_Excluir(t *testing.T) {
	svc, _, _ := setupTestUsuarioService()
	ctx := context.Background()

	criado, _ := svc.Criar(ctx, &dto.CriarUsuarioRequest{
		Nome:     "Maria Souza",
		Email:    "maria@endemias.gov.br",
		Password: "senha123",
		Role:     model.RoleGestor,
	})

	if err := svc.Excluir(ctx, criado.ID); err != nil {
		t.Fatalf("Excluir deveria ter sucesso: %v", err)
	}
	if _, err := svc.BuscarPorID(ctx, criado.ID); !errors.Is(err, ErrUsuarioNaoEncontrado) {
		t.Errorf("usuário excluído não deveria ser encontrado: %v", err)
	}
}

func TestUsuarioService_Excluir_RemoveNoDeHierarquia(t *testing.T) {
	usuarioRepo := newMockUsuarioRepo()
	hierRepo := newMockHierarquiaRepo()
	repo := &repository.Repository{
		Usuario:    usuarioRepo,
		Boletim:    newMockBoletimRepo(),
		Hierarquia: hierRepo,
	}
	svc := NewUsuarioService(repo, zap.NewNop())
	acesso := NewAcessoService(repo, zap.NewNop())
	ctx := context.Background()

	criado, err := svc.Criar(ctx, &dto.CriarUsuarioRequest{
		Nome:     "Maria Souza",
		Email:    "maria@endemias.gov.br",
		Password: "senha123",
		Role:     model.RoleSupervisorGeral,
	})
	if err != nil {
		t.Fatalf("Criar deveria ter sucesso: %v", err)
	}
	geral := &model.SupervisorGeral{UsuarioID: criado.ID, Nome: "Maria Souza"}
	hierRepo.CreateGeral(ctx, geral)
	hierRepo.CreateArea(ctx, areaComLocalidades(geral.SupervisorGeralID, "usr-sub", "Centro", "Norte"))

	if err := svc.Excluir(ctx, criado.ID); err != nil {
		t.Fatalf("Excluir deveria ter sucesso: %v", err)
	}

	// o nó e a subárvore caem junto com a conta
	if _, err := hierRepo.GetGeralByUsuario(ctx, criado.ID); err == nil {
		t.Error("nó de supervisor geral deveria ser removido com o usuário")
	}
	if areas, _ := hierRepo.ListAreasByGeral(ctx, geral.SupervisorGeralID); len(areas) != 0 {
		t.Errorf("áreas subordinadas deveriam cair na cascata, restaram %d", len(areas))
	}

	// um token remanescente do ex-supervisor resolve para escopo vazio
	resultado, err := acesso.ResolverLocalidades(ctx, criado.ID, model.RoleSupervisorGeral)
	if err != nil {
		t.Fatalf("ResolverLocalidades deveria ter sucesso: %v", err)
	}
	if resultado.Irrestrito() || len(resultado.Localidades()) != 0 {
		t.Errorf("escopo do ex-supervisor deveria ser vazio: %+v", resultado.Localidades())
	}
}

func TestUsuarioService_Atualizar_MudancaDePapelRemoveNo(t *testing.T) {
	svc, usuarioRepo, hierRepo := setupTestUsuarioService()
	ctx := context.Background()

	u := &model.Usuario{
		Nome:         "João Lima",
		Email:        "joao@endemias.gov.br",
		PasswordHash: "$2a$10$x",
		Role:         model.RoleSupervisorArea,
	}
	usuarioRepo.Create(ctx, u)
	hierRepo.CreateArea(ctx, areaComLocalidades("sg-001", u.UsuarioID, "Leste"))

	novoRole := model.RoleGestor
	if _, err := svc.Atualizar(ctx, u.UsuarioID, &dto.AtualizarUsuarioRequest{Role: &novoRole}); err != nil {
		t.Fatalf("Atualizar deveria ter sucesso: %v", err)
	}

	// o nó do papel antigo não pode sobreviver à troca
	if _, err := hierRepo.GetAreaByUsuario(ctx, u.UsuarioID); err == nil {
		t.Error("nó de supervisor de área deveria ser removido na troca de papel")
	}
}
