package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/model"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/repository"
)

// ── Mock UsuarioRepository ──

type mockUsuarioRepo struct {
	usuarios map[string]*model.Usuario
}

func newMockUsuarioRepo() *mockUsuarioRepo {
	return &mockUsuarioRepo{usuarios: make(map[string]*model.Usuario)}
}

func (m *mockUsuarioRepo) Create(_ context.Context, usuario *model.Usuario) error {
	if usuario.UsuarioID == "" {
		usuario.UsuarioID = fmt.Sprintf("usr-%03d", len(m.usuarios)+1)
	}
	m.usuarios[usuario.UsuarioID] = usuario
	return nil
}

func (m *mockUsuarioRepo) GetByID(_ context.Context, id string) (*model.Usuario, error) {
	if u, ok := m.usuarios[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUsuarioRepo) GetByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range m.usuarios {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUsuarioRepo) Update(_ context.Context, usuario *model.Usuario) error {
	m.usuarios[usuario.UsuarioID] = usuario
	return nil
}

func (m *mockUsuarioRepo) Delete(_ context.Context, id string) error {
	delete(m.usuarios, id)
	return nil
}

func (m *mockUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	var result []model.Usuario
	for _, u := range m.usuarios {
		result = append(result, *u)
	}
	return result, nil
}

// ── Mock BoletimRepository ──

// mockBoletimRepo guarda os boletins na ordem de inserção e conta as
// chamadas de List, o que permite verificar o curto-circuito do painel
// (escopo vazio não deve consultar a loja).
type mockBoletimRepo struct {
	boletins  []model.Boletim
	listCalls int
}

func newMockBoletimRepo() *mockBoletimRepo {
	return &mockBoletimRepo{}
}

func (m *mockBoletimRepo) Create(_ context.Context, boletim *model.Boletim) error {
	if boletim.BoletimID == "" {
		boletim.BoletimID = fmt.Sprintf("bol-%03d", len(m.boletins)+1)
	}
	m.boletins = append(m.boletins, *boletim)
	return nil
}

func (m *mockBoletimRepo) GetByID(_ context.Context, id string) (*model.Boletim, error) {
	for i := range m.boletins {
		if m.boletins[i].BoletimID == id {
			b := m.boletins[i]
			return &b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBoletimRepo) Update(_ context.Context, boletim *model.Boletim) error {
	for i := range m.boletins {
		if m.boletins[i].BoletimID == boletim.BoletimID {
			m.boletins[i] = *boletim
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockBoletimRepo) Delete(_ context.Context, id string) error {
	for i := range m.boletins {
		if m.boletins[i].BoletimID == id {
			m.boletins = append(m.boletins[:i], m.boletins[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockBoletimRepo) List(_ context.Context, filtro repository.BoletimFiltro) ([]model.Boletim, error) {
	m.listCalls++

	contem := func(lista []string, v string) bool {
		for _, x := range lista {
			if x == v {
				return true
			}
		}
		return false
	}
	contemInt := func(lista []int, v int) bool {
		for _, x := range lista {
			if x == v {
				return true
			}
		}
		return false
	}

	var result []model.Boletim
	for _, b := range m.boletins {
		if len(filtro.Localidades) > 0 && !contem(filtro.Localidades, b.Localidade) {
			continue
		}
		if len(filtro.Semanas) > 0 && !contem(filtro.Semanas, b.Semana) {
			continue
		}
		if len(filtro.Ciclos) > 0 && !contemInt(filtro.Ciclos, b.Ciclo) {
			continue
		}
		if filtro.Ano != nil && b.Ano != *filtro.Ano {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

// ── Mock HierarquiaRepository ──

type mockHierarquiaRepo struct {
	gerais map[string]*model.SupervisorGeral
	areas  map[string]*model.SupervisorArea
}

func newMockHierarquiaRepo() *mockHierarquiaRepo {
	return &mockHierarquiaRepo{
		gerais: make(map[string]*model.SupervisorGeral),
		areas:  make(map[string]*model.SupervisorArea),
	}
}

func (m *mockHierarquiaRepo) CreateGeral(_ context.Context, geral *model.SupervisorGeral) error {
	if geral.SupervisorGeralID == "" {
		geral.SupervisorGeralID = fmt.Sprintf("sg-%03d", len(m.gerais)+1)
	}
	m.gerais[geral.SupervisorGeralID] = geral
	return nil
}

func (m *mockHierarquiaRepo) DeleteGeral(_ context.Context, id string) error {
	delete(m.gerais, id)
	for aid, a := range m.areas {
		if a.SupervisorGeralID == id {
			delete(m.areas, aid)
		}
	}
	return nil
}

func (m *mockHierarquiaRepo) GetGeralByID(_ context.Context, id string) (*model.SupervisorGeral, error) {
	if g, ok := m.gerais[id]; ok {
		return g, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockHierarquiaRepo) GetGeralByUsuario(_ context.Context, usuarioID string) (*model.SupervisorGeral, error) {
	for _, g := range m.gerais {
		if g.UsuarioID == usuarioID {
			return g, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockHierarquiaRepo) ListGerais(_ context.Context) ([]model.SupervisorGeral, error) {
	var result []model.SupervisorGeral
	for _, g := range m.gerais {
		copia := *g
		for _, a := range m.areas {
			if a.SupervisorGeralID == g.SupervisorGeralID {
				copia.Areas = append(copia.Areas, *a)
			}
		}
		result = append(result, copia)
	}
	return result, nil
}

func (m *mockHierarquiaRepo) CreateArea(_ context.Context, area *model.SupervisorArea) error {
	if area.SupervisorAreaID == "" {
		area.SupervisorAreaID = fmt.Sprintf("sa-%03d", len(m.areas)+1)
	}
	m.areas[area.SupervisorAreaID] = area
	return nil
}

func (m *mockHierarquiaRepo) DeleteArea(_ context.Context, id string) error {
	delete(m.areas, id)
	return nil
}

func (m *mockHierarquiaRepo) GetAreaByID(_ context.Context, id string) (*model.SupervisorArea, error) {
	if a, ok := m.areas[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockHierarquiaRepo) GetAreaByUsuario(_ context.Context, usuarioID string) (*model.SupervisorArea, error) {
	for _, a := range m.areas {
		if a.UsuarioID == usuarioID {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockHierarquiaRepo) ListAreasByGeral(_ context.Context, geralID string) ([]model.SupervisorArea, error) {
	var result []model.SupervisorArea
	for _, a := range m.areas {
		if a.SupervisorGeralID == geralID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockHierarquiaRepo) ListLocalidadesByAreas(_ context.Context, areaIDs []string) ([]string, error) {
	var nomes []string
	for _, id := range areaIDs {
		if a, ok := m.areas[id]; ok {
			for _, l := range a.Localidades {
				nomes = append(nomes, l.Nome)
			}
		}
	}
	return nomes, nil
}

func (m *mockHierarquiaRepo) ReplaceLocalidades(_ context.Context, areaID string, nomes []string) error {
	a, ok := m.areas[areaID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.Localidades = nil
	for _, nome := range nomes {
		a.Localidades = append(a.Localidades, model.LocalidadeAtribuida{
			SupervisorAreaID: areaID,
			Nome:             nome,
		})
	}
	return nil
}
