package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/dto"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/model"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/service"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/pkg/jwt"
	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AuthService ──

type mockAuthService struct {
	loginResult      *dto.TokenResponse
	loginErr         error
	refreshResult    *dto.TokenResponse
	refreshErr       error
	logoutErr        error
	getCurrentResult *dto.UsuarioResponse
	getCurrentErr    error
	changePassErr    error
}

func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.TokenResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) RefreshToken(_ context.Context, _ string) (*dto.TokenResponse, error) {
	return m.refreshResult, m.refreshErr
}
func (m *mockAuthService) Logout(_ context.Context, _ *jwt.Claims) error {
	return m.logoutErr
}
func (m *mockAuthService) GetCurrentUser(_ context.Context, _ string) (*dto.UsuarioResponse, error) {
	return m.getCurrentResult, m.getCurrentErr
}
func (m *mockAuthService) ChangePassword(_ context.Context, _ string, _ *dto.ChangePasswordRequest) error {
	return m.changePassErr
}

// ── Mock BoletimService ──

type mockBoletimService struct {
	criarResult     *model.Boletim
	criarErr        error
	buscarResult    *model.Boletim
	buscarErr       error
	atualizarResult *model.Boletim
	atualizarErr    error
	excluirErr      error
	listarResult    []model.Boletim
	listarErr       error
}

func (m *mockBoletimService) Criar(_ context.Context, _ string, _ *dto.CriarBoletimRequest) (*model.Boletim, error) {
	return m.criarResult, m.criarErr
}
func (m *mockBoletimService) BuscarPorID(_ context.Context, _, _, _ string) (*model.Boletim, error) {
	return m.buscarResult, m.buscarErr
}
func (m *mockBoletimService) Atualizar(_ context.Context, _, _, _ string, _ *dto.AtualizarBoletimRequest) (*model.Boletim, error) {
	return m.atualizarResult, m.atualizarErr
}
func (m *mockBoletimService) Excluir(_ context.Context, _, _, _ string) error {
	return m.excluirErr
}
func (m *mockBoletimService) Listar(_ context.Context, _, _ string, _ *dto.FiltroBoletimRequest) ([]model.Boletim, error) {
	return m.listarResult, m.listarErr
}

// ── Mock PainelService ──

type mockPainelService struct {
	consolidadoResult *dto.Consolidado
	consolidadoErr    error
	serieResult       []dto.LinhaSemana
	serieErr          error
	rankingResult     []dto.LinhaRanking
	rankingErr        error
	tabelaResult      []dto.LinhaAgrupada
	tabelaErr         error
}

func (m *mockPainelService) Consolidado(_ context.Context, _, _ string, _ *dto.FiltroPainelRequest) (*dto.Consolidado, error) {
	return m.consolidadoResult, m.consolidadoErr
}
func (m *mockPainelService) SeriePorSemana(_ context.Context, _, _ string, _ *dto.FiltroPainelRequest) ([]dto.LinhaSemana, error) {
	return m.serieResult, m.serieErr
}
func (m *mockPainelService) RankingLocalidades(_ context.Context, _, _ string, _ *dto.FiltroPainelRequest) ([]dto.LinhaRanking, error) {
	return m.rankingResult, m.rankingErr
}
func (m *mockPainelService) TabelaAgrupada(_ context.Context, _, _ string, _ *dto.TabelaAgrupadaRequest) ([]dto.LinhaAgrupada, error) {
	return m.tabelaResult, m.tabelaErr
}

// ── Mock ExportService ──

type mockExportService struct {
	buf  *bytes.Buffer
	nome string
	err  error
}

func (m *mockExportService) ExportarTabela(_ context.Context, _, _ string, _ *dto.TabelaAgrupadaRequest) (*bytes.Buffer, string, error) {
	return m.buf, m.nome, m.err
}

// ═══════════════════════════════════════════════════════════
// Auxiliares
// ═══════════════════════════════════════════════════════════

func setAuth(c *gin.Context) {
	c.Set("usuario_id", "usr-teste")
	c.Set("role", model.RoleAdmin)
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("resposta deveria ser JSON válido: %v", err)
	}
	return resp
}

// ═══════════════════════════════════════════════════════════
// AuthHandler
// ═══════════════════════════════════════════════════════════

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := &mockAuthService{
		loginResult: &dto.TokenResponse{
			AccessToken:  "acc",
			RefreshToken: "ref",
			Usuario:      dto.UsuarioResponse{ID: "usr-1", Role: model.RoleGestor},
		},
	}
	h := NewAuthHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(dto.LoginRequest{Email: "g@endemias.gov.br", Password: "senha123"})
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Login(c)

	if w.Code != http.StatusOK {
		t.Errorf("status esperado 200, obtido %d", w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Code != 0 {
		t.Errorf("code esperado 0, obtido %d", resp.Code)
	}
}

func TestAuthHandler_Login_CredenciaisInvalidas(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{loginErr: service.ErrCredenciaisInvalidas})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(dto.LoginRequest{Email: "g@endemias.gov.br", Password: "errada"})
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Login(c)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status esperado 401, obtido %d", w.Code)
	}
}

func TestAuthHandler_Login_PayloadInvalido(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader([]byte(`{"email":"nao-e-email"}`)))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Login(c)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status esperado 400, obtido %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// BoletimHandler
// ═══════════════════════════════════════════════════════════

func TestBoletimHandler_BuscarPorID_ForaDoEscopo(t *testing.T) {
	h := NewBoletimHandler(&mockBoletimService{buscarErr: service.ErrBoletimAcessoNegado})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/boletins/bol-1", nil)
	c.Params = gin.Params{{Key: "id", Value: "bol-1"}}
	setAuth(c)

	h.BuscarPorID(c)

	if w.Code != http.StatusForbidden {
		t.Errorf("status esperado 403, obtido %d", w.Code)
	}
}

func TestBoletimHandler_BuscarPorID_NaoEncontrado(t *testing.T) {
	h := NewBoletimHandler(&mockBoletimService{buscarErr: service.ErrBoletimNaoEncontrado})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/boletins/bol-x", nil)
	c.Params = gin.Params{{Key: "id", Value: "bol-x"}}
	setAuth(c)

	h.BuscarPorID(c)

	if w.Code != http.StatusNotFound {
		t.Errorf("status esperado 404, obtido %d", w.Code)
	}
}

func TestBoletimHandler_Criar_SemAutenticacao(t *testing.T) {
	h := NewBoletimHandler(&mockBoletimService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/boletins", bytes.NewReader([]byte(`{}`)))

	h.Criar(c)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("sem usuario_id no contexto, status esperado 401, obtido %d", w.Code)
	}
}

func TestBoletimHandler_Criar_SemanaInvalida(t *testing.T) {
	h := NewBoletimHandler(&mockBoletimService{criarErr: service.ErrSemanaInvalida})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	payload := dto.CriarBoletimRequest{
		Semana: "SE 99", Ciclo: 1, Ano: 2025, Localidade: "Centro", Categoria: "bairro",
	}
	body, _ := json.Marshal(payload)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/boletins", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	setAuth(c)

	h.Criar(c)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status esperado 400, obtido %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// PainelHandler
// ═══════════════════════════════════════════════════════════

func TestPainelHandler_Consolidado(t *testing.T) {
	h := NewPainelHandler(&mockPainelService{
		consolidadoResult: &dto.Consolidado{Boletins: 3, Informados: 55, TaxaPendencia: 9.09},
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/painel/consolidado", nil)
	setAuth(c)

	h.Consolidado(c)

	if w.Code != http.StatusOK {
		t.Errorf("status esperado 200, obtido %d", w.Code)
	}
	resp := decodeResponse(t, w)
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("data deveria ser objeto: %v", resp.Data)
	}
	if data["taxa_pendencia"] != 9.09 {
		t.Errorf("taxa_pendencia esperada 9.09, obtida %v", data["taxa_pendencia"])
	}
}

func TestPainelHandler_TabelaAgrupada_DimensaoInvalida(t *testing.T) {
	h := NewPainelHandler(&mockPainelService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/painel/tabela?agrupar_por=mes", nil)
	setAuth(c)

	h.TabelaAgrupada(c)

	if w.Code != http.StatusBadRequest {
		t.Errorf("dimensão fora de localidade|semana|ciclo deveria dar 400, obtido %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler
// ═══════════════════════════════════════════════════════════

func TestExportHandler_ExportarTabela(t *testing.T) {
	h := NewExportHandler(&mockExportService{
		buf:  bytes.NewBufferString("conteudo-xlsx"),
		nome: "consolidado_por_localidade.xlsx",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/export/tabela?agrupar_por=localidade", nil)
	setAuth(c)

	h.ExportarTabela(c)

	if w.Code != http.StatusOK {
		t.Errorf("status esperado 200, obtido %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
		t.Errorf("Content-Type inesperado: %s", ct)
	}
}

func TestExportHandler_ExportarTabela_SemDados(t *testing.T) {
	h := NewExportHandler(&mockExportService{err: service.ErrExportSemDados})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/export/tabela?agrupar_por=ciclo", nil)
	setAuth(c)

	h.ExportarTabela(c)

	if w.Code != http.StatusNotFound {
		t.Errorf("status esperado 404, obtido %d", w.Code)
	}
}
