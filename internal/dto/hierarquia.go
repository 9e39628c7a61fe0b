package dto

// ── DTO do módulo de hierarquia de supervisão ──

// CriarSupervisorGeralRequest criação de supervisor geral
type CriarSupervisorGeralRequest struct {
	UsuarioID string `json:"usuario_id" binding:"required,uuid"`
	Nome      string `json:"nome"       binding:"required,min=2,max=100"`
}

// CriarSupervisorAreaRequest criação de supervisor de área sob um geral
type CriarSupervisorAreaRequest struct {
	SupervisorGeralID string   `json:"supervisor_geral_id" binding:"required,uuid"`
	UsuarioID         string   `json:"usuario_id"          binding:"required,uuid"`
	Nome              string   `json:"nome"                binding:"required,min=2,max=100"`
	Localidades       []string `json:"localidades"         binding:"omitempty,dive,min=2,max=120"`
}

// AtualizarLocalidadesRequest substitui integralmente as localidades
// atribuídas a um supervisor de área (delete-all-then-insert)
type AtualizarLocalidadesRequest struct {
	Localidades []string `json:"localidades" binding:"required,dive,min=2,max=120"`
}

// SupervisorAreaResponse supervisor de área com suas localidades
type SupervisorAreaResponse struct {
	ID          string   `json:"id"`
	UsuarioID   string   `json:"usuario_id"`
	Nome        string   `json:"nome"`
	Localidades []string `json:"localidades"`
}

// SupervisorGeralResponse supervisor geral com seus supervisores de área
type SupervisorGeralResponse struct {
	ID        string                   `json:"id"`
	UsuarioID string                   `json:"usuario_id"`
	Nome      string                   `json:"nome"`
	Areas     []SupervisorAreaResponse `json:"areas"`
}
