package dto

// ── DTO do módulo de usuários ──

// CriarUsuarioRequest criação de usuário (apenas admin)
type CriarUsuarioRequest struct {
	Nome     string `json:"nome"     binding:"required,min=2,max=100"`
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"     binding:"required,oneof=admin gestor supervisor_geral supervisor_area agente"`
}

// AtualizarUsuarioRequest atualização parcial de usuário
type AtualizarUsuarioRequest struct {
	Nome  *string `json:"nome"  binding:"omitempty,min=2,max=100"`
	Email *string `json:"email" binding:"omitempty,email"`
	Role  *string `json:"role"  binding:"omitempty,oneof=admin gestor supervisor_geral supervisor_area agente"`
}

// UsuarioResponse dados públicos de um usuário
type UsuarioResponse struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
