package model

// Papéis reconhecidos pelo resolvedor de acesso.
// Qualquer outro valor resolve para acesso vazio.
const (
	RoleAdmin           = "admin"
	RoleGestor          = "gestor"
	RoleSupervisorGeral = "supervisor_geral"
	RoleSupervisorArea  = "supervisor_area"
)

// Usuario tabela de usuários — corresponde a usuarios
type Usuario struct {
	UsuarioID    string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"usuario_id"`
	Nome         string `gorm:"type:varchar(100);not null"                     json:"nome"`
	Email        string `gorm:"type:varchar(255);not null;unique"              json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:'agente'"     json:"role"`
	BaseModel
}

// TableName define o nome da tabela
func (Usuario) TableName() string { return "usuarios" }
