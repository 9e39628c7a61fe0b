package model

// Hierarquia de supervisão em três níveis, usada exclusivamente para
// escopo de acesso: Supervisor Geral → Supervisor de Área → Localidade.
// Localidades são strings simples; a mesma localidade pode, por
// convenção, aparecer sob no máximo um supervisor de área — o modelo
// não impõe exclusividade.

// SupervisorGeral nó de topo da hierarquia — corresponde a supervisores_gerais
type SupervisorGeral struct {
	SupervisorGeralID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"supervisor_geral_id"`
	UsuarioID         string `gorm:"type:uuid;not null;index"                       json:"usuario_id"`
	Nome              string `gorm:"type:varchar(100);not null"                     json:"nome"`
	BaseModel

	Areas []SupervisorArea `gorm:"foreignKey:SupervisorGeralID;references:SupervisorGeralID" json:"areas,omitempty"`
}

// TableName define o nome da tabela
func (SupervisorGeral) TableName() string { return "supervisores_gerais" }

// SupervisorArea nó intermediário — corresponde a supervisores_area
type SupervisorArea struct {
	SupervisorAreaID  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"supervisor_area_id"`
	SupervisorGeralID string `gorm:"type:uuid;not null;index"                       json:"supervisor_geral_id"`
	UsuarioID         string `gorm:"type:uuid;not null;index"                       json:"usuario_id"`
	Nome              string `gorm:"type:varchar(100);not null"                     json:"nome"`
	BaseModel

	Localidades []LocalidadeAtribuida `gorm:"foreignKey:SupervisorAreaID;references:SupervisorAreaID" json:"localidades,omitempty"`
}

// TableName define o nome da tabela
func (SupervisorArea) TableName() string { return "supervisores_area" }

// LocalidadeAtribuida atribuição de localidade a um supervisor de área
// — corresponde a localidades_atribuidas
type LocalidadeAtribuida struct {
	LocalidadeID     string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"localidade_id"`
	SupervisorAreaID string `gorm:"type:uuid;not null;index"                       json:"supervisor_area_id"`
	Nome             string `gorm:"type:varchar(120);not null"                     json:"nome"`
	BaseModel
}

// TableName define o nome da tabela
func (LocalidadeAtribuida) TableName() string { return "localidades_atribuidas" }
