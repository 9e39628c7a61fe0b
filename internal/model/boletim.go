package model

// CategoriasDeposito categorias fixas de depósitos inspecionados,
// na ordem em que aparecem no boletim de campo.
// A lista é passada explicitamente ao motor de consolidação para que
// os testes possam substituí-la por tabelas menores.
var CategoriasDeposito = []string{"A1", "A2", "B", "C", "D1", "D2", "E"}

// Categorias espaciais de localidade
const (
	CategoriaBairro  = "bairro"
	CategoriaPovoado = "povoado"
)

// Boletim tabela de boletins de campo — corresponde a boletins
//
// Um boletim é o registro estruturado de um dia/semana de trabalho de
// campo em uma localidade: imóveis visitados por tipo, desfechos de
// visita, depósitos inspecionados por categoria, aplicações de
// larvicida/adulticida e efetivo empregado.
type Boletim struct {
	BoletimID  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"boletim_id"`
	Semana     string `gorm:"type:varchar(10);not null"                      json:"semana"` // "SE NN", 1-52
	Ciclo      int    `gorm:"not null"                                       json:"ciclo"`
	Ano        int    `gorm:"not null"                                       json:"ano"`
	Localidade string `gorm:"type:varchar(120);not null;index"               json:"localidade"`
	Categoria  string `gorm:"type:varchar(20);not null;default:'bairro'"     json:"categoria"` // bairro | povoado
	Concluido  bool   `gorm:"not null;default:false"                         json:"concluido"`

	// Imóveis visitados por tipo
	Residencias        int `gorm:"not null;default:0" json:"residencias"`
	Comercios          int `gorm:"not null;default:0" json:"comercios"`
	TerrenosBaldios    int `gorm:"not null;default:0" json:"terrenos_baldios"`
	PontosEstrategicos int `gorm:"not null;default:0" json:"pontos_estrategicos"`
	OutrosImoveis      int `gorm:"column:outros_imoveis;not null;default:0" json:"outros_imoveis"`

	// Desfechos de visita
	Informados  int `gorm:"not null;default:0" json:"informados"`
	Fechados    int `gorm:"not null;default:0" json:"fechados"`
	Recusados   int `gorm:"not null;default:0" json:"recusados"`
	Recuperados int `gorm:"not null;default:0" json:"recuperados"`
	Amostras    int `gorm:"not null;default:0" json:"amostras"`

	// Tratamentos realizados
	Inspecionados       int `gorm:"not null;default:0" json:"inspecionados"`
	TratamentoFocal     int `gorm:"not null;default:0" json:"tratamento_focal"`
	TratamentoPerifocal int `gorm:"not null;default:0" json:"tratamento_perifocal"`

	// Depósitos inspecionados por categoria
	DepositosA1         int `gorm:"column:depositos_a1;not null;default:0" json:"depositos_a1"`
	DepositosA2         int `gorm:"column:depositos_a2;not null;default:0" json:"depositos_a2"`
	DepositosB          int `gorm:"column:depositos_b;not null;default:0"  json:"depositos_b"`
	DepositosC          int `gorm:"column:depositos_c;not null;default:0"  json:"depositos_c"`
	DepositosD1         int `gorm:"column:depositos_d1;not null;default:0" json:"depositos_d1"`
	DepositosD2         int `gorm:"column:depositos_d2;not null;default:0" json:"depositos_d2"`
	DepositosE          int `gorm:"column:depositos_e;not null;default:0"  json:"depositos_e"`
	DepositosEliminados int `gorm:"not null;default:0"                     json:"depositos_eliminados"`

	// Larvicida — até duas aplicações por boletim
	Larvicida1Tipo      string  `gorm:"column:larvicida1_tipo;type:varchar(60)"           json:"larvicida1_tipo,omitempty"`
	Larvicida1Gramas    float64 `gorm:"column:larvicida1_gramas;type:numeric(10,2);not null;default:0" json:"larvicida1_gramas"`
	Larvicida1Depositos int     `gorm:"column:larvicida1_depositos;not null;default:0"    json:"larvicida1_depositos"`
	Larvicida2Tipo      string  `gorm:"column:larvicida2_tipo;type:varchar(60)"           json:"larvicida2_tipo,omitempty"`
	Larvicida2Gramas    float64 `gorm:"column:larvicida2_gramas;type:numeric(10,2);not null;default:0" json:"larvicida2_gramas"`
	Larvicida2Depositos int     `gorm:"column:larvicida2_depositos;not null;default:0"    json:"larvicida2_depositos"`

	// Adulticida — uma aplicação por boletim
	AdulticidaTipo   string `gorm:"type:varchar(60)"   json:"adulticida_tipo,omitempty"`
	AdulticidaCargas int    `gorm:"not null;default:0" json:"adulticida_cargas"`

	// Efetivo empregado
	QtdAgentes            int    `gorm:"not null;default:0" json:"qtd_agentes"`
	QtdSupervisores       int    `gorm:"not null;default:0" json:"qtd_supervisores"`
	DiasTrabalhados       int    `gorm:"not null;default:0" json:"dias_trabalhados"`
	SupervisorResponsavel string `gorm:"type:varchar(100)"  json:"supervisor_responsavel,omitempty"`
	QtdVeiculos           int    `gorm:"not null;default:0" json:"qtd_veiculos"`

	CriadoPor *string `gorm:"type:uuid" json:"criado_por,omitempty"`
	BaseModel
}

// TableName define o nome da tabela
func (Boletim) TableName() string { return "boletins" }

// TotalImoveis soma derivada dos cinco tipos de imóvel.
// É este valor — e não um campo armazenado — que a consolidação usa
// como "imóveis trabalhados".
func (b *Boletim) TotalImoveis() int {
	return b.Residencias + b.Comercios + b.TerrenosBaldios + b.PontosEstrategicos + b.OutrosImoveis
}

// DepositosPorCategoria contagem de depósitos indexada pela categoria fixa
func (b *Boletim) DepositosPorCategoria() map[string]int {
	return map[string]int{
		"A1": b.DepositosA1,
		"A2": b.DepositosA2,
		"B":  b.DepositosB,
		"C":  b.DepositosC,
		"D1": b.DepositosD1,
		"D2": b.DepositosD2,
		"E":  b.DepositosE,
	}
}

// TotalDepositos soma das sete categorias de depósito
func (b *Boletim) TotalDepositos() int {
	return b.DepositosA1 + b.DepositosA2 + b.DepositosB + b.DepositosC +
		b.DepositosD1 + b.DepositosD2 + b.DepositosE
}
