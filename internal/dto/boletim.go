package dto

import "github.com/Sandrobahia35/divisao-endemias-mobile-sub000/internal/model"

// ── DTO do módulo de boletins ──

// CriarBoletimRequest payload completo de um boletim de campo.
// Todos os contadores são inteiros não negativos; apenas a quantidade
// de larvicida admite decimais. Campos ausentes valem zero.
type CriarBoletimRequest struct {
	Semana     string `json:"semana"     binding:"required"`
	Ciclo      int    `json:"ciclo"      binding:"required,gte=1"`
	Ano        int    `json:"ano"        binding:"required,gte=2000"`
	Localidade string `json:"localidade" binding:"required,min=2,max=120"`
	Categoria  string `json:"categoria"  binding:"required,oneof=bairro povoado"`
	Concluido  bool   `json:"concluido"`

	Residencias        int `json:"residencias"         binding:"gte=0"`
	Comercios          int `json:"comercios"           binding:"gte=0"`
	TerrenosBaldios    int `json:"terrenos_baldios"    binding:"gte=0"`
	PontosEstrategicos int `json:"pontos_estrategicos" binding:"gte=0"`
	OutrosImoveis      int `json:"outros_imoveis"      binding:"gte=0"`

	Informados  int `json:"informados"  binding:"gte=0"`
	Fechados    int `json:"fechados"    binding:"gte=0"`
	Recusados   int `json:"recusados"   binding:"gte=0"`
	Recuperados int `json:"recuperados" binding:"gte=0"`
	Amostras    int `json:"amostras"    binding:"gte=0"`

	Inspecionados       int `json:"inspecionados"        binding:"gte=0"`
	TratamentoFocal     int `json:"tratamento_focal"     binding:"gte=0"`
	TratamentoPerifocal int `json:"tratamento_perifocal" binding:"gte=0"`

	DepositosA1         int `json:"depositos_a1"         binding:"gte=0"`
	DepositosA2         int `json:"depositos_a2"         binding:"gte=0"`
	DepositosB          int `json:"depositos_b"          binding:"gte=0"`
	DepositosC          int `json:"depositos_c"          binding:"gte=0"`
	DepositosD1         int `json:"depositos_d1"         binding:"gte=0"`
	DepositosD2         int `json:"depositos_d2"         binding:"gte=0"`
	DepositosE          int `json:"depositos_e"          binding:"gte=0"`
	DepositosEliminados int `json:"depositos_eliminados" binding:"gte=0"`

	Larvicida1Tipo      string  `json:"larvicida1_tipo"      binding:"omitempty,max=60"`
	Larvicida1Gramas    float64 `json:"larvicida1_gramas"    binding:"gte=0"`
	Larvicida1Depositos int     `json:"larvicida1_depositos" binding:"gte=0"`
	Larvicida2Tipo      string  `json:"larvicida2_tipo"      binding:"omitempty,max=60"`
	Larvicida2Gramas    float64 `json:"larvicida2_gramas"    binding:"gte=0"`
	Larvicida2Depositos int     `json:"larvicida2_depositos" binding:"gte=0"`

	AdulticidaTipo   string `json:"adulticida_tipo"   binding:"omitempty,max=60"`
	AdulticidaCargas int    `json:"adulticida_cargas" binding:"gte=0"`

	QtdAgentes            int    `json:"qtd_agentes"            binding:"gte=0"`
	QtdSupervisores       int    `json:"qtd_supervisores"       binding:"gte=0"`
	DiasTrabalhados       int    `json:"dias_trabalhados"       binding:"gte=0"`
	SupervisorResponsavel string `json:"supervisor_responsavel" binding:"omitempty,max=100"`
	QtdVeiculos           int    `json:"qtd_veiculos"           binding:"gte=0"`
}

// AtualizarBoletimRequest a edição substitui o payload inteiro,
// preservando apenas a identidade do boletim
type AtualizarBoletimRequest = CriarBoletimRequest

// ToModel converte o payload em modelo de persistência
func (r *CriarBoletimRequest) ToModel() model.Boletim {
	return model.Boletim{
		Semana:     r.Semana,
		Ciclo:      r.Ciclo,
		Ano:        r.Ano,
		Localidade: r.Localidade,
		Categoria:  r.Categoria,
		Concluido:  r.Concluido,

		Residencias:        r.Residencias,
		Comercios:          r.Comercios,
		TerrenosBaldios:    r.TerrenosBaldios,
		PontosEstrategicos: r.PontosEstrategicos,
		OutrosImoveis:      r.OutrosImoveis,

		Informados:  r.Informados,
		Fechados:    r.Fechados,
		Recusados:   r.Recusados,
		Recuperados: r.Recuperados,
		Amostras:    r.Amostras,

		Inspecionados:       r.Inspecionados,
		TratamentoFocal:     r.TratamentoFocal,
		TratamentoPerifocal: r.TratamentoPerifocal,

		DepositosA1:         r.DepositosA1,
		DepositosA2:         r.DepositosA2,
		DepositosB:          r.DepositosB,
		DepositosC:          r.DepositosC,
		DepositosD1:         r.DepositosD1,
		DepositosD2:         r.DepositosD2,
		DepositosE:          r.DepositosE,
		DepositosEliminados: r.DepositosEliminados,

		Larvicida1Tipo:      r.Larvicida1Tipo,
		Larvicida1Gramas:    r.Larvicida1Gramas,
		Larvicida1Depositos: r.Larvicida1Depositos,
		Larvicida2Tipo:      r.Larvicida2Tipo,
		Larvicida2Gramas:    r.Larvicida2Gramas,
		Larvicida2Depositos: r.Larvicida2Depositos,

		AdulticidaTipo:   r.AdulticidaTipo,
		AdulticidaCargas: r.AdulticidaCargas,

		QtdAgentes:            r.QtdAgentes,
		QtdSupervisores:       r.QtdSupervisores,
		DiasTrabalhados:       r.DiasTrabalhados,
		SupervisorResponsavel: r.SupervisorResponsavel,
		QtdVeiculos:           r.QtdVeiculos,
	}
}

// FiltroBoletimRequest filtros escolhidos pelo usuário na listagem.
// O escopo de acesso é aplicado por cima destes filtros, nunca o contrário.
type FiltroBoletimRequest struct {
	Localidades []string `form:"localidades"`
	Semanas     []string `form:"semanas"`
	Ciclos      []int    `form:"ciclos"`
	Ano         *int     `form:"ano"`
}
