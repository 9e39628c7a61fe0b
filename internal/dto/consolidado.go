package dto

// ── DTO do painel de consolidação ──

// Consolidado totais gerais sobre a coleção filtrada de boletins
type Consolidado struct {
	Imoveis     int `json:"imoveis"` // soma derivada dos cinco tipos
	Informados  int `json:"informados"`
	Fechados    int `json:"fechados"`
	Recusados   int `json:"recusados"`
	Recuperados int `json:"recuperados"`
	Amostras    int `json:"amostras"`

	Inspecionados       int `json:"inspecionados"`
	TratamentoFocal     int `json:"tratamento_focal"`
	TratamentoPerifocal int `json:"tratamento_perifocal"`

	DepositosPorCategoria map[string]int `json:"depositos_por_categoria"`
	DepositosTotal        int            `json:"depositos_total"`
	DepositosEliminados   int            `json:"depositos_eliminados"`

	LarvicidaGramas    float64 `json:"larvicida_gramas"`
	LarvicidaDepositos int     `json:"larvicida_depositos"`

	QtdAgentes      int `json:"qtd_agentes"`
	DiasTrabalhados int `json:"dias_trabalhados"`

	// TaxaPendencia = round2((fechados − recuperados) × 100 / informados),
	// sempre recalculada sobre as somas agregadas; 0 quando informados = 0
	TaxaPendencia float64 `json:"taxa_pendencia"`
	Boletins      int     `json:"boletins"`
}

// LinhaSemana uma linha da série por semana epidemiológica
type LinhaSemana struct {
	Semana              string `json:"semana"`        // rótulo "SE NN"
	NumeroSemana        int    `json:"numero_semana"` // valor numérico usado na ordenação
	Imoveis             int    `json:"imoveis"`
	Depositos           int    `json:"depositos"`
	DepositosEliminados int    `json:"depositos_eliminados"`
	QtdAgentes          int    `json:"qtd_agentes"`
	Boletins            int    `json:"boletins"`
}

// LinhaRanking uma linha do ranking de localidades por taxa de pendência
// (ordem crescente — pendência menor ranqueia melhor)
type LinhaRanking struct {
	Posicao             int     `json:"posicao"`
	Localidade          string  `json:"localidade"`
	DepositosEliminados int     `json:"depositos_eliminados"`
	Depositos           int     `json:"depositos"`
	Imoveis             int     `json:"imoveis"`
	QtdAgentes          int     `json:"qtd_agentes"`
	Fechados            int     `json:"fechados"`
	Recuperados         int     `json:"recuperados"`
	Informados          int     `json:"informados"`
	TaxaPendencia       float64 `json:"taxa_pendencia"`
}

// LinhaAgrupada uma linha da tabela analítica agrupada por dimensão
// (localidade, semana ou ciclo)
type LinhaAgrupada struct {
	Chave               string  `json:"chave"`
	Imoveis             int     `json:"imoveis"`
	Fechados            int     `json:"fechados"`
	Recuperados         int     `json:"recuperados"`
	Informados          int     `json:"informados"`
	LarvicidaGramas     float64 `json:"larvicida_gramas"`
	Boletins            int     `json:"boletins"`
	Concluidos          int     `json:"concluidos"`
	TaxaPendencia       float64 `json:"taxa_pendencia"`
	PercentualConcluido int     `json:"percentual_concluido"`
}

// FiltroPainelRequest filtros do painel (mesmo conjunto da listagem de boletins)
type FiltroPainelRequest struct {
	Localidades []string `form:"localidades"`
	Semanas     []string `form:"semanas"`
	Ciclos      []int    `form:"ciclos"`
	Ano         *int     `form:"ano"`
}

// TabelaAgrupadaRequest filtros do painel + dimensão de agrupamento
type TabelaAgrupadaRequest struct {
	FiltroPainelRequest
	AgruparPor string `form:"agrupar_por" binding:"required,oneof=localidade semana ciclo"`
}
