package domain

import "time"

// AnalysisFilter delimita o período da análise. As datas chegam no formato
// ISO (YYYY-MM-DD) e são convertidas para o formato do Sankhya (DD/MM/YYYY)
// apenas na montagem das expressões de filtro. Um período com início maior
// que o fim não é validado aqui: ele é repassado ao Sankhya e simplesmente
// resulta em coleções vazias.
type AnalysisFilter struct {
	StartDate string `json:"dataInicio"`
	EndDate   string `json:"dataFim"`
}

// OrderSummary é o resumo de um pedido dentro do ranking de clientes.
type OrderSummary struct {
	Number string  `json:"numero"`
	Value  float64 `json:"valor"`
	Date   string  `json:"data"`
}

// ClientRanking é uma agregação derivada, calculada a cada análise e nunca
// persistida no Sankhya: totais de pedidos por cliente com ticket médio.
type ClientRanking struct {
	ClientID      string         `json:"codigo"`
	Name          string         `json:"nome"`
	OrderCount    int            `json:"totalPedidos"`
	TotalValue    float64        `json:"valorTotal"`
	AverageTicket float64        `json:"ticketMedio"`
	Orders        []OrderSummary `json:"pedidos"`
}

// AnalysisData é o resultado composto de uma análise para um par
// (usuário, período). Depois de gravado no cache o valor é imutável:
// um hit devolve o snapshot como está, sem recomputar nada.
type AnalysisData struct {
	Leads        []Record `json:"leads"`
	LeadProducts []Record `json:"produtosLeads"`
	FunnelStages []Record `json:"estagiosFunis"`
	Funnels      []Record `json:"funis"`
	Activities   []Record `json:"atividades"`
	Orders       []Record `json:"pedidos"`
	Products     []Record `json:"produtos"`
	Clients      []Record `json:"clientes"`

	Filter    AnalysisFilter `json:"filtro"`
	Timestamp time.Time      `json:"timestamp"`

	TotalLeads      int     `json:"totalLeads"`
	TotalActivities int     `json:"totalAtividades"`
	TotalOrders     int     `json:"totalPedidos"`
	TotalProducts   int     `json:"totalProdutos"`
	TotalClients    int     `json:"totalClientes"`
	TotalOrderValue float64 `json:"valorTotalPedidos"`

	TopClients []*ClientRanking `json:"maioresClientes"`
}
