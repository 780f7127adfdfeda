package domain

import "encoding/json"

// OrderRequest é o corpo aceito pelo endpoint /v1/vendas/pedidos.
type OrderRequest struct {
	Client      OrderClient `json:"cliente"`
	NoteModel   int         `json:"notaModelo"`
	Date        string      `json:"data"`
	Hour        string      `json:"hora"`
	Salesperson int         `json:"codigoVendedor"`
	ClientCode  int         `json:"codigoCliente"`
	TotalValue  float64     `json:"valorTotal"`
	SaleType    string      `json:"CODTIPVENDA"`
	Items       []OrderItem `json:"itens"`
}

type OrderClient struct {
	Type    string `json:"tipo"`
	TaxID   string `json:"cnpjCpf"`
	StateID string `json:"ieRg"`
	Name    string `json:"razao"`
}

type OrderItem struct {
	Sequence    int     `json:"sequencia"`
	ProductCode int     `json:"codigoProduto"`
	Quantity    float64 `json:"quantidade"`
	Control     string  `json:"controle"`
	Warehouse   int     `json:"codigoLocalEstoque"`
	Unit        string  `json:"unidade"`
	UnitValue   float64 `json:"valorUnitario"`
	BarQuantity float64 `json:"AD_QTDBARRA"`
}

// OrderResponse é o envelope de retorno do endpoint de pedidos. O número do
// pedido criado pode vir sob várias chaves diferentes dependendo da versão
// do gateway, por isso os candidatos ficam todos mapeados.
type OrderResponse struct {
	StatusCode    int             `json:"statusCode"`
	StatusMessage string          `json:"statusMessage"`
	Error         *OrderError     `json:"error"`
	Retorno       *OrderReference `json:"retorno"`
	Data          *OrderReference `json:"data"`
	OrderReference
}

type OrderError struct {
	Details string `json:"details"`
	Message string `json:"message"`
}

// OrderReference reúne as chaves sob as quais o número do pedido já foi
// observado nas respostas do gateway.
type OrderReference struct {
	CodigoPedido json.Number `json:"codigoPedido"`
	Codigo       json.Number `json:"codigo"`
	NunotaLower  json.Number `json:"nunota"`
	NunotaUpper  json.Number `json:"NUNOTA"`
	ID           json.Number `json:"id"`
}

// OrderID devolve o primeiro candidato não vazio.
func (r *OrderReference) OrderID() string {
	for _, candidate := range []json.Number{r.CodigoPedido, r.Codigo, r.NunotaLower, r.NunotaUpper, r.ID} {
		if candidate.String() != "" {
			return candidate.String()
		}
	}
	return ""
}

// ErrorMessage extrai a melhor mensagem de erro disponível no envelope.
func (r *OrderResponse) ErrorMessage() string {
	if r.Error != nil {
		if r.Error.Details != "" {
			return r.Error.Details
		}
		if r.Error.Message != "" {
			return r.Error.Message
		}
	}
	if r.StatusMessage != "" {
		return r.StatusMessage
	}
	return "Erro ao criar pedido"
}

// ResolveOrderID procura o número do pedido em todos os níveis conhecidos
// da resposta: retorno.*, data.* e as chaves na raiz.
func (r *OrderResponse) ResolveOrderID() string {
	if r.Retorno != nil {
		if id := r.Retorno.OrderID(); id != "" {
			return id
		}
	}
	if id := r.OrderReference.OrderID(); id != "" {
		return id
	}
	if r.Data != nil {
		if id := r.Data.OrderID(); id != "" {
			return id
		}
	}
	return ""
}
