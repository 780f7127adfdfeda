package domain

// SalesOrderItem é um item do pedido de venda enviado ao Sankhya.
type SalesOrderItem struct {
	ProductID     string  `json:"CODPROD"`
	Quantity      float64 `json:"QTDNEG"`
	UnitValue     float64 `json:"VLRUNIT"`
	DiscountPerc  float64 `json:"PERCDESC"`
	WarehouseID   string  `json:"CODLOCALORIG"`
	Control       string  `json:"CONTROLE"`
	Unit          string  `json:"CODVOL"`
	BarQuantity   float64 `json:"AD_QTDBARRA"`
}

// SalesOrder é o cabeçalho do pedido de venda com os itens. A data de
// negociação chega em ISO (YYYY-MM-DD) e é convertida para DD/MM/YYYY na
// montagem do payload.
type SalesOrder struct {
	ClientID        string           `json:"CODPARC"`
	SalespersonID   string           `json:"CODVEND"`
	OperationTypeID string           `json:"CODTIPOPER"`
	SaleTypeID      string           `json:"CODTIPVENDA"`
	NegotiationDate string           `json:"DTNEG"`
	FreightValue    float64          `json:"VLRFRETE"`
	OtherValue      float64          `json:"VLROUTROS"`
	TotalDiscount   float64          `json:"VLRDESCTOT"`
	ClientType      string           `json:"TIPO_CLIENTE"`
	ClientTaxID     string           `json:"CPF_CNPJ"`
	ClientStateID   string           `json:"IE_RG"`
	ClientLegalName string           `json:"RAZAO_SOCIAL"`
	Items           []SalesOrderItem `json:"itens"`
}

// SalesOrderReceipt é o resultado da criação de um pedido. OrderID fica
// vazio quando o Sankhya aceitou o pedido mas não devolveu o número em
// nenhuma das chaves conhecidas da resposta.
type SalesOrderReceipt struct {
	OrderID string `json:"nunota"`
	Message string `json:"message"`
}
