package ordering

import "github.com/avmoura/sankhya-crm-api/internal/domain"

// OrderCreator monta e envia pedidos de venda para o ERP, além de listar os
// pedidos já existentes no período.
type OrderCreator interface {
	CreateOrder(order *domain.SalesOrder) (*domain.SalesOrderReceipt, error)
	ListOrders(filter domain.AnalysisFilter, vendorCode int) ([]domain.Record, error)
}
