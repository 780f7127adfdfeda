package ordering

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/avmoura/sankhya-crm-api/infrastructure/integrator/sankhya"
	sankhyadomain "github.com/avmoura/sankhya-crm-api/infrastructure/integrator/sankhya/domain"
	"github.com/avmoura/sankhya-crm-api/internal/domain"
	"github.com/avmoura/sankhya-crm-api/pkg/utils"
)

// Defaults aplicados quando o pedido não informa o campo. Os códigos de
// controle e local de estoque são os usados pela operação padrão de venda.
const (
	defaultNoteModel   = 974
	defaultControl     = "007"
	defaultWarehouse   = 700
	defaultUnit        = "UN"
	defaultBarQuantity = 1
)

type Service struct {
	integrator sankhya.Integrator
}

func NewService(integrator sankhya.Integrator) OrderCreator {
	return &Service{integrator: integrator}
}

// CreateOrder valida o pedido, monta o payload do gateway e o envia. O valor
// total é sempre recalculado a partir dos itens; o que o chamador mandar em
// campos de total é ignorado.
func (s *Service) CreateOrder(order *domain.SalesOrder) (*domain.SalesOrderReceipt, error) {
	if order == nil || len(order.Items) == 0 {
		return nil, errors.New("pedido sem itens")
	}

	clientCode, err := strconv.Atoi(order.ClientID)
	if err != nil {
		return nil, errors.Wrap(err, "código de cliente inválido")
	}

	salespersonCode := 0
	if order.SalespersonID != "" {
		salespersonCode, err = strconv.Atoi(order.SalespersonID)
		if err != nil {
			return nil, errors.Wrap(err, "código de vendedor inválido")
		}
	}

	items, itemsTotal, err := buildItems(order.Items)
	if err != nil {
		return nil, err
	}

	total := utils.RoundWithTwoDecimalPlace(
		itemsTotal + order.FreightValue + order.OtherValue - order.TotalDiscount,
	)

	request := &sankhyadomain.OrderRequest{
		Client: sankhyadomain.OrderClient{
			Type:    order.ClientType,
			TaxID:   order.ClientTaxID,
			StateID: order.ClientStateID,
			Name:    order.ClientLegalName,
		},
		NoteModel:   defaultNoteModel,
		Date:        negotiationDate(order.NegotiationDate),
		Hour:        utils.CurrentHourMinute(),
		Salesperson: salespersonCode,
		ClientCode:  clientCode,
		TotalValue:  total,
		SaleType:    order.SaleTypeID,
		Items:       items,
	}

	reference, err := utils.GenerateID()
	if err != nil {
		reference = "-"
	}

	logrus.WithFields(logrus.Fields{
		"referencia":  reference,
		"cliente":     clientCode,
		"itens":       len(items),
		"valor_total": total,
	}).Info("Enviando pedido de venda ao Sankhya")

	receipt, err := s.integrator.CreateOrder(request)
	if err != nil {
		logrus.WithError(err).WithField("referencia", reference).Error("Falha ao criar pedido de venda")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"referencia": reference,
		"nunota":     receipt.OrderID,
	}).Info("Pedido de venda criado")

	return receipt, nil
}

// buildItems converte os itens do pedido para o formato do gateway e soma o
// valor líquido de cada um (quantidade x unitário, menos o desconto
// percentual do item).
func buildItems(items []domain.SalesOrderItem) ([]sankhyadomain.OrderItem, float64, error) {
	converted := make([]sankhyadomain.OrderItem, 0, len(items))
	var total float64

	for i, item := range items {
		productCode, err := strconv.Atoi(item.ProductID)
		if err != nil {
			return nil, 0, errors.Wrapf(err, "código de produto inválido no item %d", i+1)
		}

		if item.Quantity <= 0 {
			return nil, 0, errors.Errorf("quantidade inválida no item %d", i+1)
		}

		gross := item.Quantity * item.UnitValue
		net := gross * (1 - item.DiscountPerc/100)
		total += net

		warehouse := defaultWarehouse
		if item.WarehouseID != "" {
			warehouse, err = strconv.Atoi(item.WarehouseID)
			if err != nil {
				return nil, 0, errors.Wrapf(err, "local de estoque inválido no item %d", i+1)
			}
		}

		control := item.Control
		if control == "" {
			control = defaultControl
		}

		unit := item.Unit
		if unit == "" {
			unit = defaultUnit
		}

		barQuantity := item.BarQuantity
		if barQuantity == 0 {
			barQuantity = defaultBarQuantity
		}

		converted = append(converted, sankhyadomain.OrderItem{
			Sequence:    i + 1,
			ProductCode: productCode,
			Quantity:    item.Quantity,
			Control:     control,
			Warehouse:   warehouse,
			Unit:        unit,
			UnitValue:   item.UnitValue,
			BarQuantity: barQuantity,
		})
	}

	return converted, total, nil
}

// ListOrders devolve os pedidos do período, restritos ao vendedor quando
// vendorCode é positivo.
func (s *Service) ListOrders(filter domain.AnalysisFilter, vendorCode int) ([]domain.Record, error) {
	return s.integrator.ListOrdersBySalesperson(filter, vendorCode)
}

func negotiationDate(isoDate string) string {
	if isoDate == "" {
		return time.Now().Format("02/01/2006")
	}
	return utils.ToSankhyaDate(isoDate)
}
