package ordering

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sankhyadomain "github.com/avmoura/sankhya-crm-api/infrastructure/integrator/sankhya/domain"
	sankhyamocks "github.com/avmoura/sankhya-crm-api/infrastructure/integrator/sankhya/mocks"
	"github.com/avmoura/sankhya-crm-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_CreateOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := sankhyamocks.NewMockIntegrator(ctrl)
	svc := NewService(mockIntegrator)

	order := &domain.SalesOrder{
		ClientID:        "123",
		SalespersonID:   "45",
		SaleTypeID:      "1",
		NegotiationDate: "2025-03-10",
		FreightValue:    15,
		TotalDiscount:   10,
		ClientType:      "F",
		ClientTaxID:     "12345678901",
		Items: []domain.SalesOrderItem{
			{ProductID: "77", Quantity: 2, UnitValue: 100},
			{ProductID: "88", Quantity: 1, UnitValue: 50, DiscountPerc: 10, Control: "009", Unit: "PC"},
		},
	}

	var sent *sankhyadomain.OrderRequest
	mockIntegrator.EXPECT().
		CreateOrder(gomock.Any()).
		DoAndReturn(func(request *sankhyadomain.OrderRequest) (*domain.SalesOrderReceipt, error) {
			sent = request
			return &domain.SalesOrderReceipt{OrderID: "999", Message: "Pedido criado com sucesso"}, nil
		})

	receipt, err := svc.CreateOrder(order)

	require.NoError(t, err)
	assert.Equal(t, "999", receipt.OrderID)

	require.NotNil(t, sent)
	assert.Equal(t, 123, sent.ClientCode)
	assert.Equal(t, 45, sent.Salesperson)
	assert.Equal(t, defaultNoteModel, sent.NoteModel)
	assert.Equal(t, "10/03/2025", sent.Date)
	// 200 + (50 - 10%) + frete 15 - desconto 10 = 250
	assert.InDelta(t, 250.0, sent.TotalValue, 0.001)

	require.Len(t, sent.Items, 2)
	assert.Equal(t, 1, sent.Items[0].Sequence)
	assert.Equal(t, 77, sent.Items[0].ProductCode)
	assert.Equal(t, defaultControl, sent.Items[0].Control)
	assert.Equal(t, defaultUnit, sent.Items[0].Unit)
	assert.Equal(t, defaultWarehouse, sent.Items[0].Warehouse)
	assert.Equal(t, float64(defaultBarQuantity), sent.Items[0].BarQuantity)

	assert.Equal(t, "009", sent.Items[1].Control)
	assert.Equal(t, "PC", sent.Items[1].Unit)
}

func TestService_CreateOrder_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := sankhyamocks.NewMockIntegrator(ctrl)
	svc := NewService(mockIntegrator)

	tests := []struct {
		name  string
		order *domain.SalesOrder
	}{
		{
			name:  "Pedido sem itens",
			order: &domain.SalesOrder{ClientID: "1"},
		},
		{
			name: "Código de cliente inválido",
			order: &domain.SalesOrder{
				ClientID: "abc",
				Items:    []domain.SalesOrderItem{{ProductID: "1", Quantity: 1, UnitValue: 10}},
			},
		},
		{
			name: "Código de produto inválido",
			order: &domain.SalesOrder{
				ClientID: "1",
				Items:    []domain.SalesOrderItem{{ProductID: "x", Quantity: 1, UnitValue: 10}},
			},
		},
		{
			name: "Quantidade zerada",
			order: &domain.SalesOrder{
				ClientID: "1",
				Items:    []domain.SalesOrderItem{{ProductID: "1", Quantity: 0, UnitValue: 10}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			receipt, err := svc.CreateOrder(tt.order)
			require.Error(t, err)
			assert.Nil(t, receipt)
		})
	}
}

func TestService_CreateOrder_GatewayError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := sankhyamocks.NewMockIntegrator(ctrl)
	svc := NewService(mockIntegrator)

	boom := errors.New("Sankhya rejeitou o pedido")
	mockIntegrator.EXPECT().CreateOrder(gomock.Any()).Return(nil, boom)

	receipt, err := svc.CreateOrder(&domain.SalesOrder{
		ClientID: "1",
		Items:    []domain.SalesOrderItem{{ProductID: "1", Quantity: 1, UnitValue: 10}},
	})

	require.ErrorIs(t, err, boom)
	assert.Nil(t, receipt)
}
