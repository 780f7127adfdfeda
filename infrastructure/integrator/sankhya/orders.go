package sankhya

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	sankhyadomain "github.com/avmoura/sankhya-crm-api/infrastructure/integrator/sankhya/domain"
	"github.com/avmoura/sankhya-crm-api/internal/domain"
)

// CreateOrder envia um pedido de venda já montado para o endpoint
// /v1/vendas/pedidos e extrai o número do pedido da resposta. O gateway
// pode sinalizar erro tanto por statusCode quanto pelo objeto error no
// corpo, e o número do pedido pode vir sob chaves diferentes.
func (s *SankhyaService) CreateOrder(request *sankhyadomain.OrderRequest) (*domain.SalesOrderReceipt, error) {
	timeout := time.Duration(s.cfg.Sankhya.OrderTimeoutSeconds) * time.Second

	body, err := s.client.ExecuteWithTimeout(s.cfg.Sankhya.OrdersURL, http.MethodPost, request, timeout)
	if err != nil {
		return nil, err
	}

	var response sankhyadomain.OrderResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta de criação de pedido: %w", err)
	}

	if response.StatusCode >= http.StatusBadRequest || response.Error != nil {
		logrus.WithFields(logrus.Fields{
			"status_code": response.StatusCode,
			"response":    string(body),
		}).Error("Sankhya rejeitou o pedido de venda")

		return nil, fmt.Errorf("%s", response.ErrorMessage())
	}

	orderID := response.ResolveOrderID()
	if orderID == "" {
		logrus.WithField("response", string(body)).
			Warn("Pedido aceito mas número não identificado na resposta")
	}

	return &domain.SalesOrderReceipt{
		OrderID: orderID,
		Message: "Pedido criado com sucesso",
	}, nil
}
