package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/avmoura/sankhya-crm-api/infrastructure/integrator/sankhya/sankhyaclient"
	"github.com/avmoura/sankhya-crm-api/internal/domain"
	"github.com/avmoura/sankhya-crm-api/internal/usecases/ordering"
	"github.com/avmoura/sankhya-crm-api/pkg/apiErrors"
	"github.com/avmoura/sankhya-crm-api/pkg/middleware"
)

// CreateOrder recebe um pedido de venda e o repassa ao Sankhya.
func CreateOrder(service ordering.OrderCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var order domain.SalesOrder
		if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		// Vendedores sem código explícito no pedido usam o do próprio perfil
		if order.SalespersonID == "" && userClaims.UserVendorCode != nil {
			order.SalespersonID = strconv.Itoa(*userClaims.UserVendorCode)
		}

		receipt, err := service.CreateOrder(&order)
		if err != nil {
			logrus.WithError(err).WithField("user_id", userClaims.UserID).Error("Falha ao criar pedido de venda")
			writeOrderError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(receipt); err != nil {
			logrus.Error(err)
		}
	}
}

// ListOrders lista os pedidos do período. Perfis sem acesso total enxergam
// somente os pedidos do próprio código de vendedor.
func ListOrders(service ordering.OrderCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		filter := domain.AnalysisFilter{
			StartDate: r.URL.Query().Get("dataInicio"),
			EndDate:   r.URL.Query().Get("dataFim"),
		}

		if filter.StartDate == "" || filter.EndDate == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe dataInicio e dataFim", nil)
			return
		}

		vendorCode := 0
		if !userClaims.IsAdmin() && userClaims.UserVendorCode != nil {
			vendorCode = *userClaims.UserVendorCode
		}

		orders, err := service.ListOrders(filter, vendorCode)
		if err != nil {
			logrus.WithError(err).WithField("user_id", userClaims.UserID).Error("Falha ao listar pedidos")
			writeOrderError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(orders); err != nil {
			logrus.Error(err)
		}
	}
}

func writeOrderError(w http.ResponseWriter, err error) {
	var requestErr *sankhyaclient.RequestError

	switch {
	case errors.Is(err, sankhyaclient.ErrSessionExpired):
		apiErrors.WriteError(w, apiErrors.ErrSankhyaSession, err.Error(), nil)
	case errors.As(err, &requestErr):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, requestErr.Message, nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
	}
}
