package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/avmoura/sankhya-crm-api/infrastructure/integrator/sankhya/sankhyaclient"
	"github.com/avmoura/sankhya-crm-api/internal/domain"
	"github.com/avmoura/sankhya-crm-api/internal/usecases/analyzing"
	"github.com/avmoura/sankhya-crm-api/pkg/apiErrors"
	"github.com/avmoura/sankhya-crm-api/pkg/middleware"
)

// GetAnalysis retorna o snapshot de análise do período para o usuário logado.
// O recorte de leads por vendedor é decidido pelo perfil presente no token.
func GetAnalysis(service analyzing.Analyzer) http.HandlerFunc {
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

		data, err := service.Analyze(filter, userClaims.UserID, userClaims.IsAdmin())
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"user_id":     userClaims.UserID,
				"data_inicio": filter.StartDate,
				"data_fim":    filter.EndDate,
			}).Error("Falha ao montar análise")

			if errors.Is(err, sankhyaclient.ErrSessionExpired) {
				apiErrors.WriteError(w, apiErrors.ErrSankhyaSession, err.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Não foi possível concluir a análise", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(data); err != nil {
			logrus.Error(err)
		}
	}
}
