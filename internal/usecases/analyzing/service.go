package analyzing

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/avmoura/sankhya-crm-api/infrastructure/integrator/sankhya"
	"github.com/avmoura/sankhya-crm-api/internal/domain"
)

const (
	// Validade do snapshot no cache. Durante a janela o resultado é servido
	// como está, sem recomputar.
	cacheTTL = 30 * time.Minute

	// Tamanho do ranking de maiores clientes.
	topClientsLimit = 20
)

// Service agrega as entidades do CRM e os pedidos do ERP em um único
// snapshot por (usuário, período), com cache de resultado.
type Service struct {
	integrator sankhya.Integrator
	cache      Cache
	now        func() time.Time
}

// NewService cria o serviço de análise. O cache é obrigatório, mas falhas
// nele são toleradas: a análise degrada para recomputar sempre.
func NewService(integrator sankhya.Integrator, cache Cache) *Service {
	return &Service{
		integrator: integrator,
		cache:      cache,
		now:        time.Now,
	}
}

// Analyze devolve o snapshot do período, do cache quando disponível. As
// consultas às entidades rodam em sequência e cada uma é tolerante a falha
// individual (coleção vazia no lugar do erro), com uma exceção: a busca de
// produtos de leads depende dos leads já carregados e, se falhar, invalida a
// análise inteira.
func (s *Service) Analyze(filter domain.AnalysisFilter, userID int, isAdmin bool) (*domain.AnalysisData, error) {
	key := cacheKey(userID, filter)

	cached, err := s.cache.Get(key)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Falha ao consultar o cache de análise")
	}
	if cached != nil {
		logrus.WithField("key", key).Debug("Análise servida do cache")
		return cached, nil
	}

	logrus.WithFields(logrus.Fields{
		"user_id":     userID,
		"data_inicio": filter.StartDate,
		"data_fim":    filter.EndDate,
	}).Info("Montando análise a partir do Sankhya")

	leads := s.collect("leads", func() ([]domain.Record, error) {
		return s.integrator.ListLeads(filter, userID, isAdmin)
	})
	activities := s.collect("atividades", func() ([]domain.Record, error) {
		return s.integrator.ListActivities(filter)
	})
	funnels := s.collect("funis", func() ([]domain.Record, error) {
		return s.integrator.ListFunnels()
	})
	funnelStages := s.collect("estagios_funis", func() ([]domain.Record, error) {
		return s.integrator.ListFunnelStages()
	})
	orders := s.collect("pedidos", func() ([]domain.Record, error) {
		return s.integrator.ListOrders(filter)
	})
	products := s.collect("produtos", func() ([]domain.Record, error) {
		return s.integrator.ListProducts()
	})
	clients := s.collect("clientes", func() ([]domain.Record, error) {
		return s.integrator.ListClients()
	})

	leadProducts := []domain.Record{}
	if leadIDs := collectLeadIDs(leads); len(leadIDs) > 0 {
		leadProducts, err = s.integrator.ListLeadProducts(leadIDs)
		if err != nil {
			return nil, fmt.Errorf("erro ao buscar produtos dos leads: %w", err)
		}
	}

	data := &domain.AnalysisData{
		Leads:        leads,
		LeadProducts: leadProducts,
		FunnelStages: funnelStages,
		Funnels:      funnels,
		Activities:   activities,
		Orders:       orders,
		Products:     products,
		Clients:      clients,

		Filter:    filter,
		Timestamp: s.now(),

		TotalLeads:      len(leads),
		TotalActivities: len(activities),
		TotalOrders:     len(orders),
		TotalProducts:   len(products),
		TotalClients:    len(clients),
		TotalOrderValue: sumOrderValues(orders),

		TopClients: rankClients(orders, clientNameIndex(clients)),
	}

	if err := s.cache.Set(key, data, cacheTTL); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Falha ao gravar análise no cache")
	}

	return data, nil
}

// collect executa uma consulta e converte qualquer falha em coleção vazia,
// registrando o erro. Um Sankhya parcialmente indisponível ainda produz uma
// análise com as coleções que responderam.
func (s *Service) collect(name string, fn func() ([]domain.Record, error)) []domain.Record {
	records, err := fn()
	if err != nil {
		logrus.WithError(err).Warnf("Falha ao buscar %s, seguindo com coleção vazia", name)
		return []domain.Record{}
	}
	if records == nil {
		return []domain.Record{}
	}
	return records
}

func collectLeadIDs(leads []domain.Record) []string {
	ids := make([]string, 0, len(leads))
	for _, lead := range leads {
		if id := lead.Get(domain.FieldLeadID); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// cacheKey identifica o snapshot por usuário e período. Dois usuários com o
// mesmo período têm chaves distintas porque o recorte de leads depende do
// usuário.
func cacheKey(userID int, filter domain.AnalysisFilter) string {
	return fmt.Sprintf("analise:%d:%s:%s", userID, filter.StartDate, filter.EndDate)
}
