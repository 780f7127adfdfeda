package analyzing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sankhyamocks "github.com/avmoura/sankhya-crm-api/infrastructure/integrator/sankhya/mocks"
	"github.com/avmoura/sankhya-crm-api/internal/domain"
	"github.com/avmoura/sankhya-crm-api/internal/usecases/analyzing/mocks"
	"go.uber.org/mock/gomock"
)

func newTestService(integrator *sankhyamocks.MockIntegrator, cache *mocks.MockCache) *Service {
	svc := NewService(integrator, cache)
	svc.now = func() time.Time {
		return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestService_Analyze_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := sankhyamocks.NewMockIntegrator(ctrl)
	mockCache := mocks.NewMockCache(ctrl)

	filter := domain.AnalysisFilter{StartDate: "2025-03-01", EndDate: "2025-03-31"}
	cached := &domain.AnalysisData{TotalLeads: 7, Filter: filter}

	// Hit no cache: nenhuma consulta ao Sankhya deve acontecer
	mockCache.EXPECT().
		Get("analise:42:2025-03-01:2025-03-31").
		Return(cached, nil)

	svc := newTestService(mockIntegrator, mockCache)

	result, err := svc.Analyze(filter, 42, true)

	require.NoError(t, err)
	assert.Same(t, cached, result)
}

func TestService_Analyze_FullPipeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := sankhyamocks.NewMockIntegrator(ctrl)
	mockCache := mocks.NewMockCache(ctrl)

	filter := domain.AnalysisFilter{StartDate: "2025-03-01", EndDate: "2025-03-31"}

	leads := []domain.Record{
		{"CODLEAD": "10", "NOME": "Lead A", "STATUS_LEAD": domain.LeadStatusInProgress},
		{"CODLEAD": "11", "NOME": "Lead B", "STATUS_LEAD": domain.LeadStatusWon},
	}
	orders := []domain.Record{
		{"NUNOTA": "500", "CODPARC": "1", "VLRNOTA": "100.50", "DTNEG": "10/03/2025"},
		{"NUNOTA": "501", "CODPARC": "2", "VLRNOTA": "300", "DTNEG": "09/03/2025"},
		{"NUNOTA": "502", "CODPARC": "1", "VLRNOTA": "99.50", "DTNEG": "08/03/2025"},
	}
	clients := []domain.Record{
		{"CODPARC": "1", "NOMEPARC": "Ótica Central"},
		{"CODPARC": "2", "NOMEPARC": "Ótica Sul"},
	}
	leadProducts := []domain.Record{
		{"CODITEM": "1", "CODLEAD": "10", "CODPROD": "77"},
	}

	mockCache.EXPECT().Get("analise:42:2025-03-01:2025-03-31").Return(nil, nil)

	mockIntegrator.EXPECT().ListLeads(filter, 42, false).Return(leads, nil)
	mockIntegrator.EXPECT().ListActivities(filter).Return([]domain.Record{}, nil)
	mockIntegrator.EXPECT().ListFunnels().Return([]domain.Record{{"CODFUNIL": "1"}}, nil)
	mockIntegrator.EXPECT().ListFunnelStages().Return([]domain.Record{{"CODESTAGIO": "1"}}, nil)
	mockIntegrator.EXPECT().ListOrders(filter).Return(orders, nil)
	mockIntegrator.EXPECT().ListProducts().Return([]domain.Record{}, nil)
	mockIntegrator.EXPECT().ListClients().Return(clients, nil)
	mockIntegrator.EXPECT().ListLeadProducts([]string{"10", "11"}).Return(leadProducts, nil)

	var saved *domain.AnalysisData
	mockCache.EXPECT().
		Set("analise:42:2025-03-01:2025-03-31", gomock.Any(), 30*time.Minute).
		DoAndReturn(func(_ string, data *domain.AnalysisData, _ time.Duration) error {
			saved = data
			return nil
		})

	svc := newTestService(mockIntegrator, mockCache)

	result, err := svc.Analyze(filter, 42, false)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Same(t, result, saved)

	assert.Equal(t, 2, result.TotalLeads)
	assert.Equal(t, 0, result.TotalActivities)
	assert.Equal(t, 3, result.TotalOrders)
	assert.Equal(t, 2, result.TotalClients)
	assert.InDelta(t, 500.0, result.TotalOrderValue, 0.001)
	assert.Equal(t, leadProducts, result.LeadProducts)
	assert.Equal(t, filter, result.Filter)
	assert.False(t, result.Timestamp.IsZero())

	// Cliente 2 (300) fica acima do cliente 1 (200), mesmo com menos pedidos
	require.Len(t, result.TopClients, 2)
	assert.Equal(t, "2", result.TopClients[0].ClientID)
	assert.Equal(t, "Ótica Sul", result.TopClients[0].Name)
	assert.InDelta(t, 300.0, result.TopClients[0].TotalValue, 0.001)
	assert.InDelta(t, 300.0, result.TopClients[0].AverageTicket, 0.001)

	assert.Equal(t, "1", result.TopClients[1].ClientID)
	assert.Equal(t, 2, result.TopClients[1].OrderCount)
	assert.InDelta(t, 200.0, result.TopClients[1].TotalValue, 0.001)
	assert.InDelta(t, 100.0, result.TopClients[1].AverageTicket, 0.001)
	require.Len(t, result.TopClients[1].Orders, 2)
	assert.Equal(t, "500", result.TopClients[1].Orders[0].Number)
}

func TestService_Analyze_PartialFailuresProduceEmptyCollections(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := sankhyamocks.NewMockIntegrator(ctrl)
	mockCache := mocks.NewMockCache(ctrl)

	filter := domain.AnalysisFilter{StartDate: "2025-03-01", EndDate: "2025-03-31"}
	boom := errors.New("timeout no gateway")

	mockCache.EXPECT().Get(gomock.Any()).Return(nil, nil)

	// Todas as consultas falham: a análise ainda sai, vazia
	mockIntegrator.EXPECT().ListLeads(filter, 7, true).Return(nil, boom)
	mockIntegrator.EXPECT().ListActivities(filter).Return(nil, boom)
	mockIntegrator.EXPECT().ListFunnels().Return(nil, boom)
	mockIntegrator.EXPECT().ListFunnelStages().Return(nil, boom)
	mockIntegrator.EXPECT().ListOrders(filter).Return(nil, boom)
	mockIntegrator.EXPECT().ListProducts().Return(nil, boom)
	mockIntegrator.EXPECT().ListClients().Return(nil, boom)
	// Sem leads não há busca de produtos de leads

	mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), cacheTTL).Return(nil)

	svc := newTestService(mockIntegrator, mockCache)

	result, err := svc.Analyze(filter, 7, true)

	require.NoError(t, err)
	assert.Empty(t, result.Leads)
	assert.Empty(t, result.Orders)
	assert.Empty(t, result.LeadProducts)
	assert.Zero(t, result.TotalLeads)
	assert.Zero(t, result.TotalOrderValue)
	assert.Empty(t, result.TopClients)
}

func TestService_Analyze_LeadProductsFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := sankhyamocks.NewMockIntegrator(ctrl)
	mockCache := mocks.NewMockCache(ctrl)

	filter := domain.AnalysisFilter{StartDate: "2025-03-01", EndDate: "2025-03-31"}
	boom := errors.New("sessão expirada, tente novamente")

	mockCache.EXPECT().Get(gomock.Any()).Return(nil, nil)

	mockIntegrator.EXPECT().ListLeads(filter, 7, true).
		Return([]domain.Record{{"CODLEAD": "10"}}, nil)
	mockIntegrator.EXPECT().ListActivities(filter).Return([]domain.Record{}, nil)
	mockIntegrator.EXPECT().ListFunnels().Return([]domain.Record{}, nil)
	mockIntegrator.EXPECT().ListFunnelStages().Return([]domain.Record{}, nil)
	mockIntegrator.EXPECT().ListOrders(filter).Return([]domain.Record{}, nil)
	mockIntegrator.EXPECT().ListProducts().Return([]domain.Record{}, nil)
	mockIntegrator.EXPECT().ListClients().Return([]domain.Record{}, nil)
	mockIntegrator.EXPECT().ListLeadProducts([]string{"10"}).Return(nil, boom)

	// Nada deve ser gravado no cache quando a análise falha

	svc := newTestService(mockIntegrator, mockCache)

	result, err := svc.Analyze(filter, 7, true)

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, result)
}

func TestService_Analyze_CacheErrorsAreTolerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := sankhyamocks.NewMockIntegrator(ctrl)
	mockCache := mocks.NewMockCache(ctrl)

	filter := domain.AnalysisFilter{StartDate: "2025-03-01", EndDate: "2025-03-31"}

	mockCache.EXPECT().Get(gomock.Any()).Return(nil, errors.New("redis indisponível"))

	mockIntegrator.EXPECT().ListLeads(filter, 7, true).Return([]domain.Record{}, nil)
	mockIntegrator.EXPECT().ListActivities(filter).Return([]domain.Record{}, nil)
	mockIntegrator.EXPECT().ListFunnels().Return([]domain.Record{}, nil)
	mockIntegrator.EXPECT().ListFunnelStages().Return([]domain.Record{}, nil)
	mockIntegrator.EXPECT().ListOrders(filter).Return([]domain.Record{}, nil)
	mockIntegrator.EXPECT().ListProducts().Return([]domain.Record{}, nil)
	mockIntegrator.EXPECT().ListClients().Return([]domain.Record{}, nil)

	mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("redis indisponível"))

	svc := newTestService(mockIntegrator, mockCache)

	result, err := svc.Analyze(filter, 7, true)

	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestCacheKey(t *testing.T) {
	filter := domain.AnalysisFilter{StartDate: "2025-01-01", EndDate: "2025-01-31"}
	assert.Equal(t, "analise:15:2025-01-01:2025-01-31", cacheKey(15, filter))
}
