package analyzing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/avmoura/sankhya-crm-api/internal/domain"
)

func TestRankClients(t *testing.T) {
	names := map[string]string{
		"1": "Ótica Central",
		"2": "Ótica Sul",
	}

	tests := []struct {
		name     string
		orders   []domain.Record
		validate func(t *testing.T, ranking []*domain.ClientRanking)
	}{
		{
			name:   "Sem pedidos - ranking vazio",
			orders: []domain.Record{},
			validate: func(t *testing.T, ranking []*domain.ClientRanking) {
				assert.Empty(t, ranking)
			},
		},
		{
			name: "Agrupamento por cliente com ticket médio",
			orders: []domain.Record{
				{"NUNOTA": "1", "CODPARC": "1", "VLRNOTA": "100", "DTNEG": "10/03/2025"},
				{"NUNOTA": "2", "CODPARC": "1", "VLRNOTA": "50", "DTNEG": "09/03/2025"},
				{"NUNOTA": "3", "CODPARC": "2", "VLRNOTA": "120", "DTNEG": "08/03/2025"},
			},
			validate: func(t *testing.T, ranking []*domain.ClientRanking) {
				require.Len(t, ranking, 2)

				assert.Equal(t, "1", ranking[0].ClientID)
				assert.Equal(t, "Ótica Central", ranking[0].Name)
				assert.Equal(t, 2, ranking[0].OrderCount)
				assert.InDelta(t, 150.0, ranking[0].TotalValue, 0.001)
				assert.InDelta(t, 75.0, ranking[0].AverageTicket, 0.001)
				require.Len(t, ranking[0].Orders, 2)
				assert.Equal(t, "1", ranking[0].Orders[0].Number)
				assert.Equal(t, "10/03/2025", ranking[0].Orders[0].Date)

				assert.Equal(t, "2", ranking[1].ClientID)
				assert.InDelta(t, 120.0, ranking[1].TotalValue, 0.001)
			},
		},
		{
			name: "Parceiro desconhecido recebe o nome sentinela",
			orders: []domain.Record{
				{"NUNOTA": "1", "CODPARC": "999", "VLRNOTA": "80"},
				{"NUNOTA": "2", "VLRNOTA": "20"},
			},
			validate: func(t *testing.T, ranking []*domain.ClientRanking) {
				require.Len(t, ranking, 2)
				assert.Equal(t, unidentifiedClientName, ranking[0].Name)
				assert.Equal(t, unidentifiedClientName, ranking[1].Name)
				// Pedido sem CODPARC agrupa sob o código vazio, separado do 999
				assert.Equal(t, "999", ranking[0].ClientID)
				assert.Equal(t, "", ranking[1].ClientID)
			},
		},
		{
			name: "Valor não numérico conta como zero",
			orders: []domain.Record{
				{"NUNOTA": "1", "CODPARC": "1", "VLRNOTA": "abc"},
				{"NUNOTA": "2", "CODPARC": "1", "VLRNOTA": "10"},
			},
			validate: func(t *testing.T, ranking []*domain.ClientRanking) {
				require.Len(t, ranking, 1)
				assert.Equal(t, 2, ranking[0].OrderCount)
				assert.InDelta(t, 10.0, ranking[0].TotalValue, 0.001)
				assert.InDelta(t, 5.0, ranking[0].AverageTicket, 0.001)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, rankClients(tt.orders, names))
		})
	}
}

func TestRankClients_TruncatesToTop20(t *testing.T) {
	orders := make([]domain.Record, 0, 25)
	for i := 1; i <= 25; i++ {
		orders = append(orders, domain.Record{
			"NUNOTA":  fmt.Sprintf("%d", i),
			"CODPARC": fmt.Sprintf("%d", i),
			"VLRNOTA": fmt.Sprintf("%d", i*10),
		})
	}

	ranking := rankClients(orders, map[string]string{})

	require.Len(t, ranking, topClientsLimit)
	// Maior valor primeiro (cliente 25, 250.0), menor do corte por último
	assert.Equal(t, "25", ranking[0].ClientID)
	assert.InDelta(t, 250.0, ranking[0].TotalValue, 0.001)
	assert.Equal(t, "6", ranking[topClientsLimit-1].ClientID)
}

func TestClientNameIndex(t *testing.T) {
	clients := []domain.Record{
		{"CODPARC": "1", "NOMEPARC": "Ótica Central"},
		{"NOMEPARC": "Sem código"},
		{"CODPARC": "2"},
	}

	index := clientNameIndex(clients)

	assert.Equal(t, "Ótica Central", index["1"])
	assert.Equal(t, "", index["2"])
	assert.Len(t, index, 2)
}

func TestSumOrderValues(t *testing.T) {
	orders := []domain.Record{
		{"VLRNOTA": "10.5"},
		{"VLRNOTA": "x"},
		{},
		{"VLRNOTA": "4.5"},
	}

	assert.InDelta(t, 15.0, sumOrderValues(orders), 0.001)
}
