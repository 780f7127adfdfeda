package analyzing

import (
	"sort"

	"github.com/avmoura/sankhya-crm-api/internal/domain"
)

// Nome exibido quando o parceiro do pedido não está na base de clientes
// ativos (parceiro inativo, ou pedido sem parceiro).
const unidentifiedClientName = "Cliente não identificado"

// clientNameIndex indexa os clientes por código para resolver os nomes do
// ranking sem varrer a coleção a cada pedido.
func clientNameIndex(clients []domain.Record) map[string]string {
	index := make(map[string]string, len(clients))
	for _, client := range clients {
		if id := client.Get(domain.FieldClientID); id != "" {
			index[id] = client.Get(domain.FieldClientName)
		}
	}
	return index
}

// rankClients agrupa os pedidos por cliente e devolve os maiores em valor
// total, limitado a topClientsLimit. Empates preservam a ordem de chegada
// dos pedidos (mais recentes primeiro, pela ordenação da consulta).
func rankClients(orders []domain.Record, names map[string]string) []*domain.ClientRanking {
	byClient := make(map[string]*domain.ClientRanking)
	ranking := make([]*domain.ClientRanking, 0)

	for _, order := range orders {
		clientID := order.Get(domain.FieldClientID)

		entry, ok := byClient[clientID]
		if !ok {
			name := names[clientID]
			if name == "" {
				name = unidentifiedClientName
			}

			entry = &domain.ClientRanking{
				ClientID: clientID,
				Name:     name,
				Orders:   []domain.OrderSummary{},
			}
			byClient[clientID] = entry
			ranking = append(ranking, entry)
		}

		value := order.Float(domain.FieldOrderValue)
		entry.OrderCount++
		entry.TotalValue += value
		entry.Orders = append(entry.Orders, domain.OrderSummary{
			Number: order.Get(domain.FieldOrderID),
			Value:  value,
			Date:   order.Get(domain.FieldOrderDate),
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].TotalValue > ranking[j].TotalValue
	})

	if len(ranking) > topClientsLimit {
		ranking = ranking[:topClientsLimit]
	}

	for _, entry := range ranking {
		if entry.OrderCount > 0 {
			entry.AverageTicket = entry.TotalValue / float64(entry.OrderCount)
		}
	}

	return ranking
}

func sumOrderValues(orders []domain.Record) float64 {
	var total float64
	for _, order := range orders {
		total += order.Float(domain.FieldOrderValue)
	}
	return total
}
