// Package cache guarda resultados de análise no Redis.
//
// Chaves: analise:{userId}:{dataInicio}:{dataFim}, estáveis e legíveis para
// inspeção manual. Um SET na mesma chave sobrescreve o valor anterior e
// reinicia o TTL; depois de expirada a chave, o GET se comporta como miss e
// o chamador recomputa (sem stale-while-revalidate).
package cache

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/avmoura/sankhya-crm-api/internal/config"
	"github.com/avmoura/sankhya-crm-api/internal/domain"
)

// AnalysisCache armazena snapshots de análise serializados em JSON. As
// operações usam contextos próprios: o cancelamento do chamador não
// interrompe leituras/escritas já em andamento.
type AnalysisCache struct {
	rdb *redis.Client
}

func NewAnalysisCache(cfg config.Redis) *AnalysisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &AnalysisCache{rdb: rdb}
}

// Ping verifica a conectividade com o Redis.
func (c *AnalysisCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close encerra a conexão com o Redis.
func (c *AnalysisCache) Close() error { return c.rdb.Close() }

// Get retorna o snapshot da chave ou (nil, nil) em caso de miss.
func (c *AnalysisCache) Get(key string) (*domain.AnalysisData, error) {
	val, err := c.rdb.Get(context.Background(), key).Bytes()
	if err == redis.Nil {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, err
	}

	var data domain.AnalysisData
	if err := json.Unmarshal(val, &data); err != nil {
		return nil, err
	}

	return &data, nil
}

// Set grava o snapshot com o TTL informado, sobrescrevendo qualquer valor
// anterior da chave (last-writer-wins).
func (c *AnalysisCache) Set(key string, data *domain.AnalysisData, ttl time.Duration) error {
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(context.Background(), key, b, ttl).Err()
}
