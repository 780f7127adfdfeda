package analyzing

import (
	"time"

	"github.com/avmoura/sankhya-crm-api/internal/domain"
)

// Analyzer monta o snapshot de análise de um usuário para um período.
type Analyzer interface {
	Analyze(filter domain.AnalysisFilter, userID int, isAdmin bool) (*domain.AnalysisData, error)
}

// Cache abstrai o armazenamento dos snapshots já calculados. Get devolve
// (nil, nil) em caso de miss; falhas do cache nunca devem derrubar a análise.
type Cache interface {
	Get(key string) (*domain.AnalysisData, error)
	Set(key string, data *domain.AnalysisData, ttl time.Duration) error
}
