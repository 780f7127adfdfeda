package sankhya

import (
	"fmt"
	"strconv"

	"github.com/avmoura/sankhya-crm-api/internal/domain"
	sankhyadomain "github.com/avmoura/sankhya-crm-api/infrastructure/integrator/sankhya/domain"
)

// MapEntities converte o formato posicional do Sankhya (linhas com campos
// f0..fN mais o metadata com os nomes, na ordem) em registros planos com
// chaves nomeadas. Regras:
//   - sem metadata ou sem linhas: lista vazia, nunca erro;
//   - slot ausente (ou nulo) na linha: a chave é omitida do registro, não
//     vira string vazia;
//   - uma linha única vem como objeto e é aceita de forma transparente.
func MapEntities(entities *sankhyadomain.Entities) ([]domain.Record, error) {
	if entities == nil || entities.Metadata == nil {
		return []domain.Record{}, nil
	}

	fieldNames := entities.FieldNames()
	if len(fieldNames) == 0 {
		return []domain.Record{}, nil
	}

	rows, err := entities.Rows()
	if err != nil {
		return nil, err
	}

	records := make([]domain.Record, 0, len(rows))
	for _, row := range rows {
		record := domain.Record{}

		for i, fieldName := range fieldNames {
			fieldKey := "f" + strconv.Itoa(i)
			fieldValue, ok := row[fieldKey]
			if !ok || fieldValue.Value == nil {
				continue
			}
			record[fieldName] = stringify(fieldValue.Value)
		}

		records = append(records, record)
	}

	return records, nil
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", v)
	}
}
