package sankhya

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sankhyadomain "github.com/avmoura/sankhya-crm-api/infrastructure/integrator/sankhya/domain"
)

func buildEntities(t *testing.T, raw string) *sankhyadomain.Entities {
	t.Helper()

	var entities sankhyadomain.Entities
	require.NoError(t, json.Unmarshal([]byte(raw), &entities))
	return &entities
}

func TestMapEntities(t *testing.T) {
	t.Run("Linhas com campos posicionais viram registros nomeados", func(t *testing.T) {
		entities := buildEntities(t, `{
			"total": "2",
			"metadata": {"fields": {"field": [
				{"name": "CODLEAD"}, {"name": "NOME"}, {"name": "VALOR"}
			]}},
			"entity": [
				{"f0": {"$": "1"}, "f1": {"$": "Lead A"}, "f2": {"$": 1500.5}},
				{"f0": {"$": "2"}, "f1": {"$": "Lead B"}}
			]
		}`)

		records, err := MapEntities(entities)

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "1", records[0].Get("CODLEAD"))
		assert.Equal(t, "Lead A", records[0].Get("NOME"))
		assert.Equal(t, "1500.5", records[0].Get("VALOR"))

		// Campo ausente na linha não existe no registro
		assert.False(t, records[1].Has("VALOR"))
		assert.Equal(t, "Lead B", records[1].Get("NOME"))
	})

	t.Run("Linha única como objeto é aceita", func(t *testing.T) {
		entities := buildEntities(t, `{
			"total": "1",
			"metadata": {"fields": {"field": [{"name": "CODPARC"}, {"name": "NOMEPARC"}]}},
			"entity": {"f0": {"$": "10"}, "f1": {"$": "Ótica Central"}}
		}`)

		records, err := MapEntities(entities)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "10", records[0].Get("CODPARC"))
		assert.Equal(t, "Ótica Central", records[0].Get("NOMEPARC"))
	})

	t.Run("Campo único no metadata como objeto é aceito", func(t *testing.T) {
		entities := buildEntities(t, `{
			"total": "1",
			"metadata": {"fields": {"field": {"name": "CODPROD"}}},
			"entity": [{"f0": {"$": 77}}]
		}`)

		records, err := MapEntities(entities)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "77", records[0].Get("CODPROD"))
	})

	t.Run("Valor nulo é omitido do registro", func(t *testing.T) {
		entities := buildEntities(t, `{
			"total": "1",
			"metadata": {"fields": {"field": [{"name": "A"}, {"name": "B"}]}},
			"entity": [{"f0": {"$": null}, "f1": {"$": "x"}}]
		}`)

		records, err := MapEntities(entities)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.False(t, records[0].Has("A"))
		assert.Equal(t, "x", records[0].Get("B"))
	})

	t.Run("Resposta sem metadata produz lista vazia", func(t *testing.T) {
		records, err := MapEntities(&sankhyadomain.Entities{})

		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("Entities nulo produz lista vazia", func(t *testing.T) {
		records, err := MapEntities(nil)

		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("Resposta sem linhas produz lista vazia", func(t *testing.T) {
		entities := buildEntities(t, `{
			"total": "0",
			"metadata": {"fields": {"field": [{"name": "CODLEAD"}]}}
		}`)

		records, err := MapEntities(entities)

		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
