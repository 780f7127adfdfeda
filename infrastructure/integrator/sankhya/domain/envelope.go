package domain

import (
	"encoding/json"
	"fmt"
)

// Payload do serviço CRUDServiceProvider.loadRecords. O Sankhya espera o
// dataSet aninhado em requestBody e expressões embrulhadas em {"$": "..."}.
type QueryRequest struct {
	RequestBody QueryRequestBody `json:"requestBody"`
}

type QueryRequestBody struct {
	DataSet DataSet `json:"dataSet"`
}

type DataSet struct {
	RootEntity                string    `json:"rootEntity"`
	IncludePresentationFields string    `json:"includePresentationFields"`
	OffsetPage                *int      `json:"offsetPage"`
	DisableRowsLimit          bool      `json:"disableRowsLimit"`
	Entity                    Entity    `json:"entity"`
	Criteria                  *Criteria `json:"criteria,omitempty"`
	Ordering                  *Ordering `json:"ordering,omitempty"`
}

type Entity struct {
	Fieldset Fieldset `json:"fieldset"`
}

type Fieldset struct {
	List string `json:"list"`
}

type Criteria struct {
	Expression Expression `json:"expression"`
}

type Ordering struct {
	Expression Expression `json:"expression"`
}

type Expression struct {
	Value string `json:"$"`
}

// QueryResponse é o envelope devolvido pelo loadRecords.
type QueryResponse struct {
	ResponseBody *ResponseBody `json:"responseBody"`
}

type ResponseBody struct {
	Entities *Entities `json:"entities"`
}

// Entities carrega o metadata (nomes de campo, na ordem) e as linhas. Uma
// resposta com um único registro vem como objeto, não como array, por isso
// Entity fica como json.RawMessage até a normalização.
type Entities struct {
	Total    string          `json:"total"`
	Metadata *Metadata       `json:"metadata"`
	Entity   json.RawMessage `json:"entity"`
}

type Metadata struct {
	Fields Fields `json:"fields"`
}

type Fields struct {
	Field FieldList `json:"field"`
}

type Field struct {
	Name string `json:"name"`
}

// FieldList aceita tanto uma lista de campos quanto um campo único como
// objeto, do mesmo jeito que as linhas em entity.
type FieldList []Field

func (fl *FieldList) UnmarshalJSON(data []byte) error {
	var list []Field
	if err := json.Unmarshal(data, &list); err == nil {
		*fl = list
		return nil
	}

	var single Field
	if err := json.Unmarshal(data, &single); err != nil {
		return fmt.Errorf("formato inesperado no metadata de campos: %w", err)
	}

	*fl = FieldList{single}
	return nil
}

// FieldValue é o valor posicional de um campo na linha: {"$": <valor>}.
// O Sankhya mistura strings e números, então o valor cru fica em any.
type FieldValue struct {
	Value any `json:"$"`
}

// Row é uma linha crua indexada por posição (f0, f1, ...).
type Row map[string]FieldValue

// Rows decodifica o campo entity aceitando tanto uma linha única quanto uma
// lista de linhas. Entity vazio resulta em lista vazia, nunca em erro.
func (e *Entities) Rows() ([]Row, error) {
	if len(e.Entity) == 0 {
		return []Row{}, nil
	}

	var rows []Row
	if err := json.Unmarshal(e.Entity, &rows); err == nil {
		return rows, nil
	}

	var single Row
	if err := json.Unmarshal(e.Entity, &single); err != nil {
		return nil, fmt.Errorf("formato inesperado no campo entity: %w", err)
	}

	return []Row{single}, nil
}

// FieldNames retorna os nomes de campo declarados, na ordem do fieldset.
func (e *Entities) FieldNames() []string {
	if e.Metadata == nil {
		return nil
	}

	names := make([]string, 0, len(e.Metadata.Fields.Field))
	for _, field := range e.Metadata.Fields.Field {
		names = append(names, field.Name)
	}

	return names
}
