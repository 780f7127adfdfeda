package domain

import "strconv"

// Record é um registro plano produzido pela normalização das respostas do
// Sankhya: as chaves são os nomes de campo declarados no metadata da consulta.
// Campos ausentes na linha original não existem no mapa (ausente != vazio).
type Record map[string]string

// Get retorna o valor do campo ou vazio quando o campo não existe.
func (r Record) Get(key string) string {
	return r[key]
}

// Has indica se o campo foi populado na linha original.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// Float converte o campo para float64, retornando zero quando o campo está
// ausente ou não é numérico (mesmo comportamento do parseFloat(x) || 0).
func (r Record) Float(key string) float64 {
	value, err := strconv.ParseFloat(r[key], 64)
	if err != nil {
		return 0
	}
	return value
}

// Int converte o campo para int, retornando zero quando ausente ou inválido.
func (r Record) Int(key string) int {
	value, err := strconv.Atoi(r[key])
	if err != nil {
		return 0
	}
	return value
}
