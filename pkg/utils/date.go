package utils

import (
	"fmt"
	"time"
)

// ToSankhyaDate converte uma data ISO (YYYY-MM-DD) para o formato aceito nas
// expressões de filtro do Sankhya (DD/MM/YYYY). A conversão é puramente
// textual: datas malformadas são devolvidas como chegaram e o Sankhya é quem
// rejeita a expressão.
func ToSankhyaDate(isoDate string) string {
	parsed, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return parsed.Format("02/01/2006")
}

// CurrentHourMinute retorna a hora local no formato HH:mm exigido pelo
// endpoint de pedidos.
func CurrentHourMinute() string {
	now := time.Now()
	return fmt.Sprintf("%02d:%02d", now.Hour(), now.Minute())
}
