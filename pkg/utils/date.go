package utils

import (
	"fmt"
	"time"
)

// ParseDate interpreta uma data no formato ISO YYYY-MM-DD vinda da query string
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseMonth interpreta um período mensal no formato YYYY-MM e retorna o primeiro
// dia do mês correspondente
func ParseMonth(period string) (time.Time, error) {
	t, err := time.Parse("2006-01", period)
	if err != nil {
		return time.Time{}, fmt.Errorf("período inválido %q (esperado YYYY-MM): %w", period, err)
	}
	return t, nil
}

// MonthKey retorna a chave mensal (YYYY-MM) de uma data
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}
