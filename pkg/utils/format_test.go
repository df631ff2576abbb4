package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{name: "Valor inteiro sem centavos", value: 500, expected: "$500"},
		{name: "Valor com separador de milhar", value: 12500, expected: "$12,500"},
		{name: "Valor com centavos é arredondado", value: 499.6, expected: "$500"},
		{name: "Valor negativo", value: -1200, expected: "-$1,200"},
		{name: "Zero", value: 0, expected: "$0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(tt.value))
		})
	}
}

func TestFormatCurrencyCents(t *testing.T) {
	assert.Equal(t, "$49.90", FormatCurrencyCents(49.9))
	assert.Equal(t, "$1,234.56", FormatCurrencyCents(1234.56))
	assert.Equal(t, "$100.00", FormatCurrencyCents(100))
}

func TestFormatSignedCurrency(t *testing.T) {
	assert.Equal(t, "+$500", FormatSignedCurrency(500))
	assert.Equal(t, "-$500", FormatSignedCurrency(-500))
	assert.Equal(t, "+$0", FormatSignedCurrency(0))
}

func TestFormatSignedInt(t *testing.T) {
	assert.Equal(t, "+5", FormatSignedInt(5))
	assert.Equal(t, "-5", FormatSignedInt(-5))
	assert.Equal(t, "+0", FormatSignedInt(0))
}
