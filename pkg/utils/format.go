package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// printer formata números com separadores de milhar de acordo com o locale.
// Os valores monetários do produto são exibidos em dólar.
var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency formata um valor em dólares inteiros, sem centavos.
// Usado nos cartões de KPI: FormatCurrency(12500) == "$12,500".
func FormatCurrency(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return printer.Sprintf("%s$%v", sign, number.Decimal(v, number.MaxFractionDigits(0)))
}

// FormatCurrencyCents formata um valor em dólares com duas casas decimais.
// Usado em listas itemizadas de despesas: FormatCurrencyCents(49.9) == "$49.90".
func FormatCurrencyCents(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return printer.Sprintf("%s$%v", sign, number.Decimal(v,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatSignedCurrency formata um delta monetário com sinal explícito e sem
// centavos: FormatSignedCurrency(500) == "+$500".
func FormatSignedCurrency(v float64) string {
	if v < 0 {
		return "-" + FormatCurrency(-v)
	}
	return "+" + FormatCurrency(v)
}

// FormatSignedInt formata um delta inteiro com sinal explícito:
// FormatSignedInt(5) == "+5".
func FormatSignedInt(v int) string {
	if v < 0 {
		return printer.Sprintf("%v", number.Decimal(v))
	}
	return "+" + printer.Sprintf("%v", number.Decimal(v))
}
