package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// PercentageOf calcula a participação percentual de part sobre total,
// retornando 0 quando o total é zero em vez de propagar NaN
func PercentageOf(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return RoundWithTwoDecimalPlace(part / total * 100)
}
