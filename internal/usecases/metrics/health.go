package metrics

import (
	"fmt"
	"math"

	"github.com/founderhq/founderhq-api/internal/domain"
)

// Limiares das regras de saúde das métricas
const (
	runwayWarningMonths  = 3
	runwaySuccessMonths  = 12
	ltvCacSuccessRatio   = 3
	paybackWarningMonths = 12
	growthSuccessPercent = 20
)

// EvaluateHealthSignals aplica as regras de limiar a cada métrica de forma
// independente. Não há pontuação composta nem precedência: todos os sinais
// aplicáveis são retornados juntos.
func EvaluateHealthSignals(m *domain.SaaSMetrics) []*domain.HealthSignal {
	if m == nil {
		return []*domain.HealthSignal{}
	}

	signals := make([]*domain.HealthSignal, 0)

	if math.IsInf(m.RunwayMonths, 1) {
		signals = append(signals, &domain.HealthSignal{
			Metric:  "runway",
			Level:   domain.HealthLevelSuccess,
			Message: "Runway ilimitado: o burn rate atual é zero",
		})
	} else if m.RunwayMonths < runwayWarningMonths {
		signals = append(signals, &domain.HealthSignal{
			Metric:  "runway",
			Level:   domain.HealthLevelWarning,
			Message: fmt.Sprintf("Runway crítico: %.1f meses de caixa restantes", m.RunwayMonths),
		})
	} else if m.RunwayMonths >= runwaySuccessMonths {
		signals = append(signals, &domain.HealthSignal{
			Metric:  "runway",
			Level:   domain.HealthLevelSuccess,
			Message: fmt.Sprintf("Runway saudável: %.1f meses de caixa", m.RunwayMonths),
		})
	}

	if m.LTVCACRatio != nil {
		if *m.LTVCACRatio >= ltvCacSuccessRatio {
			signals = append(signals, &domain.HealthSignal{
				Metric:  "ltv_cac_ratio",
				Level:   domain.HealthLevelSuccess,
				Message: fmt.Sprintf("Razão LTV:CAC de %.1f indica aquisição eficiente", *m.LTVCACRatio),
			})
		} else {
			signals = append(signals, &domain.HealthSignal{
				Metric:  "ltv_cac_ratio",
				Level:   domain.HealthLevelWarning,
				Message: fmt.Sprintf("Razão LTV:CAC de %.1f abaixo do alvo de 3", *m.LTVCACRatio),
			})
		}
	}

	if m.CACPaybackMonths != nil {
		if *m.CACPaybackMonths > paybackWarningMonths {
			signals = append(signals, &domain.HealthSignal{
				Metric:  "cac_payback",
				Level:   domain.HealthLevelWarning,
				Message: fmt.Sprintf("Payback do CAC de %.1f meses acima do limite de 12", *m.CACPaybackMonths),
			})
		} else {
			signals = append(signals, &domain.HealthSignal{
				Metric:  "cac_payback",
				Level:   domain.HealthLevelSuccess,
				Message: fmt.Sprintf("Payback do CAC em %.1f meses", *m.CACPaybackMonths),
			})
		}
	}

	if m.GrowthRate > growthSuccessPercent {
		signals = append(signals, &domain.HealthSignal{
			Metric:  "growth_rate",
			Level:   domain.HealthLevelSuccess,
			Message: fmt.Sprintf("Crescimento de %.1f%% acima de %d%%", m.GrowthRate, growthSuccessPercent),
		})
	} else if m.GrowthRate < 0 {
		signals = append(signals, &domain.HealthSignal{
			Metric:  "growth_rate",
			Level:   domain.HealthLevelWarning,
			Message: fmt.Sprintf("Receita em queda: crescimento de %.1f%%", m.GrowthRate),
		})
	}

	return signals
}
