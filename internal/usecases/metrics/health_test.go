package metrics

import (
	"math"
	"testing"

	"github.com/founderhq/founderhq-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func floatPtr(f float64) *float64 {
	return &f
}

func signalByMetric(signals []*domain.HealthSignal, metric string) *domain.HealthSignal {
	for _, signal := range signals {
		if signal.Metric == metric {
			return signal
		}
	}
	return nil
}

func TestEvaluateHealthSignals(t *testing.T) {
	tests := []struct {
		name     string
		metrics  *domain.SaaSMetrics
		validate func(t *testing.T, signals []*domain.HealthSignal)
	}{
		{
			name:    "Métricas nulas produzem lista vazia",
			metrics: nil,
			validate: func(t *testing.T, signals []*domain.HealthSignal) {
				assert.Empty(t, signals)
			},
		},
		{
			name: "Runway abaixo de 3 meses gera alerta",
			metrics: &domain.SaaSMetrics{
				RunwayMonths: 2.5,
			},
			validate: func(t *testing.T, signals []*domain.HealthSignal) {
				signal := signalByMetric(signals, "runway")
				assert.NotNil(t, signal)
				assert.Equal(t, domain.HealthLevelWarning, signal.Level)
			},
		},
		{
			name: "Runway de 12 meses ou mais gera sucesso",
			metrics: &domain.SaaSMetrics{
				RunwayMonths: 18,
			},
			validate: func(t *testing.T, signals []*domain.HealthSignal) {
				signal := signalByMetric(signals, "runway")
				assert.NotNil(t, signal)
				assert.Equal(t, domain.HealthLevelSuccess, signal.Level)
			},
		},
		{
			name: "Runway entre 3 e 12 meses não gera sinal",
			metrics: &domain.SaaSMetrics{
				RunwayMonths: 6,
			},
			validate: func(t *testing.T, signals []*domain.HealthSignal) {
				assert.Nil(t, signalByMetric(signals, "runway"))
			},
		},
		{
			name: "Runway infinito gera sucesso",
			metrics: &domain.SaaSMetrics{
				RunwayMonths:    math.Inf(1),
				RunwayUnlimited: true,
			},
			validate: func(t *testing.T, signals []*domain.HealthSignal) {
				signal := signalByMetric(signals, "runway")
				assert.NotNil(t, signal)
				assert.Equal(t, domain.HealthLevelSuccess, signal.Level)
			},
		},
		{
			name: "Razão LTV:CAC de 3 ou mais gera sucesso",
			metrics: &domain.SaaSMetrics{
				RunwayMonths: 6,
				LTVCACRatio:  floatPtr(3.5),
			},
			validate: func(t *testing.T, signals []*domain.HealthSignal) {
				signal := signalByMetric(signals, "ltv_cac_ratio")
				assert.NotNil(t, signal)
				assert.Equal(t, domain.HealthLevelSuccess, signal.Level)
			},
		},
		{
			name: "Razão LTV:CAC abaixo de 3 gera alerta",
			metrics: &domain.SaaSMetrics{
				RunwayMonths: 6,
				LTVCACRatio:  floatPtr(1.2),
			},
			validate: func(t *testing.T, signals []*domain.HealthSignal) {
				signal := signalByMetric(signals, "ltv_cac_ratio")
				assert.NotNil(t, signal)
				assert.Equal(t, domain.HealthLevelWarning, signal.Level)
			},
		},
		{
			name: "Razão LTV:CAC indisponível não gera sinal",
			metrics: &domain.SaaSMetrics{
				RunwayMonths: 6,
				LTVCACRatio:  nil,
			},
			validate: func(t *testing.T, signals []*domain.HealthSignal) {
				assert.Nil(t, signalByMetric(signals, "ltv_cac_ratio"))
			},
		},
		{
			name: "Payback acima de 12 meses gera alerta",
			metrics: &domain.SaaSMetrics{
				RunwayMonths:     6,
				CACPaybackMonths: floatPtr(15),
			},
			validate: func(t *testing.T, signals []*domain.HealthSignal) {
				signal := signalByMetric(signals, "cac_payback")
				assert.NotNil(t, signal)
				assert.Equal(t, domain.HealthLevelWarning, signal.Level)
			},
		},
		{
			name: "Payback de até 12 meses gera sucesso",
			metrics: &domain.SaaSMetrics{
				RunwayMonths:     6,
				CACPaybackMonths: floatPtr(8),
			},
			validate: func(t *testing.T, signals []*domain.HealthSignal) {
				signal := signalByMetric(signals, "cac_payback")
				assert.NotNil(t, signal)
				assert.Equal(t, domain.HealthLevelSuccess, signal.Level)
			},
		},
		{
			name: "Crescimento acima de 20% gera sucesso",
			metrics: &domain.SaaSMetrics{
				RunwayMonths: 6,
				GrowthRate:   35,
			},
			validate: func(t *testing.T, signals []*domain.HealthSignal) {
				signal := signalByMetric(signals, "growth_rate")
				assert.NotNil(t, signal)
				assert.Equal(t, domain.HealthLevelSuccess, signal.Level)
			},
		},
		{
			name: "Crescimento negativo gera alerta",
			metrics: &domain.SaaSMetrics{
				RunwayMonths: 6,
				GrowthRate:   -5,
			},
			validate: func(t *testing.T, signals []*domain.HealthSignal) {
				signal := signalByMetric(signals, "growth_rate")
				assert.NotNil(t, signal)
				assert.Equal(t, domain.HealthLevelWarning, signal.Level)
			},
		},
		{
			name: "Crescimento entre 0 e 20% não gera sinal",
			metrics: &domain.SaaSMetrics{
				RunwayMonths: 6,
				GrowthRate:   10,
			},
			validate: func(t *testing.T, signals []*domain.HealthSignal) {
				assert.Nil(t, signalByMetric(signals, "growth_rate"))
			},
		},
		{
			name: "Sinais conflitantes são exibidos simultaneamente sem precedência",
			metrics: &domain.SaaSMetrics{
				RunwayMonths:     2,
				LTVCACRatio:      floatPtr(4),
				CACPaybackMonths: floatPtr(20),
				GrowthRate:       30,
			},
			validate: func(t *testing.T, signals []*domain.HealthSignal) {
				assert.Len(t, signals, 4)
				assert.Equal(t, domain.HealthLevelWarning, signalByMetric(signals, "runway").Level)
				assert.Equal(t, domain.HealthLevelSuccess, signalByMetric(signals, "ltv_cac_ratio").Level)
				assert.Equal(t, domain.HealthLevelWarning, signalByMetric(signals, "cac_payback").Level)
				assert.Equal(t, domain.HealthLevelSuccess, signalByMetric(signals, "growth_rate").Level)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signals := EvaluateHealthSignals(tt.metrics)
			tt.validate(t, signals)
		})
	}
}
