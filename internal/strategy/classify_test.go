package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loi-rocket/dealflow-cli/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		est  float64
		ncts float64
		debt float64
		want model.AcquisitionStrategy
	}{
		{"no debt and proceeds above cash figure", 30000, 20000, 0, model.StrategySellerFinancing},
		{"no debt and proceeds below cash figure", 10000, 20000, 0, model.StrategyOther},
		{"strong proceeds with real debt", 126000, 20000, 150000, model.StrategyHybrid},
		{"strong proceeds with near-payoff debt", 126000, 20000, 14000, model.StrategySellerFinancing},
		{"near-payoff boundary stays hybrid", 126000, 20000, 15000, model.StrategyHybrid},
		{"proceeds within 2x of cash figure", 25000, 20000, 100000, model.StrategySubjectTo},
		{"proceeds below cash figure with debt", 5000, 20000, 100000, model.StrategySubjectTo},
		{"negative proceeds with debt", -8000, 1000, 100000, model.StrategySubjectTo},
		{"everything zero", 0, 0, 0, model.StrategyOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.est, tt.ncts, tt.debt)
			assert.Equal(t, tt.want, got)
		})
	}
}

// The classifier is total: every input lands on one of the four reachable
// labels and Problem never comes out of it.
func TestClassifyExhaustive(t *testing.T) {
	reachable := map[model.AcquisitionStrategy]bool{
		model.StrategySellerFinancing: true,
		model.StrategyHybrid:          true,
		model.StrategySubjectTo:       true,
		model.StrategyOther:           true,
	}

	values := []float64{-1e6, -50000, -5000, 0, 1, 15000, 20000, 30000, 40000, 126000, 1e9}
	for _, est := range values {
		for _, ncts := range values {
			for _, debt := range values {
				got := Classify(est, ncts, debt)
				assert.True(t, reachable[got], "est=%v ncts=%v debt=%v got %q", est, ncts, debt, got)
				assert.NotEmpty(t, got)
				assert.NotEqual(t, model.StrategyProblem, got)
			}
		}
	}
}
