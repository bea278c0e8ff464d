package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/videgrenier/marketplace-service/internal/model"
)

func TestSuggest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		draftPrice  int
		condition   model.Condition
		comparables []int
		want        Suggestion
	}{
		{
			name:        "market average with good condition",
			draftPrice:  1400,
			condition:   model.ConditionGood,
			comparables: []int{1000, 2000, 3000},
			want: Suggestion{
				RecommendedPrice: 1400,
				MarketMin:        1000,
				MarketMax:        3000,
				Comparables:      3,
				Severity:         SeveritySuccess,
				Message:          "price within market average",
				SaleLikelihood:   75,
				EstimatedDelay:   "3-5 days",
			},
		},
		{
			name:        "overpriced beyond 20 percent",
			draftPrice:  1700,
			condition:   model.ConditionGood,
			comparables: []int{1000, 2000, 3000},
			want: Suggestion{
				RecommendedPrice: 1400,
				MarketMin:        1000,
				MarketMax:        3000,
				Comparables:      3,
				Severity:         SeverityWarning,
				Message:          "your price is 21% above the market",
				SaleLikelihood:   35,
				EstimatedDelay:   "15+ days",
			},
		},
		{
			name:        "underpriced beyond 10 percent",
			draftPrice:  1000,
			condition:   model.ConditionGood,
			comparables: []int{1000, 2000, 3000},
			want: Suggestion{
				RecommendedPrice: 1400,
				MarketMin:        1000,
				MarketMax:        3000,
				Comparables:      3,
				Severity:         SeveritySuccess,
				Message:          "excellent price, fast sale likely",
				SaleLikelihood:   90,
				EstimatedDelay:   "2-3 days",
			},
		},
		{
			name:        "exactly 20 percent above falls in info band",
			draftPrice:  1200,
			condition:   model.ConditionNew,
			comparables: []int{1000},
			want: Suggestion{
				RecommendedPrice: 1000,
				MarketMin:        1000,
				MarketMax:        1000,
				Comparables:      1,
				Severity:         SeverityInfo,
				Message:          "your price is 20% above the market",
				SaleLikelihood:   60,
				EstimatedDelay:   "7-10 days",
			},
		},
		{
			name:        "exactly 10 percent above stays within market",
			draftPrice:  1100,
			condition:   model.ConditionNew,
			comparables: []int{1000},
			want: Suggestion{
				RecommendedPrice: 1000,
				MarketMin:        1000,
				MarketMax:        1000,
				Comparables:      1,
				Severity:         SeveritySuccess,
				Message:          "price within market average",
				SaleLikelihood:   75,
				EstimatedDelay:   "3-5 days",
			},
		},
		{
			name:        "exactly 10 percent below stays within market",
			draftPrice:  900,
			condition:   model.ConditionNew,
			comparables: []int{1000},
			want: Suggestion{
				RecommendedPrice: 1000,
				MarketMin:        1000,
				MarketMax:        1000,
				Comparables:      1,
				Severity:         SeveritySuccess,
				Message:          "price within market average",
				SaleLikelihood:   75,
				EstimatedDelay:   "3-5 days",
			},
		},
		{
			name:       "cold start synthesizes a market from the draft price",
			draftPrice: 1000,
			condition:  model.ConditionNew,
			want: Suggestion{
				RecommendedPrice: 750,
				MarketMin:        600,
				MarketMax:        900,
				Comparables:      0,
				Severity:         SeverityWarning,
				Message:          "your price is 33% above the market",
				SaleLikelihood:   35,
				EstimatedDelay:   "15+ days",
			},
		},
		{
			name:        "unknown condition uses the default factor",
			draftPrice:  700,
			condition:   model.Condition("ANTIQUE"),
			comparables: []int{1000},
			want: Suggestion{
				RecommendedPrice: 700,
				MarketMin:        1000,
				MarketMax:        1000,
				Comparables:      1,
				Severity:         SeveritySuccess,
				Message:          "price within market average",
				SaleLikelihood:   75,
				EstimatedDelay:   "3-5 days",
			},
		},
		{
			name:       "zero recommendation never divides",
			draftPrice: 0,
			condition:  model.ConditionNeedsRepair,
			want: Suggestion{
				RecommendedPrice: 0,
				MarketMin:        0,
				MarketMax:        0,
				Comparables:      0,
				Severity:         SeveritySuccess,
				Message:          "price within market average",
				SaleLikelihood:   75,
				EstimatedDelay:   "3-5 days",
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Suggest(tt.draftPrice, tt.condition, tt.comparables)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSuggestConditionFactors(t *testing.T) {
	t.Parallel()

	comparables := []int{1000, 1000} // avg 1000

	tests := []struct {
		condition model.Condition
		want      int
	}{
		{model.ConditionNew, 1000},
		{model.ConditionVeryGood, 850},
		{model.ConditionGood, 700},
		{model.ConditionFair, 550},
		{model.ConditionNeedsRepair, 350},
	}
	for _, tt := range tests {
		got := Suggest(1000, tt.condition, comparables)
		require.Equal(t, tt.want, got.RecommendedPrice, "condition %s", tt.condition)
	}
}

func TestSuggestDeterministic(t *testing.T) {
	t.Parallel()

	first := Suggest(1500, model.ConditionVeryGood, []int{800, 1200, 2500})
	for i := 0; i < 5; i++ {
		require.Equal(t, first, Suggest(1500, model.ConditionVeryGood, []int{800, 1200, 2500}))
	}
}
