// Package pricing computes a market-informed price recommendation for a
// draft listing from the currently available listings in its category.
package pricing

import (
	"fmt"

	"github.com/videgrenier/marketplace-service/internal/model"
)

type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
)

type Suggestion struct {
	RecommendedPrice int      `json:"recommendedPrice"`
	MarketMin        int      `json:"marketMin"`
	MarketMax        int      `json:"marketMax"`
	Comparables      int      `json:"comparables"`
	Severity         Severity `json:"severity"`
	Message          string   `json:"message"`
	SaleLikelihood   int      `json:"saleLikelihood"`
	EstimatedDelay   string   `json:"estimatedDelay"`
}

var conditionFactor = map[model.Condition]float64{
	model.ConditionNew:         1.00,
	model.ConditionVeryGood:    0.85,
	model.ConditionGood:        0.70,
	model.ConditionFair:        0.55,
	model.ConditionNeedsRepair: 0.35,
}

const defaultConditionFactor = 0.70

// Suggest is deterministic and has no side effects. comparablePrices are
// the prices of available same-category listings; zero-priced listings
// must already be excluded by the caller.
func Suggest(draftPrice int, condition model.Condition, comparablePrices []int) Suggestion {
	var avg, min, max float64
	if len(comparablePrices) > 0 {
		min = float64(comparablePrices[0])
		max = float64(comparablePrices[0])
		var sum float64
		for _, p := range comparablePrices {
			fp := float64(p)
			sum += fp
			if fp < min {
				min = fp
			}
			if fp > max {
				max = fp
			}
		}
		avg = sum / float64(len(comparablePrices))
	} else {
		// Cold start: synthesize a market so the comparison is never empty.
		avg = float64(draftPrice) * 0.75
		min = float64(draftPrice) * 0.60
		max = float64(draftPrice) * 0.90
	}

	factor, ok := conditionFactor[condition]
	if !ok {
		factor = defaultConditionFactor
	}
	recommended := int(avg * factor)

	var deviation float64
	if recommended > 0 {
		deviation = float64(draftPrice-recommended) / float64(recommended) * 100
	}

	s := Suggestion{
		RecommendedPrice: recommended,
		MarketMin:        int(min),
		MarketMax:        int(max),
		Comparables:      len(comparablePrices),
	}
	switch {
	case deviation > 20:
		s.Severity = SeverityWarning
		s.Message = fmt.Sprintf("your price is %d%% above the market", int(deviation))
		s.SaleLikelihood = 35
		s.EstimatedDelay = "15+ days"
	case deviation > 10:
		s.Severity = SeverityInfo
		s.Message = fmt.Sprintf("your price is %d%% above the market", int(deviation))
		s.SaleLikelihood = 60
		s.EstimatedDelay = "7-10 days"
	case deviation < -10:
		s.Severity = SeveritySuccess
		s.Message = "excellent price, fast sale likely"
		s.SaleLikelihood = 90
		s.EstimatedDelay = "2-3 days"
	default:
		s.Severity = SeveritySuccess
		s.Message = "price within market average"
		s.SaleLikelihood = 75
		s.EstimatedDelay = "3-5 days"
	}
	return s
}
