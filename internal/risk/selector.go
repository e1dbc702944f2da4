package risk

import (
	"fmt"

	"github.com/go-authgate/riskgate/internal/models"
)

// RiskThreshold is the lowest score that requires MFA.
const RiskThreshold = 50

// Selector maps a score to an authentication method.
type Selector struct {
	threshold int
}

// NewSelector creates a selector with a custom threshold.
func NewSelector(threshold int) *Selector {
	return &Selector{threshold: threshold}
}

// Threshold returns the configured threshold.
func (s *Selector) Threshold() int {
	return s.threshold
}

// Select picks MFA when score >= threshold. The reason always embeds the score.
func (s *Selector) Select(score int) models.AuthMethod {
	if score >= s.threshold {
		return models.AuthMethod{
			Method:      models.MethodMFA,
			RequiresMFA: true,
			Reason:      fmt.Sprintf("High risk score: %d", score),
		}
	}
	return models.AuthMethod{
		Method:      models.MethodPassword,
		RequiresMFA: false,
		Reason:      fmt.Sprintf("Low risk score: %d", score),
	}
}

var defaultSelector = NewSelector(RiskThreshold)

// Select applies RiskThreshold.
func Select(score int) models.AuthMethod {
	return defaultSelector.Select(score)
}
