// Package risk scores login attempts and picks the authentication method
// the score calls for.
package risk

import "github.com/go-authgate/riskgate/internal/models"

// MaxScore is the ceiling every score is clamped to.
const MaxScore = 100

// Violation is a rule that contributed to a score.
type Violation struct {
	Rule   string `json:"rule"`
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}

// Assessment is an itemised score.
type Assessment struct {
	Score      int         `json:"score"`
	Violations []Violation `json:"violations"`
}

// Scorer sums the contributions of every matching rule. All rules are
// evaluated; there is no early return.
type Scorer struct {
	rules []Rule
}

// NewScorer creates a scorer over the given rules, or DefaultRules when
// none are given.
func NewScorer(rules ...Rule) *Scorer {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Scorer{rules: rules}
}

// Score returns the clamped score in [0, MaxScore].
func (s *Scorer) Score(uc models.UserContext) int {
	return s.Assess(uc).Score
}

// Assess returns the clamped score together with the rules that fired.
func (s *Scorer) Assess(uc models.UserContext) Assessment {
	result := Assessment{Violations: make([]Violation, 0, len(s.rules))}

	total := 0
	for _, rule := range s.rules {
		points := rule.Evaluate(uc)
		if points <= 0 {
			continue
		}
		total += points
		result.Violations = append(result.Violations, Violation{
			Rule:   rule.Name(),
			Score:  points,
			Reason: rule.Description(),
		})
	}

	result.Score = min(total, MaxScore)
	return result
}
