package engine

import "atmosai/internal/types"

// Aggregate combines per-factor classifications into one overall risk
// verdict using a count-based escalation rule:
//
//  1. Two or more high-risk factors escalate the overall level to high.
//  2. Otherwise one high-risk factor, or three or more moderate-risk
//     factors, yield moderate.
//  3. Otherwise the overall level is low.
//
// Factors lists the condition labels of every non-low classification in
// input order.
func Aggregate(classifications []types.FactorClassification) types.OverallRisk {
	var highCount, moderateCount int
	for _, c := range classifications {
		switch c.Risk {
		case types.RiskHigh:
			highCount++
		case types.RiskModerate:
			moderateCount++
		}
	}

	var level types.RiskLevel
	switch {
	case highCount >= 2:
		level = types.RiskHigh
	case highCount >= 1 || moderateCount >= 3:
		level = types.RiskModerate
	default:
		level = types.RiskLow
	}

	factors := make([]string, 0, len(classifications))
	for _, c := range classifications {
		if c.Risk != types.RiskLow {
			factors = append(factors, c.Condition)
		}
	}

	return types.OverallRisk{
		Level:           level,
		Factors:         factors,
		Recommendations: overallRecommendations[level],
	}
}
