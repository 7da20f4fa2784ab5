package calculator

import "iposcreener/internal/domain"

// SummarizeHighRisk collects the records whose OFS ratio and hype both
// exceed their sector average. Medium-level records are not included
func SummarizeHighRisk(records []domain.EvaluatedRecord) domain.HighRiskSummary {
	out := domain.HighRiskSummary{
		HighRiskRecords: []domain.EvaluatedRecord{},
	}
	for _, r := range records {
		if r.RiskFlags.ExceedsSectorAverage {
			out.HighRiskRecords = append(out.HighRiskRecords, r)
		}
	}
	out.HighRiskCount = len(out.HighRiskRecords)
	return out
}
