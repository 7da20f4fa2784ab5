package calculator

import "iposcreener/internal/domain"

// BuildDashboard runs one full evaluation pass over a snapshot. Nothing
// is carried over between calls
func BuildDashboard(
	records []domain.CompanyRecord,
	baselines []domain.SectorBaseline,
	thresholds RiskThresholds,
) domain.Dashboard {
	evaluated := EvaluateRecords(records, SectorBaselineMap(baselines), thresholds)
	return domain.Dashboard{
		Records:  evaluated,
		HighRisk: SummarizeHighRisk(evaluated),
		Points:   ProjectPoints(evaluated),
	}
}
