package calculator

import (
	"iposcreener/internal/domain"

	"github.com/google/uuid"
)

// ProjectPoints maps records onto the OFS ratio vs sentiment plane.
// Records missing either metric are left off the chart; zero is a
// real value and is plotted
func ProjectPoints(records []domain.EvaluatedRecord) []domain.VisualizationPoint {
	out := []domain.VisualizationPoint{}
	for _, r := range records {
		ofsRatio, ok := r.Record.OfsRatio()
		if !ok {
			continue
		}
		vaderScore, ok := r.Record.VaderScore()
		if !ok {
			continue
		}

		var successProbability *float64
		if r.Record.MlPrediction != nil {
			p := r.Record.MlPrediction.SuccessProbability
			successProbability = &p
		}

		out = append(out, domain.VisualizationPoint{
			X:                  ofsRatio,
			Y:                  vaderScore,
			Label:              r.Record.CompanyName,
			Symbol:             r.Record.Symbol,
			RiskLevel:          r.RiskLevel,
			Color:              r.RiskLevel.Color(),
			SuccessProbability: successProbability,
			QueryID:            r.Record.QueryID,
		})
	}
	return out
}

// LookupRecord resolves a point's back-reference against the current
// collection. ok is false when the record is gone, e.g. after a refresh
func LookupRecord(queryID uuid.UUID, records []domain.EvaluatedRecord) (domain.EvaluatedRecord, bool) {
	for _, r := range records {
		if r.Record.QueryID == queryID {
			return r, true
		}
	}
	return domain.EvaluatedRecord{}, false
}
