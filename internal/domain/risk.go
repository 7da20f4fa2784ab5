package domain

import "github.com/google/uuid"

type RiskFlags struct {
	HighOFSRatio         bool `json:"highOFSRatio"`
	HighHypeScore        bool `json:"highHypeScore"`
	ExceedsSectorAverage bool `json:"exceedsSectorAverage"`
}

type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// Color is the dashboard render colour for the level
func (l RiskLevel) Color() string {
	switch l {
	case RiskLevelHigh:
		return "#ff6b6b"
	case RiskLevelMedium:
		return "#ffa500"
	default:
		return "#4ecdc4"
	}
}

// EvaluatedRecord is a CompanyRecord enriched by one evaluation pass.
// It is rebuilt from scratch every time the record or its baseline
// changes, never updated in place
type EvaluatedRecord struct {
	Record    CompanyRecord
	Baseline  SectorBaseline
	RiskFlags RiskFlags
	RiskLevel RiskLevel
}

type HighRiskSummary struct {
	HighRiskCount   int
	HighRiskRecords []EvaluatedRecord
}

// VisualizationPoint places one record on the OFS ratio (x) vs
// sentiment (y) scatter plot. QueryID points back at the record
type VisualizationPoint struct {
	X                  float64
	Y                  float64
	Label              string
	Symbol             string
	RiskLevel          RiskLevel
	Color              string
	SuccessProbability *float64
	QueryID            uuid.UUID
}

// Dashboard is the full output of one evaluation pass over a snapshot
type Dashboard struct {
	Records  []EvaluatedRecord
	HighRisk HighRiskSummary
	Points   []VisualizationPoint
}
