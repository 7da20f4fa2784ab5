package calculator

import "iposcreener/internal/domain"

// RiskThresholds are the margins a metric must clear above its sector
// average before it is flagged. The zero value flags anything strictly
// above the average
type RiskThresholds struct {
	OFSMargin       float64
	SentimentMargin float64
}

// EvaluateRiskFlags compares one company's metrics against its sector
// baseline. A missing metric, or a missing sub-object, never raises a flag
func EvaluateRiskFlags(
	drhp *domain.DrhpData,
	sentiment *domain.SentimentData,
	baseline domain.SectorBaseline,
	thresholds RiskThresholds,
) domain.RiskFlags {
	flags := domain.RiskFlags{}

	if drhp != nil && drhp.OfsRatio != nil {
		flags.HighOFSRatio = *drhp.OfsRatio > baseline.AverageOFSRatio+thresholds.OFSMargin
	}
	if sentiment != nil && sentiment.VaderScore != nil {
		flags.HighHypeScore = *sentiment.VaderScore > baseline.AverageSentimentScore+thresholds.SentimentMargin
	}
	flags.ExceedsSectorAverage = flags.HighOFSRatio && flags.HighHypeScore

	return flags
}

// ClassifyRisk reduces flags to a level. ExceedsSectorAverage has to be
// checked first since it implies both sub-flags
func ClassifyRisk(flags domain.RiskFlags) domain.RiskLevel {
	switch {
	case flags.ExceedsSectorAverage:
		return domain.RiskLevelHigh
	case flags.HighOFSRatio || flags.HighHypeScore:
		return domain.RiskLevelMedium
	default:
		return domain.RiskLevelLow
	}
}

func EvaluateRecord(
	record domain.CompanyRecord,
	baselines map[string]domain.SectorBaseline,
	thresholds RiskThresholds,
) domain.EvaluatedRecord {
	baseline := ResolveSectorBaseline(record.Sector, baselines)
	flags := EvaluateRiskFlags(record.DrhpData, record.SentimentData, baseline, thresholds)
	return domain.EvaluatedRecord{
		Record:    record,
		Baseline:  baseline,
		RiskFlags: flags,
		RiskLevel: ClassifyRisk(flags),
	}
}

// EvaluateRecords enriches every record, preserving input order
func EvaluateRecords(
	records []domain.CompanyRecord,
	baselines map[string]domain.SectorBaseline,
	thresholds RiskThresholds,
) []domain.EvaluatedRecord {
	out := make([]domain.EvaluatedRecord, 0, len(records))
	for _, r := range records {
		out = append(out, EvaluateRecord(r, baselines, thresholds))
	}
	return out
}
