package calculator

import "iposcreener/internal/domain"

// DefaultSectorBaseline is the neutral midpoint used for sectors with no
// history, so that every record can be compared
var DefaultSectorBaseline = domain.SectorBaseline{
	AverageOFSRatio:       0.5,
	AverageSentimentScore: 0.0,
}

// ResolveSectorBaseline returns the baseline keyed by sector, or the
// default baseline when the sector is absent or unknown
func ResolveSectorBaseline(sector *string, baselines map[string]domain.SectorBaseline) domain.SectorBaseline {
	if sector == nil {
		return DefaultSectorBaseline
	}
	if b, ok := baselines[*sector]; ok {
		return b
	}
	return DefaultSectorBaseline
}

// SectorBaselineMap keys baselines by sector. The first baseline wins
// if a sector is repeated
func SectorBaselineMap(baselines []domain.SectorBaseline) map[string]domain.SectorBaseline {
	out := make(map[string]domain.SectorBaseline, len(baselines))
	for _, b := range baselines {
		if _, ok := out[b.Sector]; ok {
			continue
		}
		out[b.Sector] = b
	}
	return out
}
