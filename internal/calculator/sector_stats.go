package calculator

import (
	"errors"
	"fmt"
	"iposcreener/internal/domain"
	"sort"
	"strings"
	"time"

	"github.com/montanaflynn/stats"
)

// ComputeSectorBaselines averages OFS ratio and sentiment per sector
// over historical records. A sector whose records never carry one of
// the metrics keeps the default midpoint for it. Records without a
// sector are skipped
func ComputeSectorBaselines(records []domain.CompanyRecord, now time.Time) ([]domain.SectorBaseline, error) {
	type sectorSamples struct {
		ofsRatios   []float64
		vaderScores []float64
		numRecords  int
	}
	samplesBySector := map[string]*sectorSamples{}

	for _, r := range records {
		if r.Sector == nil || strings.TrimSpace(*r.Sector) == "" {
			continue
		}
		s, ok := samplesBySector[*r.Sector]
		if !ok {
			s = &sectorSamples{}
			samplesBySector[*r.Sector] = s
		}
		s.numRecords++
		if v, ok := r.OfsRatio(); ok {
			s.ofsRatios = append(s.ofsRatios, v)
		}
		if v, ok := r.VaderScore(); ok {
			s.vaderScores = append(s.vaderScores, v)
		}
	}

	out := []domain.SectorBaseline{}
	for sector, s := range samplesBySector {
		avgOfs, err := meanOrDefault(s.ofsRatios, DefaultSectorBaseline.AverageOFSRatio)
		if err != nil {
			return nil, fmt.Errorf("failed to average ofs ratio for sector %s: %w", sector, err)
		}
		avgSentiment, err := meanOrDefault(s.vaderScores, DefaultSectorBaseline.AverageSentimentScore)
		if err != nil {
			return nil, fmt.Errorf("failed to average sentiment for sector %s: %w", sector, err)
		}

		updatedAt := now
		out = append(out, domain.SectorBaseline{
			Sector:                sector,
			AverageOFSRatio:       avgOfs,
			AverageSentimentScore: avgSentiment,
			SampleSize:            s.numRecords,
			UpdatedAt:             &updatedAt,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Sector < out[j].Sector
	})

	return out, nil
}

func meanOrDefault(values []float64, fallback float64) (float64, error) {
	mean, err := stats.Mean(values)
	if errors.Is(err, stats.ErrEmptyInput) {
		return fallback, nil
	}
	if err != nil {
		return 0, err
	}
	return stats.Round(mean, 4)
}
