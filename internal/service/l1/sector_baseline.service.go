package l1_service

import (
	"context"
	"fmt"
	"iposcreener/internal/calculator"
	"iposcreener/internal/domain"
	"iposcreener/internal/logger"
	"iposcreener/internal/repository"
	"strings"
	"time"
)

// SectorBaselineService owns the sector_average table. Baselines are
// only written by the offline jobs here; the evaluation pass reads them
// through List
type SectorBaselineService interface {
	List(ctx context.Context) ([]domain.SectorBaseline, error)
	// Recompute averages every stored query by sector and upserts the
	// result
	Recompute(ctx context.Context) ([]domain.SectorBaseline, error)
	Import(ctx context.Context, baselines []domain.SectorBaseline) error
}

type sectorBaselineServiceHandler struct {
	SectorAverageRepository repository.SectorAverageRepository
	LiveQueryRepository     repository.LiveQueryRepository
	Now                     func() time.Time
}

func NewSectorBaselineService(
	sectorAverageRepository repository.SectorAverageRepository,
	liveQueryRepository repository.LiveQueryRepository,
) SectorBaselineService {
	return sectorBaselineServiceHandler{
		SectorAverageRepository: sectorAverageRepository,
		LiveQueryRepository:     liveQueryRepository,
		Now:                     time.Now,
	}
}

func (h sectorBaselineServiceHandler) List(ctx context.Context) ([]domain.SectorBaseline, error) {
	baselines, err := h.SectorAverageRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sector baselines: %w", err)
	}
	return baselines, nil
}

func (h sectorBaselineServiceHandler) Recompute(ctx context.Context) ([]domain.SectorBaseline, error) {
	log := logger.FromContext(ctx)

	records, err := h.LiveQueryRepository.List(ctx, repository.LiveQueryListFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list historical queries: %w", err)
	}

	baselines, err := calculator.ComputeSectorBaselines(records, h.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to compute sector baselines: %w", err)
	}

	err = h.SectorAverageRepository.Upsert(ctx, baselines)
	if err != nil {
		return nil, fmt.Errorf("failed to save sector baselines: %w", err)
	}

	log.Infof("recomputed %d sector baselines from %d queries", len(baselines), len(records))

	return baselines, nil
}

func (h sectorBaselineServiceHandler) Import(ctx context.Context, baselines []domain.SectorBaseline) error {
	now := h.Now().UTC()
	toSave := []domain.SectorBaseline{}
	seen := map[string]bool{}
	for i, b := range baselines {
		if err := validateBaseline(b); err != nil {
			return fmt.Errorf("invalid baseline at row %d: %w", i+1, err)
		}
		if seen[b.Sector] {
			return fmt.Errorf("invalid baseline at row %d: duplicate sector %s", i+1, b.Sector)
		}
		seen[b.Sector] = true
		if b.UpdatedAt == nil {
			b.UpdatedAt = &now
		}
		toSave = append(toSave, b)
	}

	err := h.SectorAverageRepository.Upsert(ctx, toSave)
	if err != nil {
		return fmt.Errorf("failed to import sector baselines: %w", err)
	}

	return nil
}

func validateBaseline(b domain.SectorBaseline) error {
	if strings.TrimSpace(b.Sector) == "" {
		return fmt.Errorf("sector is required")
	}
	if b.AverageOFSRatio < 0 || b.AverageOFSRatio > 1 {
		return fmt.Errorf("average ofs ratio %f for %s is outside [0, 1]", b.AverageOFSRatio, b.Sector)
	}
	if b.AverageSentimentScore < -1 || b.AverageSentimentScore > 1 {
		return fmt.Errorf("average sentiment %f for %s is outside [-1, 1]", b.AverageSentimentScore, b.Sector)
	}
	if b.SampleSize < 0 {
		return fmt.Errorf("sample size for %s is negative", b.Sector)
	}
	return nil
}
