package l2_service

import (
	"context"
	"fmt"
	"iposcreener/internal/calculator"
	"iposcreener/internal/domain"
	"iposcreener/internal/logger"
	"iposcreener/internal/repository"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DashboardService runs the evaluation pass. Every call re-reads the
// records and baselines, so flags always reflect the current snapshot
type DashboardService interface {
	Build(ctx context.Context) (*domain.Dashboard, error)
	// Lookup resolves a selected chart point. nil means the point is
	// no longer in the latest snapshot
	Lookup(ctx context.Context, queryID uuid.UUID) (*domain.EvaluatedRecord, error)
}

type dashboardServiceHandler struct {
	LiveQueryRepository     repository.LiveQueryRepository
	SectorAverageRepository repository.SectorAverageRepository
	Thresholds              calculator.RiskThresholds
	Limit                   int64
}

func NewDashboardService(
	liveQueryRepository repository.LiveQueryRepository,
	sectorAverageRepository repository.SectorAverageRepository,
	thresholds calculator.RiskThresholds,
	limit int64,
) DashboardService {
	return dashboardServiceHandler{
		LiveQueryRepository:     liveQueryRepository,
		SectorAverageRepository: sectorAverageRepository,
		Thresholds:              thresholds,
		Limit:                   limit,
	}
}

func (h dashboardServiceHandler) Build(ctx context.Context) (*domain.Dashboard, error) {
	start := time.Now()
	dashboard, err := h.build(ctx)
	evaluationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		evaluationPasses.WithLabelValues("error").Inc()
		return nil, err
	}

	evaluationPasses.WithLabelValues("ok").Inc()
	recordsEvaluated.Add(float64(len(dashboard.Records)))
	highRiskRecords.Set(float64(dashboard.HighRisk.HighRiskCount))

	return dashboard, nil
}

func (h dashboardServiceHandler) build(ctx context.Context) (*domain.Dashboard, error) {
	profile, _ := domain.GetProfile(ctx)
	log := logger.FromContext(ctx)

	fetchSpan, endFetchSpan := profile.StartNewSpan("fetch snapshot")
	fetchCtx := domain.NewCtxWithSubProfile(ctx, fetchSpan)
	fetchProfile, _ := domain.GetProfile(fetchCtx)

	var (
		records   []domain.CompanyRecord
		baselines []domain.SectorBaseline
	)
	g, gctx := errgroup.WithContext(fetchCtx)
	g.Go(func() error {
		_, endSpan := fetchProfile.StartSpan("list queries")
		defer endSpan()

		limit := h.Limit
		var err error
		records, err = h.LiveQueryRepository.List(gctx, repository.LiveQueryListFilter{Limit: &limit})
		if err != nil {
			return fmt.Errorf("failed to list queries: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		_, endSpan := fetchProfile.StartSpan("list sector baselines")
		defer endSpan()

		var err error
		baselines, err = h.SectorAverageRepository.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to list sector baselines: %w", err)
		}
		return nil
	})
	err := g.Wait()
	endFetchSpan()
	if err != nil {
		return nil, err
	}

	_, endEvalSpan := profile.StartNewSpan("evaluate")
	dashboard := calculator.BuildDashboard(records, baselines, h.Thresholds)
	endEvalSpan()

	log.Debugf("evaluated %d queries against %d sector baselines, %d high risk", len(dashboard.Records), len(baselines), dashboard.HighRisk.HighRiskCount)

	return &dashboard, nil
}

func (h dashboardServiceHandler) Lookup(ctx context.Context, queryID uuid.UUID) (*domain.EvaluatedRecord, error) {
	dashboard, err := h.Build(ctx)
	if err != nil {
		return nil, err
	}

	record, ok := calculator.LookupRecord(queryID, dashboard.Records)
	if !ok {
		return nil, nil
	}
	return &record, nil
}
