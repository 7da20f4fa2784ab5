package l3_service

import (
	"context"
	"fmt"
	"iposcreener/internal/calculator"
	"iposcreener/internal/domain"
	"iposcreener/internal/logger"
	"iposcreener/internal/repository"
	"iposcreener/internal/util"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const DefaultSector = "General"

type QueryService interface {
	// Submit analyzes a company and stores the result. A symbol queried
	// within the dedupe window returns the stored query instead
	Submit(ctx context.Context, input SubmitQueryInput) (*SubmitQueryResult, error)
}

type SubmitQueryInput struct {
	CompanyName string
	Symbol      string
	Sector      string
	DrhpUrl     string
}

type SubmitQueryResult struct {
	Record domain.EvaluatedRecord
	// Cached is set when a recent query for the symbol was returned
	Cached bool
}

type QueryServiceConfig struct {
	Thresholds   calculator.RiskThresholds
	DedupeWindow time.Duration
}

type queryServiceHandler struct {
	LiveQueryRepository     repository.LiveQueryRepository
	SectorAverageRepository repository.SectorAverageRepository
	DrhpRepository          repository.DrhpRepository
	SentimentRepository     repository.SentimentRepository
	PredictionRepository    repository.PredictionRepository
	Config                  QueryServiceConfig
	Now                     func() time.Time
}

func NewQueryService(
	liveQueryRepository repository.LiveQueryRepository,
	sectorAverageRepository repository.SectorAverageRepository,
	drhpRepository repository.DrhpRepository,
	sentimentRepository repository.SentimentRepository,
	predictionRepository repository.PredictionRepository,
	config QueryServiceConfig,
) QueryService {
	return queryServiceHandler{
		LiveQueryRepository:     liveQueryRepository,
		SectorAverageRepository: sectorAverageRepository,
		DrhpRepository:          drhpRepository,
		SentimentRepository:     sentimentRepository,
		PredictionRepository:    predictionRepository,
		Config:                  config,
		Now:                     time.Now,
	}
}

func (h queryServiceHandler) Submit(ctx context.Context, input SubmitQueryInput) (*SubmitQueryResult, error) {
	log := logger.FromContext(ctx)

	input.CompanyName = strings.TrimSpace(input.CompanyName)
	input.Symbol = strings.TrimSpace(input.Symbol)
	input.Sector = strings.TrimSpace(input.Sector)
	if input.CompanyName == "" || input.Symbol == "" {
		submissions.WithLabelValues("invalid").Inc()
		return nil, ValidationError{Message: "Company name and symbol are required"}
	}
	if input.Sector == "" {
		input.Sector = DefaultSector
	}

	now := h.Now().UTC()

	existing, err := h.LiveQueryRepository.GetLatestBySymbol(ctx, input.Symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing query: %w", err)
	}

	baselines, err := h.SectorAverageRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get sector baselines: %w", err)
	}
	baselineMap := calculator.SectorBaselineMap(baselines)

	if existing != nil && util.WithinWindow(existing.QueryDate, now, h.Config.DedupeWindow) {
		log.Infof("returning query for %s from %s", input.Symbol, existing.QueryDate.Format(time.RFC3339))
		submissions.WithLabelValues("cached").Inc()
		return &SubmitQueryResult{
			Record: calculator.EvaluateRecord(*existing, baselineMap, h.Config.Thresholds),
			Cached: true,
		}, nil
	}

	record := domain.CompanyRecord{
		QueryID:     uuid.New(),
		CompanyName: input.CompanyName,
		Symbol:      input.Symbol,
		Sector:      &input.Sector,
		QueryDate:   now,
	}
	record.DrhpData, record.SentimentData = h.analyze(ctx, input)

	predictionInput := newPredictionInput(record.DrhpData, record.SentimentData)
	record.MlPrediction, err = timeCollaborator("prediction", func() (*domain.MlPrediction, error) {
		return h.PredictionRepository.Predict(ctx, predictionInput)
	})
	if err != nil {
		log.Warnf("prediction unavailable for %s: %v", input.Symbol, err)
	}

	evaluated := calculator.EvaluateRecord(record, baselineMap, h.Config.Thresholds)

	stored, err := h.LiveQueryRepository.Add(ctx, record, evaluated.RiskFlags)
	if err != nil {
		submissions.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to save query: %w", err)
	}
	evaluated.Record = *stored

	submissions.WithLabelValues("created").Inc()
	return &SubmitQueryResult{Record: evaluated}, nil
}

// analyze calls the DRHP parser and the sentiment scraper concurrently.
// A failed collaborator leaves its sub-object nil
func (h queryServiceHandler) analyze(ctx context.Context, input SubmitQueryInput) (*domain.DrhpData, *domain.SentimentData) {
	log := logger.FromContext(ctx)

	var (
		drhpData      *domain.DrhpData
		sentimentData *domain.SentimentData
	)
	g := errgroup.Group{}
	g.Go(func() error {
		var err error
		drhpData, err = timeCollaborator("drhp", func() (*domain.DrhpData, error) {
			return h.DrhpRepository.Extract(ctx, input.DrhpUrl)
		})
		if err != nil {
			log.Warnf("drhp data unavailable for %s: %v", input.Symbol, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		sentimentData, err = timeCollaborator("sentiment", func() (*domain.SentimentData, error) {
			return h.SentimentRepository.Score(ctx, input.CompanyName)
		})
		if err != nil {
			log.Warnf("sentiment data unavailable for %s: %v", input.Symbol, err)
		}
		return nil
	})
	g.Wait()

	return drhpData, sentimentData
}

func timeCollaborator[T any](name string, fn func() (*T, error)) (*T, error) {
	start := time.Now()
	out, err := fn()
	status := "ok"
	if err != nil {
		status = "error"
		out = nil
	}
	collaboratorDuration.WithLabelValues(name, status).Observe(time.Since(start).Seconds())
	return out, err
}

// newPredictionInput fills the model's feature vector. Subscription
// figures and P/E are not known before listing, so neutral values are
// used
func newPredictionInput(drhp *domain.DrhpData, sentiment *domain.SentimentData) domain.PredictionInput {
	input := domain.PredictionInput{
		QibSubscription:    1.0,
		HniSubscription:    1.0,
		RetailSubscription: 1.0,
		PeRatio:            20.0,
		OfsPercentage:      0.5,
		GmpListingDay:      0,
	}
	if drhp != nil {
		input.IssueSize = drhp.TotalIssueSize.InexactFloat64()
		if drhp.OfsRatio != nil {
			input.OfsPercentage = *drhp.OfsRatio
		}
	}
	if sentiment != nil && sentiment.VaderScore != nil {
		input.GmpListingDay = *sentiment.VaderScore
	}
	return input
}
