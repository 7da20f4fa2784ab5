package repository

import (
	"context"
	"fmt"
	"iposcreener/internal/domain"
	"iposcreener/pkg/analysis"
	"time"
)

type PredictionRepository interface {
	Predict(ctx context.Context, input domain.PredictionInput) (*domain.MlPrediction, error)
}

type predictionRepositoryHandler struct {
	Client analysis.Client
}

func NewPredictionRepository(client analysis.Client) PredictionRepository {
	return predictionRepositoryHandler{Client: client}
}

func (h predictionRepositoryHandler) Predict(ctx context.Context, input domain.PredictionInput) (*domain.MlPrediction, error) {
	response, err := h.Client.Predict(ctx, analysis.PredictRequest{
		IssueSize:          input.IssueSize,
		QibSubscription:    input.QibSubscription,
		HniSubscription:    input.HniSubscription,
		RetailSubscription: input.RetailSubscription,
		PeRatio:            input.PeRatio,
		OfsPercentage:      input.OfsPercentage,
		GmpListingDay:      input.GmpListingDay,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to predict listing success: %w", err)
	}

	out := &domain.MlPrediction{
		SuccessProbability: 0.5,
		RiskScore:          0.5,
	}
	if response.Probability != nil {
		out.SuccessProbability = *response.Probability
	}
	if response.RiskScore != nil {
		out.RiskScore = *response.RiskScore
	}
	now := time.Now().UTC()
	out.PredictedAt = &now

	return out, nil
}
