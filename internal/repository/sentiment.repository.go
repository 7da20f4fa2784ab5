package repository

import (
	"context"
	"fmt"
	"iposcreener/internal/domain"
	"iposcreener/pkg/analysis"
	"time"
)

type SentimentRepository interface {
	Score(ctx context.Context, companyName string) (*domain.SentimentData, error)
}

type sentimentRepositoryHandler struct {
	Client analysis.Client
}

func NewSentimentRepository(client analysis.Client) SentimentRepository {
	return sentimentRepositoryHandler{Client: client}
}

func (h sentimentRepositoryHandler) Score(ctx context.Context, companyName string) (*domain.SentimentData, error) {
	response, err := h.Client.ScoreSentiment(ctx, analysis.SentimentRequest{CompanyName: companyName})
	if err != nil {
		return nil, fmt.Errorf("failed to score sentiment for %s: %w", companyName, err)
	}

	vaderScore := 0.0
	if response.VaderScore != nil {
		vaderScore = *response.VaderScore
	}
	now := time.Now().UTC()

	return &domain.SentimentData{
		VaderScore:     &vaderScore,
		RedditMentions: response.RedditMentions,
		NewsHeadlines:  response.NewsHeadlines,
		ScrapedAt:      &now,
	}, nil
}
