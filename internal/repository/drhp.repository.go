package repository

import (
	"context"
	"fmt"
	"iposcreener/internal/domain"
	"iposcreener/pkg/analysis"
	"time"

	"github.com/shopspring/decimal"
)

// the parser reports a missing OFS split as an equal split
const defaultOfsRatio = 0.5

type DrhpRepository interface {
	Extract(ctx context.Context, drhpUrl string) (*domain.DrhpData, error)
}

type drhpRepositoryHandler struct {
	Client analysis.Client
}

func NewDrhpRepository(client analysis.Client) DrhpRepository {
	return drhpRepositoryHandler{Client: client}
}

func (h drhpRepositoryHandler) Extract(ctx context.Context, drhpUrl string) (*domain.DrhpData, error) {
	response, err := h.Client.ExtractDrhp(ctx, analysis.DrhpRequest{DrhpUrl: drhpUrl})
	if err != nil {
		return nil, fmt.Errorf("failed to extract drhp data: %w", err)
	}

	ofsRatio := defaultOfsRatio
	if response.OfsRatio != nil {
		ofsRatio = *response.OfsRatio
	}
	now := time.Now().UTC()

	return &domain.DrhpData{
		OfsRatio:       &ofsRatio,
		FreshIssue:     decimal.NewFromFloat(response.FreshIssue),
		TotalIssueSize: decimal.NewFromFloat(response.TotalIssueSize),
		ExtractedAt:    &now,
		PdfSource:      response.PdfSource,
	}, nil
}
