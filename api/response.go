package api

import (
	"iposcreener/internal/domain"
	"time"

	"github.com/google/uuid"
)

type drhpDataResponse struct {
	OfsRatio       *float64   `json:"ofsRatio"`
	FreshIssue     float64    `json:"freshIssue"`
	TotalIssueSize float64    `json:"totalIssueSize"`
	ExtractedAt    *time.Time `json:"extractedAt,omitempty"`
	PdfSource      *string    `json:"pdfSource,omitempty"`
}

type ipoQueryResponse struct {
	ID            uuid.UUID             `json:"_id"`
	CompanyName   string                `json:"companyName"`
	Symbol        string                `json:"symbol"`
	Sector        *string               `json:"sector"`
	QueryDate     time.Time             `json:"queryDate"`
	DrhpData      *drhpDataResponse     `json:"drhpData"`
	SentimentData *domain.SentimentData `json:"sentimentData"`
	MlPrediction  *domain.MlPrediction  `json:"mlPrediction"`
	RiskFlags     domain.RiskFlags      `json:"riskFlags"`
	RiskLevel     domain.RiskLevel      `json:"riskLevel"`
}

func ipoQueryResponseFromDomain(r domain.EvaluatedRecord) ipoQueryResponse {
	out := ipoQueryResponse{
		ID:            r.Record.QueryID,
		CompanyName:   r.Record.CompanyName,
		Symbol:        r.Record.Symbol,
		Sector:        r.Record.Sector,
		QueryDate:     r.Record.QueryDate,
		SentimentData: r.Record.SentimentData,
		MlPrediction:  r.Record.MlPrediction,
		RiskFlags:     r.RiskFlags,
		RiskLevel:     r.RiskLevel,
	}
	if d := r.Record.DrhpData; d != nil {
		out.DrhpData = &drhpDataResponse{
			OfsRatio:       d.OfsRatio,
			FreshIssue:     d.FreshIssue.InexactFloat64(),
			TotalIssueSize: d.TotalIssueSize.InexactFloat64(),
			ExtractedAt:    d.ExtractedAt,
			PdfSource:      d.PdfSource,
		}
	}
	return out
}

func ipoQueryResponsesFromDomain(records []domain.EvaluatedRecord) []ipoQueryResponse {
	out := []ipoQueryResponse{}
	for _, r := range records {
		out = append(out, ipoQueryResponseFromDomain(r))
	}
	return out
}

type visualizationPointResponse struct {
	X                  float64          `json:"x"`
	Y                  float64          `json:"y"`
	Label              string           `json:"label"`
	Symbol             string           `json:"symbol"`
	RiskLevel          domain.RiskLevel `json:"riskLevel"`
	Color              string           `json:"color"`
	SuccessProbability *float64         `json:"successProbability"`
	QueryID            uuid.UUID        `json:"queryId"`
}

type highRiskResponse struct {
	Count   int                `json:"count"`
	Records []ipoQueryResponse `json:"records"`
}

type dashboardResponse struct {
	Records  []ipoQueryResponse           `json:"records"`
	HighRisk highRiskResponse             `json:"highRisk"`
	Points   []visualizationPointResponse `json:"points"`
}

func dashboardResponseFromDomain(d domain.Dashboard) dashboardResponse {
	points := []visualizationPointResponse{}
	for _, p := range d.Points {
		points = append(points, visualizationPointResponse{
			X:                  p.X,
			Y:                  p.Y,
			Label:              p.Label,
			Symbol:             p.Symbol,
			RiskLevel:          p.RiskLevel,
			Color:              p.Color,
			SuccessProbability: p.SuccessProbability,
			QueryID:            p.QueryID,
		})
	}
	return dashboardResponse{
		Records: ipoQueryResponsesFromDomain(d.Records),
		HighRisk: highRiskResponse{
			Count:   d.HighRisk.HighRiskCount,
			Records: ipoQueryResponsesFromDomain(d.HighRisk.HighRiskRecords),
		},
		Points: points,
	}
}
