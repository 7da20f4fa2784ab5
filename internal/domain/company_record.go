package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CompanyRecord is one analyzed IPO query, as stored by the query
// pipeline. It never carries risk flags - those only exist on an
// EvaluatedRecord, computed against a baseline snapshot
type CompanyRecord struct {
	QueryID       uuid.UUID
	CompanyName   string
	Symbol        string
	Sector        *string
	QueryDate     time.Time
	DrhpData      *DrhpData
	SentimentData *SentimentData
	MlPrediction  *MlPrediction
}

// DrhpData is the offer structure pulled from the draft red herring
// prospectus. OfsRatio is the share of the issue that is promoter exit
// rather than fresh capital, nil when the filing could not be parsed
type DrhpData struct {
	OfsRatio       *float64        `json:"ofsRatio"`
	FreshIssue     decimal.Decimal `json:"freshIssue"`
	TotalIssueSize decimal.Decimal `json:"totalIssueSize"`
	ExtractedAt    *time.Time      `json:"extractedAt,omitempty"`
	PdfSource      *string         `json:"pdfSource,omitempty"`
}

type SentimentData struct {
	VaderScore     *float64   `json:"vaderScore"`
	RedditMentions int        `json:"redditMentions"`
	NewsHeadlines  int        `json:"newsHeadlines"`
	ScrapedAt      *time.Time `json:"scrapedAt,omitempty"`
}

type MlPrediction struct {
	SuccessProbability float64    `json:"successProbability"`
	RiskScore          float64    `json:"riskScore"`
	PredictedAt        *time.Time `json:"predictedAt,omitempty"`
}

// PredictionInput is the feature vector sent to the listing
// success model
type PredictionInput struct {
	IssueSize          float64 `json:"issueSize"`
	QibSubscription    float64 `json:"qibSubscription"`
	HniSubscription    float64 `json:"hniSubscription"`
	RetailSubscription float64 `json:"retailSubscription"`
	PeRatio            float64 `json:"peRatio"`
	OfsPercentage      float64 `json:"ofsPercentage"`
	GmpListingDay      float64 `json:"gmpListingDay"`
}

// OfsRatio returns the promoter-exit ratio if the record has one
func (r CompanyRecord) OfsRatio() (float64, bool) {
	if r.DrhpData == nil || r.DrhpData.OfsRatio == nil {
		return 0, false
	}
	return *r.DrhpData.OfsRatio, true
}

// VaderScore returns the sentiment score if the record has one
func (r CompanyRecord) VaderScore() (float64, bool) {
	if r.SentimentData == nil || r.SentimentData.VaderScore == nil {
		return 0, false
	}
	return *r.SentimentData.VaderScore, true
}

// SectorBaseline is the average OFS ratio and sentiment across the
// historical IPOs of a sector. It is recomputed offline and read-only
// to the evaluation pass
type SectorBaseline struct {
	Sector                string
	AverageOFSRatio       float64
	AverageSentimentScore float64
	SampleSize            int
	UpdatedAt             *time.Time
}
