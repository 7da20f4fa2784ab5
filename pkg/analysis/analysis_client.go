package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Client talks to the offline analysis workers: the DRHP parser, the
// sentiment scraper and the listing success model
type Client struct {
	HttpClient *http.Client
	BaseUrl    string
	Limiter    *rate.Limiter
}

func NewClient(baseUrl string, timeout time.Duration, requestsPerSecond float64) Client {
	return Client{
		HttpClient: &http.Client{Timeout: timeout},
		BaseUrl:    baseUrl,
		Limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

type DrhpRequest struct {
	DrhpUrl string `json:"drhpUrl"`
}

type DrhpResponse struct {
	OfsRatio       *float64 `json:"ofsRatio"`
	FreshIssue     float64  `json:"freshIssue"`
	TotalIssueSize float64  `json:"totalIssueSize"`
	PdfSource      *string  `json:"pdfSource"`
}

type SentimentRequest struct {
	CompanyName string `json:"companyName"`
}

type SentimentResponse struct {
	VaderScore     *float64 `json:"vaderScore"`
	RedditMentions int      `json:"redditMentions"`
	NewsHeadlines  int      `json:"newsHeadlines"`
}

type PredictRequest struct {
	IssueSize          float64 `json:"issueSize"`
	QibSubscription    float64 `json:"qibSubscription"`
	HniSubscription    float64 `json:"hniSubscription"`
	RetailSubscription float64 `json:"retailSubscription"`
	PeRatio            float64 `json:"peRatio"`
	OfsPercentage      float64 `json:"ofsPercentage"`
	GmpListingDay      float64 `json:"gmpListingDay"`
}

type PredictResponse struct {
	Probability *float64 `json:"probability"`
	RiskScore   *float64 `json:"riskScore"`
	Error       *string  `json:"error"`
}

func (c Client) ExtractDrhp(ctx context.Context, req DrhpRequest) (*DrhpResponse, error) {
	out := DrhpResponse{}
	if err := c.post(ctx, "/drhp", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c Client) ScoreSentiment(ctx context.Context, req SentimentRequest) (*SentimentResponse, error) {
	out := SentimentResponse{}
	if err := c.post(ctx, "/sentiment", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c Client) Predict(ctx context.Context, req PredictRequest) (*PredictResponse, error) {
	out := PredictResponse{}
	if err := c.post(ctx, "/predict", req, &out); err != nil {
		return nil, err
	}
	if out.Error != nil {
		return nil, fmt.Errorf("model returned error: %s", *out.Error)
	}
	return &out, nil
}

func (c Client) post(ctx context.Context, path string, body any, out any) error {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return fmt.Errorf("failed to wait for rate limiter: %w", err)
		}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseUrl+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	response, err := c.HttpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", path, err)
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode != http.StatusOK {
		type errResponse struct {
			Error string `json:"error"`
		}
		errJson := errResponse{}
		err = json.Unmarshal(responseBytes, &errJson)
		if err != nil {
			return fmt.Errorf("received status code %d and failed to read error: %w", response.StatusCode, err)
		}
		return fmt.Errorf("%s failed with status code %d: %s", path, response.StatusCode, errJson.Error)
	}

	err = json.Unmarshal(responseBytes, out)
	if err != nil {
		return fmt.Errorf("failed to unmarshal %s response: %w", path, err)
	}

	return nil
}
