package repository

import (
	"context"
	"encoding/json"
	"iposcreener/internal/domain"
	"iposcreener/pkg/analysis"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newAnalysisClient(t *testing.T, handler http.HandlerFunc) analysis.Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return analysis.NewClient(server.URL, 5*time.Second, 100)
}

func TestDrhpRepository_Extract(t *testing.T) {
	t.Run("maps offer structure", func(t *testing.T) {
		client := newAnalysisClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"ofsRatio":0.8,"freshIssue":200,"totalIssueSize":1000}`))
		})

		out, err := NewDrhpRepository(client).Extract(context.Background(), "https://example.com/drhp.pdf")
		require.NoError(t, err)
		require.Equal(t, 0.8, *out.OfsRatio)
		require.True(t, decimal.NewFromInt(200).Equal(out.FreshIssue))
		require.True(t, decimal.NewFromInt(1000).Equal(out.TotalIssueSize))
		require.NotNil(t, out.ExtractedAt)
		require.Nil(t, out.PdfSource)
	})

	t.Run("missing ofs ratio uses equal split", func(t *testing.T) {
		client := newAnalysisClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"totalIssueSize":500}`))
		})

		out, err := NewDrhpRepository(client).Extract(context.Background(), "")
		require.NoError(t, err)
		require.Equal(t, 0.5, *out.OfsRatio)
	})

	t.Run("service failure", func(t *testing.T) {
		client := newAnalysisClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":"parser offline"}`))
		})

		out, err := NewDrhpRepository(client).Extract(context.Background(), "")
		require.ErrorContains(t, err, "parser offline")
		require.Nil(t, out)
	})
}

func TestSentimentRepository_Score(t *testing.T) {
	client := newAnalysisClient(t, func(w http.ResponseWriter, r *http.Request) {
		req := analysis.SentimentRequest{}
		json.NewDecoder(r.Body).Decode(&req)
		if req.CompanyName != "Acme Ltd" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"unexpected company"}`))
			return
		}
		w.Write([]byte(`{"redditMentions":4,"newsHeadlines":2}`))
	})

	out, err := NewSentimentRepository(client).Score(context.Background(), "Acme Ltd")
	require.NoError(t, err)
	require.Equal(t, 0.0, *out.VaderScore)
	require.Equal(t, 4, out.RedditMentions)
	require.Equal(t, 2, out.NewsHeadlines)
	require.NotNil(t, out.ScrapedAt)
}

func TestPredictionRepository_Predict(t *testing.T) {
	t.Run("forwards feature vector", func(t *testing.T) {
		var received analysis.PredictRequest
		client := newAnalysisClient(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&received)
			w.Write([]byte(`{"probability":0.64}`))
		})

		out, err := NewPredictionRepository(client).Predict(context.Background(), domain.PredictionInput{
			IssueSize:          1000,
			QibSubscription:    1,
			HniSubscription:    1,
			RetailSubscription: 1,
			PeRatio:            20,
			OfsPercentage:      0.6,
			GmpListingDay:      0.3,
		})
		require.NoError(t, err)
		require.Equal(t, 0.64, out.SuccessProbability)
		require.Equal(t, 0.5, out.RiskScore)
		require.NotNil(t, out.PredictedAt)

		require.Equal(t, 1000.0, received.IssueSize)
		require.Equal(t, 0.6, received.OfsPercentage)
		require.Equal(t, 0.3, received.GmpListingDay)
	})

	t.Run("model error", func(t *testing.T) {
		client := newAnalysisClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"error":"model file missing"}`))
		})

		_, err := NewPredictionRepository(client).Predict(context.Background(), domain.PredictionInput{})
		require.ErrorContains(t, err, "model file missing")
	})
}
