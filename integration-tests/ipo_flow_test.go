package integration_tests

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"iposcreener/api"
	"iposcreener/internal/calculator"
	"iposcreener/internal/db/models/postgres/public/table"
	"iposcreener/internal/domain"
	"iposcreener/internal/repository"
	l1_service "iposcreener/internal/service/l1"
	l2_service "iposcreener/internal/service/l2"
	l3_service "iposcreener/internal/service/l3"
	"iposcreener/internal/util"
	"iposcreener/pkg/analysis"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-jet/jet/v2/postgres"
	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func loadSectorAverages(suffix string) ([]domain.SectorBaseline, error) {
	f, err := os.Open("sample_sector_averages.csv")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	type Row struct {
		Sector                string  `csv:"sector"`
		AverageOfsRatio       float64 `csv:"average_ofs_ratio"`
		AverageSentimentScore float64 `csv:"average_sentiment_score"`
		SampleSize            int     `csv:"sample_size"`
	}
	rows := []Row{}
	err = gocsv.UnmarshalFile(f, &rows)
	if err != nil {
		return nil, err
	}

	out := []domain.SectorBaseline{}
	for _, row := range rows {
		out = append(out, domain.SectorBaseline{
			Sector:                row.Sector + " " + suffix,
			AverageOFSRatio:       row.AverageOfsRatio,
			AverageSentimentScore: row.AverageSentimentScore,
			SampleSize:            row.SampleSize,
		})
	}
	return out, nil
}

type recordingEmailRepository struct {
	subjects []string
}

func (r *recordingEmailRepository) SendEmail(ctx context.Context, to []string, subject string, body string) error {
	r.subjects = append(r.subjects, subject)
	return nil
}

func hitEndpoint(baseUrl string, route string, method string, payload interface{}, target interface{}) (int, error) {
	var body io.Reader
	if payload != nil {
		payloadBytes, err := json.Marshal(payload)
		if err != nil {
			return 0, err
		}
		body = bytes.NewReader(payloadBytes)
	}

	req, err := http.NewRequest(method, baseUrl+route, body)
	if err != nil {
		return 0, err
	}
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, err
	}

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, fmt.Errorf("failed with response body: %s", string(responseBody))
	}

	if target != nil {
		err = json.Unmarshal(responseBody, target)
		if err != nil {
			return resp.StatusCode, err
		}
	}

	return resp.StatusCode, nil
}

type queryResponse struct {
	ID           uuid.UUID        `json:"_id"`
	Symbol       string           `json:"symbol"`
	Sector       *string          `json:"sector"`
	RiskLevel    domain.RiskLevel `json:"riskLevel"`
	RiskFlags    domain.RiskFlags `json:"riskFlags"`
	DrhpData     map[string]any   `json:"drhpData"`
	MlPrediction *struct {
		SuccessProbability float64 `json:"successProbability"`
	} `json:"mlPrediction"`
}

func cleanup(db *sql.DB, symbols []string, sectors []string) {
	symbolExprs := []postgres.Expression{}
	for _, s := range symbols {
		symbolExprs = append(symbolExprs, postgres.String(s))
	}
	table.LiveQuery.DELETE().WHERE(table.LiveQuery.Symbol.IN(symbolExprs...)).Exec(db)

	sectorExprs := []postgres.Expression{}
	for _, s := range sectors {
		sectorExprs = append(sectorExprs, postgres.String(s))
	}
	table.SectorAverage.DELETE().WHERE(table.SectorAverage.Sector.IN(sectorExprs...)).Exec(db)
}

func Test_ipoQueryFlow(t *testing.T) {
	db, err := util.NewTestDb()
	require.NoError(t, err)
	if err := db.Ping(); err != nil {
		t.Skipf("test db unavailable: %v", err)
	}

	suffix := strings.ToUpper(uuid.NewString()[:6])
	baselines, err := loadSectorAverages(suffix)
	require.NoError(t, err)
	fintech := baselines[0].Sector
	flowSymbol := "FLOW" + suffix
	noDrhpSymbol := "NODRHP" + suffix
	t.Cleanup(func() {
		cleanup(db, []string{flowSymbol, noDrhpSymbol}, []string{baselines[0].Sector, baselines[1].Sector})
	})

	worker := NewAnalysisWorkerForTests()
	defer worker.Close()
	client := analysis.NewClient(worker.URL, 5*time.Second, 50)

	liveQueryRepository := repository.NewLiveQueryRepository(db)
	sectorAverageRepository := repository.NewSectorAverageRepository(db)
	emailRepository := &recordingEmailRepository{}

	sectorBaselineService := l1_service.NewSectorBaselineService(sectorAverageRepository, liveQueryRepository)
	dashboardService := l2_service.NewDashboardService(liveQueryRepository, sectorAverageRepository, calculator.RiskThresholds{}, 50)
	handler := api.ApiHandler{
		Db:                        db,
		ApiRequestRepository:      repository.ApiRequestRepositoryHandler{},
		LatencyTrackingRepository: repository.NewLatencyTrackingRepository(db),
		QueryService: l3_service.NewQueryService(
			liveQueryRepository,
			sectorAverageRepository,
			repository.NewDrhpRepository(client),
			repository.NewSentimentRepository(client),
			repository.NewPredictionRepository(client),
			l3_service.QueryServiceConfig{DedupeWindow: time.Hour},
		),
		AlertService:          l3_service.NewAlertService(dashboardService, emailRepository, []string{"risk@example.com"}),
		DashboardService:      dashboardService,
		SectorBaselineService: sectorBaselineService,
	}

	ctx := context.Background()
	require.NoError(t, sectorBaselineService.Import(ctx, baselines))

	gin.SetMode(gin.TestMode)
	server := httptest.NewServer(handler.InitializeRouterEngine())
	defer server.Close()

	// new query is analyzed and flagged against its sector
	created := queryResponse{}
	_, err = hitEndpoint(server.URL, "/ipo/query", http.MethodPost, map[string]string{
		"companyName": "Flow Payments Ltd",
		"symbol":      flowSymbol,
		"sector":      fintech,
		"drhpUrl":     "https://sebi.gov.in/flow.pdf",
	}, &created)
	require.NoError(t, err)
	require.Equal(t, domain.RiskLevelHigh, created.RiskLevel)
	require.True(t, created.RiskFlags.ExceedsSectorAverage)
	require.NotNil(t, created.MlPrediction)
	require.Equal(t, 0.38, created.MlPrediction.SuccessProbability)

	// resubmitting inside the window returns the stored query
	again := queryResponse{}
	_, err = hitEndpoint(server.URL, "/ipo/query", http.MethodPost, map[string]string{
		"companyName": "Flow Payments Ltd",
		"symbol":      flowSymbol,
	}, &again)
	require.NoError(t, err)
	require.Equal(t, created.ID, again.ID)

	// failed drhp extraction still stores the query
	noDrhp := queryResponse{}
	_, err = hitEndpoint(server.URL, "/ipo/query", http.MethodPost, map[string]string{
		"companyName": "No Filing Ltd",
		"symbol":      noDrhpSymbol,
		"sector":      fintech,
		"drhpUrl":     "https://sebi.gov.in/missing.pdf",
	}, &noDrhp)
	require.NoError(t, err)
	require.Nil(t, noDrhp.DrhpData)
	require.Equal(t, domain.RiskLevelMedium, noDrhp.RiskLevel)

	dashboard := struct {
		Points []struct {
			QueryID uuid.UUID `json:"queryId"`
			Color   string    `json:"color"`
		} `json:"points"`
	}{}
	_, err = hitEndpoint(server.URL, "/ipo/dashboard", http.MethodGet, nil, &dashboard)
	require.NoError(t, err)
	found := false
	for _, p := range dashboard.Points {
		if p.QueryID == created.ID {
			found = true
			require.Equal(t, "#ff6b6b", p.Color)
		}
		require.NotEqual(t, noDrhp.ID, p.QueryID)
	}
	require.True(t, found)

	selected := queryResponse{}
	_, err = hitEndpoint(server.URL, "/ipo/dashboard/points/"+created.ID.String(), http.MethodGet, nil, &selected)
	require.NoError(t, err)
	require.Equal(t, flowSymbol, selected.Symbol)

	code, err := hitEndpoint(server.URL, "/ipo/dashboard/points/"+uuid.NewString(), http.MethodGet, nil, nil)
	require.Error(t, err)
	require.Equal(t, 404, code)

	// raising the sector average re-evaluates stored queries on read
	raised := baselines[0]
	raised.AverageOFSRatio = 0.9
	require.NoError(t, sectorBaselineService.Import(ctx, []domain.SectorBaseline{raised}))

	queries := []queryResponse{}
	_, err = hitEndpoint(server.URL, "/ipo/queries", http.MethodGet, nil, &queries)
	require.NoError(t, err)
	for _, q := range queries {
		if q.ID == created.ID {
			require.Equal(t, domain.RiskLevelMedium, q.RiskLevel)
			require.False(t, q.RiskFlags.HighOFSRatio)
		}
	}

	_, err = hitEndpoint(server.URL, "/ipo/alerts/send", http.MethodPost, nil, nil)
	require.NoError(t, err)
}
