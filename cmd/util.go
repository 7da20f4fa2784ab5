package cmd

import (
	"database/sql"
	"fmt"
	"iposcreener/api"
	integration_tests "iposcreener/integration-tests"
	"iposcreener/internal/calculator"
	"iposcreener/internal/logger"
	"iposcreener/internal/repository"
	l1_service "iposcreener/internal/service/l1"
	l2_service "iposcreener/internal/service/l2"
	l3_service "iposcreener/internal/service/l3"
	"iposcreener/internal/util"
	"iposcreener/pkg/analysis"
	"log"
	"os"
	"strings"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
	_ = handler.Logger.Sync()
}

func InitializeDependencies() (*api.ApiHandler, *util.Secrets, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	liveQueryRepository := repository.NewLiveQueryRepository(dbConn)
	sectorAverageRepository := repository.NewSectorAverageRepository(dbConn)

	analysisBaseUrl := secrets.Analysis.BaseUrl
	if strings.EqualFold(os.Getenv("IPO_ENV"), "test") {
		analysisBaseUrl = integration_tests.NewAnalysisWorkerForTests().URL
	}

	analysisClient := analysis.NewClient(
		analysisBaseUrl,
		secrets.Analysis.Timeout,
		secrets.Analysis.RequestsPerSecond,
	)
	drhpRepository := repository.NewDrhpRepository(analysisClient)
	sentimentRepository := repository.NewSentimentRepository(analysisClient)
	predictionRepository := repository.NewPredictionRepository(analysisClient)

	alertEmailRepository, err := repository.NewAlertEmailRepository(secrets.SES.Region, secrets.SES.FromEmail)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create alert email repository: %w", err)
	}

	thresholds := calculator.RiskThresholds{
		OFSMargin:       secrets.Risk.OfsMargin,
		SentimentMargin: secrets.Risk.SentimentMargin,
	}

	sectorBaselineService := l1_service.NewSectorBaselineService(sectorAverageRepository, liveQueryRepository)
	dashboardService := l2_service.NewDashboardService(
		liveQueryRepository,
		sectorAverageRepository,
		thresholds,
		secrets.Query.ListLimit,
	)
	queryService := l3_service.NewQueryService(
		liveQueryRepository,
		sectorAverageRepository,
		drhpRepository,
		sentimentRepository,
		predictionRepository,
		l3_service.QueryServiceConfig{
			Thresholds:   thresholds,
			DedupeWindow: secrets.Query.DedupeWindow,
		},
	)
	alertService := l3_service.NewAlertService(dashboardService, alertEmailRepository, secrets.SES.Recipients)

	apiHandler := &api.ApiHandler{
		Db:                        dbConn,
		Logger:                    logger.New(),
		ApiRequestRepository:      repository.ApiRequestRepositoryHandler{},
		LatencyTrackingRepository: repository.NewLatencyTrackingRepository(dbConn),
		QueryService:              queryService,
		AlertService:              alertService,
		DashboardService:          dashboardService,
		SectorBaselineService:     sectorBaselineService,
		JwtDecodeToken:            secrets.Jwt,
	}

	return apiHandler, secrets, nil
}
