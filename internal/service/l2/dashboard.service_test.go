package l2_service

import (
	"context"
	"fmt"
	"iposcreener/internal/calculator"
	"iposcreener/internal/domain"
	"iposcreener/internal/repository"
	mock_repository "iposcreener/internal/repository/mocks"
	"iposcreener/internal/util"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRecord(symbol, sector string, ofsRatio, vaderScore float64) domain.CompanyRecord {
	return domain.CompanyRecord{
		QueryID:       uuid.New(),
		CompanyName:   symbol + " Ltd",
		Symbol:        symbol,
		Sector:        util.StringPointer(sector),
		DrhpData:      &domain.DrhpData{OfsRatio: util.FloatPointer(ofsRatio)},
		SentimentData: &domain.SentimentData{VaderScore: util.FloatPointer(vaderScore)},
	}
}

func TestDashboardService_Build(t *testing.T) {
	t.Run("evaluates snapshot against current baselines", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		liveQueryRepository := mock_repository.NewMockLiveQueryRepository(ctrl)
		sectorAverageRepository := mock_repository.NewMockSectorAverageRepository(ctrl)
		handler := NewDashboardService(liveQueryRepository, sectorAverageRepository, calculator.RiskThresholds{}, 50)

		hot := newRecord("HOT", "Fintech", 0.8, 0.6)
		calm := newRecord("CALM", "Fintech", 0.2, -0.1)
		limit := int64(50)
		liveQueryRepository.EXPECT().
			List(gomock.Any(), repository.LiveQueryListFilter{Limit: &limit}).
			Return([]domain.CompanyRecord{hot, calm}, nil)
		sectorAverageRepository.EXPECT().
			List(gomock.Any()).
			Return([]domain.SectorBaseline{
				{Sector: "Fintech", AverageOFSRatio: 0.5, AverageSentimentScore: 0.1},
			}, nil)

		dashboard, err := handler.Build(context.Background())
		require.NoError(t, err)

		require.Len(t, dashboard.Records, 2)
		require.Equal(t, domain.RiskLevelHigh, dashboard.Records[0].RiskLevel)
		require.Equal(t, domain.RiskLevelLow, dashboard.Records[1].RiskLevel)
		require.Equal(t, 1, dashboard.HighRisk.HighRiskCount)
		require.Equal(t, "HOT", dashboard.HighRisk.HighRiskRecords[0].Record.Symbol)
		require.Len(t, dashboard.Points, 2)
		require.Equal(t, hot.QueryID, dashboard.Points[0].QueryID)
	})

	t.Run("baseline change is picked up on the next pass", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		liveQueryRepository := mock_repository.NewMockLiveQueryRepository(ctrl)
		sectorAverageRepository := mock_repository.NewMockSectorAverageRepository(ctrl)
		handler := NewDashboardService(liveQueryRepository, sectorAverageRepository, calculator.RiskThresholds{}, 50)

		record := newRecord("ACME", "Fintech", 0.7, 0.3)
		liveQueryRepository.EXPECT().
			List(gomock.Any(), gomock.Any()).
			Return([]domain.CompanyRecord{record}, nil).
			Times(2)
		gomock.InOrder(
			sectorAverageRepository.EXPECT().List(gomock.Any()).Return([]domain.SectorBaseline{
				{Sector: "Fintech", AverageOFSRatio: 0.5, AverageSentimentScore: 0.1},
			}, nil),
			sectorAverageRepository.EXPECT().List(gomock.Any()).Return([]domain.SectorBaseline{
				{Sector: "Fintech", AverageOFSRatio: 0.75, AverageSentimentScore: 0.1},
			}, nil),
		)

		first, err := handler.Build(context.Background())
		require.NoError(t, err)
		require.Equal(t, domain.RiskLevelHigh, first.Records[0].RiskLevel)

		second, err := handler.Build(context.Background())
		require.NoError(t, err)
		require.Equal(t, domain.RiskLevelMedium, second.Records[0].RiskLevel)
		require.False(t, second.Records[0].RiskFlags.HighOFSRatio)
	})

	t.Run("snapshot failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		liveQueryRepository := mock_repository.NewMockLiveQueryRepository(ctrl)
		sectorAverageRepository := mock_repository.NewMockSectorAverageRepository(ctrl)
		handler := NewDashboardService(liveQueryRepository, sectorAverageRepository, calculator.RiskThresholds{}, 50)

		liveQueryRepository.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		sectorAverageRepository.EXPECT().List(gomock.Any()).Return(nil, fmt.Errorf("relation does not exist"))

		_, err := handler.Build(context.Background())
		require.ErrorContains(t, err, "relation does not exist")
	})
}

func TestDashboardService_Lookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	liveQueryRepository := mock_repository.NewMockLiveQueryRepository(ctrl)
	sectorAverageRepository := mock_repository.NewMockSectorAverageRepository(ctrl)
	handler := NewDashboardService(liveQueryRepository, sectorAverageRepository, calculator.RiskThresholds{}, 50)

	record := newRecord("ACME", "Fintech", 0.7, 0.3)
	liveQueryRepository.EXPECT().List(gomock.Any(), gomock.Any()).Return([]domain.CompanyRecord{record}, nil).Times(2)
	sectorAverageRepository.EXPECT().List(gomock.Any()).Return(nil, nil).Times(2)

	found, err := handler.Lookup(context.Background(), record.QueryID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, "ACME", found.Record.Symbol)
	require.Equal(t, calculator.DefaultSectorBaseline, found.Baseline)

	stale, err := handler.Lookup(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Nil(t, stale)
}
