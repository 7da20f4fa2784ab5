package l3_service

import (
	"context"
	"fmt"
	"iposcreener/internal/domain"
	mock_repository "iposcreener/internal/repository/mocks"
	"iposcreener/internal/util"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeDashboardService struct {
	dashboard *domain.Dashboard
	err       error
}

func (f fakeDashboardService) Build(ctx context.Context) (*domain.Dashboard, error) {
	return f.dashboard, f.err
}

func (f fakeDashboardService) Lookup(ctx context.Context, queryID uuid.UUID) (*domain.EvaluatedRecord, error) {
	return nil, f.err
}

func highRiskRecord(symbol string) domain.EvaluatedRecord {
	return domain.EvaluatedRecord{
		Record: domain.CompanyRecord{
			QueryID:       uuid.New(),
			CompanyName:   symbol + " <Holdings>",
			Symbol:        symbol,
			Sector:        util.StringPointer("Fintech"),
			DrhpData:      &domain.DrhpData{OfsRatio: util.FloatPointer(0.82)},
			SentimentData: &domain.SentimentData{VaderScore: util.FloatPointer(0.4)},
		},
		Baseline:  domain.SectorBaseline{Sector: "Fintech", AverageOFSRatio: 0.5, AverageSentimentScore: 0.1},
		RiskFlags: domain.RiskFlags{HighOFSRatio: true, HighHypeScore: true, ExceedsSectorAverage: true},
		RiskLevel: domain.RiskLevelHigh,
	}
}

func TestAlertService_GenerateHighRiskDigest(t *testing.T) {
	handler := alertServiceHandler{}
	summary := domain.HighRiskSummary{
		HighRiskCount:   1,
		HighRiskRecords: []domain.EvaluatedRecord{highRiskRecord("ACME")},
	}

	subject, body, err := handler.GenerateHighRiskDigest(summary, time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Equal(t, "IPO risk digest: 1 high risk", subject)
	require.Contains(t, body, "1 high risk IPO as of May 10, 2024 09:30 UTC")
	require.Contains(t, body, "<td>ACME</td>")
	require.Contains(t, body, "ACME &lt;Holdings&gt;")
	require.Contains(t, body, "<td>0.82</td><td>0.50</td><td>0.40</td><td>0.10</td>")
	require.False(t, strings.Contains(body, "<Holdings>"))
}

func TestAlertService_SendHighRiskDigest(t *testing.T) {
	t.Run("sends when high risk queries exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		emailRepository := mock_repository.NewMockAlertEmailRepository(ctrl)
		records := []domain.EvaluatedRecord{highRiskRecord("ACME"), highRiskRecord("BETA")}
		handler := alertServiceHandler{
			DashboardService: fakeDashboardService{dashboard: &domain.Dashboard{
				Records:  records,
				HighRisk: domain.HighRiskSummary{HighRiskCount: 2, HighRiskRecords: records},
			}},
			AlertEmailRepository: emailRepository,
			Recipients:           []string{"risk@example.com"},
			Now:                  time.Now,
		}

		emailRepository.EXPECT().
			SendEmail(gomock.Any(), []string{"risk@example.com"}, "IPO risk digest: 2 high risk", gomock.Any()).
			Return(nil)

		result, err := handler.SendHighRiskDigest(context.Background())
		require.NoError(t, err)
		require.True(t, result.Sent)
		require.Equal(t, 2, result.HighRiskCount)
	})

	t.Run("nothing to send", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		emailRepository := mock_repository.NewMockAlertEmailRepository(ctrl)
		handler := alertServiceHandler{
			DashboardService: fakeDashboardService{dashboard: &domain.Dashboard{
				HighRisk: domain.HighRiskSummary{HighRiskRecords: []domain.EvaluatedRecord{}},
			}},
			AlertEmailRepository: emailRepository,
			Recipients:           []string{"risk@example.com"},
			Now:                  time.Now,
		}

		result, err := handler.SendHighRiskDigest(context.Background())
		require.NoError(t, err)
		require.False(t, result.Sent)
	})

	t.Run("email failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		emailRepository := mock_repository.NewMockAlertEmailRepository(ctrl)
		records := []domain.EvaluatedRecord{highRiskRecord("ACME")}
		handler := alertServiceHandler{
			DashboardService: fakeDashboardService{dashboard: &domain.Dashboard{
				HighRisk: domain.HighRiskSummary{HighRiskCount: 1, HighRiskRecords: records},
			}},
			AlertEmailRepository: emailRepository,
			Recipients:           []string{"risk@example.com"},
			Now:                  time.Now,
		}

		emailRepository.EXPECT().SendEmail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(fmt.Errorf("throttled"))

		_, err := handler.SendHighRiskDigest(context.Background())
		require.ErrorContains(t, err, "throttled")
	})

	t.Run("dashboard failure", func(t *testing.T) {
		handler := alertServiceHandler{
			DashboardService: fakeDashboardService{err: fmt.Errorf("db down")},
			Now:              time.Now,
		}

		_, err := handler.SendHighRiskDigest(context.Background())
		require.ErrorContains(t, err, "db down")
	})
}
