package calculator

import (
	"iposcreener/internal/domain"
	"iposcreener/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestComputeSectorBaselines(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("averages per sector", func(t *testing.T) {
		records := []domain.CompanyRecord{
			newRecord("FinTech", util.FloatPointer(0.2), util.FloatPointer(0.1)),
			newRecord("FinTech", util.FloatPointer(0.6), util.FloatPointer(0.3)),
			newRecord("Energy", util.FloatPointer(0.5), nil),
		}

		got, err := ComputeSectorBaselines(records, now)
		require.NoError(t, err)
		require.Len(t, got, 2)

		require.Equal(t, "Energy", got[0].Sector)
		require.InDelta(t, 0.5, got[0].AverageOFSRatio, 0.0001)
		// no sentiment samples - keeps the neutral midpoint
		require.InDelta(t, 0.0, got[0].AverageSentimentScore, 0.0001)
		require.Equal(t, 1, got[0].SampleSize)

		require.Equal(t, "FinTech", got[1].Sector)
		require.InDelta(t, 0.4, got[1].AverageOFSRatio, 0.0001)
		require.InDelta(t, 0.2, got[1].AverageSentimentScore, 0.0001)
		require.Equal(t, 2, got[1].SampleSize)
		require.Equal(t, now, *got[1].UpdatedAt)
	})

	t.Run("skips records without a sector", func(t *testing.T) {
		noSector := newRecord("", util.FloatPointer(0.9), util.FloatPointer(0.9))
		nilSector := newRecord("x", util.FloatPointer(0.9), util.FloatPointer(0.9))
		nilSector.Sector = nil

		got, err := ComputeSectorBaselines([]domain.CompanyRecord{noSector, nilSector}, now)
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("sector without ofs samples", func(t *testing.T) {
		record := newRecord("Retail", nil, util.FloatPointer(-0.25))
		got, err := ComputeSectorBaselines([]domain.CompanyRecord{record}, now)
		require.NoError(t, err)
		require.Equal(t, 0.5, got[0].AverageOFSRatio)
		require.InDelta(t, -0.25, got[0].AverageSentimentScore, 0.0001)
	})
}
