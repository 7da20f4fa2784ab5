package repository

import (
	"iposcreener/internal/domain"
	"iposcreener/internal/util"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_decodeJsonb(t *testing.T) {
	t.Run("empty values decode to nil", func(t *testing.T) {
		for _, raw := range []*string{nil, util.StringPointer(""), util.StringPointer("null"), util.StringPointer("{}"), util.StringPointer("  {} ")} {
			out, err := decodeJsonb[domain.DrhpData](raw)
			require.NoError(t, err)
			require.Nil(t, out)
		}
	})

	t.Run("decodes drhp data", func(t *testing.T) {
		out, err := decodeJsonb[domain.DrhpData](util.StringPointer(`{"ofsRatio":0.7,"freshIssue":300,"totalIssueSize":"1000"}`))
		require.NoError(t, err)
		require.NotNil(t, out)
		require.Equal(t, 0.7, *out.OfsRatio)
		require.True(t, decimal.NewFromInt(300).Equal(out.FreshIssue))
		require.True(t, decimal.NewFromInt(1000).Equal(out.TotalIssueSize))
	})

	t.Run("missing metric stays nil", func(t *testing.T) {
		out, err := decodeJsonb[domain.SentimentData](util.StringPointer(`{"redditMentions":3}`))
		require.NoError(t, err)
		require.Nil(t, out.VaderScore)
		require.Equal(t, 3, out.RedditMentions)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := decodeJsonb[domain.SentimentData](util.StringPointer(`{"vaderScore":`))
		require.Error(t, err)
	})
}

func Test_encodeJsonb(t *testing.T) {
	out, err := encodeJsonb[domain.MlPrediction](nil)
	require.NoError(t, err)
	require.Nil(t, out)

	out, err = encodeJsonb(&domain.RiskFlags{HighOFSRatio: true})
	require.NoError(t, err)
	require.JSONEq(t, `{"highOFSRatio":true,"highHypeScore":false,"exceedsSectorAverage":false}`, *out)
}
