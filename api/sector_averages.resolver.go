package api

import (
	"time"

	"github.com/gin-gonic/gin"
)

type sectorAverageResponse struct {
	Sector                string     `json:"sector"`
	AverageOfsRatio       float64    `json:"averageOfsRatio"`
	AverageSentimentScore float64    `json:"averageSentimentScore"`
	SampleSize            int        `json:"sampleSize"`
	UpdatedAt             *time.Time `json:"updatedAt"`
}

func (m ApiHandler) getSectorAverages(c *gin.Context) {
	baselines, err := m.SectorBaselineService.List(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []sectorAverageResponse{}
	for _, b := range baselines {
		out = append(out, sectorAverageResponse{
			Sector:                b.Sector,
			AverageOfsRatio:       b.AverageOFSRatio,
			AverageSentimentScore: b.AverageSentimentScore,
			SampleSize:            b.SampleSize,
			UpdatedAt:             b.UpdatedAt,
		})
	}

	c.JSON(200, out)
}
