package api

import (
	"github.com/gin-gonic/gin"
)

// getQueries returns the latest queries with flags evaluated against
// the current sector baselines
func (m ApiHandler) getQueries(c *gin.Context) {
	dashboard, err := m.DashboardService.Build(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, ipoQueryResponsesFromDomain(dashboard.Records))
}
