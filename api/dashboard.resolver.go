package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (m ApiHandler) getDashboard(c *gin.Context) {
	dashboard, err := m.DashboardService.Build(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, dashboardResponseFromDomain(*dashboard))
}

// getDashboardPoint resolves a selected chart point to its record. A
// point from an older snapshot is a 404 so the client can clear the
// selection
func (m ApiHandler) getDashboardPoint(c *gin.Context) {
	queryID, err := uuid.Parse(c.Param("queryID"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid query id: %w", err), c, 400)
		return
	}

	record, err := m.DashboardService.Lookup(c.Request.Context(), queryID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if record == nil {
		returnErrorJsonCode(fmt.Errorf("not found"), c, 404)
		return
	}

	c.JSON(200, ipoQueryResponseFromDomain(*record))
}
