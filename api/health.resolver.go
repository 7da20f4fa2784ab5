package api

import (
	"github.com/gin-gonic/gin"
)

type healthResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Database string `json:"database"`
}

func (m ApiHandler) health(c *gin.Context) {
	dbStatus := "disconnected"
	if m.Db != nil && m.Db.PingContext(c.Request.Context()) == nil {
		dbStatus = "connected"
	}

	c.JSON(200, healthResponse{
		Status:   "ok",
		Message:  "IPO Screener API is running",
		Database: dbStatus,
	})
}
