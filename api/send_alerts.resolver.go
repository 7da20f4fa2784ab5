package api

import (
	"github.com/gin-gonic/gin"
)

type sendAlertsResponse struct {
	HighRiskCount int      `json:"highRiskCount"`
	Recipients    []string `json:"recipients"`
	Sent          bool     `json:"sent"`
}

func (m ApiHandler) sendHighRiskAlerts(c *gin.Context) {
	result, err := m.AlertService.SendHighRiskDigest(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	recipients := result.Recipients
	if recipients == nil {
		recipients = []string{}
	}
	c.JSON(200, sendAlertsResponse{
		HighRiskCount: result.HighRiskCount,
		Recipients:    recipients,
		Sent:          result.Sent,
	})
}
