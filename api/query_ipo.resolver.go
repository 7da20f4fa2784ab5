package api

import (
	"errors"
	"fmt"
	l3_service "iposcreener/internal/service/l3"

	"github.com/gin-gonic/gin"
)

type queryIpoRequest struct {
	CompanyName string `json:"companyName"`
	Symbol      string `json:"symbol"`
	Sector      string `json:"sector"`
	DrhpUrl     string `json:"drhpUrl"`
}

func (m ApiHandler) queryIpo(c *gin.Context) {
	var requestBody queryIpoRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid request body: %w", err), c, 400)
		return
	}

	result, err := m.QueryService.Submit(c.Request.Context(), l3_service.SubmitQueryInput{
		CompanyName: requestBody.CompanyName,
		Symbol:      requestBody.Symbol,
		Sector:      requestBody.Sector,
		DrhpUrl:     requestBody.DrhpUrl,
	})
	validationErr := l3_service.ValidationError{}
	if errors.As(err, &validationErr) {
		returnErrorJsonCode(validationErr, c, 400)
		return
	} else if err != nil {
		returnErrorJson(fmt.Errorf("failed to process IPO query: %w", err), c)
		return
	}

	c.JSON(200, ipoQueryResponseFromDomain(result.Record))
}
