package api

import (
	"fmt"

	"papertrade/internal/domain"

	"github.com/gin-gonic/gin"
)

type GetQuotesRequest struct {
	Symbols []string `json:"symbols"`
}

type GetQuotesResponse struct {
	Quotes map[string]domain.Quote `json:"quotes"`
}

// getQuotes returns whatever quotes resolved; symbols that failed are simply
// missing from the response. One bad symbol never fails the batch.
func (m ApiHandler) getQuotes(c *gin.Context) {
	var requestBody GetQuotesRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if len(requestBody.Symbols) == 0 {
		returnErrorJsonCode(fmt.Errorf("symbols must not be empty"), c, 400)
		return
	}

	quotes := m.QuoteCache.GetMany(c.Request.Context(), requestBody.Symbols)

	c.JSON(200, GetQuotesResponse{Quotes: quotes})
}
