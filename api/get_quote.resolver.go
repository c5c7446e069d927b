package api

import (
	"errors"

	"papertrade/internal/repository"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) getQuote(c *gin.Context) {
	symbol := c.Param("symbol")

	quote, err := m.QuoteCache.Get(c.Request.Context(), symbol)
	if err != nil {
		if errors.Is(err, repository.ErrUnknownSymbol) {
			returnErrorJsonCode(err, c, 404)
			return
		}
		returnErrorJsonCode(err, c, 502)
		return
	}

	c.JSON(200, quote)
}

func (m ApiHandler) refreshQuote(c *gin.Context) {
	symbol := c.Param("symbol")

	quote, err := m.QuoteCache.Refresh(c.Request.Context(), symbol)
	if err != nil {
		if errors.Is(err, repository.ErrUnknownSymbol) {
			returnErrorJsonCode(err, c, 404)
			return
		}
		returnErrorJsonCode(err, c, 502)
		return
	}

	c.JSON(200, quote)
}

func (m ApiHandler) getCacheStats(c *gin.Context) {
	c.JSON(200, gin.H{
		"size":    m.QuoteCache.Size(),
		"symbols": m.QuoteCache.CachedSymbols(),
	})
}
