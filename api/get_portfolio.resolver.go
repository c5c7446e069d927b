package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) getPortfolio(c *gin.Context) {
	userID, err := m.resolveUserID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	view, err := m.PortfolioService.GetPortfolio(c.Request.Context(), *userID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, view)
}

func (m ApiHandler) exportPortfolio(c *gin.Context) {
	userID, err := m.resolveUserID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	out, err := m.PortfolioService.ExportCSV(c.Request.Context(), *userID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="portfolio.csv"`)
	c.Data(200, "text/csv", out)
}

func (m ApiHandler) listTrades(c *gin.Context) {
	userID, err := m.resolveUserID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	trades, err := m.TradingService.ListTrades(c.Request.Context(), *userID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"trades": trades})
}
