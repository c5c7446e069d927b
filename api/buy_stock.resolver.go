package api

import (
	"errors"

	"papertrade/internal/repository"
	"papertrade/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BuyStockRequest struct {
	Symbol   string          `json:"symbol"`
	Quantity decimal.Decimal `json:"quantity"`
}

func (m ApiHandler) buyStock(c *gin.Context) {
	userID, err := m.resolveUserID(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	var requestBody BuyStockRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if requestBody.Quantity.LessThanOrEqual(decimal.Zero) {
		returnErrorJsonCode(errors.New("quantity must be > 0"), c, 400)
		return
	}

	holding, err := m.TradingService.BuyStock(c.Request.Context(), service.BuyStockInput{
		UserID:   *userID,
		Symbol:   requestBody.Symbol,
		Quantity: requestBody.Quantity,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUnknownSymbol) {
			returnErrorJsonCode(err, c, 404)
			return
		}
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, holding)
}
