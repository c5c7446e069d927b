package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	"papertrade/api"
	"papertrade/internal"
	"papertrade/internal/quotecache"
	"papertrade/internal/repository"
	"papertrade/internal/service"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func NewQuoteProvider(secrets *internal.Secrets) repository.QuoteProvider {
	if strings.EqualFold(secrets.QuoteProvider, "yahoo") || secrets.Finnhub.ApiKey == "" {
		return repository.NewYahooRepository()
	}
	return repository.NewFinnhubRepository(secrets.Finnhub.ApiKey, secrets.Finnhub.Endpoint)
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	quoteProvider := NewQuoteProvider(secrets)
	quoteCache := quotecache.New(quoteProvider, quotecache.DefaultTTL)

	holdingRepository := repository.NewHoldingRepository(dbConn)
	tradeRepository := repository.NewTradeRepository(dbConn)

	tradingService := service.NewTradingService(
		dbConn,
		quoteCache,
		holdingRepository,
		tradeRepository,
	)
	portfolioService := service.NewPortfolioService(
		quoteCache,
		holdingRepository,
	)

	apiHandler := &api.ApiHandler{
		Db:                   dbConn,
		QuoteCache:           quoteCache,
		PortfolioService:     portfolioService,
		TradingService:       tradingService,
		ApiRequestRepository: repository.ApiRequestRepositoryHandler{},
		JwtDecodeToken:       secrets.Jwt,
	}

	return apiHandler, nil
}
