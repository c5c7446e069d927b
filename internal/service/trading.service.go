package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"papertrade/internal/db/models/postgres/public/model"
	"papertrade/internal/domain"
	"papertrade/internal/logger"
	"papertrade/internal/quotecache"
	"papertrade/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TradingService interface {
	// BuyStock prices the purchase at the current quote and merges it into the
	// user's position for the symbol, atomically.
	BuyStock(ctx context.Context, in BuyStockInput) (*domain.Holding, error)
	ListTrades(ctx context.Context, userID uuid.UUID) ([]model.TradeLog, error)
}

type BuyStockInput struct {
	UserID   uuid.UUID
	Symbol   string
	Quantity decimal.Decimal
}

type tradingServiceHandler struct {
	Db                *sql.DB
	QuoteCache        quotecache.QuoteCache
	HoldingRepository repository.HoldingRepository
	TradeRepository   repository.TradeRepository
}

func NewTradingService(
	db *sql.DB,
	quoteCache quotecache.QuoteCache,
	holdingRepository repository.HoldingRepository,
	tradeRepository repository.TradeRepository,
) TradingService {
	return tradingServiceHandler{
		Db:                db,
		QuoteCache:        quoteCache,
		HoldingRepository: holdingRepository,
		TradeRepository:   tradeRepository,
	}
}

func (h tradingServiceHandler) BuyStock(ctx context.Context, in BuyStockInput) (*domain.Holding, error) {
	log := logger.FromContext(ctx)

	if in.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("failed to buy stock: quantity must be > 0, got %s", in.Quantity)
	}

	quote, err := h.QuoteCache.Get(ctx, in.Symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to price purchase of %s: %w", in.Symbol, err)
	}

	purchase := domain.Purchase{
		Symbol:   quote.Symbol,
		Quantity: in.Quantity,
		Price:    quote.Price,
		Date:     time.Now().UTC(),
	}

	// read-merge-write runs under a row lock so two concurrent buys of the
	// same symbol cannot clobber each other
	tx, err := h.Db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin buy transaction: %w", err)
	}
	defer tx.Rollback()

	existingModel, err := h.HoldingRepository.GetForUpdate(tx, in.UserID, purchase.Symbol)
	if err != nil {
		return nil, err
	}

	var existing *domain.Holding
	if existingModel != nil {
		decoded, err := holdingFromModel(*existingModel)
		if err != nil {
			return nil, err
		}
		existing = &decoded
	}

	merged := domain.MergePurchase(existing, purchase)

	holdingModel := model.PortfolioHolding{
		UserID:            in.UserID,
		Symbol:            merged.Symbol,
		Quantity:          merged.Quantity,
		AveragePrice:      merged.AveragePrice,
		TotalCost:         merged.TotalCost,
		PurchaseDate:      merged.PurchaseDate,
		LastPurchaseDate:  merged.LastPurchaseDate,
		LastPurchasePrice: merged.LastPurchasePrice,
	}

	if existingModel == nil {
		_, err = h.HoldingRepository.Add(tx, holdingModel)
	} else {
		holdingModel.PortfolioHoldingID = existingModel.PortfolioHoldingID
		_, err = h.HoldingRepository.Update(tx, holdingModel)
	}
	if err != nil {
		return nil, err
	}

	_, err = h.TradeRepository.Add(tx, model.TradeLog{
		UserID:   in.UserID,
		Symbol:   purchase.Symbol,
		Side:     repository.TradeSideBuy,
		Quantity: purchase.Quantity,
		Price:    purchase.Price,
		Amount:   purchase.Cost(),
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit buy transaction: %w", err)
	}

	log.Infow("executed buy",
		"userID", in.UserID,
		"symbol", purchase.Symbol,
		"quantity", purchase.Quantity,
		"price", purchase.Price,
	)

	return &merged, nil
}

func (h tradingServiceHandler) ListTrades(ctx context.Context, userID uuid.UUID) ([]model.TradeLog, error) {
	return h.TradeRepository.List(userID)
}
