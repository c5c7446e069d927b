package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"papertrade/internal/db/models/postgres/public/model"
	"papertrade/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mocks/holding_repository.mock.go -package=mock_repository . HoldingRepository

type HoldingRepository interface {
	Add(tx *sql.Tx, ph model.PortfolioHolding) (*model.PortfolioHolding, error)
	Update(tx *sql.Tx, ph model.PortfolioHolding) (*model.PortfolioHolding, error)
	// GetForUpdate locks the holding row for the duration of the transaction.
	// Returns (nil, nil) when the user has no position in the symbol.
	GetForUpdate(tx *sql.Tx, userID uuid.UUID, symbol string) (*model.PortfolioHolding, error)
	List(userID uuid.UUID) ([]model.PortfolioHolding, error)
}

type holdingRepositoryHandler struct {
	Db *sql.DB
}

func NewHoldingRepository(db *sql.DB) HoldingRepository {
	return holdingRepositoryHandler{Db: db}
}

func (h holdingRepositoryHandler) Add(tx *sql.Tx, ph model.PortfolioHolding) (*model.PortfolioHolding, error) {
	if ph.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("failed to insert holding: quantity must be > 0, got %s", ph.Quantity.String())
	}
	now := time.Now().UTC()
	ph.CreatedAt = now
	ph.ModifiedAt = now

	query := table.PortfolioHolding.
		INSERT(table.PortfolioHolding.MutableColumns).
		MODEL(ph).
		RETURNING(table.PortfolioHolding.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.PortfolioHolding{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert holding: %w", err)
	}

	return &out, nil
}

func (h holdingRepositoryHandler) Update(tx *sql.Tx, ph model.PortfolioHolding) (*model.PortfolioHolding, error) {
	ph.ModifiedAt = time.Now().UTC()

	query := table.PortfolioHolding.
		UPDATE(
			table.PortfolioHolding.Quantity,
			table.PortfolioHolding.AveragePrice,
			table.PortfolioHolding.TotalCost,
			table.PortfolioHolding.LastPurchaseDate,
			table.PortfolioHolding.LastPurchasePrice,
			table.PortfolioHolding.ModifiedAt,
		).
		MODEL(ph).
		WHERE(table.PortfolioHolding.PortfolioHoldingID.EQ(postgres.UUID(ph.PortfolioHoldingID))).
		RETURNING(table.PortfolioHolding.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.PortfolioHolding{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to update holding %s: %w", ph.PortfolioHoldingID, err)
	}

	return &out, nil
}

func (h holdingRepositoryHandler) GetForUpdate(tx *sql.Tx, userID uuid.UUID, symbol string) (*model.PortfolioHolding, error) {
	query := table.PortfolioHolding.
		SELECT(table.PortfolioHolding.AllColumns).
		WHERE(
			table.PortfolioHolding.UserID.EQ(postgres.UUID(userID)).
				AND(table.PortfolioHolding.Symbol.EQ(postgres.String(symbol))),
		).
		FOR(postgres.UPDATE())

	out := model.PortfolioHolding{}
	err := query.Query(tx, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get holding for %s/%s: %w", userID, symbol, err)
	}

	return &out, nil
}

func (h holdingRepositoryHandler) List(userID uuid.UUID) ([]model.PortfolioHolding, error) {
	query := table.PortfolioHolding.
		SELECT(table.PortfolioHolding.AllColumns).
		WHERE(table.PortfolioHolding.UserID.EQ(postgres.UUID(userID))).
		ORDER_BY(table.PortfolioHolding.PurchaseDate.ASC())

	out := []model.PortfolioHolding{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings for %s: %w", userID, err)
	}

	return out, nil
}
