package repository

import (
	"database/sql"
	"fmt"
	"time"

	"papertrade/internal/db/models/postgres/public/model"
	"papertrade/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

const TradeSideBuy = "BUY"

//go:generate mockgen -destination=mocks/trade_repository.mock.go -package=mock_repository . TradeRepository

type TradeRepository interface {
	Add(tx *sql.Tx, tl model.TradeLog) (*model.TradeLog, error)
	List(userID uuid.UUID) ([]model.TradeLog, error)
}

type tradeRepositoryHandler struct {
	Db *sql.DB
}

func NewTradeRepository(db *sql.DB) TradeRepository {
	return tradeRepositoryHandler{Db: db}
}

func (h tradeRepositoryHandler) Add(tx *sql.Tx, tl model.TradeLog) (*model.TradeLog, error) {
	tl.CreatedAt = time.Now().UTC()

	query := table.TradeLog.
		INSERT(table.TradeLog.MutableColumns).
		MODEL(tl).
		RETURNING(table.TradeLog.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.TradeLog{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert trade log: %w", err)
	}

	return &out, nil
}

func (h tradeRepositoryHandler) List(userID uuid.UUID) ([]model.TradeLog, error) {
	query := table.TradeLog.
		SELECT(table.TradeLog.AllColumns).
		WHERE(table.TradeLog.UserID.EQ(postgres.UUID(userID))).
		ORDER_BY(table.TradeLog.CreatedAt.DESC())

	out := []model.TradeLog{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list trade logs for %s: %w", userID, err)
	}

	return out, nil
}
