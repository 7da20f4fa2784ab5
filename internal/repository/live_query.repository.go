package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"iposcreener/internal/db/models/postgres/public/model"
	. "iposcreener/internal/db/models/postgres/public/table"
	"iposcreener/internal/domain"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type LiveQueryRepository interface {
	// Add stores a new query. flags are persisted only as a cache of
	// the evaluation at submission time and are never read back
	Add(ctx context.Context, record domain.CompanyRecord, flags domain.RiskFlags) (*domain.CompanyRecord, error)
	List(ctx context.Context, filter LiveQueryListFilter) ([]domain.CompanyRecord, error)
	// GetLatestBySymbol returns nil if the symbol was never queried
	GetLatestBySymbol(ctx context.Context, symbol string) (*domain.CompanyRecord, error)
}

type LiveQueryListFilter struct {
	Symbols []string
	Limit   *int64
}

type liveQueryRepositoryHandler struct {
	Db dbConn
}

func NewLiveQueryRepository(db *sql.DB) LiveQueryRepository {
	return liveQueryRepositoryHandler{
		Db: db,
	}
}

func (h liveQueryRepositoryHandler) Add(ctx context.Context, record domain.CompanyRecord, flags domain.RiskFlags) (*domain.CompanyRecord, error) {
	if record.QueryID == uuid.Nil {
		record.QueryID = uuid.New()
	}
	if record.QueryDate.IsZero() {
		record.QueryDate = time.Now().UTC()
	}

	m, err := liveQueryFromDomain(record)
	if err != nil {
		return nil, err
	}
	m.RiskFlags, err = encodeJsonb(&flags)
	if err != nil {
		return nil, err
	}

	query := LiveQuery.
		INSERT(LiveQuery.AllColumns).
		MODEL(m).
		RETURNING(LiveQuery.AllColumns)

	out := model.LiveQuery{}
	err = query.QueryContext(ctx, h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert live query for %s: %w", record.Symbol, err)
	}

	return liveQueryToDomain(out)
}

func (h liveQueryRepositoryHandler) List(ctx context.Context, filter LiveQueryListFilter) ([]domain.CompanyRecord, error) {
	query := LiveQuery.
		SELECT(LiveQuery.AllColumns).
		ORDER_BY(LiveQuery.QueryDate.DESC())

	if len(filter.Symbols) > 0 {
		symbols := []postgres.Expression{}
		for _, s := range filter.Symbols {
			symbols = append(symbols, postgres.String(s))
		}
		query = query.WHERE(LiveQuery.Symbol.IN(symbols...))
	}
	if filter.Limit != nil {
		query = query.LIMIT(*filter.Limit)
	}

	result := []model.LiveQuery{}
	err := query.QueryContext(ctx, h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list live queries: %w", err)
	}

	out := []domain.CompanyRecord{}
	for _, m := range result {
		record, err := liveQueryToDomain(m)
		if err != nil {
			return nil, fmt.Errorf("failed to convert live query %s: %w", m.QueryID.String(), err)
		}
		out = append(out, *record)
	}

	return out, nil
}

func (h liveQueryRepositoryHandler) GetLatestBySymbol(ctx context.Context, symbol string) (*domain.CompanyRecord, error) {
	query := LiveQuery.
		SELECT(LiveQuery.AllColumns).
		WHERE(LiveQuery.Symbol.EQ(postgres.String(symbol))).
		ORDER_BY(LiveQuery.QueryDate.DESC()).
		LIMIT(1)

	result := model.LiveQuery{}
	err := query.QueryContext(ctx, h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get latest query for %s: %w", symbol, err)
	}

	return liveQueryToDomain(result)
}

func liveQueryFromDomain(record domain.CompanyRecord) (model.LiveQuery, error) {
	drhpData, err := encodeJsonb(record.DrhpData)
	if err != nil {
		return model.LiveQuery{}, err
	}
	sentimentData, err := encodeJsonb(record.SentimentData)
	if err != nil {
		return model.LiveQuery{}, err
	}
	mlPrediction, err := encodeJsonb(record.MlPrediction)
	if err != nil {
		return model.LiveQuery{}, err
	}

	return model.LiveQuery{
		QueryID:       record.QueryID,
		CompanyName:   record.CompanyName,
		Symbol:        record.Symbol,
		Sector:        record.Sector,
		QueryDate:     record.QueryDate,
		DrhpData:      drhpData,
		SentimentData: sentimentData,
		MlPrediction:  mlPrediction,
	}, nil
}

func liveQueryToDomain(m model.LiveQuery) (*domain.CompanyRecord, error) {
	drhpData, err := decodeJsonb[domain.DrhpData](m.DrhpData)
	if err != nil {
		return nil, fmt.Errorf("drhp_data: %w", err)
	}
	sentimentData, err := decodeJsonb[domain.SentimentData](m.SentimentData)
	if err != nil {
		return nil, fmt.Errorf("sentiment_data: %w", err)
	}
	mlPrediction, err := decodeJsonb[domain.MlPrediction](m.MlPrediction)
	if err != nil {
		return nil, fmt.Errorf("ml_prediction: %w", err)
	}

	return &domain.CompanyRecord{
		QueryID:       m.QueryID,
		CompanyName:   m.CompanyName,
		Symbol:        m.Symbol,
		Sector:        m.Sector,
		QueryDate:     m.QueryDate,
		DrhpData:      drhpData,
		SentimentData: sentimentData,
		MlPrediction:  mlPrediction,
	}, nil
}
