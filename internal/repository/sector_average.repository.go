package repository

import (
	"context"
	"database/sql"
	"fmt"
	"iposcreener/internal/db/models/postgres/public/model"
	. "iposcreener/internal/db/models/postgres/public/table"
	"iposcreener/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
)

type SectorAverageRepository interface {
	List(ctx context.Context) ([]domain.SectorBaseline, error)
	Upsert(ctx context.Context, baselines []domain.SectorBaseline) error
}

type sectorAverageRepositoryHandler struct {
	Db dbConn
}

func NewSectorAverageRepository(db *sql.DB) SectorAverageRepository {
	return sectorAverageRepositoryHandler{Db: db}
}

func (h sectorAverageRepositoryHandler) List(ctx context.Context) ([]domain.SectorBaseline, error) {
	query := SectorAverage.
		SELECT(SectorAverage.AllColumns).
		ORDER_BY(SectorAverage.Sector.ASC())

	result := []model.SectorAverage{}
	err := query.QueryContext(ctx, h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list sector averages: %w", err)
	}

	out := []domain.SectorBaseline{}
	for _, m := range result {
		out = append(out, domain.SectorBaseline{
			Sector:                m.Sector,
			AverageOFSRatio:       m.AverageOfsRatio,
			AverageSentimentScore: m.AverageSentimentScore,
			SampleSize:            int(m.SampleSize),
			UpdatedAt:             m.UpdatedAt,
		})
	}

	return out, nil
}

func (h sectorAverageRepositoryHandler) Upsert(ctx context.Context, baselines []domain.SectorBaseline) error {
	if len(baselines) == 0 {
		return nil
	}

	models := []model.SectorAverage{}
	for _, b := range baselines {
		models = append(models, model.SectorAverage{
			Sector:                b.Sector,
			AverageOfsRatio:       b.AverageOFSRatio,
			AverageSentimentScore: b.AverageSentimentScore,
			SampleSize:            int32(b.SampleSize),
			UpdatedAt:             b.UpdatedAt,
		})
	}

	query := SectorAverage.
		INSERT(SectorAverage.AllColumns).
		MODELS(models).
		ON_CONFLICT(SectorAverage.Sector).
		DO_UPDATE(postgres.SET(
			SectorAverage.AverageOfsRatio.SET(SectorAverage.EXCLUDED.AverageOfsRatio),
			SectorAverage.AverageSentimentScore.SET(SectorAverage.EXCLUDED.AverageSentimentScore),
			SectorAverage.SampleSize.SET(SectorAverage.EXCLUDED.SampleSize),
			SectorAverage.UpdatedAt.SET(SectorAverage.EXCLUDED.UpdatedAt),
		))

	_, err := query.ExecContext(ctx, h.Db)
	if err != nil {
		return fmt.Errorf("failed to upsert %d sector averages: %w", len(baselines), err)
	}

	return nil
}
