package repository

import (
	"database/sql"
	"fmt"
	"iposcreener/internal/db/models/postgres/public/model"
	"iposcreener/internal/db/models/postgres/public/table"
	"iposcreener/internal/domain"

	"github.com/google/uuid"
)

type latencyTrackingRepositoryHandler struct {
	Db *sql.DB
}

type LatencyTrackingRepository interface {
	Add(profile *domain.Profile, requestID *uuid.UUID) error
}

func NewLatencyTrackingRepository(db *sql.DB) LatencyTrackingRepository {
	return latencyTrackingRepositoryHandler{db}
}

func (h latencyTrackingRepositoryHandler) Add(profile *domain.Profile, requestID *uuid.UUID) error {
	bytes, err := profile.ToJsonBytes()
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	m := model.LatencyTracking{
		ProcessingTimes: string(bytes),
		RequestID:       requestID,
	}
	query := table.LatencyTracking.INSERT(table.LatencyTracking.MutableColumns).MODEL(m)

	_, err = query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to insert latency tracking: %w", err)
	}

	return nil
}
