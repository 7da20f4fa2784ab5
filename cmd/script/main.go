package main

import (
	"context"
	"iposcreener/cmd"
	"iposcreener/internal/domain"
	"iposcreener/internal/logger"
	"log"

	_ "github.com/lib/pq"
)

// nightly job: refresh sector baselines, then mail the digest so it is
// computed against the new averages
func main() {
	handler, _, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(handler)

	profile, endProfile := domain.NewProfile()
	defer endProfile()
	ctx := logger.WithLogger(context.Background(), handler.Logger)
	ctx = domain.NewCtxWithProfile(ctx, profile)

	_, err = handler.SectorBaselineService.Recompute(ctx)
	if err != nil {
		log.Fatal(err)
	}

	_, err = handler.AlertService.SendHighRiskDigest(ctx)
	if err != nil {
		log.Fatal(err)
	}
}
