package main

import (
	"fmt"
	"io"
	"iposcreener/internal/domain"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
)

var recomputeBaselinesCmd = &cobra.Command{
	Use:   "recompute-baselines",
	Short: "Average stored queries by sector and save them as the sector baselines",
	RunE: func(c *cobra.Command, args []string) error {
		baselines, err := apiHandler.SectorBaselineService.Recompute(newJobContext())
		if err != nil {
			return err
		}
		for _, b := range baselines {
			apiHandler.Logger.Infow("sector baseline", "sector", b.Sector, "ofsRatio", b.AverageOFSRatio, "sentiment", b.AverageSentimentScore, "samples", b.SampleSize)
		}
		return nil
	},
}

var importBaselinesCmd = &cobra.Command{
	Use:   "import-baselines [file.csv]",
	Short: "Load sector baselines from a csv export",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer f.Close()

		baselines, err := readBaselines(f)
		if err != nil {
			return err
		}

		err = apiHandler.SectorBaselineService.Import(newJobContext(), baselines)
		if err != nil {
			return err
		}
		apiHandler.Logger.Infof("imported %d sector baselines", len(baselines))
		return nil
	},
}

type baselineRow struct {
	Sector                string  `csv:"sector"`
	AverageOfsRatio       float64 `csv:"average_ofs_ratio"`
	AverageSentimentScore float64 `csv:"average_sentiment_score"`
	SampleSize            int     `csv:"sample_size"`
}

func readBaselines(r io.Reader) ([]domain.SectorBaseline, error) {
	rows := []baselineRow{}
	err := gocsv.Unmarshal(r, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to parse baselines csv: %w", err)
	}

	out := []domain.SectorBaseline{}
	for _, row := range rows {
		out = append(out, domain.SectorBaseline{
			Sector:                row.Sector,
			AverageOFSRatio:       row.AverageOfsRatio,
			AverageSentimentScore: row.AverageSentimentScore,
			SampleSize:            row.SampleSize,
		})
	}
	return out, nil
}
