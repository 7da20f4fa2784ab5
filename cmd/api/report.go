package main

import (
	"fmt"
	"io"
	"iposcreener/internal/domain"
	"os"
	"strconv"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the evaluated queries as csv",
	RunE: func(c *cobra.Command, args []string) error {
		dashboard, err := apiHandler.DashboardService.Build(newJobContext())
		if err != nil {
			return err
		}

		highRiskOnly, _ := c.Flags().GetBool("high-risk")
		records := dashboard.Records
		if highRiskOnly {
			records = dashboard.HighRisk.HighRiskRecords
		}

		out := io.Writer(os.Stdout)
		if path, _ := c.Flags().GetString("out"); path != "" {
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", path, err)
			}
			defer f.Close()
			out = f
		}

		return writeReport(out, records)
	},
}

func init() {
	reportCmd.Flags().Bool("high-risk", false, "only include records that exceed their sector average")
	reportCmd.Flags().String("out", "", "write to a file instead of stdout")
}

type reportRow struct {
	Symbol               string `csv:"symbol"`
	CompanyName          string `csv:"company_name"`
	Sector               string `csv:"sector"`
	OfsRatio             string `csv:"ofs_ratio"`
	VaderScore           string `csv:"vader_score"`
	SectorOfsRatio       string `csv:"sector_avg_ofs_ratio"`
	SectorSentiment      string `csv:"sector_avg_sentiment"`
	RiskLevel            string `csv:"risk_level"`
	HighOFSRatio         bool   `csv:"high_ofs_ratio"`
	HighHypeScore        bool   `csv:"high_hype_score"`
	ExceedsSectorAverage bool   `csv:"exceeds_sector_average"`
	SuccessProbability   string `csv:"success_probability"`
}

func formatOptional(v float64, ok bool) string {
	if !ok {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writeReport(w io.Writer, records []domain.EvaluatedRecord) error {
	rows := []reportRow{}
	for _, r := range records {
		row := reportRow{
			Symbol:               r.Record.Symbol,
			CompanyName:          r.Record.CompanyName,
			OfsRatio:             formatOptional(r.Record.OfsRatio()),
			VaderScore:           formatOptional(r.Record.VaderScore()),
			SectorOfsRatio:       formatOptional(r.Baseline.AverageOFSRatio, true),
			SectorSentiment:      formatOptional(r.Baseline.AverageSentimentScore, true),
			RiskLevel:            string(r.RiskLevel),
			HighOFSRatio:         r.RiskFlags.HighOFSRatio,
			HighHypeScore:        r.RiskFlags.HighHypeScore,
			ExceedsSectorAverage: r.RiskFlags.ExceedsSectorAverage,
		}
		if r.Record.Sector != nil {
			row.Sector = *r.Record.Sector
		}
		if r.Record.MlPrediction != nil {
			row.SuccessProbability = formatOptional(r.Record.MlPrediction.SuccessProbability, true)
		}
		rows = append(rows, row)
	}

	err := gocsv.Marshal(&rows, w)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
