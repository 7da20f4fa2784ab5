package l3_service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"iposcreener/internal/domain"
	"iposcreener/internal/logger"
	"iposcreener/internal/repository"
	l2_service "iposcreener/internal/service/l2"
	"time"
)

// AlertService emails the high risk section of the dashboard
type AlertService interface {
	SendHighRiskDigest(ctx context.Context) (*SendDigestResult, error)
	// GenerateHighRiskDigest renders subject and html body without
	// sending, for previews
	GenerateHighRiskDigest(summary domain.HighRiskSummary, asOf time.Time) (string, string, error)
}

type SendDigestResult struct {
	HighRiskCount int
	Recipients    []string
	Sent          bool
}

type alertServiceHandler struct {
	DashboardService     l2_service.DashboardService
	AlertEmailRepository repository.AlertEmailRepository
	Recipients           []string
	Now                  func() time.Time
}

func NewAlertService(
	dashboardService l2_service.DashboardService,
	alertEmailRepository repository.AlertEmailRepository,
	recipients []string,
) AlertService {
	return alertServiceHandler{
		DashboardService:     dashboardService,
		AlertEmailRepository: alertEmailRepository,
		Recipients:           recipients,
		Now:                  time.Now,
	}
}

var digestTemplate = template.Must(template.New("digest").Parse(`<html>
<body style="font-family: sans-serif">
<h2>{{.Count}} high risk IPO{{if ne .Count 1}}s{{end}} as of {{.AsOf}}</h2>
<p>Both the OFS ratio and the sentiment score are above the sector average.</p>
<table cellpadding="6" style="border-collapse: collapse">
<tr><th align="left">Symbol</th><th align="left">Company</th><th align="left">Sector</th><th>OFS ratio</th><th>Sector avg</th><th>Sentiment</th><th>Sector avg</th></tr>
{{range .Rows}}<tr style="color: {{$.Color}}">
<td>{{.Symbol}}</td><td>{{.CompanyName}}</td><td>{{.Sector}}</td><td>{{.OfsRatio}}</td><td>{{.AvgOfsRatio}}</td><td>{{.VaderScore}}</td><td>{{.AvgSentiment}}</td>
</tr>
{{end}}</table>
</body>
</html>`))

type digestRow struct {
	Symbol       string
	CompanyName  string
	Sector       string
	OfsRatio     string
	AvgOfsRatio  string
	VaderScore   string
	AvgSentiment string
}

func (h alertServiceHandler) GenerateHighRiskDigest(summary domain.HighRiskSummary, asOf time.Time) (string, string, error) {
	rows := []digestRow{}
	for _, r := range summary.HighRiskRecords {
		row := digestRow{
			Symbol:       r.Record.Symbol,
			CompanyName:  r.Record.CompanyName,
			Sector:       "-",
			OfsRatio:     "-",
			VaderScore:   "-",
			AvgOfsRatio:  fmt.Sprintf("%.2f", r.Baseline.AverageOFSRatio),
			AvgSentiment: fmt.Sprintf("%.2f", r.Baseline.AverageSentimentScore),
		}
		if r.Record.Sector != nil {
			row.Sector = *r.Record.Sector
		}
		if v, ok := r.Record.OfsRatio(); ok {
			row.OfsRatio = fmt.Sprintf("%.2f", v)
		}
		if v, ok := r.Record.VaderScore(); ok {
			row.VaderScore = fmt.Sprintf("%.2f", v)
		}
		rows = append(rows, row)
	}

	body := bytes.Buffer{}
	err := digestTemplate.Execute(&body, map[string]any{
		"Count": summary.HighRiskCount,
		"AsOf":  asOf.Format("Jan 2, 2006 15:04 MST"),
		"Rows":  rows,
		"Color": domain.RiskLevelHigh.Color(),
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to render digest: %w", err)
	}

	subject := fmt.Sprintf("IPO risk digest: %d high risk", summary.HighRiskCount)
	return subject, body.String(), nil
}

func (h alertServiceHandler) SendHighRiskDigest(ctx context.Context) (*SendDigestResult, error) {
	log := logger.FromContext(ctx)

	dashboard, err := h.DashboardService.Build(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build dashboard: %w", err)
	}

	result := &SendDigestResult{
		HighRiskCount: dashboard.HighRisk.HighRiskCount,
		Recipients:    h.Recipients,
	}
	if dashboard.HighRisk.HighRiskCount == 0 {
		log.Info("no high risk queries, skipping digest")
		return result, nil
	}
	if len(h.Recipients) == 0 {
		log.Warn("no digest recipients configured")
		return result, nil
	}

	subject, body, err := h.GenerateHighRiskDigest(dashboard.HighRisk, h.Now())
	if err != nil {
		return nil, err
	}

	err = h.AlertEmailRepository.SendEmail(ctx, h.Recipients, subject, body)
	if err != nil {
		return nil, fmt.Errorf("failed to send digest: %w", err)
	}
	result.Sent = true

	log.Infof("sent high risk digest with %d queries to %d recipients", result.HighRiskCount, len(h.Recipients))

	return result, nil
}
