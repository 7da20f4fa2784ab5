package integration_tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
)

// NewAnalysisWorkerForTests serves canned DRHP, sentiment and
// prediction responses. A drhpUrl containing "missing" fails the way
// the parser does when the pdf cannot be fetched
func NewAnalysisWorkerForTests() *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/drhp", func(w http.ResponseWriter, r *http.Request) {
		req := struct {
			DrhpUrl string `json:"drhpUrl"`
		}{}
		json.NewDecoder(r.Body).Decode(&req)

		if strings.Contains(req.DrhpUrl, "missing") {
			writeJson(w, http.StatusBadGateway, map[string]any{"error": "failed to download pdf"})
			return
		}
		writeJson(w, http.StatusOK, map[string]any{
			"ofsRatio":       0.78,
			"freshIssue":     250,
			"totalIssueSize": 1150,
			"pdfSource":      req.DrhpUrl,
		})
	})

	mux.HandleFunc("/sentiment", func(w http.ResponseWriter, r *http.Request) {
		writeJson(w, http.StatusOK, map[string]any{
			"vaderScore":     0.44,
			"redditMentions": 31,
			"newsHeadlines":  9,
		})
	})

	mux.HandleFunc("/predict", func(w http.ResponseWriter, r *http.Request) {
		writeJson(w, http.StatusOK, map[string]any{
			"probability": 0.38,
			"riskScore":   0.62,
		})
	})

	return httptest.NewServer(mux)
}

func writeJson(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}
