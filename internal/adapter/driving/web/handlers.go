package web

import (
	"encoding/json"
	"net/http"

	"github.com/diillson/aws-cost-dashboard-go/internal/application/usecase"
	"github.com/go-chi/chi/v5"
)

// chartAliases mapeia nomes curtos da API para os ids dos gráficos.
var chartAliases = map[string]string{
	"trend":      usecase.MonthlyTrendChartID,
	"accounts":   usecase.AccountChartID,
	"projection": usecase.ProjectionChartID,
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(s.page)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"sample": s.snapshot.Data.Outcome.Sample,
	})
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.snapshot)
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.snapshot.Metrics)
}

func (s *Server) handleAccounts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.snapshot.Data.Accounts)
}

func (s *Server) handleMonthly(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.snapshot.Monthly)
}

// handleChart devolve a figura Plotly do gráfico; ?format=spec devolve o ChartSpec.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "chart")
	if id, ok := chartAliases[name]; ok {
		name = id
	}

	chart, ok := s.snapshot.Chart(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown chart: " + chi.URLParam(r, "chart")})
		return
	}

	if r.URL.Query().Get("format") == "spec" {
		writeJSON(w, http.StatusOK, chart)
		return
	}
	writeJSON(w, http.StatusOK, toPlotly(chart))
}
