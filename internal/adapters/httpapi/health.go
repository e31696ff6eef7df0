package httpapi

import (
	"context"
	"net/http"
	"time"
)

const healthCheckTimeout = 5 * time.Second

type healthEntry struct {
	Name     string `json:"name"`
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
	Duration string `json:"duration"`
}

type healthReport struct {
	Status        string        `json:"status"`
	Checks        []healthEntry `json:"checks"`
	TotalDuration string        `json:"totalDuration"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	start := time.Now()
	report := healthReport{Status: "Healthy", Checks: make([]healthEntry, 0, len(s.checks))}
	for _, check := range s.checks {
		checkStart := time.Now()
		entry := healthEntry{Name: check.Name(), Status: "Healthy"}
		if err := check.Check(ctx); err != nil {
			entry.Status = "Unhealthy"
			entry.Error = err.Error()
			report.Status = "Unhealthy"
		}
		entry.Duration = time.Since(checkStart).String()
		report.Checks = append(report.Checks, entry)
	}
	report.TotalDuration = time.Since(start).String()

	status := http.StatusOK
	if report.Status != "Healthy" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, report)
}
