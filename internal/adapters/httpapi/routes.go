package httpapi

import (
	"net/http"

	"github.com/hoopsdata/basketball-analytics/internal/adapters/metrics"
)

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)

	mux.HandleFunc("GET /api/teams", s.requireAuth(s.handleListTeams))
	mux.HandleFunc("POST /api/teams", s.requireAuth(s.handleCreateTeam))
	mux.HandleFunc("GET /api/teams/{id}", s.requireAuth(s.handleGetTeam))
	mux.HandleFunc("PUT /api/teams/{id}", s.requireAuth(s.handleUpdateTeam))
	mux.HandleFunc("DELETE /api/teams/{id}", s.requireAuth(s.handleDeleteTeam))
	mux.HandleFunc("GET /api/teams/{id}/stats", s.requireAuth(s.handleTeamStats))

	mux.HandleFunc("GET /api/players", s.requireAuth(s.handleListPlayers))
	mux.HandleFunc("POST /api/players", s.requireAuth(s.handleCreatePlayer))
	mux.HandleFunc("GET /api/players/team/{teamId}", s.requireAuth(s.handlePlayersByTeam))

	mux.HandleFunc("GET /health", s.handleHealth)
	if s.metricsPath != "" {
		mux.Handle("GET "+s.metricsPath, metrics.Handler())
	}

	return mux
}
