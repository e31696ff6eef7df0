package httpapi

import (
	"net/http"

	"github.com/hoopsdata/basketball-analytics/internal/application/mediator"
	teamCommands "github.com/hoopsdata/basketball-analytics/internal/application/team/commands"
	teamQueries "github.com/hoopsdata/basketball-analytics/internal/application/team/queries"
)

func (s *Server) handleListTeams(w http.ResponseWriter, r *http.Request) {
	resp, err := mediator.Send[*teamQueries.GetAllTeamsResponse](r.Context(), s.mediator, &teamQueries.GetAllTeamsQuery{})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp.Teams)
}

func (s *Server) handleGetTeam(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "Team")
	if err != nil {
		writeError(w, r, err)
		return
	}

	dto, err := mediator.Send[*teamQueries.TeamDTO](r.Context(), s.mediator, &teamQueries.GetTeamByIDQuery{ID: id})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (s *Server) handleTeamStats(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "Team")
	if err != nil {
		writeError(w, r, err)
		return
	}

	stats, err := mediator.Send[*teamQueries.TeamStatsDTO](r.Context(), s.mediator, &teamQueries.GetTeamStatsQuery{TeamID: id})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleCreateTeam(w http.ResponseWriter, r *http.Request) {
	var body createTeamRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := mediator.Send[*teamCommands.CreateTeamResponse](r.Context(), s.mediator, &teamCommands.CreateTeamCommand{
		Name: body.Name,
		City: body.City,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/teams/"+resp.TeamID.String())
	writeJSON(w, http.StatusCreated, idResponse{ID: resp.TeamID})
}

func (s *Server) handleUpdateTeam(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "Team")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var body updateTeamRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := s.mediator.Send(r.Context(), &teamCommands.UpdateTeamCommand{ID: id, Name: body.Name, City: body.City}); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteTeam(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "Team")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := s.mediator.Send(r.Context(), &teamCommands.DeleteTeamCommand{ID: id}); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
