package httpapi

import (
	"net/http"

	"github.com/hoopsdata/basketball-analytics/internal/application/mediator"
	playerCommands "github.com/hoopsdata/basketball-analytics/internal/application/player/commands"
	playerQueries "github.com/hoopsdata/basketball-analytics/internal/application/player/queries"
)

func (s *Server) handleListPlayers(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", playerQueries.DefaultPage)
	if err != nil {
		writeError(w, r, err)
		return
	}
	pageSize, err := queryInt(r, "pageSize", playerQueries.DefaultPageSize)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := mediator.Send[*playerQueries.PagedResult[playerQueries.PlayerDTO]](r.Context(), s.mediator,
		&playerQueries.GetAllPlayersQuery{Page: page, PageSize: pageSize})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handlePlayersByTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := pathID(r, "teamId", "Team")
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := mediator.Send[*playerQueries.GetPlayersByTeamResponse](r.Context(), s.mediator,
		&playerQueries.GetPlayersByTeamQuery{TeamID: teamID})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp.Players)
}

func (s *Server) handleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	var body createPlayerRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := mediator.Send[*playerCommands.CreatePlayerResponse](r.Context(), s.mediator, &playerCommands.CreatePlayerCommand{
		FirstName:    body.FirstName,
		LastName:     body.LastName,
		HeightCm:     body.HeightCm,
		WeightKg:     body.WeightKg,
		Position:     body.Position,
		JerseyNumber: body.JerseyNumber,
		TeamID:       body.TeamID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{ID: resp.PlayerID})
}
