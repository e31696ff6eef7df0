package httpapi

import (
	"net/http"

	authCommands "github.com/hoopsdata/basketball-analytics/internal/application/auth/commands"
	authQueries "github.com/hoopsdata/basketball-analytics/internal/application/auth/queries"
	"github.com/hoopsdata/basketball-analytics/internal/application/mediator"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var body registerRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := mediator.Send[*authCommands.RegisterUserResponse](r.Context(), s.mediator, &authCommands.RegisterUserCommand{
		Username: body.Username,
		Password: body.Password,
		Role:     body.Role,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, userIDResponse{UserID: resp.UserID})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := mediator.Send[*authQueries.LoginResponse](r.Context(), s.mediator, &authQueries.LoginQuery{
		Username: body.Username,
		Password: body.Password,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{Token: resp.Token})
}
