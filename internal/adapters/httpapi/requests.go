package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/hoopsdata/basketball-analytics/internal/domain/shared"
)

// maxBodyBytes bounds request bodies
const maxBodyBytes = 1 << 20

type createTeamRequest struct {
	Name string `json:"name"`
	City string `json:"city"`
}

type updateTeamRequest struct {
	Name string `json:"name"`
	City string `json:"city"`
}

type createPlayerRequest struct {
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	HeightCm     int       `json:"heightCm"`
	WeightKg     int       `json:"weightKg"`
	Position     int       `json:"position"`
	JerseyNumber string    `json:"jerseyNumber"`
	TeamID       uuid.UUID `json:"teamId"`
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type idResponse struct {
	ID uuid.UUID `json:"id"`
}

type userIDResponse struct {
	UserID uuid.UUID `json:"userId"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func decodeBody(r *http.Request, dst any) error {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return shared.NewValidationError("Body", "A request body is required.")
		}
		return shared.NewValidationError("Body", "The request body is not valid JSON.")
	}
	return nil
}

// pathID parses a uuid path segment. Unparseable ids cannot name a stored entity.
func pathID(r *http.Request, name, entity string) (uuid.UUID, error) {
	raw := r.PathValue(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, shared.NewNotFoundError(entity, raw)
	}
	return id, nil
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, shared.NewValidationError(name, "'"+name+"' must be a whole number.")
	}
	return v, nil
}
