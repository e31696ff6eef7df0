package queries

import (
	"context"
	"errors"
	"fmt"

	"github.com/hoopsdata/basketball-analytics/internal/application/common"
	"github.com/hoopsdata/basketball-analytics/internal/application/mediator"
	"github.com/hoopsdata/basketball-analytics/internal/domain/shared"
)

const invalidCredentials = "Invalid username or password."

// LoginQuery exchanges credentials for a bearer token
type LoginQuery struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// LoginResponse carries the signed token
type LoginResponse struct {
	Token string
}

// LoginHandler handles the Login query
type LoginHandler struct {
	store  common.Store
	hasher common.PasswordHasher
	issuer common.TokenIssuer
}

// NewLoginHandler creates a new LoginHandler
func NewLoginHandler(store common.Store, hasher common.PasswordHasher, issuer common.TokenIssuer) *LoginHandler {
	return &LoginHandler{
		store:  store,
		hasher: hasher,
		issuer: issuer,
	}
}

// Handle executes the Login query. Unknown users and wrong passwords fail identically.
func (h *LoginHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	query, ok := request.(*LoginQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *LoginQuery")
	}

	u, err := h.store.Begin().Users().FindByUsername(ctx, query.Username)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, shared.NewValidationError("Username", invalidCredentials)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if !h.hasher.Verify(u.PasswordHash, query.Password) {
		return nil, shared.NewValidationError("Username", invalidCredentials)
	}

	token, err := h.issuer.Issue(u)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginResponse{Token: token}, nil
}
