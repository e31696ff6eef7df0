package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hoopsdata/basketball-analytics/internal/application/common"
	"github.com/hoopsdata/basketball-analytics/internal/application/mediator"
	"github.com/hoopsdata/basketball-analytics/internal/domain/shared"
	"github.com/hoopsdata/basketball-analytics/internal/domain/user"
)

// RegisterUserCommand creates an API account
type RegisterUserCommand struct {
	Username string `validate:"required,min=3,max=50"`
	Password string `validate:"required,min=6"`
	Role     string `validate:"required"`
}

// RegisterUserResponse carries the identifier of the new account
type RegisterUserResponse struct {
	UserID uuid.UUID
}

// RegisterUserHandler handles the RegisterUser command
type RegisterUserHandler struct {
	store  common.Store
	hasher common.PasswordHasher
	clock  shared.Clock
}

// NewRegisterUserHandler creates a new RegisterUserHandler
func NewRegisterUserHandler(store common.Store, hasher common.PasswordHasher, clock shared.Clock) *RegisterUserHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &RegisterUserHandler{
		store:  store,
		hasher: hasher,
		clock:  clock,
	}
}

// Handle executes the RegisterUser command
func (h *RegisterUserHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*RegisterUserCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RegisterUserCommand")
	}

	hash, err := h.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := user.NewUser(cmd.Username, hash, user.Role(cmd.Role), h.clock.Now())
	uow := h.store.Begin()
	uow.Users().Add(u)
	if _, err := uow.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	return &RegisterUserResponse{UserID: u.ID}, nil
}
