package setup

import (
	"reflect"
	"time"

	"github.com/hoopsdata/basketball-analytics/internal/application/auth"
	authCommands "github.com/hoopsdata/basketball-analytics/internal/application/auth/commands"
	authQueries "github.com/hoopsdata/basketball-analytics/internal/application/auth/queries"
	"github.com/hoopsdata/basketball-analytics/internal/application/behaviors"
	"github.com/hoopsdata/basketball-analytics/internal/application/common"
	"github.com/hoopsdata/basketball-analytics/internal/application/mediator"
	playerCommands "github.com/hoopsdata/basketball-analytics/internal/application/player/commands"
	playerQueries "github.com/hoopsdata/basketball-analytics/internal/application/player/queries"
	teamCommands "github.com/hoopsdata/basketball-analytics/internal/application/team/commands"
	teamQueries "github.com/hoopsdata/basketball-analytics/internal/application/team/queries"
	"github.com/hoopsdata/basketball-analytics/internal/application/validation"
	"github.com/hoopsdata/basketball-analytics/internal/domain/shared"
)

// HandlerRegistry holds all application dependencies for handler creation
type HandlerRegistry struct {
	store     common.Store
	cache     common.Cache
	publisher common.EventPublisher
	hasher    common.PasswordHasher
	issuer    common.TokenIssuer
	clock     shared.Clock
	teamsTTL  time.Duration
}

// NewHandlerRegistry creates a new handler registry with required dependencies
func NewHandlerRegistry(
	store common.Store,
	cache common.Cache,
	publisher common.EventPublisher,
	hasher common.PasswordHasher,
	issuer common.TokenIssuer,
	clock shared.Clock,
	teamsTTL time.Duration,
) *HandlerRegistry {
	// Default to real clock if not provided
	if clock == nil {
		clock = shared.NewRealClock()
	}

	return &HandlerRegistry{
		store:     store,
		cache:     cache,
		publisher: publisher,
		hasher:    hasher,
		issuer:    issuer,
		clock:     clock,
		teamsTTL:  teamsTTL,
	}
}

// RegisterTeamHandlers registers all team command and query handlers with the mediator
//
// This method registers:
//   - CreateTeamCommand, UpdateTeamCommand, DeleteTeamCommand (invalidate the team list cache)
//   - GetAllTeamsQuery (served from the cache when warm)
//   - GetTeamByIDQuery, GetTeamStatsQuery
func (r *HandlerRegistry) RegisterTeamHandlers(m mediator.Mediator) error {
	handlers := []struct {
		request any
		handler mediator.RequestHandler
	}{
		{&teamCommands.CreateTeamCommand{}, teamCommands.NewCreateTeamHandler(r.store, r.cache, r.clock)},
		{&teamCommands.UpdateTeamCommand{}, teamCommands.NewUpdateTeamHandler(r.store, r.cache, r.clock)},
		{&teamCommands.DeleteTeamCommand{}, teamCommands.NewDeleteTeamHandler(r.store, r.cache)},
		{&teamQueries.GetAllTeamsQuery{}, teamQueries.NewGetAllTeamsHandler(r.store, r.cache, r.teamsTTL)},
		{&teamQueries.GetTeamByIDQuery{}, teamQueries.NewGetTeamByIDHandler(r.store)},
		{&teamQueries.GetTeamStatsQuery{}, teamQueries.NewGetTeamStatsHandler(r.store)},
	}
	for _, h := range handlers {
		if err := m.Register(reflect.TypeOf(h.request), h.handler); err != nil {
			return err
		}
	}
	return nil
}

// RegisterPlayerHandlers registers all player command and query handlers
func (r *HandlerRegistry) RegisterPlayerHandlers(m mediator.Mediator) error {
	createHandler := playerCommands.NewCreatePlayerHandler(r.store, r.publisher, r.clock)
	if err := m.Register(reflect.TypeOf(&playerCommands.CreatePlayerCommand{}), createHandler); err != nil {
		return err
	}

	byTeamHandler := playerQueries.NewGetPlayersByTeamHandler(r.store)
	if err := m.Register(reflect.TypeOf(&playerQueries.GetPlayersByTeamQuery{}), byTeamHandler); err != nil {
		return err
	}

	pagedHandler := playerQueries.NewGetAllPlayersHandler(r.store)
	if err := m.Register(reflect.TypeOf(&playerQueries.GetAllPlayersQuery{}), pagedHandler); err != nil {
		return err
	}

	return nil
}

// RegisterAuthHandlers registers user registration and login
func (r *HandlerRegistry) RegisterAuthHandlers(m mediator.Mediator) error {
	registerHandler := authCommands.NewRegisterUserHandler(r.store, r.hasher, r.clock)
	if err := m.Register(reflect.TypeOf(&authCommands.RegisterUserCommand{}), registerHandler); err != nil {
		return err
	}

	loginHandler := authQueries.NewLoginHandler(r.store, r.hasher, r.issuer)
	if err := m.Register(reflect.TypeOf(&authQueries.LoginQuery{}), loginHandler); err != nil {
		return err
	}

	return nil
}

// RegisterValidation builds the validator registry with every request's rule set
func (r *HandlerRegistry) RegisterValidation() (*validation.Registry, error) {
	registry := validation.NewRegistry()

	if err := teamCommands.RegisterValidation(registry, r.store); err != nil {
		return nil, err
	}
	if err := playerCommands.RegisterValidation(registry, r.store); err != nil {
		return nil, err
	}
	if err := authCommands.RegisterValidation(registry, r.store); err != nil {
		return nil, err
	}

	return registry, nil
}

// CreateConfiguredMediator creates a new mediator with every handler and pipeline behavior registered
//
// Pipeline order, outermost first: logging, any instrumentation middleware,
// role authorization, validation. Handlers only ever see valid, authorized requests.
func (r *HandlerRegistry) CreateConfiguredMediator(instrumentation ...mediator.Middleware) (mediator.Mediator, error) {
	m := mediator.NewMediator()

	registry, err := r.RegisterValidation()
	if err != nil {
		return nil, err
	}

	pipeline := []mediator.Middleware{behaviors.LoggingMiddleware()}
	pipeline = append(pipeline, instrumentation...)
	pipeline = append(pipeline, auth.RoleMiddleware(), behaviors.ValidationMiddleware(registry))
	for _, mw := range pipeline {
		if err := m.RegisterMiddleware(mw); err != nil {
			return nil, err
		}
	}

	if err := r.RegisterTeamHandlers(m); err != nil {
		return nil, err
	}
	if err := r.RegisterPlayerHandlers(m); err != nil {
		return nil, err
	}
	if err := r.RegisterAuthHandlers(m); err != nil {
		return nil, err
	}

	return m, nil
}
