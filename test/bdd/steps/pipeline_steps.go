package steps

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"

	"github.com/hoopsdata/basketball-analytics/internal/application/auth"
	"github.com/hoopsdata/basketball-analytics/internal/application/mediator"
	"github.com/hoopsdata/basketball-analytics/internal/domain/shared"
	"github.com/hoopsdata/basketball-analytics/internal/domain/user"
	"github.com/hoopsdata/basketball-analytics/test/helpers"
)

// PipelineContext holds the application under test and the outcome of the last request
type PipelineContext struct {
	app       *helpers.TestApp
	principal *auth.Principal

	lastResponse mediator.Response
	lastErr      error

	teams map[string]uuid.UUID
}

func NewPipelineContext() *PipelineContext {
	return &PipelineContext{}
}

// Register wires the lifecycle hooks and the shared outcome steps
func (c *PipelineContext) Register(sc *godog.ScenarioContext) {
	sc.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		return ctx, c.reset()
	})
	sc.After(func(ctx context.Context, s *godog.Scenario, err error) (context.Context, error) {
		if c.app != nil {
			c.app.Close()
			c.app = nil
		}
		return ctx, nil
	})

	sc.Step(`^the application is running$`, c.theApplicationIsRunning)
	sc.Step(`^I am signed in as an? "([^"]*)"$`, c.iAmSignedInAs)

	sc.Step(`^the request succeeds$`, c.theRequestSucceeds)
	sc.Step(`^the request fails validation on "([^"]*)"$`, c.theRequestFailsValidationOn)
	sc.Step(`^the request fails with a conflict mentioning "([^"]*)"$`, c.theRequestFailsWithAConflictMentioning)
	sc.Step(`^the request fails with not found$`, c.theRequestFailsWithNotFound)
	sc.Step(`^the request is forbidden$`, c.theRequestIsForbidden)
}

func (c *PipelineContext) reset() error {
	if err := helpers.TruncateAllTables(); err != nil {
		return err
	}
	c.principal = nil
	c.lastResponse = nil
	c.lastErr = nil
	c.teams = make(map[string]uuid.UUID)
	return nil
}

func (c *PipelineContext) theApplicationIsRunning() error {
	app, err := helpers.NewTestApp(helpers.SharedTestDB, time.Minute)
	if err != nil {
		return err
	}
	c.app = app
	return nil
}

func (c *PipelineContext) iAmSignedInAs(role string) error {
	r := user.Role(role)
	if !r.Valid() {
		return fmt.Errorf("unknown role %q", role)
	}
	c.principal = &auth.Principal{UserID: uuid.New(), Username: strings.ToLower(role), Role: r}
	return nil
}

// send dispatches through the full pipeline as the signed-in principal
func (c *PipelineContext) send(request mediator.Request) {
	ctx := context.Background()
	if c.principal != nil {
		ctx = auth.WithPrincipal(ctx, *c.principal)
	}
	c.lastResponse, c.lastErr = c.app.Mediator.Send(ctx, request)
}

func (c *PipelineContext) theRequestSucceeds() error {
	if c.lastErr != nil {
		return fmt.Errorf("expected success, got: %w", c.lastErr)
	}
	return nil
}

func (c *PipelineContext) validationError() (*shared.ValidationError, error) {
	var validationErr *shared.ValidationError
	if !errors.As(c.lastErr, &validationErr) {
		return nil, fmt.Errorf("expected a validation failure, got: %v", c.lastErr)
	}
	return validationErr, nil
}

func (c *PipelineContext) theRequestFailsValidationOn(field string) error {
	validationErr, err := c.validationError()
	if err != nil {
		return err
	}
	for _, f := range validationErr.Fields() {
		if f == field {
			return nil
		}
	}
	return fmt.Errorf("expected a failure on %q, got %v", field, validationErr.Fields())
}

func (c *PipelineContext) theRequestFailsWithAConflictMentioning(text string) error {
	if !errors.Is(c.lastErr, shared.ErrConflict) {
		return fmt.Errorf("expected a conflict, got: %v", c.lastErr)
	}
	if !strings.Contains(c.lastErr.Error(), text) {
		return fmt.Errorf("expected conflict to mention %q, got: %v", text, c.lastErr)
	}
	return nil
}

func (c *PipelineContext) theRequestFailsWithNotFound() error {
	if !errors.Is(c.lastErr, shared.ErrNotFound) {
		return fmt.Errorf("expected not found, got: %v", c.lastErr)
	}
	return nil
}

func (c *PipelineContext) theRequestIsForbidden() error {
	if !errors.Is(c.lastErr, shared.ErrForbidden) {
		return fmt.Errorf("expected forbidden, got: %v", c.lastErr)
	}
	return nil
}
