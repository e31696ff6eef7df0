package events

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hoopsdata/basketball-analytics/internal/application/common"
)

// Step is one follow-up action run for every new player.
type Step struct {
	Name string
	Run  func(ctx context.Context, event *PlayerCreatedEvent) error
}

// PlayerCreatedProcessor consumes PlayerCreated events from the broker.
type PlayerCreatedProcessor struct {
	// malformed wraps decode failures so the consumer stops retrying them.
	malformed func(err error) error
	steps     []Step
}

// NewPlayerCreatedProcessor runs the default follow-up steps. Pass steps to replace them.
func NewPlayerCreatedProcessor(malformed func(err error) error, steps ...Step) *PlayerCreatedProcessor {
	if len(steps) == 0 {
		steps = DefaultSteps()
	}
	return &PlayerCreatedProcessor{malformed: malformed, steps: steps}
}

// DefaultSteps announce the welcome email, the stats refresh and the coach notification.
// Delivery to real email and notification services is not wired yet.
func DefaultSteps() []Step {
	return []Step{
		{Name: "welcome_email", Run: func(ctx context.Context, e *PlayerCreatedEvent) error {
			common.LoggerFromContext(ctx).InfoContext(ctx, "Welcome email sent", slog.String("player_id", e.PlayerID.String()))
			return nil
		}},
		{Name: "team_stats", Run: func(ctx context.Context, e *PlayerCreatedEvent) error {
			common.LoggerFromContext(ctx).InfoContext(ctx, "Team stats updated", slog.String("team_id", e.TeamID.String()))
			return nil
		}},
		{Name: "coach_notification", Run: func(ctx context.Context, e *PlayerCreatedEvent) error {
			common.LoggerFromContext(ctx).InfoContext(ctx, "Coach notified", slog.String("player_id", e.PlayerID.String()))
			return nil
		}},
	}
}

// Process handles one raw event payload.
// A failing step aborts the remaining ones and the whole event is retried.
func (p *PlayerCreatedProcessor) Process(ctx context.Context, payload []byte) error {
	event, err := DecodePlayerCreated(payload)
	if err != nil {
		if p.malformed != nil {
			return p.malformed(err)
		}
		return err
	}

	logger := common.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "Processing PlayerCreated event",
		slog.String("player_id", event.PlayerID.String()),
		slog.String("player", fmt.Sprintf("%s %s", event.FirstName, event.LastName)),
		slog.String("team_id", event.TeamID.String()),
	)

	for _, step := range p.steps {
		if err := step.Run(ctx, event); err != nil {
			return fmt.Errorf("step %s failed for player %s: %w", step.Name, event.PlayerID, err)
		}
	}

	logger.InfoContext(ctx, "PlayerCreated event processed", slog.String("player_id", event.PlayerID.String()))
	return nil
}
