package behaviors_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopsdata/basketball-analytics/internal/application/behaviors"
	"github.com/hoopsdata/basketball-analytics/internal/application/common"
	"github.com/hoopsdata/basketball-analytics/internal/application/mediator"
	"github.com/hoopsdata/basketball-analytics/internal/application/validation"
	"github.com/hoopsdata/basketball-analytics/internal/domain/shared"
)

type renameCommand struct {
	Name string `validate:"required,max=5"`
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var line map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		lines = append(lines, line)
	}
	return lines
}

func newLoggedContext(buf *bytes.Buffer) context.Context {
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return common.WithLogger(context.Background(), logger)
}

func TestLoggingMiddleware_LogsSuccess(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	ctx := newLoggedContext(&buf)
	mw := behaviors.LoggingMiddleware()

	// Act
	_, err := mw(ctx, &renameCommand{}, func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		return "ok", nil
	})

	// Assert
	require.NoError(t, err)
	lines := logLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "Handling request", lines[0]["msg"])
	assert.Equal(t, "Request handled", lines[1]["msg"])
	assert.Equal(t, "renameCommand", lines[1]["request"])
	assert.Contains(t, lines[1], "elapsed")
}

func TestLoggingMiddleware_LogsFailureAndReturnsError(t *testing.T) {
	var buf bytes.Buffer
	ctx := newLoggedContext(&buf)
	boom := errors.New("boom")

	_, err := behaviors.LoggingMiddleware()(ctx, &renameCommand{}, func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		return nil, boom
	})

	assert.ErrorIs(t, err, boom)
	lines := logLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "WARN", lines[1]["level"])
	assert.Equal(t, "boom", lines[1]["error"])
}

func TestLoggingMiddleware_PropagatesPanic(t *testing.T) {
	var buf bytes.Buffer
	ctx := newLoggedContext(&buf)

	assert.PanicsWithValue(t, "kaboom", func() {
		_, _ = behaviors.LoggingMiddleware()(ctx, &renameCommand{}, func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
			panic("kaboom")
		})
	})

	lines := logLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "Request panicked", lines[1]["msg"])
}

func TestValidationMiddleware_ShortCircuits(t *testing.T) {
	// Arrange
	mw := behaviors.ValidationMiddleware(validation.NewRegistry())
	called := false
	next := func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		called = true
		return nil, nil
	}

	// Act
	_, err := mw(context.Background(), &renameCommand{Name: "much too long"}, next)

	// Assert
	var verr *shared.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"Name"}, verr.Fields())
	assert.False(t, called)
}

func TestValidationMiddleware_PassesValidRequests(t *testing.T) {
	mw := behaviors.ValidationMiddleware(validation.NewRegistry())

	resp, err := mw(context.Background(), &renameCommand{Name: "Heat"}, func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		return "done", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "done", resp)
}

func TestLoggingMiddleware_RecordsStartAtInfo(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ctx := common.WithLogger(context.Background(), logger)

	// Act
	_, err := behaviors.LoggingMiddleware()(ctx, &renameCommand{}, func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		return nil, nil
	})

	// Assert
	require.NoError(t, err)
	lines := logLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "Handling request", lines[0]["msg"])
	assert.Equal(t, "INFO", lines[0]["level"])
	assert.Equal(t, "renameCommand", lines[0]["request"])
}
