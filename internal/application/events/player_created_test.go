package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopsdata/basketball-analytics/internal/application/events"
)

var errMalformed = errors.New("malformed")

func TestPlayerCreatedEvent_RoundTripsThroughJSON(t *testing.T) {
	event := &events.PlayerCreatedEvent{
		PlayerID:  uuid.New(),
		FirstName: "Stephen",
		LastName:  "Curry",
		TeamID:    uuid.New(),
		CreatedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	decoded, err := events.DecodePlayerCreated(payload)

	require.NoError(t, err)
	assert.Equal(t, event, decoded)
	assert.Equal(t, event.TeamID.String(), decoded.EventKey())
	assert.Equal(t, events.PlayerCreatedEventName, decoded.EventName())
}

func TestPlayerCreatedProcessor_MarksMalformedPayloads(t *testing.T) {
	processor := events.NewPlayerCreatedProcessor(func(err error) error {
		return errors.Join(errMalformed, err)
	})

	tests := map[string][]byte{
		"empty":      nil,
		"not json":   []byte("{"),
		"missing id": []byte(`{"firstName":"A"}`),
	}
	for name, payload := range tests {
		t.Run(name, func(t *testing.T) {
			err := processor.Process(context.Background(), payload)
			assert.ErrorIs(t, err, errMalformed)
		})
	}
}

func TestPlayerCreatedProcessor_AcceptsValidPayload(t *testing.T) {
	payload, err := json.Marshal(&events.PlayerCreatedEvent{PlayerID: uuid.New(), TeamID: uuid.New()})
	require.NoError(t, err)

	assert.NoError(t, events.NewPlayerCreatedProcessor(nil).Process(context.Background(), payload))
}

func TestPlayerCreatedProcessor_RunsStepsInOrderAndStopsOnFailure(t *testing.T) {
	// Arrange
	payload, err := json.Marshal(&events.PlayerCreatedEvent{PlayerID: uuid.New(), TeamID: uuid.New()})
	require.NoError(t, err)

	var ran []string
	step := func(name string, fail error) events.Step {
		return events.Step{Name: name, Run: func(ctx context.Context, e *events.PlayerCreatedEvent) error {
			ran = append(ran, name)
			return fail
		}}
	}
	emailDown := errors.New("email service is down")
	processor := events.NewPlayerCreatedProcessor(nil,
		step("welcome_email", nil),
		step("team_stats", emailDown),
		step("coach_notification", nil),
	)

	// Act
	err = processor.Process(context.Background(), payload)

	// Assert
	assert.ErrorIs(t, err, emailDown)
	assert.Contains(t, err.Error(), "team_stats")
	assert.Equal(t, []string{"welcome_email", "team_stats"}, ran)
}
