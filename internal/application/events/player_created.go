package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const PlayerCreatedEventName = "PlayerCreated"

// PlayerCreatedEvent is published after a new player has been committed.
type PlayerCreatedEvent struct {
	PlayerID  uuid.UUID `json:"playerId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	TeamID    uuid.UUID `json:"teamId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (e *PlayerCreatedEvent) EventName() string {
	return PlayerCreatedEventName
}

// EventKey partitions events by team so a team's roster changes stay ordered.
func (e *PlayerCreatedEvent) EventKey() string {
	return e.TeamID.String()
}

// DecodePlayerCreated parses a payload produced by the outbound queue.
func DecodePlayerCreated(payload []byte) (*PlayerCreatedEvent, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("empty player created payload")
	}

	var event PlayerCreatedEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("failed to decode player created event: %w", err)
	}
	if event.PlayerID == uuid.Nil {
		return nil, fmt.Errorf("player created event has no player id")
	}
	return &event, nil
}
