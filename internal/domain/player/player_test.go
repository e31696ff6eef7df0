package player

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPosition_StringAndValid(t *testing.T) {
	assert.Equal(t, "PointGuard", PointGuard.String())
	assert.Equal(t, "Center", Center.String())
	assert.True(t, SmallForward.Valid())
	assert.False(t, Position(0).Valid())
	assert.False(t, Position(6).Valid())
	assert.Equal(t, "Position(9)", Position(9).String())
}

func TestNewPlayer_AssignsIdentityAndTimestamps(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	teamID := uuid.New()

	p := NewPlayer("Michael", "Jordan", 198, 98, ShootingGuard, "23", teamID, now)

	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, "Michael Jordan", p.FullName())
	assert.Equal(t, teamID, p.TeamID)
	assert.Equal(t, now, p.CreatedAt)
	assert.Equal(t, now, p.UpdatedAt)
}
