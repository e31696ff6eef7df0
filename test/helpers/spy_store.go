package helpers

import (
	"context"
	"sync/atomic"

	"github.com/hoopsdata/basketball-analytics/internal/application/common"
	"github.com/hoopsdata/basketball-analytics/internal/domain/player"
	"github.com/hoopsdata/basketball-analytics/internal/domain/team"
	"github.com/hoopsdata/basketball-analytics/internal/domain/user"
)

// SpyStore wraps a real store and counts the reads and commits that reach it
type SpyStore struct {
	inner     common.Store
	teamLists atomic.Int64
	commits   atomic.Int64
	begins    atomic.Int64
}

func NewSpyStore(inner common.Store) *SpyStore {
	return &SpyStore{inner: inner}
}

func (s *SpyStore) Begin() common.UnitOfWork {
	s.begins.Add(1)
	return &spyUnitOfWork{inner: s.inner.Begin(), spy: s}
}

// TeamListReads is how often the ordered team list was loaded from the store
func (s *SpyStore) TeamListReads() int { return int(s.teamLists.Load()) }

// Commits counts successful commits
func (s *SpyStore) Commits() int { return int(s.commits.Load()) }

// UnitsOfWork counts Begin calls
func (s *SpyStore) UnitsOfWork() int { return int(s.begins.Load()) }

// Reset zeroes every counter
func (s *SpyStore) Reset() {
	s.teamLists.Store(0)
	s.commits.Store(0)
	s.begins.Store(0)
}

type spyUnitOfWork struct {
	inner common.UnitOfWork
	spy   *SpyStore
}

func (u *spyUnitOfWork) Teams() team.Repository {
	return &spyTeamRepository{Repository: u.inner.Teams(), spy: u.spy}
}

func (u *spyUnitOfWork) Players() player.Repository { return u.inner.Players() }

func (u *spyUnitOfWork) Users() user.Repository { return u.inner.Users() }

func (u *spyUnitOfWork) Commit(ctx context.Context) (int, error) {
	n, err := u.inner.Commit(ctx)
	if err == nil {
		u.spy.commits.Add(1)
	}
	return n, err
}

type spyTeamRepository struct {
	team.Repository
	spy *SpyStore
}

func (r *spyTeamRepository) ListOrderedByName(ctx context.Context) ([]*team.Team, error) {
	r.spy.teamLists.Add(1)
	return r.Repository.ListOrderedByName(ctx)
}
