package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/hoopsdata/basketball-analytics/internal/application/common"
	"github.com/hoopsdata/basketball-analytics/internal/domain/player"
	"github.com/hoopsdata/basketball-analytics/internal/domain/shared"
	"github.com/hoopsdata/basketball-analytics/internal/domain/team"
	"github.com/hoopsdata/basketball-analytics/internal/domain/user"
)

// GormStore opens GORM-backed units of work
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM store
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Begin opens a unit of work. Nothing touches the database until a read or Commit.
func (s *GormStore) Begin() common.UnitOfWork {
	uow := &GormUnitOfWork{db: s.db}
	uow.teams = &GormTeamRepository{db: s.db, uow: uow}
	uow.players = &GormPlayerRepository{db: s.db, uow: uow}
	uow.users = &GormUserRepository{db: s.db, uow: uow}
	return uow
}

// stagedWrite runs inside the commit transaction and reports the rows it affected
type stagedWrite func(tx *gorm.DB) (int64, error)

// GormUnitOfWork stages writes and applies them in one transaction.
// A unit of work belongs to a single request and is not safe for concurrent use.
type GormUnitOfWork struct {
	db      *gorm.DB
	pending []stagedWrite

	teams   *GormTeamRepository
	players *GormPlayerRepository
	users   *GormUserRepository
}

func (u *GormUnitOfWork) Teams() team.Repository {
	return u.teams
}

func (u *GormUnitOfWork) Players() player.Repository {
	return u.players
}

func (u *GormUnitOfWork) Users() user.Repository {
	return u.users
}

func (u *GormUnitOfWork) stage(write stagedWrite) {
	u.pending = append(u.pending, write)
}

// Commit applies every staged write atomically. The staged writes are
// discarded whether or not the commit succeeds.
func (u *GormUnitOfWork) Commit(ctx context.Context) (int, error) {
	pending := u.pending
	u.pending = nil

	if len(pending) == 0 {
		return 0, nil
	}

	var affected int64
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, write := range pending {
			n, err := write(tx)
			if err != nil {
				return err
			}
			affected += n
		}
		return nil
	})
	if err != nil {
		return 0, translateError(err)
	}

	return int(affected), nil
}

// translateError maps constraint violations onto the domain taxonomy
func translateError(err error) error {
	var notFound *shared.NotFoundError
	if errors.As(err, &notFound) {
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey), isUniqueViolation(err):
		return fmt.Errorf("%w: %v", shared.NewConflictError("a record with the same unique value already exists"), err)
	case errors.Is(err, gorm.ErrForeignKeyViolated), isForeignKeyViolation(err):
		return fmt.Errorf("%w: %v", shared.NewConflictError("the record is referenced by or references missing data"), err)
	}
	return err
}

func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "duplicate key value")
}

func isForeignKeyViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "FOREIGN KEY constraint failed") || strings.Contains(msg, "violates foreign key constraint")
}
