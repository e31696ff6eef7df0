package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hoopsdata/basketball-analytics/internal/domain/shared"
	"github.com/hoopsdata/basketball-analytics/internal/domain/team"
)

// GormTeamRepository implements team.Repository using GORM
type GormTeamRepository struct {
	db  *gorm.DB
	uow *GormUnitOfWork
}

// FindByID retrieves a team by ID
func (r *GormTeamRepository) FindByID(ctx context.Context, id uuid.UUID) (*team.Team, error) {
	var model TeamModel
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("team", id)
		}
		return nil, fmt.Errorf("failed to find team: %w", result.Error)
	}

	return modelToTeam(&model)
}

// ListOrderedByName retrieves every team ordered by name
func (r *GormTeamRepository) ListOrderedByName(ctx context.Context) ([]*team.Team, error) {
	var models []TeamModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list teams: %w", result.Error)
	}

	teams := make([]*team.Team, 0, len(models))
	for i := range models {
		t, err := modelToTeam(&models[i])
		if err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, nil
}

// NameExists reports whether a team other than excludeID uses name
func (r *GormTeamRepository) NameExists(ctx context.Context, name string, excludeID uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).Model(&TeamModel{}).Where("name = ?", name)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID.String())
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check team name: %w", err)
	}
	return count > 0, nil
}

// Roster aggregates the team's players. The team itself is not checked.
func (r *GormTeamRepository) Roster(ctx context.Context, id uuid.UUID) (*team.Roster, error) {
	var totals struct {
		PlayerCount int64
		AvgHeight   *float64
		AvgWeight   *float64
	}
	err := r.db.WithContext(ctx).Model(&PlayerModel{}).
		Select("COUNT(*) AS player_count, AVG(height_cm) AS avg_height, AVG(weight_kg) AS avg_weight").
		Where("team_id = ?", id.String()).
		Scan(&totals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate roster: %w", err)
	}

	var positions []struct {
		Position int
		Total    int
	}
	err = r.db.WithContext(ctx).Model(&PlayerModel{}).
		Select("position, COUNT(*) AS total").
		Where("team_id = ?", id.String()).
		Group("position").
		Scan(&positions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count positions: %w", err)
	}

	roster := &team.Roster{
		PlayerCount:    int(totals.PlayerCount),
		PositionCounts: make(map[int]int, len(positions)),
	}
	if totals.AvgHeight != nil {
		roster.AverageHeightCm = *totals.AvgHeight
	}
	if totals.AvgWeight != nil {
		roster.AverageWeightKg = *totals.AvgWeight
	}
	for _, p := range positions {
		roster.PositionCounts[p.Position] = p.Total
	}
	return roster, nil
}

// Add stages an insert
func (r *GormTeamRepository) Add(t *team.Team) {
	model := teamToModel(t)
	r.uow.stage(func(tx *gorm.DB) (int64, error) {
		result := tx.Create(model)
		return result.RowsAffected, result.Error
	})
}

// Update stages an update of name, city and timestamp
func (r *GormTeamRepository) Update(t *team.Team) {
	model := teamToModel(t)
	r.uow.stage(func(tx *gorm.DB) (int64, error) {
		result := tx.Model(&TeamModel{}).Where("id = ?", model.ID).Updates(map[string]interface{}{
			"name":       model.Name,
			"city":       model.City,
			"updated_at": model.UpdatedAt,
		})
		if result.Error != nil {
			return 0, result.Error
		}
		if result.RowsAffected == 0 {
			return 0, shared.NewNotFoundError("team", model.ID)
		}
		return result.RowsAffected, nil
	})
}

// Remove stages a hard delete
func (r *GormTeamRepository) Remove(t *team.Team) {
	id := t.ID.String()
	r.uow.stage(func(tx *gorm.DB) (int64, error) {
		result := tx.Where("id = ?", id).Delete(&TeamModel{})
		if result.Error != nil {
			return 0, result.Error
		}
		if result.RowsAffected == 0 {
			return 0, shared.NewNotFoundError("team", id)
		}
		return result.RowsAffected, nil
	})
}

func teamToModel(t *team.Team) *TeamModel {
	return &TeamModel{
		ID:        t.ID.String(),
		Name:      t.Name,
		City:      t.City,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func modelToTeam(model *TeamModel) (*team.Team, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid team id %q: %w", model.ID, err)
	}
	return &team.Team{
		ID:        id,
		Name:      model.Name,
		City:      model.City,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}, nil
}
