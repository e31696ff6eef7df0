package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hoopsdata/basketball-analytics/internal/domain/player"
)

// GormPlayerRepository implements player.Repository using GORM
type GormPlayerRepository struct {
	db  *gorm.DB
	uow *GormUnitOfWork
}

// FindByTeam retrieves a team's players ordered by name
func (r *GormPlayerRepository) FindByTeam(ctx context.Context, teamID uuid.UUID) ([]*player.Player, error) {
	var models []PlayerModel
	result := r.db.WithContext(ctx).
		Preload("Team").
		Where("team_id = ?", teamID.String()).
		Order("last_name ASC, first_name ASC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find players: %w", result.Error)
	}

	return modelsToPlayers(models)
}

// ListPage retrieves one page of players and the total player count
func (r *GormPlayerRepository) ListPage(ctx context.Context, offset, limit int) ([]*player.Player, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&PlayerModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count players: %w", err)
	}

	var models []PlayerModel
	result := r.db.WithContext(ctx).
		Preload("Team").
		Order("last_name ASC, first_name ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to list players: %w", result.Error)
	}

	players, err := modelsToPlayers(models)
	if err != nil {
		return nil, 0, err
	}
	return players, total, nil
}

// CountByTeam counts the players assigned to a team
func (r *GormPlayerRepository) CountByTeam(ctx context.Context, teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&PlayerModel{}).Where("team_id = ?", teamID.String()).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count players: %w", err)
	}
	return count, nil
}

// Add stages an insert
func (r *GormPlayerRepository) Add(p *player.Player) {
	model := playerToModel(p)
	r.uow.stage(func(tx *gorm.DB) (int64, error) {
		result := tx.Omit("Team").Create(model)
		return result.RowsAffected, result.Error
	})
}

func playerToModel(p *player.Player) *PlayerModel {
	return &PlayerModel{
		ID:           p.ID.String(),
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		HeightCm:     p.HeightCm,
		WeightKg:     p.WeightKg,
		Position:     int(p.Position),
		JerseyNumber: p.JerseyNumber,
		TeamID:       p.TeamID.String(),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func modelToPlayer(model *PlayerModel) (*player.Player, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid player id %q: %w", model.ID, err)
	}
	teamID, err := uuid.Parse(model.TeamID)
	if err != nil {
		return nil, fmt.Errorf("invalid team id %q on player %s: %w", model.TeamID, model.ID, err)
	}

	p := &player.Player{
		ID:           id,
		FirstName:    model.FirstName,
		LastName:     model.LastName,
		HeightCm:     model.HeightCm,
		WeightKg:     model.WeightKg,
		Position:     player.Position(model.Position),
		JerseyNumber: model.JerseyNumber,
		TeamID:       teamID,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
	if model.Team != nil {
		p.TeamName = model.Team.Name
	}
	return p, nil
}

func modelsToPlayers(models []PlayerModel) ([]*player.Player, error) {
	players := make([]*player.Player, 0, len(models))
	for i := range models {
		p, err := modelToPlayer(&models[i])
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, nil
}
