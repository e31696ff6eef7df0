package persistence

import (
	"time"
)

// TeamModel represents the teams table
type TeamModel struct {
	ID        string    `gorm:"column:id;primaryKey;size:36"`
	Name      string    `gorm:"column:name;size:50;not null;uniqueIndex"`
	City      string    `gorm:"column:city;size:50;not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (TeamModel) TableName() string {
	return "teams"
}

// PlayerModel represents the players table
// Deleting a team that still has players is rejected by the foreign key.
type PlayerModel struct {
	ID           string     `gorm:"column:id;primaryKey;size:36"`
	FirstName    string     `gorm:"column:first_name;size:50;not null"`
	LastName     string     `gorm:"column:last_name;size:50;not null;index:idx_players_name,priority:1"`
	HeightCm     int        `gorm:"column:height_cm;not null"`
	WeightKg     int        `gorm:"column:weight_kg;not null"`
	Position     int        `gorm:"column:position;not null"`
	JerseyNumber string     `gorm:"column:jersey_number;size:3;not null"`
	TeamID       string     `gorm:"column:team_id;size:36;not null;index"`
	Team         *TeamModel `gorm:"foreignKey:TeamID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	CreatedAt    time.Time  `gorm:"column:created_at;not null"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;not null"`
}

func (PlayerModel) TableName() string {
	return "players"
}

// UserModel represents the users table
type UserModel struct {
	ID           string    `gorm:"column:id;primaryKey;size:36"`
	Username     string    `gorm:"column:username;size:50;not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	Role         string    `gorm:"column:role;size:16;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null"`
}

func (UserModel) TableName() string {
	return "users"
}

// AllModels lists every table in migration order
func AllModels() []interface{} {
	return []interface{}{
		&TeamModel{},
		&PlayerModel{},
		&UserModel{},
	}
}
