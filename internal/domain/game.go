package domain

import "time"

// Game represents one played game: its configuration, participants, optional
// winner and an opaque history blob.
type Game struct {
	ID        int64     `json:"id" gorm:"primaryKey;column:id;autoIncrement"`
	Config    JSON      `json:"config" gorm:"type:jsonb"`
	StartedAt time.Time `json:"game_started_time" gorm:"not null"`
	EndedAt   time.Time `json:"game_ended_time" gorm:"not null"`
	WinnerID  *int64    `json:"-" gorm:"index"`
	Winner    *User     `json:"winner,omitempty" gorm:"foreignKey:WinnerID"`
	Users     []User    `json:"users" gorm:"many2many:users_to_games"`
	History   JSON      `json:"history" gorm:"type:jsonb"`
}

// TableName specifies the table name for Game
func (g Game) TableName() string {
	return "games"
}

// GameRepository defines the interface for game data
type GameRepository interface {
	GetByID(id int64) (*Game, error)
	// Create persists the game, resolving participants and the optional winner
	// by auth id. The first unknown auth id aborts with a user not-found error.
	Create(game *Game, userAuthIDs []int64, winnerAuthID *int64) (*Game, error)
}

// GameUseCase defines the interface for game business logic
type GameUseCase interface {
	GetGame(id int64) (*Game, error)
	CreateGame(game *Game, userAuthIDs []int64, winnerAuthID *int64) (*Game, error)
}
