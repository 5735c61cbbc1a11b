package domain

// User represents a player on the platform. AuthID is the externally issued
// identity key; ID is the internal surrogate.
type User struct {
	ID       int64   `json:"-" gorm:"primaryKey;column:id;autoIncrement"`
	AuthID   int64   `json:"auth_id" gorm:"uniqueIndex;not null"`
	Name     string  `json:"name" gorm:"type:varchar(64);not null"`
	Wallet   *Wallet `json:"wallet,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Games    []Game  `json:"games,omitempty" gorm:"many2many:users_to_games"`
	GamesWon []Game  `json:"games_won,omitempty" gorm:"foreignKey:WinnerID"`
}

// TableName specifies the table name for User
func (u User) TableName() string {
	return "users"
}

// Wallet holds the chain address of a user, one per user.
type Wallet struct {
	ID      int64  `json:"-" gorm:"primaryKey;column:id;autoIncrement"`
	Address string `json:"address" gorm:"type:varchar(64);not null"`
	UserID  int64  `json:"-" gorm:"not null;uniqueIndex"`
}

// TableName specifies the table name for Wallet
func (w Wallet) TableName() string {
	return "wallets"
}

// UserRepository defines the interface for user data
type UserRepository interface {
	GetByAuthID(authID int64) (*User, error)
	Create(user *User) (*User, error)
	Update(user *User) (*User, error)
	DeleteByAuthID(authID int64) error
	// MissingAuthIDs returns the subset of authIDs with no matching user,
	// preserving input order.
	MissingAuthIDs(authIDs []int64) ([]int64, error)
}

// UserUseCase defines the interface for user business logic
type UserUseCase interface {
	GetUserByAuthID(authID int64) (*User, error)
	CreateUser(user *User) (*User, error)
	UpdateUserByAuthID(authID int64, name string, walletAddress *string) (*User, error)
	DeleteUserByAuthID(authID int64) error
}
