package types

import "time"

// Account is an admin dashboard login. The API token is minted once at
// registration and never rotated.
type Account struct {
	ID           int       `db:"id" json:"-"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	APIToken     string    `db:"api_token" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"-"`
}
