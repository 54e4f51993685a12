package model

import "time"

// User is the credential-store record. Followers and Following hold user ids
// and are written back as full snapshots, so the last writer wins.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Followers    []string  `json:"followers"`
	Following    []string  `json:"following"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicUser is the outward view of a user. The password hash never leaves
// the credential store boundary.
type PublicUser struct {
	ID        string   `json:"id"`
	Username  string   `json:"username"`
	Followers []string `json:"followers"`
	Following []string `json:"following"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Followers: u.Followers,
		Following: u.Following,
	}
}

// Identity is the resolved acting user behind a verified access token.
type Identity struct {
	ID        string   `json:"id"`
	Username  string   `json:"username"`
	Followers []string `json:"followers"`
	Following []string `json:"following"`
}

type AuthClaims struct {
	Username string `json:"username"`
	Type     string `json:"typ"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
