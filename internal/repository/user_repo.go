package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"chirp-api/internal/model"
	"chirp-api/pkg/apierror"
)

// UserRepository is the credential store. Usernames are unique
// case-insensitively; ids are assigned here at creation time.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, username, password_hash, followers, following, created_at, updated_at`

func (r *UserRepository) FindByID(ctx context.Context, id string) (model.User, error) {
	var u model.User
	err := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Followers, &u.Following, &u.CreatedAt, &u.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, apierror.New(apierror.KindNotFound, "User not available")
	}
	if err != nil {
		return model.User{}, fmt.Errorf("find user by id: %w", err)
	}
	return u, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	err := r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE lower(username) = lower($1)`,
		strings.TrimSpace(username)).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Followers, &u.Following, &u.CreatedAt, &u.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, apierror.New(apierror.KindNotFound, "User not available")
	}
	if err != nil {
		return model.User{}, fmt.Errorf("find user by username: %w", err)
	}
	return u, nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE lower(username) = lower($1))`,
		strings.TrimSpace(username)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check username exists: %w", err)
	}
	return exists, nil
}

// Create assigns the id and timestamps, inserts the row and returns the
// stored record.
func (r *UserRepository) Create(ctx context.Context, username string, passwordHash string) (model.User, error) {
	now := time.Now().UTC()
	u := model.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
		Followers:    []string{},
		Following:    []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (id, username, password_hash, followers, following, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Username, u.PasswordHash, u.Followers, u.Following, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return model.User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// SaveGraph writes the follower/following lists back as a full snapshot.
// There is no version check: concurrent writers race and the last one wins.
// A conditional-update variant would replace only this method.
func (r *UserRepository) SaveGraph(ctx context.Context, u model.User) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET followers = $2, following = $3, updated_at = $4 WHERE id = $1`,
		u.ID, u.Followers, u.Following, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save user graph: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apierror.New(apierror.KindNotFound, "User not available")
	}
	return nil
}
