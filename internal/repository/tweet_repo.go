package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"chirp-api/internal/model"
	"chirp-api/pkg/apierror"
)

// TweetRepository is the content store. Engagement and reply lists are
// rewritten as whole snapshots, mirroring a document store's save semantics.
type TweetRepository struct {
	pool *pgxpool.Pool
}

func NewTweetRepository(pool *pgxpool.Pool) *TweetRepository {
	return &TweetRepository{pool: pool}
}

const tweetColumns = `id, body, author_id, likes, retweets, parent_id, replies, created_at, updated_at`

func (r *TweetRepository) FindByID(ctx context.Context, id string) (model.Tweet, error) {
	var t model.Tweet
	err := r.pool.QueryRow(ctx,
		`SELECT `+tweetColumns+` FROM tweets WHERE id = $1`, id).
		Scan(&t.ID, &t.Body, &t.AuthorID, &t.Likes, &t.Retweets, &t.ParentID, &t.Replies, &t.CreatedAt, &t.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Tweet{}, apierror.New(apierror.KindNotFound, "Tweet not available")
	}
	if err != nil {
		return model.Tweet{}, fmt.Errorf("find tweet by id: %w", err)
	}
	return t, nil
}

// Create assigns the id and timestamps, inserts the row and returns the
// stored record. ParentID is set by the reply path only.
func (r *TweetRepository) Create(ctx context.Context, body string, authorID string, parentID *string) (model.Tweet, error) {
	now := time.Now().UTC()
	t := model.Tweet{
		ID:        uuid.NewString(),
		Body:      body,
		AuthorID:  authorID,
		Likes:     []string{},
		Retweets:  []string{},
		ParentID:  parentID,
		Replies:   []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO tweets (id, body, author_id, likes, retweets, parent_id, replies, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		t.ID, t.Body, t.AuthorID, t.Likes, t.Retweets, t.ParentID, t.Replies, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return model.Tweet{}, fmt.Errorf("create tweet: %w", err)
	}
	return t, nil
}

// SaveEngagement writes the likes/retweets lists back as a full snapshot.
// Last writer wins; see SaveGraph on the user repository for the same seam.
func (r *TweetRepository) SaveEngagement(ctx context.Context, t model.Tweet) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE tweets SET likes = $2, retweets = $3, updated_at = $4 WHERE id = $1`,
		t.ID, t.Likes, t.Retweets, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save tweet engagement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apierror.New(apierror.KindNotFound, "Tweet not available")
	}
	return nil
}

// SaveReplies writes the append-only reply list back as a full snapshot.
func (r *TweetRepository) SaveReplies(ctx context.Context, t model.Tweet) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE tweets SET replies = $2, updated_at = $3 WHERE id = $1`,
		t.ID, t.Replies, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save tweet replies: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apierror.New(apierror.KindNotFound, "Tweet not available")
	}
	return nil
}

func (r *TweetRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tweets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tweet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apierror.New(apierror.KindNotFound, "Tweet not available")
	}
	return nil
}
