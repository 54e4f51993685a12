package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"chirp-api/internal/model"
	"chirp-api/pkg/apierror"
)

// In-memory stands-ins for the pgx repositories. Reads hand out copies so
// callers mutate their own snapshot, like a real store round-trip.

type memUserStore struct {
	mu    sync.Mutex
	users map[string]model.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[string]model.User{}}
}

func cloneUser(u model.User) model.User {
	u.Followers = append([]string(nil), u.Followers...)
	u.Following = append([]string(nil), u.Following...)
	return u
}

func (s *memUserStore) FindByID(_ context.Context, id string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return model.User{}, apierror.New(apierror.KindNotFound, "User not available")
	}
	return cloneUser(u), nil
}

func (s *memUserStore) FindByUsername(_ context.Context, username string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Username, strings.TrimSpace(username)) {
			return cloneUser(u), nil
		}
	}
	return model.User{}, apierror.New(apierror.KindNotFound, "User not available")
}

func (s *memUserStore) ExistsByUsername(_ context.Context, username string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Username, strings.TrimSpace(username)) {
			return true, nil
		}
	}
	return false, nil
}

func (s *memUserStore) Create(_ context.Context, username string, passwordHash string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

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
	s.users[u.ID] = u
	return cloneUser(u), nil
}

// SaveGraph overwrites the list fields wholesale, matching the repository's
// last-writer-wins snapshot write.
func (s *memUserStore) SaveGraph(_ context.Context, u model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.users[u.ID]
	if !ok {
		return apierror.New(apierror.KindNotFound, "User not available")
	}
	stored.Followers = append([]string(nil), u.Followers...)
	stored.Following = append([]string(nil), u.Following...)
	stored.UpdatedAt = time.Now().UTC()
	s.users[u.ID] = stored
	return nil
}

type memTweetStore struct {
	mu     sync.Mutex
	tweets map[string]model.Tweet
}

func newMemTweetStore() *memTweetStore {
	return &memTweetStore{tweets: map[string]model.Tweet{}}
}

func cloneTweet(t model.Tweet) model.Tweet {
	t.Likes = append([]string(nil), t.Likes...)
	t.Retweets = append([]string(nil), t.Retweets...)
	t.Replies = append([]string(nil), t.Replies...)
	return t
}

func (s *memTweetStore) FindByID(_ context.Context, id string) (model.Tweet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tweets[id]
	if !ok {
		return model.Tweet{}, apierror.New(apierror.KindNotFound, "Tweet not available")
	}
	return cloneTweet(t), nil
}

func (s *memTweetStore) Create(_ context.Context, body string, authorID string, parentID *string) (model.Tweet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

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
	s.tweets[t.ID] = t
	return cloneTweet(t), nil
}

func (s *memTweetStore) SaveEngagement(_ context.Context, t model.Tweet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.tweets[t.ID]
	if !ok {
		return apierror.New(apierror.KindNotFound, "Tweet not available")
	}
	stored.Likes = append([]string(nil), t.Likes...)
	stored.Retweets = append([]string(nil), t.Retweets...)
	stored.UpdatedAt = time.Now().UTC()
	s.tweets[t.ID] = stored
	return nil
}

func (s *memTweetStore) SaveReplies(_ context.Context, t model.Tweet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.tweets[t.ID]
	if !ok {
		return apierror.New(apierror.KindNotFound, "Tweet not available")
	}
	stored.Replies = append([]string(nil), t.Replies...)
	stored.UpdatedAt = time.Now().UTC()
	s.tweets[t.ID] = stored
	return nil
}

func (s *memTweetStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tweets[id]; !ok {
		return apierror.New(apierror.KindNotFound, "Tweet not available")
	}
	delete(s.tweets, id)
	return nil
}
