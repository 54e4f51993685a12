package service

import (
	"context"

	"chirp-api/internal/model"
)

// tweetStore is the slice of the tweet repository the content flows need.
type tweetStore interface {
	FindByID(ctx context.Context, id string) (model.Tweet, error)
	Create(ctx context.Context, body string, authorID string, parentID *string) (model.Tweet, error)
	SaveEngagement(ctx context.Context, t model.Tweet) error
	SaveReplies(ctx context.Context, t model.Tweet) error
	Delete(ctx context.Context, id string) error
}

// authorStore looks up tweet authors for the composed read view.
type authorStore interface {
	FindByID(ctx context.Context, id string) (model.User, error)
}

// TweetService owns tweet creation, the composed read path and the
// idempotent engagement toggles.
type TweetService struct {
	tweets tweetStore
	users  authorStore
}

func NewTweetService(tweets tweetStore, users authorStore) *TweetService {
	return &TweetService{tweets: tweets, users: users}
}

func (s *TweetService) Create(ctx context.Context, body string, authorID string) (model.Tweet, error) {
	return s.tweets.Create(ctx, body, authorID, nil)
}

// Get loads the tweet and joins the author's public fields with an explicit
// secondary lookup; the store does no auto-population.
func (s *TweetService) Get(ctx context.Context, id string) (model.TweetView, error) {
	tweet, err := s.tweets.FindByID(ctx, id)
	if err != nil {
		return model.TweetView{}, err
	}

	author, err := s.users.FindByID(ctx, tweet.AuthorID)
	if err != nil {
		return model.TweetView{}, err
	}

	return model.TweetView{
		ID:        tweet.ID,
		Body:      tweet.Body,
		Author:    author.Public(),
		Likes:     tweet.Likes,
		Retweets:  tweet.Retweets,
		ParentID:  tweet.ParentID,
		Replies:   tweet.Replies,
		CreatedAt: tweet.CreatedAt,
	}, nil
}

func (s *TweetService) Delete(ctx context.Context, id string) error {
	return s.tweets.Delete(ctx, id)
}

// Like adds the user to the tweet's likes once. Liking twice is a no-op, not
// a toggle.
func (s *TweetService) Like(ctx context.Context, tweetID string, userID string) (model.Tweet, error) {
	tweet, err := s.tweets.FindByID(ctx, tweetID)
	if err != nil {
		return model.Tweet{}, err
	}

	if containsID(tweet.Likes, userID) {
		return tweet, nil
	}

	tweet.Likes = append(tweet.Likes, userID)
	if err := s.tweets.SaveEngagement(ctx, tweet); err != nil {
		return model.Tweet{}, err
	}
	return tweet, nil
}

// Unlike removes exactly one matching entry; unliking a tweet the user never
// liked is a no-op.
func (s *TweetService) Unlike(ctx context.Context, tweetID string, userID string) (model.Tweet, error) {
	tweet, err := s.tweets.FindByID(ctx, tweetID)
	if err != nil {
		return model.Tweet{}, err
	}

	if !containsID(tweet.Likes, userID) {
		return tweet, nil
	}

	tweet.Likes = removeID(tweet.Likes, userID)
	if err := s.tweets.SaveEngagement(ctx, tweet); err != nil {
		return model.Tweet{}, err
	}
	return tweet, nil
}

// Retweet toggles the user's membership in the retweets list. The second
// return value reports whether the tweet is retweeted after the call.
func (s *TweetService) Retweet(ctx context.Context, tweetID string, userID string) (model.Tweet, bool, error) {
	tweet, err := s.tweets.FindByID(ctx, tweetID)
	if err != nil {
		return model.Tweet{}, false, err
	}

	retweeted := !containsID(tweet.Retweets, userID)
	if retweeted {
		tweet.Retweets = append(tweet.Retweets, userID)
	} else {
		tweet.Retweets = removeID(tweet.Retweets, userID)
	}

	if err := s.tweets.SaveEngagement(ctx, tweet); err != nil {
		return model.Tweet{}, false, err
	}
	return tweet, retweeted, nil
}

// Reply creates a child tweet pointing at the parent and appends its id to
// the parent's reply list. The two writes are independent; last writer wins
// on the parent's list.
func (s *TweetService) Reply(ctx context.Context, parentID string, body string, authorID string) (model.Tweet, error) {
	parent, err := s.tweets.FindByID(ctx, parentID)
	if err != nil {
		return model.Tweet{}, err
	}

	reply, err := s.tweets.Create(ctx, body, authorID, &parent.ID)
	if err != nil {
		return model.Tweet{}, err
	}

	parent.Replies = append(parent.Replies, reply.ID)
	if err := s.tweets.SaveReplies(ctx, parent); err != nil {
		return model.Tweet{}, err
	}

	return reply, nil
}
