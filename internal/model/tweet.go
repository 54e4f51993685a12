package model

import "time"

// Tweet is the content-store record. Likes and Retweets hold acting user ids,
// Replies holds child tweet ids in append order. ParentID is set iff the
// tweet is a reply. List fields are persisted as full snapshots.
type Tweet struct {
	ID        string    `json:"id"`
	Body      string    `json:"body"`
	AuthorID  string    `json:"author_id"`
	Likes     []string  `json:"likes"`
	Retweets  []string  `json:"retweets"`
	ParentID  *string   `json:"parent_id,omitempty"`
	Replies   []string  `json:"replies"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TweetView is the composed read shape: the tweet plus the author's public
// fields, joined by an explicit secondary lookup on the read path.
type TweetView struct {
	ID        string     `json:"id"`
	Body      string     `json:"body"`
	Author    PublicUser `json:"author"`
	Likes     []string   `json:"likes"`
	Retweets  []string   `json:"retweets"`
	ParentID  *string    `json:"parent_id,omitempty"`
	Replies   []string   `json:"replies"`
	CreatedAt time.Time  `json:"created_at"`
}
