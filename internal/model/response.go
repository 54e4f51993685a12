package model

// APIError is the wire shape of every failure: {status, message}, plus a
// field-keyed reason map for validation failures.
type APIError struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

type RegisterResponse struct {
	Status       int        `json:"status"`
	Message      string     `json:"message"`
	User         PublicUser `json:"user"`
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token"`
}

type LoginResponse struct {
	Status       int        `json:"status"`
	Message      string     `json:"message"`
	User         PublicUser `json:"user"`
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token"`
}

type FollowResponse struct {
	Status    int      `json:"status"`
	Message   string   `json:"message"`
	Following []string `json:"following"`
}

type ProfileResponse struct {
	Status int        `json:"status"`
	User   PublicUser `json:"user"`
}

type TweetResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Tweet   Tweet  `json:"tweet"`
}

type TweetViewResponse struct {
	Status int       `json:"status"`
	Tweet  TweetView `json:"tweet"`
}

// EngagementResponse echoes a tweet's id-list fields after a successful
// like/unlike/retweet mutation.
type EngagementResponse struct {
	Status   int      `json:"status"`
	Message  string   `json:"message"`
	Likes    []string `json:"likes"`
	Retweets []string `json:"retweets"`
}

type DeleteTweetResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
