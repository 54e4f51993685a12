package model

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateTweetRequest struct {
	Body string `json:"body"`
}

type ReplyRequest struct {
	Body string `json:"body"`
}
