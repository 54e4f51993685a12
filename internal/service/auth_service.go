package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"chirp-api/internal/model"
	"chirp-api/pkg/apierror"
)

// credentialStore is the slice of the user repository the auth flow needs.
type credentialStore interface {
	FindByUsername(ctx context.Context, username string) (model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, username string, passwordHash string) (model.User, error)
}

// AuthService issues and verifies signed identity tokens and owns the
// register/login flows. Tokens are never stored server-side; the embedded
// expiry is the only invalidation mechanism.
type AuthService struct {
	jwtSecret  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	users      credentialStore
}

func NewAuthService(jwtSecret string, accessTTL time.Duration, refreshTTL time.Duration, users credentialStore) (*AuthService, error) {
	if strings.TrimSpace(jwtSecret) == "" {
		return nil, errors.New("auth service requires a signing secret")
	}

	return &AuthService{
		jwtSecret:  []byte(jwtSecret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		users:      users,
	}, nil
}

func (s *AuthService) Register(ctx context.Context, username string, password string) (model.User, model.TokenPair, error) {
	username = strings.TrimSpace(username)

	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return model.User{}, model.TokenPair{}, err
	}
	if exists {
		return model.User{}, model.TokenPair{},
			apierror.New(apierror.KindConflict, "User already exists. Please login to continue")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return model.User{}, model.TokenPair{}, err
	}

	user, err := s.users.Create(ctx, username, string(hash))
	if err != nil {
		return model.User{}, model.TokenPair{}, err
	}

	tokens, err := s.issueTokenPair(user.Username)
	if err != nil {
		return model.User{}, model.TokenPair{}, err
	}

	return user, tokens, nil
}

func (s *AuthService) Login(ctx context.Context, username string, password string) (model.User, model.TokenPair, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		// Unknown usernames surface as not-found, matching the register flow.
		return model.User{}, model.TokenPair{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return model.User{}, model.TokenPair{},
			apierror.New(apierror.KindBadRequest, "Wrong password")
	}

	tokens, err := s.issueTokenPair(user.Username)
	if err != nil {
		return model.User{}, model.TokenPair{}, err
	}

	return user, tokens, nil
}

// VerifyAccessToken checks signature, expiry and token type. Expired tokens
// are reported distinctly from every other verification failure so callers
// can surface the difference.
func (s *AuthService) VerifyAccessToken(tokenString string) (*model.AuthClaims, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apierror.New(apierror.KindUnauthorized, "TokenExpiredError")
		}
		return nil, apierror.New(apierror.KindUnauthorized, "Unauthorized")
	}
	if !parsed.Valid {
		return nil, apierror.New(apierror.KindUnauthorized, "Unauthorized")
	}

	claimsMap, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apierror.New(apierror.KindUnauthorized, "Unauthorized")
	}

	claims := &model.AuthClaims{}
	claims.Username, _ = claimsMap["username"].(string)
	claims.Type, _ = claimsMap["typ"].(string)

	if claims.Type != "access" || claims.Username == "" {
		return nil, apierror.New(apierror.KindUnauthorized, "Unauthorized")
	}

	return claims, nil
}

func (s *AuthService) issueTokenPair(username string) (model.TokenPair, error) {
	now := time.Now().UTC()

	accessToken, err := s.signToken(jwt.MapClaims{
		"username": username,
		"typ":      "access",
		"iat":      now.Unix(),
		"exp":      now.Add(s.accessTTL).Unix(),
	})
	if err != nil {
		return model.TokenPair{}, err
	}

	refreshToken, err := s.signToken(jwt.MapClaims{
		"username": username,
		"typ":      "refresh",
		"iat":      now.Unix(),
		"exp":      now.Add(s.refreshTTL).Unix(),
	})
	if err != nil {
		return model.TokenPair{}, err
	}

	return model.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *AuthService) signToken(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
