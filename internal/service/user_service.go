package service

import (
	"context"

	"chirp-api/internal/model"
	"chirp-api/pkg/apierror"
)

// userStore is the slice of the user repository the identity and graph flows
// need.
type userStore interface {
	FindByID(ctx context.Context, id string) (model.User, error)
	FindByUsername(ctx context.Context, username string) (model.User, error)
	SaveGraph(ctx context.Context, u model.User) error
}

// accessVerifier verifies an access token and returns its claims.
type accessVerifier interface {
	VerifyAccessToken(tokenString string) (*model.AuthClaims, error)
}

// UserService resolves token bearers to stored identities and applies the
// symmetric follower/following mutations.
type UserService struct {
	tokens accessVerifier
	users  userStore
}

func NewUserService(tokens accessVerifier, users userStore) *UserService {
	return &UserService{tokens: tokens, users: users}
}

// ResolveIdentity turns a bearer token into the acting user's identity. Every
// call re-reads the credential store; there is no caching and no revocation
// check beyond the token's own expiry. A failed lookup is an error, never an
// anonymous identity.
func (s *UserService) ResolveIdentity(ctx context.Context, tokenString string) (model.Identity, error) {
	claims, err := s.tokens.VerifyAccessToken(tokenString)
	if err != nil {
		return model.Identity{}, err
	}

	user, err := s.users.FindByUsername(ctx, claims.Username)
	if err != nil {
		return model.Identity{}, err
	}

	return model.Identity{
		ID:        user.ID,
		Username:  user.Username,
		Followers: user.Followers,
		Following: user.Following,
	}, nil
}

func (s *UserService) Profile(ctx context.Context, id string) (model.PublicUser, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return model.PublicUser{}, err
	}
	return user.Public(), nil
}

// Follow adds the followee to the actor's following list and the actor to the
// followee's followers list, then persists both records. The two writes are
// independent snapshots with no transaction; the race is accepted and lives
// behind the SaveGraph seam. Retries are no-ops.
func (s *UserService) Follow(ctx context.Context, actor model.Identity, followeeID string) ([]string, bool, error) {
	if actor.ID == followeeID {
		return nil, false, apierror.New(apierror.KindBadRequest, "You cannot follow yourself")
	}

	followee, err := s.users.FindByID(ctx, followeeID)
	if err != nil {
		return nil, false, err
	}

	if containsID(actor.Following, followee.ID) || containsID(followee.Followers, actor.ID) {
		return actor.Following, true, nil
	}

	actorRecord := model.User{
		ID:        actor.ID,
		Followers: actor.Followers,
		Following: append(actor.Following, followee.ID),
	}
	followee.Followers = append(followee.Followers, actor.ID)

	if err := s.users.SaveGraph(ctx, actorRecord); err != nil {
		return nil, false, err
	}
	if err := s.users.SaveGraph(ctx, followee); err != nil {
		return nil, false, err
	}

	return actorRecord.Following, false, nil
}

// Unfollow removes exactly one matching entry from each side. Unfollowing a
// user who was never followed is a no-op.
func (s *UserService) Unfollow(ctx context.Context, actor model.Identity, followeeID string) ([]string, bool, error) {
	if actor.ID == followeeID {
		return nil, false, apierror.New(apierror.KindBadRequest, "You cannot unfollow yourself")
	}

	followee, err := s.users.FindByID(ctx, followeeID)
	if err != nil {
		return nil, false, err
	}

	if !containsID(actor.Following, followee.ID) && !containsID(followee.Followers, actor.ID) {
		return actor.Following, true, nil
	}

	actorRecord := model.User{
		ID:        actor.ID,
		Followers: actor.Followers,
		Following: removeID(actor.Following, followee.ID),
	}
	followee.Followers = removeID(followee.Followers, actor.ID)

	if err := s.users.SaveGraph(ctx, actorRecord); err != nil {
		return nil, false, err
	}
	if err := s.users.SaveGraph(ctx, followee); err != nil {
		return nil, false, err
	}

	return actorRecord.Following, false, nil
}
