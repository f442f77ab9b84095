package service

import (
	"context"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"watchmark/internal/model"
	appErr "watchmark/internal/pkg/errors"
	"watchmark/internal/pkg/jwt"
	"watchmark/internal/pkg/password"
	"watchmark/internal/repo"
	"watchmark/internal/session"
)

type AuthService struct {
	users      repo.UserStore
	current    session.CurrentUser
	jwtSecret  []byte
	jwtTTL     time.Duration
	bcryptCost int
}

func NewAuthService(users repo.UserStore, current session.CurrentUser, secret []byte, ttl time.Duration, bcryptCost int) *AuthService {
	return &AuthService{users: users, current: current, jwtSecret: secret, jwtTTL: ttl, bcryptCost: bcryptCost}
}

// Signup creates a user record with empty bookmark lists. Email uniqueness
// is not enforced; a second signup with the same email creates a second
// record and login will use whichever FindByEmail returns first.
func (s *AuthService) Signup(ctx context.Context, email, plainPassword, confirmPassword string) (*model.User, error) {
	if plainPassword != confirmPassword {
		return nil, appErr.ErrInvalid
	}
	hash, err := password.Hash(plainPassword, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	now := time.Now().Unix()
	user := &model.User{
		Email:        email,
		PasswordHash: hash,
		Bookmarks:    model.Bookmarks{MovieIDs: []string{}, SeriesIDs: []string{}},
		Ctime:        now,
		Mtime:        now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the password, points the service-wide current-user slot at
// this user, and issues a token. A pointer write failure is logged but does
// not fail the login; the client still gets its token.
func (s *AuthService) Login(ctx context.Context, email, plainPassword string) (string, error) {
	users, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if len(users) == 0 {
		return "", appErr.ErrNotFound
	}
	user := users[0]
	if err := password.Compare(user.PasswordHash, plainPassword); err != nil {
		return "", appErr.ErrUnauthorized
	}
	if err := s.current.Set(ctx, user.ID.Hex()); err != nil {
		logutil.GetLogger(ctx).Error("write current user pointer failed", zap.Error(err))
	}
	token, err := jwt.GenerateToken(user.Email, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", err
	}
	return token, nil
}
