package service

import (
	"context"
	"errors"
	"strings"

	"watchmark/internal/model"
	appErr "watchmark/internal/pkg/errors"
	"watchmark/internal/repo"
	"watchmark/internal/session"
)

type BookmarkService struct {
	users   repo.UserStore
	current session.CurrentUser
}

func NewBookmarkService(users repo.UserStore, current session.CurrentUser) *BookmarkService {
	return &BookmarkService{users: users, current: current}
}

// CurrentUserID resolves the legacy service-wide identity: whoever logged
// in most recently, regardless of which client sent this request.
func (s *BookmarkService) CurrentUserID(ctx context.Context) (string, error) {
	id, err := s.current.Get(ctx)
	if err != nil {
		if errors.Is(err, session.ErrUnset) {
			return "", appErr.ErrNoCurrentUser
		}
		return "", err
	}
	return id, nil
}

// UserIDByEmail resolves a token identity to a user id. Used by the
// token-scoped routes, where the verified claims carry the email.
func (s *BookmarkService) UserIDByEmail(ctx context.Context, email string) (string, error) {
	users, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if len(users) == 0 {
		return "", appErr.ErrNotFound
	}
	return users[0].ID.Hex(), nil
}

func (s *BookmarkService) AddMovie(ctx context.Context, userID, contentID string) (*model.User, error) {
	return s.mutate(ctx, userID, repo.KindMovie, repo.OpAdd, contentID)
}

func (s *BookmarkService) RemoveMovie(ctx context.Context, userID, contentID string) (*model.User, error) {
	return s.mutate(ctx, userID, repo.KindMovie, repo.OpRemove, contentID)
}

func (s *BookmarkService) AddSeries(ctx context.Context, userID, contentID string) (*model.User, error) {
	return s.mutate(ctx, userID, repo.KindSeries, repo.OpAdd, contentID)
}

func (s *BookmarkService) RemoveSeries(ctx context.Context, userID, contentID string) (*model.User, error) {
	return s.mutate(ctx, userID, repo.KindSeries, repo.OpRemove, contentID)
}

func (s *BookmarkService) GetMovies(ctx context.Context, userID string) ([]string, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Bookmarks.MovieIDs, nil
}

func (s *BookmarkService) GetSeries(ctx context.Context, userID string) ([]string, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Bookmarks.SeriesIDs, nil
}

func (s *BookmarkService) mutate(ctx context.Context, userID string, kind repo.BookmarkKind, op repo.BookmarkOp, contentID string) (*model.User, error) {
	if strings.TrimSpace(contentID) == "" {
		return nil, appErr.ErrInvalid
	}
	// Existence check first, then the atomic update. Both misses map to the
	// same not-found error.
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.users.UpdateBookmarks(ctx, userID, kind, op, contentID)
}
