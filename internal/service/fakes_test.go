package service

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"watchmark/internal/model"
	appErr "watchmark/internal/pkg/errors"
	"watchmark/internal/repo"
	"watchmark/internal/session"
)

type memStore struct {
	mu    sync.Mutex
	users []*model.User
}

func newMemStore() *memStore {
	return &memStore{}
}

func (s *memStore) Create(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = primitive.NewObjectID()
	clone := cloneUser(user)
	s.users = append(s.users, clone)
	return nil
}

func (s *memStore) GetByID(ctx context.Context, userID string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID.Hex() == userID {
			return cloneUser(u), nil
		}
	}
	return nil, appErr.ErrNotFound
}

func (s *memStore) FindByEmail(ctx context.Context, email string) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.User
	for _, u := range s.users {
		if u.Email == email {
			out = append(out, *cloneUser(u))
		}
	}
	return out, nil
}

func (s *memStore) UpdateBookmarks(ctx context.Context, userID string, kind repo.BookmarkKind, op repo.BookmarkOp, contentID string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID.Hex() != userID {
			continue
		}
		list := &u.Bookmarks.MovieIDs
		if kind == repo.KindSeries {
			list = &u.Bookmarks.SeriesIDs
		}
		switch op {
		case repo.OpAdd:
			*list = append(*list, contentID)
		case repo.OpRemove:
			kept := (*list)[:0]
			for _, id := range *list {
				if id != contentID {
					kept = append(kept, id)
				}
			}
			*list = kept
		}
		return cloneUser(u), nil
	}
	return nil, appErr.ErrNotFound
}

func cloneUser(u *model.User) *model.User {
	clone := *u
	clone.Bookmarks.MovieIDs = append([]string{}, u.Bookmarks.MovieIDs...)
	clone.Bookmarks.SeriesIDs = append([]string{}, u.Bookmarks.SeriesIDs...)
	return &clone
}

type memPointer struct {
	mu  sync.Mutex
	id  string
	set bool
}

func (p *memPointer) Set(ctx context.Context, userID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.id = userID
	p.set = true
	return nil
}

func (p *memPointer) Get(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.set {
		return "", session.ErrUnset
	}
	return p.id, nil
}
