package repo

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"watchmark/internal/model"
	appErr "watchmark/internal/pkg/errors"
)

// WrapLRUCache puts a small read-through cache in front of a UserStore.
// Only GetByID is cached; bookmark updates refresh the entry with the
// document the store hands back, so readers see their own writes.
func WrapLRUCache(next UserStore, size int, ttl time.Duration) UserStore {
	if next == nil || size <= 0 || ttl <= 0 {
		return next
	}
	return &cachedUserStore{
		next:  next,
		cache: expirable.NewLRU[string, *model.User](size, nil, ttl),
	}
}

type cachedUserStore struct {
	next  UserStore
	cache *expirable.LRU[string, *model.User]
}

func (s *cachedUserStore) Create(ctx context.Context, user *model.User) error {
	return s.next.Create(ctx, user)
}

func (s *cachedUserStore) GetByID(ctx context.Context, userID string) (*model.User, error) {
	if cached, ok := s.cache.Get(userID); ok {
		clone := *cached
		return &clone, nil
	}
	user, err := s.next.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.cache.Add(userID, user)
	clone := *user
	return &clone, nil
}

func (s *cachedUserStore) FindByEmail(ctx context.Context, email string) ([]model.User, error) {
	return s.next.FindByEmail(ctx, email)
}

func (s *cachedUserStore) UpdateBookmarks(ctx context.Context, userID string, kind BookmarkKind, op BookmarkOp, contentID string) (*model.User, error) {
	updated, err := s.next.UpdateBookmarks(ctx, userID, kind, op, contentID)
	if err != nil {
		if appErr.IsNotFound(err) {
			s.cache.Remove(userID)
		}
		return nil, err
	}
	s.cache.Add(userID, updated)
	clone := *updated
	return &clone, nil
}
