package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"watchmark/internal/middleware"
	"watchmark/internal/model"
	appErr "watchmark/internal/pkg/errors"
	"watchmark/internal/pkg/password"
	"watchmark/internal/repo"
	"watchmark/internal/service"
	"watchmark/internal/session"
)

type memStore struct {
	mu    sync.Mutex
	users []*model.User
}

func (s *memStore) Create(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = primitive.NewObjectID()
	clone := *user
	s.users = append(s.users, &clone)
	return nil
}

func (s *memStore) GetByID(ctx context.Context, userID string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID.Hex() == userID {
			clone := *u
			return &clone, nil
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
			out = append(out, *u)
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
			kept := []string{}
			for _, id := range *list {
				if id != contentID {
					kept = append(kept, id)
				}
			}
			*list = kept
		}
		clone := *u
		clone.Bookmarks.MovieIDs = append([]string{}, u.Bookmarks.MovieIDs...)
		clone.Bookmarks.SeriesIDs = append([]string{}, u.Bookmarks.SeriesIDs...)
		return &clone, nil
	}
	return nil, appErr.ErrNotFound
}

// failStore simulates an unreachable credential store: every operation
// returns the configured error.
type failStore struct {
	err error
}

func (s *failStore) Create(ctx context.Context, user *model.User) error {
	return s.err
}

func (s *failStore) GetByID(ctx context.Context, userID string) (*model.User, error) {
	return nil, s.err
}

func (s *failStore) FindByEmail(ctx context.Context, email string) ([]model.User, error) {
	return nil, s.err
}

func (s *failStore) UpdateBookmarks(ctx context.Context, userID string, kind repo.BookmarkKind, op repo.BookmarkOp, contentID string) (*model.User, error) {
	return nil, s.err
}

var testJWTSecret = []byte("test-secret")

func setupRouter(t *testing.T) http.Handler {
	t.Helper()
	pointer := session.NewFilePointer(filepath.Join(t.TempDir(), "current_user"))
	return setupRouterWith(t, &memStore{}, pointer)
}

func setupRouterWith(t *testing.T, store repo.UserStore, pointer session.CurrentUser) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	authService := service.NewAuthService(store, pointer, testJWTSecret, time.Hour, password.DefaultCost)
	bookmarkService := service.NewBookmarkService(store, pointer)

	engine := gin.New()
	engine.Use(middleware.RequestID())
	RegisterRoutes(engine, RouterDeps{
		Auth:      NewAuthHandler(authService),
		Bookmarks: NewBookmarkHandler(bookmarkService),
		JWTSecret: testJWTSecret,
	})
	return engine
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeData(t *testing.T, resp *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	return envelope.Data
}

func decodeList(t *testing.T, resp *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	var envelope struct {
		Data []interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	return envelope.Data
}

func decodeErrorCode(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	return envelope.Error.Code
}

func signupAndLogin(t *testing.T, router http.Handler, email, pass string) string {
	t.Helper()
	resp := doJSON(t, router, http.MethodPost, "/user/signup", map[string]string{
		"email": email, "password": pass, "resetPassword": pass,
	}, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, router, http.MethodPost, "/user/login", map[string]string{
		"email": email, "password": pass,
	}, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	token, _ := decodeData(t, resp)["token"].(string)
	require.NotEmpty(t, token)
	return token
}
