package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"watchmark/internal/middleware"
	"watchmark/internal/model"
	"watchmark/internal/pkg/response"
	"watchmark/internal/service"
)

type BookmarkHandler struct {
	bookmarks *service.BookmarkService
}

func NewBookmarkHandler(bookmarks *service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{bookmarks: bookmarks}
}

// The legacy API uses the "movieId" field for both movies and tv series.
type bookmarkRequest struct {
	MovieID string `json:"movieId"`
}

func (h *BookmarkHandler) contentID(c *gin.Context) (string, bool) {
	var req bookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.MovieID == "" {
		response.Error(c, http.StatusBadRequest, "invalid", "movieId is required")
		return "", false
	}
	return req.MovieID, true
}

// Legacy routes: identity comes from the service-wide session pointer, not
// from the request. See the session package for the consequences.

func (h *BookmarkHandler) AddMovie(c *gin.Context) {
	contentID, ok := h.contentID(c)
	if !ok {
		return
	}
	userID, err := h.bookmarks.CurrentUserID(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	user, err := h.bookmarks.AddMovie(c.Request.Context(), userID, contentID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"msg": "Bookmark updated successfully", "movieIds": user.Bookmarks.MovieIDs})
}

func (h *BookmarkHandler) RemoveMovie(c *gin.Context) {
	contentID, ok := h.contentID(c)
	if !ok {
		return
	}
	userID, err := h.bookmarks.CurrentUserID(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	user, err := h.bookmarks.RemoveMovie(c.Request.Context(), userID, contentID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"msg": "Bookmark removed successfully", "movieIds": user.Bookmarks.MovieIDs})
}

func (h *BookmarkHandler) AddSeries(c *gin.Context) {
	contentID, ok := h.contentID(c)
	if !ok {
		return
	}
	userID, err := h.bookmarks.CurrentUserID(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	user, err := h.bookmarks.AddSeries(c.Request.Context(), userID, contentID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"msg": "Bookmark updated successfully", "tvSeriesIds": user.Bookmarks.SeriesIDs})
}

func (h *BookmarkHandler) RemoveSeries(c *gin.Context) {
	contentID, ok := h.contentID(c)
	if !ok {
		return
	}
	userID, err := h.bookmarks.CurrentUserID(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	user, err := h.bookmarks.RemoveSeries(c.Request.Context(), userID, contentID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{"msg": "Bookmark removed successfully", "tvSeriesIds": user.Bookmarks.SeriesIDs})
}

func (h *BookmarkHandler) GetMovies(c *gin.Context) {
	userID, err := h.bookmarks.CurrentUserID(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	movies, err := h.bookmarks.GetMovies(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, movies)
}

func (h *BookmarkHandler) GetSeries(c *gin.Context) {
	userID, err := h.bookmarks.CurrentUserID(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	series, err := h.bookmarks.GetSeries(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, series)
}

// Token-scoped routes: identity comes from the verified bearer token, so
// concurrent logins by other users cannot redirect these requests.

func (h *BookmarkHandler) meUserID(c *gin.Context) (string, bool) {
	email := c.GetString(middleware.ContextUserEmailKey)
	userID, err := h.bookmarks.UserIDByEmail(c.Request.Context(), email)
	if err != nil {
		handleError(c, err)
		return "", false
	}
	return userID, true
}

func (h *BookmarkHandler) meMutate(c *gin.Context, mutate func(c *gin.Context, userID, contentID string) (*model.User, error)) {
	contentID := c.Param("id")
	userID, ok := h.meUserID(c)
	if !ok {
		return
	}
	user, err := mutate(c, userID, contentID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, user.Bookmarks)
}

func (h *BookmarkHandler) MeAddMovie(c *gin.Context) {
	h.meMutate(c, func(c *gin.Context, userID, contentID string) (*model.User, error) {
		return h.bookmarks.AddMovie(c.Request.Context(), userID, contentID)
	})
}

func (h *BookmarkHandler) MeRemoveMovie(c *gin.Context) {
	h.meMutate(c, func(c *gin.Context, userID, contentID string) (*model.User, error) {
		return h.bookmarks.RemoveMovie(c.Request.Context(), userID, contentID)
	})
}

func (h *BookmarkHandler) MeAddSeries(c *gin.Context) {
	h.meMutate(c, func(c *gin.Context, userID, contentID string) (*model.User, error) {
		return h.bookmarks.AddSeries(c.Request.Context(), userID, contentID)
	})
}

func (h *BookmarkHandler) MeRemoveSeries(c *gin.Context) {
	h.meMutate(c, func(c *gin.Context, userID, contentID string) (*model.User, error) {
		return h.bookmarks.RemoveSeries(c.Request.Context(), userID, contentID)
	})
}

func (h *BookmarkHandler) MeGetMovies(c *gin.Context) {
	userID, ok := h.meUserID(c)
	if !ok {
		return
	}
	movies, err := h.bookmarks.GetMovies(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, movies)
}

func (h *BookmarkHandler) MeGetSeries(c *gin.Context) {
	userID, ok := h.meUserID(c)
	if !ok {
		return
	}
	series, err := h.bookmarks.GetSeries(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, series)
}
