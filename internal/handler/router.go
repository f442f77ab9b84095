package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"watchmark/internal/middleware"
)

type RouterDeps struct {
	Auth            *AuthHandler
	Bookmarks       *BookmarkHandler
	JWTSecret       []byte
	LoginRateWindow time.Duration
}

// RegisterRoutes keeps the legacy paths the shipped clients call, plus a
// token-scoped /me group for clients that send their bearer token.
func RegisterRoutes(r gin.IRouter, deps RouterDeps) {
	r.POST("/user/signup", deps.Auth.Signup)
	r.POST("/user/login", middleware.RateLimit(deps.LoginRateWindow), deps.Auth.Login)

	r.PUT("/addMovieBookmark", deps.Bookmarks.AddMovie)
	r.PUT("/removeMovieBookmark", deps.Bookmarks.RemoveMovie)
	r.PUT("/addTvSeriesBookmark", deps.Bookmarks.AddSeries)
	r.PUT("/removeTvSeriesBookmark", deps.Bookmarks.RemoveSeries)
	r.GET("/getMovieBookmark", deps.Bookmarks.GetMovies)
	r.GET("/getTvSeriesBookmark", deps.Bookmarks.GetSeries)

	me := r.Group("/me", middleware.JWTAuth(deps.JWTSecret))
	me.GET("/bookmarks/movies", deps.Bookmarks.MeGetMovies)
	me.PUT("/bookmarks/movies/:id", deps.Bookmarks.MeAddMovie)
	me.DELETE("/bookmarks/movies/:id", deps.Bookmarks.MeRemoveMovie)
	me.GET("/bookmarks/series", deps.Bookmarks.MeGetSeries)
	me.PUT("/bookmarks/series/:id", deps.Bookmarks.MeAddSeries)
	me.DELETE("/bookmarks/series/:id", deps.Bookmarks.MeRemoveSeries)
}
