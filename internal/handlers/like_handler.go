package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sayan42/vidmesh/backend/internal/services"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	likeService *services.LikeService
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeService *services.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/likes/toggle/v/:videoId", h.ToggleVideoLike)
	g.POST("/likes/toggle/c/:commentId", h.ToggleCommentLike)
	g.POST("/likes/toggle/t/:tweetId", h.ToggleTweetLike)
	g.GET("/likes/videos", h.GetLikedVideos)
}

// ToggleVideoLike flips the caller's like on a video and returns the
// resulting state and total like count.
func (h *LikeHandler) ToggleVideoLike(c echo.Context) error {
	result, err := h.likeService.ToggleVideoLike(c.Request().Context(), c.Param("videoId"), currentUserID(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// ToggleCommentLike flips the caller's like on a comment
func (h *LikeHandler) ToggleCommentLike(c echo.Context) error {
	result, err := h.likeService.ToggleCommentLike(c.Request().Context(), c.Param("commentId"), currentUserID(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// ToggleTweetLike flips the caller's like on a tweet
func (h *LikeHandler) ToggleTweetLike(c echo.Context) error {
	result, err := h.likeService.ToggleTweetLike(c.Request().Context(), c.Param("tweetId"), currentUserID(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// GetLikedVideos lists the videos the caller has liked, newest like first
func (h *LikeHandler) GetLikedVideos(c echo.Context) error {
	videos, err := h.likeService.LikedVideos(c.Request().Context(), currentUserID(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"videos": videos, "total": len(videos)})
}
