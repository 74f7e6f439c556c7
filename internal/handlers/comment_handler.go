package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sayan42/vidmesh/backend/internal/models"
	"github.com/sayan42/vidmesh/backend/internal/repositories"
)

// CommentHandler handles HTTP requests related to video comments
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	videoRepository   repositories.VideoRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, videoRepo repositories.VideoRepository) *CommentHandler {
	return &CommentHandler{commentRepository: commentRepo, videoRepository: videoRepo}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/comments/:videoId", h.CreateComment)
	g.GET("/comments/:videoId", h.GetVideoComments)
	g.PATCH("/comments/c/:commentId", h.UpdateComment)
	g.DELETE("/comments/c/:commentId", h.DeleteComment)
}

// CreateComment adds a comment to a video
func (h *CommentHandler) CreateComment(c echo.Context) error {
	videoID, err := primitive.ObjectIDFromHex(c.Param("videoId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid video ID")
	}
	exists, err := h.videoRepository.Exists(c.Request().Context(), videoID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !exists {
		return echo.NewHTTPError(http.StatusNotFound, "Video not found")
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment := &models.Comment{
		VideoID: videoID.Hex(),
		UserID:  currentUserID(c),
		Content: req.Content,
	}
	if err := h.commentRepository.Create(c.Request().Context(), comment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, comment)
}

// GetVideoComments lists comments on a video, newest first
func (h *CommentHandler) GetVideoComments(c echo.Context) error {
	videoID, err := primitive.ObjectIDFromHex(c.Param("videoId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid video ID")
	}
	comments, err := h.commentRepository.ByVideoID(c.Request().Context(), videoID.Hex())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"comments": comments, "total": len(comments)})
}

// UpdateComment edits a comment's content, owner only
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	comment, err := h.loadOwnedComment(c)
	if err != nil {
		return err
	}

	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment.Content = req.Content
	if err := h.commentRepository.Update(c.Request().Context(), comment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, comment)
}

// DeleteComment removes a comment, owner only
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	comment, err := h.loadOwnedComment(c)
	if err != nil {
		return err
	}
	if err := h.commentRepository.Delete(c.Request().Context(), comment.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Comment deleted"})
}

func (h *CommentHandler) loadOwnedComment(c echo.Context) (*models.Comment, error) {
	id, err := repositories.ParseNumericID(c.Param("commentId"))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}
	comment, err := h.commentRepository.ByID(c.Request().Context(), id)
	if err != nil {
		if err == repositories.ErrNotFound {
			return nil, echo.NewHTTPError(http.StatusNotFound, "Comment not found")
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if comment.UserID != currentUserID(c) {
		return nil, echo.NewHTTPError(http.StatusForbidden, "You can only modify your own comments")
	}
	return comment, nil
}
