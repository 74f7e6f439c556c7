package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sayan42/vidmesh/backend/internal/models"
	"github.com/sayan42/vidmesh/backend/internal/repositories"
)

// TweetHandler handles HTTP requests related to channel tweets
type TweetHandler struct {
	tweetRepository repositories.TweetRepository
}

// NewTweetHandler creates a new TweetHandler
func NewTweetHandler(tweetRepo repositories.TweetRepository) *TweetHandler {
	return &TweetHandler{tweetRepository: tweetRepo}
}

// RegisterTweetRoutes registers tweet-related routes
func (h *TweetHandler) RegisterTweetRoutes(g *echo.Group) {
	g.POST("/tweets", h.CreateTweet)
	g.GET("/tweets/user/:userId", h.GetUserTweets)
	g.PATCH("/tweets/:tweetId", h.UpdateTweet)
	g.DELETE("/tweets/:tweetId", h.DeleteTweet)
}

// CreateTweet posts a new tweet on the caller's channel
func (h *TweetHandler) CreateTweet(c echo.Context) error {
	var req models.CreateTweetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tweet := &models.Tweet{
		UserID:  currentUserID(c),
		Content: req.Content,
	}
	if err := h.tweetRepository.Create(c.Request().Context(), tweet); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, tweet)
}

// GetUserTweets lists a channel's tweets, newest first
func (h *TweetHandler) GetUserTweets(c echo.Context) error {
	userID, err := repositories.ParseNumericID(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	tweets, err := h.tweetRepository.ByUserID(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"tweets": tweets, "total": len(tweets)})
}

// UpdateTweet edits a tweet's content, owner only
func (h *TweetHandler) UpdateTweet(c echo.Context) error {
	tweet, err := h.loadOwnedTweet(c)
	if err != nil {
		return err
	}

	var req models.UpdateTweetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	tweet.Content = req.Content
	if err := h.tweetRepository.Update(c.Request().Context(), tweet); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, tweet)
}

// DeleteTweet removes a tweet, owner only
func (h *TweetHandler) DeleteTweet(c echo.Context) error {
	tweet, err := h.loadOwnedTweet(c)
	if err != nil {
		return err
	}
	if err := h.tweetRepository.Delete(c.Request().Context(), tweet.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Tweet deleted"})
}

func (h *TweetHandler) loadOwnedTweet(c echo.Context) (*models.Tweet, error) {
	id, err := repositories.ParseNumericID(c.Param("tweetId"))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid tweet ID")
	}
	tweet, err := h.tweetRepository.ByID(c.Request().Context(), id)
	if err != nil {
		if err == repositories.ErrNotFound {
			return nil, echo.NewHTTPError(http.StatusNotFound, "Tweet not found")
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if tweet.UserID != currentUserID(c) {
		return nil, echo.NewHTTPError(http.StatusForbidden, "You can only modify your own tweets")
	}
	return tweet, nil
}
