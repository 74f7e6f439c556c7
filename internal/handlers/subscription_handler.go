package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sayan42/vidmesh/backend/internal/repositories"
	"github.com/sayan42/vidmesh/backend/internal/services"
)

// SubscriptionHandler handles HTTP requests related to channel subscriptions
type SubscriptionHandler struct {
	subscriptionService *services.SubscriptionService
}

// NewSubscriptionHandler creates a new SubscriptionHandler
func NewSubscriptionHandler(subscriptionService *services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// RegisterSubscriptionRoutes registers subscription-related routes
func (h *SubscriptionHandler) RegisterSubscriptionRoutes(g *echo.Group) {
	g.POST("/subscriptions/c/:channelId", h.ToggleSubscription)
	g.GET("/subscriptions/c/:channelId/subscribers", h.GetChannelSubscribers)
	g.GET("/subscriptions/u/:subscriberId/channels", h.GetSubscribedChannels)
}

// ToggleSubscription flips the caller's subscription to the channel
func (h *SubscriptionHandler) ToggleSubscription(c echo.Context) error {
	channelID, err := repositories.ParseNumericID(c.Param("channelId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid channel ID")
	}
	result, err := h.subscriptionService.Toggle(c.Request().Context(), channelID, currentUserID(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// GetChannelSubscribers lists the users subscribed to a channel
func (h *SubscriptionHandler) GetChannelSubscribers(c echo.Context) error {
	channelID, err := repositories.ParseNumericID(c.Param("channelId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid channel ID")
	}
	subscribers, err := h.subscriptionService.ChannelSubscribers(c.Request().Context(), channelID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, subscribers)
}

// GetSubscribedChannels lists the channels a user subscribes to
func (h *SubscriptionHandler) GetSubscribedChannels(c echo.Context) error {
	subscriberID, err := repositories.ParseNumericID(c.Param("subscriberId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid subscriber ID")
	}
	channels, err := h.subscriptionService.SubscribedChannels(c.Request().Context(), subscriberID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, channels)
}
