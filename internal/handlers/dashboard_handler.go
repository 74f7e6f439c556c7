package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sayan42/vidmesh/backend/internal/repositories"
	"github.com/sayan42/vidmesh/backend/internal/services"
)

// DashboardHandler serves the channel owner's dashboard
type DashboardHandler struct {
	statsService    *services.StatsService
	videoRepository repositories.VideoRepository
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(statsService *services.StatsService, videoRepo repositories.VideoRepository) *DashboardHandler {
	return &DashboardHandler{statsService: statsService, videoRepository: videoRepo}
}

// RegisterDashboardRoutes registers dashboard-related routes
func (h *DashboardHandler) RegisterDashboardRoutes(g *echo.Group) {
	g.GET("/dashboard/stats", h.GetChannelStats)
	g.GET("/dashboard/videos", h.GetChannelVideos)
}

// GetChannelStats returns the caller's channel aggregates
func (h *DashboardHandler) GetChannelStats(c echo.Context) error {
	stats, err := h.statsService.ChannelStats(c.Request().Context(), currentUserID(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

// GetChannelVideos lists the caller's own videos, newest first
func (h *DashboardHandler) GetChannelVideos(c echo.Context) error {
	videos, err := h.videoRepository.ByOwner(c.Request().Context(), currentUserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"videos": videos, "total": len(videos)})
}
