package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sayan42/vidmesh/backend/internal/models"
	"github.com/sayan42/vidmesh/backend/internal/repositories"
	"github.com/sayan42/vidmesh/backend/internal/services"
)

// PlaylistHandler handles HTTP requests related to playlists
type PlaylistHandler struct {
	playlistService *services.PlaylistService
}

// NewPlaylistHandler creates a new PlaylistHandler
func NewPlaylistHandler(playlistService *services.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{playlistService: playlistService}
}

// RegisterPlaylistRoutes registers playlist-related routes
func (h *PlaylistHandler) RegisterPlaylistRoutes(g *echo.Group) {
	g.POST("/playlists", h.CreatePlaylist)
	g.GET("/playlists/:playlistId", h.GetPlaylist)
	g.PATCH("/playlists/:playlistId", h.UpdatePlaylist)
	g.DELETE("/playlists/:playlistId", h.DeletePlaylist)
	g.GET("/playlists/user/:userId", h.GetUserPlaylists)
	g.PATCH("/playlists/add/:videoId/:playlistId", h.AddVideoToPlaylist)
	g.PATCH("/playlists/remove/:videoId/:playlistId", h.RemoveVideoFromPlaylist)
}

// CreatePlaylist creates an empty playlist owned by the caller
func (h *PlaylistHandler) CreatePlaylist(c echo.Context) error {
	var req models.CreatePlaylistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	playlist, err := h.playlistService.Create(c.Request().Context(), currentUserID(c), req.Name, req.Description)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, playlist)
}

// GetPlaylist fetches a playlist by id
func (h *PlaylistHandler) GetPlaylist(c echo.Context) error {
	playlist, err := h.playlistService.Get(c.Request().Context(), c.Param("playlistId"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, playlist)
}

// UpdatePlaylist updates name/description, owner only
func (h *PlaylistHandler) UpdatePlaylist(c echo.Context) error {
	var req models.UpdatePlaylistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.Name == "" && req.Description == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Name or description is required to update")
	}

	playlist, err := h.playlistService.Update(c.Request().Context(), c.Param("playlistId"), currentUserID(c), req.Name, req.Description)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, playlist)
}

// DeletePlaylist removes a playlist, owner only
func (h *PlaylistHandler) DeletePlaylist(c echo.Context) error {
	if err := h.playlistService.Delete(c.Request().Context(), c.Param("playlistId"), currentUserID(c)); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetUserPlaylists lists a user's playlists
func (h *PlaylistHandler) GetUserPlaylists(c echo.Context) error {
	userID, err := repositories.ParseNumericID(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	playlists, err := h.playlistService.ByOwner(c.Request().Context(), userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, playlists)
}

// AddVideoToPlaylist appends a video to the playlist, owner only
func (h *PlaylistHandler) AddVideoToPlaylist(c echo.Context) error {
	playlist, err := h.playlistService.AddVideo(c.Request().Context(), c.Param("playlistId"), c.Param("videoId"), currentUserID(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, playlist)
}

// RemoveVideoFromPlaylist removes a video from the playlist, owner only
func (h *PlaylistHandler) RemoveVideoFromPlaylist(c echo.Context) error {
	playlist, err := h.playlistService.RemoveVideo(c.Request().Context(), c.Param("playlistId"), c.Param("videoId"), currentUserID(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, playlist)
}
