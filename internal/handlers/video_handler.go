package handlers

import (
	"context"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sayan42/vidmesh/backend/internal/models"
	"github.com/sayan42/vidmesh/backend/internal/repositories"
	"github.com/sayan42/vidmesh/backend/internal/services"
	"github.com/sayan42/vidmesh/backend/pkg/storage"
)

// VideoHandler handles HTTP requests related to videos
type VideoHandler struct {
	videoRepository repositories.VideoRepository
	viewService     *services.ViewService
	historyService  *services.HistoryService
	blobStore       storage.BlobStore
}

// NewVideoHandler creates a new VideoHandler
func NewVideoHandler(videoRepo repositories.VideoRepository, viewService *services.ViewService, historyService *services.HistoryService, blobStore storage.BlobStore) *VideoHandler {
	return &VideoHandler{
		videoRepository: videoRepo,
		viewService:     viewService,
		historyService:  historyService,
		blobStore:       blobStore,
	}
}

// RegisterVideoRoutes registers video-related routes
func (h *VideoHandler) RegisterVideoRoutes(g *echo.Group) {
	g.POST("/videos", h.PublishVideo)
	g.GET("/videos/:videoId", h.GetVideo)
	g.PATCH("/videos/:videoId", h.UpdateVideo)
	g.DELETE("/videos/:videoId", h.DeleteVideo)
	g.PATCH("/videos/toggle/publish/:videoId", h.TogglePublishStatus)
	g.GET("/videos/channel/:userId", h.GetChannelVideos)
}

// PublishVideo uploads the video file and thumbnail to the blob store and
// creates the video document.
func (h *VideoHandler) PublishVideo(c echo.Context) error {
	title := c.FormValue("title")
	description := c.FormValue("description")
	if title == "" || description == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Title and description are required")
	}

	videoFile, err := c.FormFile("videoFile")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Video file is required")
	}
	thumbnailFile, err := c.FormFile("thumbnail")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Thumbnail is required")
	}

	duration, err := strconv.ParseFloat(c.FormValue("duration"), 64)
	if err != nil || duration < 0 {
		duration = 0
	}

	ctx := c.Request().Context()
	videoURL, err := uploadFormFile(ctx, h.blobStore, "videos", videoFile)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to upload video")
	}
	thumbnailURL, err := uploadFormFile(ctx, h.blobStore, "thumbnails", thumbnailFile)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to upload thumbnail")
	}

	video := &models.Video{
		Owner:       currentUserID(c),
		Title:       title,
		Description: description,
		VideoFile:   videoURL,
		Thumbnail:   thumbnailURL,
		Duration:    duration,
		Views:       0,
		IsPublished: true,
	}
	if err := h.videoRepository.Create(ctx, video); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, video)
}

// GetVideo fetches a video. Owners see their own videos without side effects;
// everyone else is gated on publish status, counts one view, and gets the
// fetch recorded in their watch history.
func (h *VideoHandler) GetVideo(c echo.Context) error {
	video, err := h.loadVideo(c)
	if err != nil {
		return err
	}

	viewerID := currentUserID(c)
	if viewerID == video.Owner {
		return c.JSON(http.StatusOK, video)
	}
	if !video.IsPublished {
		return echo.NewHTTPError(http.StatusForbidden, "This video is not published yet")
	}

	ctx := c.Request().Context()
	if err := h.viewService.Record(ctx, video, viewerID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	// History is only for authenticated viewers; anonymous fetches must not
	// reach the tracker.
	if viewerID != 0 {
		if err := h.historyService.RecordView(ctx, viewerID, video.ID); err != nil {
			return httpError(err)
		}
	}

	return c.JSON(http.StatusOK, video)
}

// UpdateVideo updates title and/or description, owner only
func (h *VideoHandler) UpdateVideo(c echo.Context) error {
	video, err := h.loadVideo(c)
	if err != nil {
		return err
	}
	if video.Owner != currentUserID(c) {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to perform this action")
	}

	var req models.UpdateVideoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.Title == "" && req.Description == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "At least one field must be provided for update")
	}

	if req.Title != "" {
		video.Title = req.Title
	}
	if req.Description != "" {
		video.Description = req.Description
	}
	if err := h.videoRepository.Update(c.Request().Context(), video); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, video)
}

// DeleteVideo removes a video, owner only
func (h *VideoHandler) DeleteVideo(c echo.Context) error {
	video, err := h.loadVideo(c)
	if err != nil {
		return err
	}
	if video.Owner != currentUserID(c) {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to perform this action")
	}

	if err := h.videoRepository.Delete(c.Request().Context(), video.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// TogglePublishStatus flips a video's publish flag, owner only
func (h *VideoHandler) TogglePublishStatus(c echo.Context) error {
	video, err := h.loadVideo(c)
	if err != nil {
		return err
	}
	if video.Owner != currentUserID(c) {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to perform this action")
	}

	video.IsPublished = !video.IsPublished
	if err := h.videoRepository.Update(c.Request().Context(), video); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, video)
}

// GetChannelVideos lists all videos owned by a channel, newest first
func (h *VideoHandler) GetChannelVideos(c echo.Context) error {
	userID, err := repositories.ParseNumericID(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	videos, err := h.videoRepository.ByOwner(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"videos": videos, "total": len(videos)})
}

func uploadFormFile(ctx context.Context, store storage.BlobStore, folder string, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()
	return store.Upload(ctx, folder, fh.Filename, src, fh.Size, fh.Header.Get("Content-Type"))
}

func (h *VideoHandler) loadVideo(c echo.Context) (*models.Video, error) {
	objID, err := primitive.ObjectIDFromHex(c.Param("videoId"))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid video ID")
	}
	video, err := h.videoRepository.ByID(c.Request().Context(), objID)
	if err != nil {
		if err == repositories.ErrNotFound {
			return nil, echo.NewHTTPError(http.StatusNotFound, "Video not found")
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return video, nil
}
