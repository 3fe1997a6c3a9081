package handler

import (
	"fmt"
	"net/http"

	model "livemarket/internal/models"
	stream "livemarket/internal/streamService"
	"livemarket/services/live/helpers"
	"livemarket/utils"

	"github.com/gin-gonic/gin"
)

type StreamServiceInterface interface {
	CreateStream(sellerID string, d stream.Details) (model.Stream, error)
	GetStream(streamID string) (model.Stream, error)
	UpdateStream(streamID string, d stream.Details) (model.Stream, error)
	StartStream(streamID string) (model.Stream, error)
	EndStream(streamID string) (model.Stream, error)
	CancelStream(streamID string) (model.Stream, error)
	DeleteStream(streamID string) error
	IncrementViewer(streamID string) (int, error)
	DecrementViewer(streamID string) (int, error)
	ListOverdue() ([]model.Stream, error)
}

type StreamHandler struct {
	service StreamServiceInterface
}

func NewStreamHandler(service StreamServiceInterface) *StreamHandler {
	return &StreamHandler{service: service}
}

// CreateStreamHandler handles POST /streams
func (h *StreamHandler) CreateStreamHandler(c *gin.Context) {
	var req helpers.CreateStreamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateStreamHandler", err)
		return
	}

	st, err := h.service.CreateStream(req.SellerID, stream.Details{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		ThumbnailURL: req.ThumbnailURL,
		StartTime:    req.StartTime,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateStreamHandler: failed to create stream", map[string]any{
			"seller_id": req.SellerID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToStreamResponse(st), "stream created successfully")
	helpers.LogSuccess("CreateStreamHandler", "stream created successfully", map[string]any{
		"stream_id": st.StreamID,
		"seller_id": st.SellerID,
	})
}

// GetStreamHandler handles GET /streams/:stream_id
func (h *StreamHandler) GetStreamHandler(c *gin.Context) {
	streamID := c.Param("stream_id")
	st, err := h.service.GetStream(streamID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetStreamHandler: error retrieving stream", map[string]any{"stream_id": streamID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToStreamResponse(st), "stream retrieved successfully")
}

// UpdateStreamHandler handles PATCH /streams/:stream_id
func (h *StreamHandler) UpdateStreamHandler(c *gin.Context) {
	streamID := c.Param("stream_id")
	var req helpers.UpdateStreamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateStreamHandler", err)
		return
	}

	st, err := h.service.UpdateStream(streamID, stream.Details{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		ThumbnailURL: req.ThumbnailURL,
		StartTime:    req.StartTime,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateStreamHandler: failed to update stream", map[string]any{"stream_id": streamID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToStreamResponse(st), "stream updated successfully")
	helpers.LogSuccess("UpdateStreamHandler", "stream updated successfully", map[string]any{"stream_id": streamID})
}

// DeleteStreamHandler handles DELETE /streams/:stream_id
func (h *StreamHandler) DeleteStreamHandler(c *gin.Context) {
	streamID := c.Param("stream_id")
	if err := h.service.DeleteStream(streamID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeleteStreamHandler: failed to delete stream", map[string]any{"stream_id": streamID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"stream_id": streamID}, "stream deleted successfully")
	helpers.LogSuccess("DeleteStreamHandler", "stream deleted successfully", map[string]any{"stream_id": streamID})
}

// StartStreamHandler handles POST /streams/:stream_id/start
func (h *StreamHandler) StartStreamHandler(c *gin.Context) {
	h.transition(c, "StartStreamHandler", "stream started successfully", h.service.StartStream)
}

// EndStreamHandler handles POST /streams/:stream_id/end
func (h *StreamHandler) EndStreamHandler(c *gin.Context) {
	h.transition(c, "EndStreamHandler", "stream ended successfully", h.service.EndStream)
}

// CancelStreamHandler handles POST /streams/:stream_id/cancel
func (h *StreamHandler) CancelStreamHandler(c *gin.Context) {
	h.transition(c, "CancelStreamHandler", "stream cancelled successfully", h.service.CancelStream)
}

func (h *StreamHandler) transition(c *gin.Context, handlerName, successMsg string, op func(string) (model.Stream, error)) {
	streamID := c.Param("stream_id")
	st, err := op(streamID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn(handlerName+": transition failed", map[string]any{"stream_id": streamID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToStreamResponse(st), successMsg)
	helpers.LogSuccess(handlerName, successMsg, map[string]any{
		"stream_id": st.StreamID,
		"status":    string(st.Status),
	})
}

// AddViewerHandler handles POST /streams/:stream_id/viewers
func (h *StreamHandler) AddViewerHandler(c *gin.Context) {
	streamID := c.Param("stream_id")
	count, err := h.service.IncrementViewer(streamID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("AddViewerHandler: failed to add viewer", map[string]any{"stream_id": streamID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ViewerCountResponse{StreamID: streamID, ViewerCount: count}, "viewer added")
}

// RemoveViewerHandler handles DELETE /streams/:stream_id/viewers
func (h *StreamHandler) RemoveViewerHandler(c *gin.Context) {
	streamID := c.Param("stream_id")
	count, err := h.service.DecrementViewer(streamID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RemoveViewerHandler: failed to remove viewer", map[string]any{"stream_id": streamID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ViewerCountResponse{StreamID: streamID, ViewerCount: count}, "viewer removed")
}

// ListOverdueStreamsHandler handles GET /streams/overdue
func (h *StreamHandler) ListOverdueStreamsHandler(c *gin.Context) {
	overdue, err := h.service.ListOverdue()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListOverdueStreamsHandler: error listing overdue streams", map[string]any{"error": err.Error()})
		return
	}

	resp := make([]helpers.StreamResponse, 0, len(overdue))
	for _, st := range overdue {
		resp = append(resp, helpers.ToStreamResponse(st))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "overdue streams retrieved successfully")
	helpers.LogSuccess("ListOverdueStreamsHandler", "overdue streams retrieved successfully", map[string]any{"count": len(resp)})
}
