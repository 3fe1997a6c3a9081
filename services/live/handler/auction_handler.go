package handler

import (
	"fmt"
	"net/http"
	"time"

	model "livemarket/internal/models"
	"livemarket/services/live/helpers"
	"livemarket/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	StartAuction(streamID, description string, startingPrice float64, duration time.Duration) (model.AuctionItem, error)
	GetAuction(auctionID string) (model.AuctionItem, error)
	ExtendAuction(auctionID string, delta time.Duration) (model.AuctionItem, error)
	Settle(auctionID string, outcome model.AuctionOutcome, buyerID string) (model.AuctionItem, error)
	Remaining(item model.AuctionItem) time.Duration
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// StartAuctionHandler handles POST /streams/:stream_id/auctions
func (h *AuctionHandler) StartAuctionHandler(c *gin.Context) {
	streamID := c.Param("stream_id")
	var req helpers.StartAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "StartAuctionHandler", err)
		return
	}

	item, err := h.service.StartAuction(streamID, req.Description, req.StartingPrice, time.Duration(req.DurationSeconds)*time.Second)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("StartAuctionHandler: failed to start auction", map[string]any{
			"stream_id": streamID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToAuctionResponse(item, h.service.Remaining(item)), "auction started successfully")
	helpers.LogSuccess("StartAuctionHandler", "auction started successfully", map[string]any{
		"auction_id":     item.AuctionID,
		"stream_id":      streamID,
		"starting_price": item.StartingPrice,
	})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	item, err := h.service.GetAuction(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionHandler: error retrieving auction", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponse(item, h.service.Remaining(item)), "auction retrieved successfully")
}

// ExtendAuctionHandler handles POST /auctions/:auction_id/extend
func (h *AuctionHandler) ExtendAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	var req helpers.ExtendAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ExtendAuctionHandler", err)
		return
	}

	item, err := h.service.ExtendAuction(auctionID, time.Duration(req.DeltaSeconds)*time.Second)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ExtendAuctionHandler: failed to extend auction", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponse(item, h.service.Remaining(item)), "auction extended successfully")
	helpers.LogSuccess("ExtendAuctionHandler", "auction extended successfully", map[string]any{
		"auction_id": auctionID,
		"ends_at":    item.EndsAt.UTC().Format(time.RFC3339),
	})
}

// SettleAuctionHandler handles POST /auctions/:auction_id/settle
func (h *AuctionHandler) SettleAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")
	var req helpers.SettleAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SettleAuctionHandler", err)
		return
	}

	item, err := h.service.Settle(auctionID, model.AuctionOutcome(req.Outcome), req.BuyerID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("SettleAuctionHandler: failed to settle auction", map[string]any{
			"auction_id": auctionID,
			"outcome":    req.Outcome,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToAuctionResponse(item, 0), "auction settled successfully")
	helpers.LogSuccess("SettleAuctionHandler", "auction settled successfully", map[string]any{
		"auction_id": item.AuctionID,
		"outcome":    string(item.Outcome),
	})
}
