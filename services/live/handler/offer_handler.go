package handler

import (
	"fmt"
	"net/http"
	"time"

	model "livemarket/internal/models"
	offer "livemarket/internal/offerService"
	"livemarket/services/live/helpers"
	"livemarket/utils"

	"github.com/gin-gonic/gin"
)

type OfferServiceInterface interface {
	Propose(listingID, buyerID string, amount float64, message string, expiresAt *time.Time) (model.Offer, error)
	Decide(offerID string, decision offer.Decision) (model.Offer, error)
	Withdraw(offerID, buyerID string) error
	GetOffer(offerID string) (model.Offer, error)
	ListOffersByListing(listingID string) ([]model.Offer, error)
}

type OfferHandler struct {
	service OfferServiceInterface
}

func NewOfferHandler(service OfferServiceInterface) *OfferHandler {
	return &OfferHandler{service: service}
}

// ProposeOfferHandler handles POST /offers
func (h *OfferHandler) ProposeOfferHandler(c *gin.Context) {
	var req helpers.ProposeOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ProposeOfferHandler", err)
		return
	}

	saved, err := h.service.Propose(req.ListingID, req.BuyerID, req.Amount, req.Message, req.ExpiresAt)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ProposeOfferHandler: failed to record offer", map[string]any{
			"listing_id": req.ListingID,
			"buyer_id":   req.BuyerID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToOfferResponse(saved), "offer recorded successfully")
	helpers.LogSuccess("ProposeOfferHandler", "offer recorded successfully", map[string]any{
		"offer_id":   saved.OfferID,
		"listing_id": saved.ListingID,
		"buyer_id":   saved.BuyerID,
		"amount":     saved.Amount,
	})
}

// GetOfferHandler handles GET /offers/:offer_id
func (h *OfferHandler) GetOfferHandler(c *gin.Context) {
	offerID := c.Param("offer_id")
	o, err := h.service.GetOffer(offerID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetOfferHandler: error retrieving offer", map[string]any{"offer_id": offerID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToOfferResponse(o), "offer retrieved successfully")
}

// DecideOfferHandler handles POST /offers/:offer_id/decision
func (h *OfferHandler) DecideOfferHandler(c *gin.Context) {
	offerID := c.Param("offer_id")
	var req helpers.DecideOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "DecideOfferHandler", err)
		return
	}

	updated, err := h.service.Decide(offerID, offer.Decision(req.Decision))
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("DecideOfferHandler: failed to decide offer", map[string]any{
			"offer_id": offerID,
			"decision": req.Decision,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToOfferResponse(updated), "offer decision recorded successfully")
	helpers.LogSuccess("DecideOfferHandler", "offer decision recorded successfully", map[string]any{
		"offer_id": updated.OfferID,
		"status":   string(updated.Status),
	})
}

// WithdrawOfferHandler handles DELETE /offers/:offer_id
func (h *OfferHandler) WithdrawOfferHandler(c *gin.Context) {
	offerID := c.Param("offer_id")
	buyerID := c.Query("buyer_id")

	if err := h.service.Withdraw(offerID, buyerID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("WithdrawOfferHandler: failed to withdraw offer", map[string]any{
			"offer_id": offerID,
			"buyer_id": buyerID,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"offer_id": offerID}, "offer withdrawn successfully")
	helpers.LogSuccess("WithdrawOfferHandler", "offer withdrawn successfully", map[string]any{"offer_id": offerID})
}

// ListOffersByListingHandler handles GET /listings/:listing_id/offers
func (h *OfferHandler) ListOffersByListingHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	offers, err := h.service.ListOffersByListing(listingID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListOffersByListingHandler: error retrieving offers", map[string]any{"listing_id": listingID, "error": err.Error()})
		return
	}

	resp := make([]helpers.OfferResponse, 0, len(offers))
	for _, o := range offers {
		resp = append(resp, helpers.ToOfferResponse(o))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "offers retrieved successfully")
	helpers.LogSuccess("ListOffersByListingHandler", "offers retrieved successfully", map[string]any{
		"listing_id": listingID,
		"count":      len(resp),
	})
}
