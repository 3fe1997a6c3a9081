package helpers

import (
	"time"

	model "livemarket/internal/models"
)

// Request/Response DTOs

type CreateStreamRequest struct {
	SellerID     string    `json:"seller_id" binding:"required"`
	Title        string    `json:"title" binding:"required"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	ThumbnailURL string    `json:"thumbnail_url"`
	StartTime    time.Time `json:"start_time" binding:"required"`
}

type UpdateStreamRequest struct {
	Title        string    `json:"title" binding:"required"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	ThumbnailURL string    `json:"thumbnail_url"`
	StartTime    time.Time `json:"start_time" binding:"required"`
}

type StreamResponse struct {
	StreamID     string  `json:"stream_id"`
	SellerID     string  `json:"seller_id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	ThumbnailURL string  `json:"thumbnail_url"`
	StartTime    string  `json:"start_time"`
	EndTime      *string `json:"end_time,omitempty"`
	Status       string  `json:"status"`
	ViewerCount  int     `json:"viewer_count"`
}

type ViewerCountResponse struct {
	StreamID    string `json:"stream_id"`
	ViewerCount int    `json:"viewer_count"`
}

type StartAuctionRequest struct {
	Description     string  `json:"description" binding:"required"`
	StartingPrice   float64 `json:"starting_price" binding:"required,gt=0"`
	DurationSeconds int     `json:"duration_seconds" binding:"required,gt=0"`
}

type ExtendAuctionRequest struct {
	DeltaSeconds int `json:"delta_seconds" binding:"required,gt=0"`
}

type SettleAuctionRequest struct {
	Outcome string `json:"outcome" binding:"required"`
	BuyerID string `json:"buyer_id"`
}

type AuctionResponse struct {
	AuctionID        string  `json:"auction_id"`
	StreamID         string  `json:"stream_id"`
	SellerID         string  `json:"seller_id"`
	Description      string  `json:"description"`
	StartingPrice    float64 `json:"starting_price"`
	CurrentPrice     float64 `json:"current_price"`
	EndsAt           string  `json:"ends_at"`
	RemainingSeconds int     `json:"remaining_seconds"`
	Settled          bool    `json:"settled"`
	Outcome          string  `json:"outcome,omitempty"`
}

type ProposeOfferRequest struct {
	ListingID string     `json:"listing_id" binding:"required"`
	BuyerID   string     `json:"buyer_id" binding:"required"`
	Amount    float64    `json:"amount" binding:"required,gt=0"`
	Message   string     `json:"message"`
	ExpiresAt *time.Time `json:"expires_at"`
}

type DecideOfferRequest struct {
	Decision string `json:"decision" binding:"required"`
}

type OfferResponse struct {
	OfferID   string  `json:"offer_id"`
	ListingID string  `json:"listing_id"`
	BuyerID   string  `json:"buyer_id"`
	SellerID  string  `json:"seller_id"`
	Amount    float64 `json:"amount"`
	Message   string  `json:"message,omitempty"`
	Status    string  `json:"status"`
	ExpiresAt *string `json:"expires_at,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// ToStreamResponse converts a stream model into its wire shape
func ToStreamResponse(st model.Stream) StreamResponse {
	resp := StreamResponse{
		StreamID:     st.StreamID,
		SellerID:     st.SellerID,
		Title:        st.Title,
		Description:  st.Description,
		Category:     st.Category,
		ThumbnailURL: st.ThumbnailURL,
		StartTime:    st.StartTime.UTC().Format(time.RFC3339),
		Status:       string(st.Status),
		ViewerCount:  st.ViewerCount,
	}
	if st.EndTime != nil {
		ended := st.EndTime.UTC().Format(time.RFC3339)
		resp.EndTime = &ended
	}
	return resp
}

// ToAuctionResponse converts an auction item into its wire shape
func ToAuctionResponse(item model.AuctionItem, remaining time.Duration) AuctionResponse {
	return AuctionResponse{
		AuctionID:        item.AuctionID,
		StreamID:         item.StreamID,
		SellerID:         item.SellerID,
		Description:      item.Description,
		StartingPrice:    item.StartingPrice,
		CurrentPrice:     item.CurrentPrice,
		EndsAt:           item.EndsAt.UTC().Format(time.RFC3339),
		RemainingSeconds: int(remaining.Seconds()),
		Settled:          item.Settled,
		Outcome:          string(item.Outcome),
	}
}

// ToOfferResponse converts an offer model into its wire shape
func ToOfferResponse(o model.Offer) OfferResponse {
	resp := OfferResponse{
		OfferID:   o.OfferID,
		ListingID: o.ListingID,
		BuyerID:   o.BuyerID,
		SellerID:  o.SellerID,
		Amount:    o.Amount,
		Message:   o.Message,
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt.UTC().Format(time.RFC3339),
	}
	if o.ExpiresAt != nil {
		expires := o.ExpiresAt.UTC().Format(time.RFC3339)
		resp.ExpiresAt = &expires
	}
	return resp
}
