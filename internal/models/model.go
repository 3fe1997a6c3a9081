package models

import "time"

// User represents a marketplace participant (buyer or seller)
type User struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// Listing represents a marketplace listing a buyer can make offers against
type Listing struct {
	ListingID string  `json:"listing_id"`
	SellerID  string  `json:"seller_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
}

// Stream represents a schedulable live shopping session owned by one seller
type Stream struct {
	StreamID     string       `json:"stream_id"`
	SellerID     string       `json:"seller_id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Category     string       `json:"category"`
	ThumbnailURL string       `json:"thumbnail_url,omitempty"`
	StartTime    time.Time    `json:"start_time"`
	EndTime      *time.Time   `json:"end_time,omitempty"`
	Status       StreamStatus `json:"status"`
	ViewerCount  int          `json:"viewer_count"`
	CreatedAt    time.Time    `json:"created_at"`
}

// AuctionItem represents a single timed, fixed-price sale scoped to one live Stream.
// There is no competitive bidding: CurrentPrice stays equal to StartingPrice and the
// countdown decides whether the item sells or lapses.
type AuctionItem struct {
	AuctionID     string         `json:"auction_id"`
	StreamID      string         `json:"stream_id"`
	SellerID      string         `json:"seller_id"`
	Description   string         `json:"description"`
	StartingPrice float64        `json:"starting_price"`
	CurrentPrice  float64        `json:"current_price"`
	EndsAt        time.Time      `json:"ends_at"`
	Settled       bool           `json:"settled"`
	Outcome       AuctionOutcome `json:"outcome,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
}

// Offer represents a buyer's price proposal against a listing. At most one Offer
// row exists per (listing, buyer) pair; a re-offer reuses the row.
type Offer struct {
	OfferID   string      `json:"offer_id"`
	ListingID string      `json:"listing_id"`
	BuyerID   string      `json:"buyer_id"`
	SellerID  string      `json:"seller_id"`
	Amount    float64     `json:"amount"`
	Message   string      `json:"message,omitempty"`
	Status    OfferStatus `json:"status"`
	ExpiresAt *time.Time  `json:"expires_at,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// Notification is an immutable typed event record delivered to one user
type Notification struct {
	NotificationID string            `json:"notification_id"`
	RecipientID    string            `json:"recipient_id"`
	Type           NotificationType  `json:"type"`
	Title          string            `json:"title"`
	Body           string            `json:"body"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

// Order is the settlement record produced by an accepted offer or a sold auction
type Order struct {
	OrderID   string         `json:"order_id"`
	BuyerID   string         `json:"buyer_id"`
	SellerID  string         `json:"seller_id"`
	ListingID string         `json:"listing_id"`
	Amount    float64        `json:"amount"`
	Quantity  int            `json:"quantity"`
	Path      SettlementPath `json:"path"`
	Status    OrderStatus    `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}
