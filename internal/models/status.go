package models

// StreamStatus is the closed set of lifecycle states for a Stream
type StreamStatus string

const (
	StreamScheduled StreamStatus = "scheduled"
	StreamLive      StreamStatus = "live"
	StreamEnded     StreamStatus = "ended"
	StreamCancelled StreamStatus = "cancelled"
)

// Terminal reports whether no further lifecycle transition is legal
func (s StreamStatus) Terminal() bool {
	return s == StreamEnded || s == StreamCancelled
}

// AuctionOutcome records how a settled auction ended
type AuctionOutcome string

const (
	OutcomeSold   AuctionOutcome = "sold"
	OutcomeLapsed AuctionOutcome = "lapsed"
)

// OfferStatus is the closed set of negotiation states for an Offer
type OfferStatus string

const (
	OfferPending  OfferStatus = "pending"
	OfferAccepted OfferStatus = "accepted"
	OfferDeclined OfferStatus = "declined"
)

// Label returns the user-facing label for an offer status. The enumeration is
// closed; an unmapped value indicates a programming error, not user input.
func (s OfferStatus) Label() string {
	switch s {
	case OfferPending:
		return "Awaiting Response"
	case OfferAccepted:
		return "Accepted"
	case OfferDeclined:
		return "Declined"
	}
	return string(s)
}

// Color returns the display color key for an offer status
func (s OfferStatus) Color() string {
	switch s {
	case OfferPending:
		return "amber"
	case OfferAccepted:
		return "green"
	case OfferDeclined:
		return "red"
	}
	return "grey"
}

// NotificationType is the closed set of event types the dispatcher delivers
type NotificationType string

const (
	NotificationMessage       NotificationType = "message"
	NotificationOfferCreated  NotificationType = "offer_created"
	NotificationOfferAccepted NotificationType = "offer_accepted"
	NotificationOfferDeclined NotificationType = "offer_declined"
)

// SettlementPath identifies which flow produced an order
type SettlementPath string

const (
	PathOffer   SettlementPath = "offer"
	PathAuction SettlementPath = "auction"
)

// OrderStatus is the state of a settled order. Settlement creates orders
// directly in completed state; payment capture happens out-of-band.
type OrderStatus string

const (
	OrderCompleted OrderStatus = "completed"
)

// Label returns the user-facing label for an order status
func (s OrderStatus) Label() string {
	switch s {
	case OrderCompleted:
		return "Completed"
	}
	return string(s)
}

// Color returns the display color key for an order status
func (s OrderStatus) Color() string {
	switch s {
	case OrderCompleted:
		return "green"
	}
	return "grey"
}
