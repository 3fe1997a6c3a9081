package offer

import (
	"fmt"
	"strconv"
	"time"

	"livemarket/internal/clock"
	"livemarket/internal/commerceerrors"
	"livemarket/internal/models"
	"livemarket/internal/repository"
	"livemarket/utils"
)

// Decision is a seller's response to a pending offer
type Decision string

const (
	DecisionAccept  Decision = "accept"
	DecisionDecline Decision = "decline"
)

// Settler converts an accepted offer into an order record
type Settler interface {
	SettleToOrder(buyerID, sellerID, listingID string, amount float64, quantity int, path models.SettlementPath) (models.Order, error)
}

// Notifier delivers best-effort typed events. Calls never block and never fail
// from the caller's point of view.
type Notifier interface {
	Notify(recipientID string, typ models.NotificationType, title, body string, metadata map[string]string)
}

// OfferService owns the buyer-to-seller negotiation state machine
// (pending -> accepted | declined, with re-offer resetting a declined row
// back to pending).
type OfferService struct {
	store    repository.OfferStore
	listings repository.ListingStore
	bridge   Settler
	notifier Notifier
	clk      clock.Clock
}

// NewOfferService creates a new OfferService instance
func NewOfferService(store repository.OfferStore, listings repository.ListingStore, bridge Settler, notifier Notifier, clk clock.Clock) *OfferService {
	return &OfferService{
		store:    store,
		listings: listings,
		bridge:   bridge,
		notifier: notifier,
		clk:      clk,
	}
}

// Propose submits a buyer's price proposal against a listing. A buyer's second
// proposal on the same listing reuses the existing row: amount, message and
// expiry are overwritten and the status resets to pending. Re-offering over an
// accepted deal fails with ErrAlreadyAccepted.
func (s *OfferService) Propose(listingID, buyerID string, amount float64, message string, expiresAt *time.Time) (models.Offer, error) {
	if listingID == "" || buyerID == "" {
		return models.Offer{}, fmt.Errorf("service: %w - missing listingID or buyerID", commerceerrors.ErrInvalidInput)
	}
	if amount <= 0 {
		return models.Offer{}, fmt.Errorf("service: %w - non-positive offer amount", commerceerrors.ErrPreconditionFailed)
	}

	listing, err := s.listings.GetListing(listingID)
	if err != nil {
		return models.Offer{}, fmt.Errorf("service: failed to load listing %s: %w", listingID, err)
	}
	if listing.SellerID == buyerID {
		return models.Offer{}, fmt.Errorf("service: %w - seller cannot offer on own listing", commerceerrors.ErrPreconditionFailed)
	}

	now := s.clk.Now().UTC()
	if expiresAt != nil && !expiresAt.After(now) {
		return models.Offer{}, fmt.Errorf("service: %w - expiry must be in the future", commerceerrors.ErrPreconditionFailed)
	}

	candidate := models.Offer{
		OfferID:   utils.GenerateID(),
		ListingID: listingID,
		BuyerID:   buyerID,
		SellerID:  listing.SellerID,
		Amount:    amount,
		Message:   message,
		Status:    models.OfferPending,
		ExpiresAt: expiresAt,
		CreatedAt: now,
	}

	saved, _, err := s.store.UpsertOffer(candidate)
	if err != nil {
		return models.Offer{}, fmt.Errorf("service: failed to record offer on listing %s by buyer %s: %w", listingID, buyerID, err)
	}

	s.notifier.Notify(listing.SellerID, models.NotificationOfferCreated, "",
		fmt.Sprintf("%s received an offer of %s", listing.Title, formatAmount(amount)),
		offerMetadata(saved))

	return saved, nil
}

// Decide applies a seller's accept/decline to a pending offer. Accepting
// settles the deal into an order and notifies the buyer; declining just
// notifies. A decision racing another decision observes the row is no longer
// pending and fails without overwriting.
func (s *OfferService) Decide(offerID string, decision Decision) (models.Offer, error) {
	if offerID == "" {
		return models.Offer{}, fmt.Errorf("service: %w - empty offer ID", commerceerrors.ErrInvalidInput)
	}

	var target models.OfferStatus
	switch decision {
	case DecisionAccept:
		target = models.OfferAccepted
	case DecisionDecline:
		target = models.OfferDeclined
	default:
		return models.Offer{}, fmt.Errorf("service: %w - unknown decision %q", commerceerrors.ErrInvalidInput, decision)
	}

	updated, err := s.store.DecideOffer(offerID, target)
	if err != nil {
		return models.Offer{}, fmt.Errorf("service: failed to decide offer %s: %w", offerID, err)
	}

	if decision == DecisionDecline {
		s.notifier.Notify(updated.BuyerID, models.NotificationOfferDeclined, "",
			fmt.Sprintf("Your offer of %s was declined", formatAmount(updated.Amount)),
			offerMetadata(updated))
		return updated, nil
	}

	s.notifier.Notify(updated.BuyerID, models.NotificationOfferAccepted, "",
		fmt.Sprintf("Your offer of %s was accepted", formatAmount(updated.Amount)),
		offerMetadata(updated))

	if _, err := s.bridge.SettleToOrder(updated.BuyerID, updated.SellerID, updated.ListingID, updated.Amount, 1, models.PathOffer); err != nil {
		// The accepted status is already committed; surface the order failure
		// distinctly instead of rolling back.
		utils.Error("offer accepted but order creation failed", map[string]any{
			"offer_id":   offerID,
			"listing_id": updated.ListingID,
			"buyer_id":   updated.BuyerID,
			"amount":     updated.Amount,
			"error":      err.Error(),
		})
		return updated, fmt.Errorf("service: offer %s accepted but order creation failed: %w", offerID, err)
	}

	return updated, nil
}

// Withdraw deletes a still-pending offer. Only the proposing buyer may
// withdraw, and only while the offer is pending.
func (s *OfferService) Withdraw(offerID, buyerID string) error {
	if offerID == "" || buyerID == "" {
		return fmt.Errorf("service: %w - missing offerID or buyerID", commerceerrors.ErrInvalidInput)
	}

	cur, err := s.store.GetOffer(offerID)
	if err != nil {
		return fmt.Errorf("service: failed to load offer %s: %w", offerID, err)
	}
	if cur.BuyerID != buyerID {
		return fmt.Errorf("service: %w - offer belongs to another buyer", commerceerrors.ErrPreconditionFailed)
	}
	if cur.Status != models.OfferPending {
		return fmt.Errorf("service: withdraw offer in status %s: %w", cur.Status, commerceerrors.ErrInvalidTransition)
	}

	if err := s.store.DeletePendingOffer(offerID); err != nil {
		return fmt.Errorf("service: failed to withdraw offer %s: %w", offerID, err)
	}
	return nil
}

// GetOffer returns an offer by id
func (s *OfferService) GetOffer(offerID string) (models.Offer, error) {
	if offerID == "" {
		return models.Offer{}, fmt.Errorf("service: %w - empty offer ID", commerceerrors.ErrInvalidInput)
	}
	o, err := s.store.GetOffer(offerID)
	if err != nil {
		return models.Offer{}, fmt.Errorf("service: failed to get offer %s: %w", offerID, err)
	}
	return o, nil
}

// ListOffersByListing returns all offers against a listing, newest first
func (s *OfferService) ListOffersByListing(listingID string) ([]models.Offer, error) {
	if listingID == "" {
		return nil, fmt.Errorf("service: %w - empty listing ID", commerceerrors.ErrInvalidInput)
	}
	offers, err := s.store.ListOffersByListing(listingID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list offers for listing %s: %w", listingID, err)
	}
	return offers, nil
}

func offerMetadata(o models.Offer) map[string]string {
	return map[string]string{
		"offer_id":   o.OfferID,
		"listing_id": o.ListingID,
		"amount":     formatAmount(o.Amount),
	}
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
