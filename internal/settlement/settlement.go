package settlement

import (
	"fmt"

	"livemarket/internal/clock"
	"livemarket/internal/commerceerrors"
	model "livemarket/internal/models"
	"livemarket/internal/repository"
	"livemarket/utils"
)

// Bridge converts a successful negotiation or auction outcome into an order
// record. It is the only writer to the order ledger in this subsystem.
type Bridge struct {
	store repository.OrderStore
	clk   clock.Clock
}

// NewBridge creates a settlement bridge over the given order store
func NewBridge(store repository.OrderStore, clk clock.Clock) *Bridge {
	return &Bridge{store: store, clk: clk}
}

// SettleToOrder creates an order in completed state for a settled deal.
// Settlement is idempotent per (listing, buyer, path): a repeated call returns
// the existing order instead of creating a duplicate.
func (b *Bridge) SettleToOrder(buyerID, sellerID, listingID string, amount float64, quantity int, path model.SettlementPath) (model.Order, error) {
	if buyerID == "" || sellerID == "" || listingID == "" {
		return model.Order{}, fmt.Errorf("settlement: %w - missing buyer, seller or listing", commerceerrors.ErrInvalidInput)
	}
	if amount <= 0 {
		return model.Order{}, fmt.Errorf("settlement: %w - non-positive amount", commerceerrors.ErrPreconditionFailed)
	}
	if quantity < 1 {
		quantity = 1
	}

	order := model.Order{
		OrderID:   utils.GenerateID(),
		BuyerID:   buyerID,
		SellerID:  sellerID,
		ListingID: listingID,
		Amount:    amount,
		Quantity:  quantity,
		Path:      path,
		Status:    model.OrderCompleted,
		CreatedAt: b.clk.Now().UTC(),
	}

	saved, created, err := b.store.CreateOrder(order)
	if err != nil {
		return model.Order{}, fmt.Errorf("settlement: failed to create order for listing %s buyer %s: %w", listingID, buyerID, err)
	}
	if !created {
		utils.Debug("settlement: duplicate settlement suppressed", map[string]any{
			"order_id":   saved.OrderID,
			"listing_id": listingID,
			"buyer_id":   buyerID,
			"path":       string(path),
		})
	}
	return saved, nil
}
