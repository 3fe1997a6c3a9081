package settlement

import (
	"testing"
	"time"

	"livemarket/internal/clock"
	"livemarket/internal/commerceerrors"
	"livemarket/internal/models"
	"livemarket/internal/repository"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newBridge(t *testing.T) (*Bridge, *repository.MemoryRepo) {
	t.Helper()
	repo := repository.NewMemoryRepo()
	return NewBridge(repo, clock.NewManual(testNow)), repo
}

// Tests SettleToOrder validation
func TestBridge_SettleToOrder_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		buyerID       string
		sellerID      string
		listingID     string
		amount        float64
		expectedError error
	}{
		{name: "valid", buyerID: "buyer1", sellerID: "seller1", listingID: "listing1", amount: 60},
		{name: "missing_buyer", sellerID: "seller1", listingID: "listing1", amount: 60, expectedError: commerceerrors.ErrInvalidInput},
		{name: "missing_seller", buyerID: "buyer1", listingID: "listing1", amount: 60, expectedError: commerceerrors.ErrInvalidInput},
		{name: "missing_listing", buyerID: "buyer1", sellerID: "seller1", amount: 60, expectedError: commerceerrors.ErrInvalidInput},
		{name: "zero_amount", buyerID: "buyer1", sellerID: "seller1", listingID: "listing1", expectedError: commerceerrors.ErrPreconditionFailed},
		{name: "negative_amount", buyerID: "buyer1", sellerID: "seller1", listingID: "listing1", amount: -5, expectedError: commerceerrors.ErrPreconditionFailed},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			bridge, _ := newBridge(t)

			order, err := bridge.SettleToOrder(tc.buyerID, tc.sellerID, tc.listingID, tc.amount, 1, models.PathOffer)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			require.NotEmpty(t, order.OrderID)
			require.Equal(t, models.OrderCompleted, order.Status)
			require.Equal(t, testNow, order.CreatedAt)
		})
	}
}

// A repeated settlement of the same deal returns the first order
func TestBridge_SettleToOrder_Idempotent(t *testing.T) {
	t.Parallel()

	bridge, repo := newBridge(t)

	first, err := bridge.SettleToOrder("buyer1", "seller1", "listing1", 60, 1, models.PathOffer)
	require.NoError(t, err)

	second, err := bridge.SettleToOrder("buyer1", "seller1", "listing1", 60, 1, models.PathOffer)
	require.NoError(t, err)
	require.Equal(t, first.OrderID, second.OrderID)

	orders, err := repo.ListOrdersByBuyer("buyer1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
}

// The dedup key includes the settlement path, so the same listing settling via
// offer and via auction yields two orders
func TestBridge_SettleToOrder_PathsAreDistinct(t *testing.T) {
	t.Parallel()

	bridge, repo := newBridge(t)

	offerOrder, err := bridge.SettleToOrder("buyer1", "seller1", "listing1", 60, 1, models.PathOffer)
	require.NoError(t, err)

	auctionOrder, err := bridge.SettleToOrder("buyer1", "seller1", "listing1", 75, 1, models.PathAuction)
	require.NoError(t, err)
	require.NotEqual(t, offerOrder.OrderID, auctionOrder.OrderID)

	orders, err := repo.ListOrdersByBuyer("buyer1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
}

func TestBridge_SettleToOrder_QuantityFloor(t *testing.T) {
	t.Parallel()

	bridge, _ := newBridge(t)

	order, err := bridge.SettleToOrder("buyer1", "seller1", "listing1", 60, 0, models.PathOffer)
	require.NoError(t, err)
	require.Equal(t, 1, order.Quantity)
}
