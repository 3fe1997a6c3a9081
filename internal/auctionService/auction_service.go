package auction

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"livemarket/internal/clock"
	"livemarket/internal/commerceerrors"
	"livemarket/internal/models"
	"livemarket/internal/repository"
	"livemarket/internal/timer"
	"livemarket/utils"
)

// Settler converts a sold auction into an order record
type Settler interface {
	SettleToOrder(buyerID, sellerID, listingID string, amount float64, quantity int, path models.SettlementPath) (models.Order, error)
}

// AuctionService owns the timed single-item sale that runs inside a live
// stream. Auctions are strictly sequential per stream; each un-settled auction
// owns one deadline timer handle whose expiry lapses the item.
//
// Settle is an idempotent no-op when the item is already settled: a manual
// "end auction" racing the timer's own expiry must not error or double-settle.
type AuctionService struct {
	store   repository.AuctionStore
	streams repository.StreamStore
	bridge  Settler
	timers  *timer.Scheduler
	clk     clock.Clock

	mu      sync.Mutex
	handles map[string]*timer.Handle // auctionID -> armed countdown
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(store repository.AuctionStore, streams repository.StreamStore, bridge Settler, timers *timer.Scheduler, clk clock.Clock) *AuctionService {
	return &AuctionService{
		store:   store,
		streams: streams,
		bridge:  bridge,
		timers:  timers,
		clk:     clk,
		handles: make(map[string]*timer.Handle),
	}
}

// StartAuction begins a timed sale on a live stream. Fails with
// ErrAuctionInProgress while another auction on the stream is un-settled.
func (s *AuctionService) StartAuction(streamID, description string, startingPrice float64, duration time.Duration) (models.AuctionItem, error) {
	if streamID == "" || description == "" {
		return models.AuctionItem{}, fmt.Errorf("service: %w - missing streamID or description", commerceerrors.ErrInvalidInput)
	}
	if startingPrice <= 0 {
		return models.AuctionItem{}, fmt.Errorf("service: %w - non-positive starting price", commerceerrors.ErrPreconditionFailed)
	}
	if duration <= 0 {
		return models.AuctionItem{}, fmt.Errorf("service: %w - non-positive duration", commerceerrors.ErrPreconditionFailed)
	}

	st, err := s.streams.GetStream(streamID)
	if err != nil {
		return models.AuctionItem{}, fmt.Errorf("service: failed to load stream %s: %w", streamID, err)
	}
	if st.Status != models.StreamLive {
		return models.AuctionItem{}, fmt.Errorf("service: start auction on stream in status %s: %w", st.Status, commerceerrors.ErrPreconditionFailed)
	}

	now := s.clk.Now().UTC()
	item := models.AuctionItem{
		AuctionID:     utils.GenerateID(),
		StreamID:      streamID,
		SellerID:      st.SellerID,
		Description:   description,
		StartingPrice: startingPrice,
		CurrentPrice:  startingPrice,
		EndsAt:        now.Add(duration),
		CreatedAt:     now,
	}

	if err := s.store.CreateAuction(item); err != nil {
		return models.AuctionItem{}, fmt.Errorf("service: failed to create auction on stream %s: %w", streamID, err)
	}

	auctionID := item.AuctionID
	handle := s.timers.Arm(item.EndsAt, func() {
		if _, err := s.Settle(auctionID, models.OutcomeLapsed, ""); err != nil {
			utils.Error("auction expiry settlement failed", map[string]any{
				"auction_id": auctionID,
				"error":      err.Error(),
			})
		}
	})

	s.mu.Lock()
	s.handles[auctionID] = handle
	s.mu.Unlock()

	return item, nil
}

// ExtendAuction pushes the auction deadline forward by delta. Legal only while
// the item is un-settled.
func (s *AuctionService) ExtendAuction(auctionID string, delta time.Duration) (models.AuctionItem, error) {
	if auctionID == "" {
		return models.AuctionItem{}, fmt.Errorf("service: %w - empty auction ID", commerceerrors.ErrInvalidInput)
	}
	if delta <= 0 {
		return models.AuctionItem{}, fmt.Errorf("service: %w - non-positive extension", commerceerrors.ErrPreconditionFailed)
	}

	cur, err := s.store.GetAuction(auctionID)
	if err != nil {
		return models.AuctionItem{}, fmt.Errorf("service: failed to load auction %s: %w", auctionID, err)
	}

	updated, err := s.store.ExtendAuction(auctionID, cur.EndsAt.Add(delta))
	if err != nil {
		return models.AuctionItem{}, fmt.Errorf("service: failed to extend auction %s: %w", auctionID, err)
	}

	s.mu.Lock()
	handle := s.handles[auctionID]
	s.mu.Unlock()

	if handle != nil {
		if err := handle.Extend(updated.EndsAt); err != nil {
			// The timer fired between the store write and this call; the
			// expiry callback settles the item through the same idempotent
			// path, so the store extension is simply lost to the race.
			utils.Debug("auction timer extension lost to expiry", map[string]any{
				"auction_id": auctionID,
				"error":      err.Error(),
			})
		}
	}

	return updated, nil
}

// Settle ends an auction with the given outcome. The settled flag is
// checked-and-set at the store; the second settle of the same item is a
// silent no-op returning the already-settled item. A sold outcome creates an
// order through the settlement bridge.
func (s *AuctionService) Settle(auctionID string, outcome models.AuctionOutcome, buyerID string) (models.AuctionItem, error) {
	if auctionID == "" {
		return models.AuctionItem{}, fmt.Errorf("service: %w - empty auction ID", commerceerrors.ErrInvalidInput)
	}
	if outcome != models.OutcomeSold && outcome != models.OutcomeLapsed {
		return models.AuctionItem{}, fmt.Errorf("service: %w - unknown outcome %q", commerceerrors.ErrInvalidInput, outcome)
	}
	if outcome == models.OutcomeSold && buyerID == "" {
		return models.AuctionItem{}, fmt.Errorf("service: %w - sold outcome requires a buyer", commerceerrors.ErrInvalidInput)
	}

	item, first, err := s.store.SettleAuction(auctionID, outcome)
	if err != nil {
		return models.AuctionItem{}, fmt.Errorf("service: failed to settle auction %s: %w", auctionID, err)
	}

	s.dropHandle(auctionID)

	if !first {
		return item, nil
	}

	if outcome == models.OutcomeSold {
		if _, err := s.bridge.SettleToOrder(buyerID, item.SellerID, item.AuctionID, item.CurrentPrice, 1, models.PathAuction); err != nil {
			// The settled flag is already committed; order creation failing
			// here is a reportable inconsistency, not a rollback candidate.
			utils.Error("auction settled but order creation failed", map[string]any{
				"auction_id": auctionID,
				"buyer_id":   buyerID,
				"amount":     item.CurrentPrice,
				"error":      err.Error(),
			})
			return item, fmt.Errorf("service: auction %s settled but order creation failed: %w", auctionID, err)
		}
	}

	return item, nil
}

// GetAuction returns an auction item by id
func (s *AuctionService) GetAuction(auctionID string) (models.AuctionItem, error) {
	if auctionID == "" {
		return models.AuctionItem{}, fmt.Errorf("service: %w - empty auction ID", commerceerrors.ErrInvalidInput)
	}
	item, err := s.store.GetAuction(auctionID)
	if err != nil {
		return models.AuctionItem{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	return item, nil
}

// Remaining returns the time left on an auction's countdown, clamped to zero
func (s *AuctionService) Remaining(item models.AuctionItem) time.Duration {
	if item.Settled {
		return 0
	}
	d := item.EndsAt.Sub(s.clk.Now())
	if d < 0 {
		return 0
	}
	return d
}

// SettleActive lapses the un-settled auction on a stream, if any. Used by the
// stream lifecycle manager when a stream ends.
func (s *AuctionService) SettleActive(streamID string) error {
	active, err := s.store.ActiveAuctionForStream(streamID)
	if err != nil {
		if errors.Is(err, commerceerrors.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("service: failed to look up active auction for stream %s: %w", streamID, err)
	}

	if _, err := s.Settle(active.AuctionID, models.OutcomeLapsed, ""); err != nil {
		return err
	}
	return nil
}

// HasActive reports whether the stream has an un-settled auction
func (s *AuctionService) HasActive(streamID string) (bool, error) {
	_, err := s.store.ActiveAuctionForStream(streamID)
	if err != nil {
		if errors.Is(err, commerceerrors.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("service: failed to look up active auction for stream %s: %w", streamID, err)
	}
	return true, nil
}

// Close cancels all armed timer handles. Intended for shutdown and tests.
func (s *AuctionService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, h := range s.handles {
		h.Cancel()
		delete(s.handles, id)
	}
}

func (s *AuctionService) dropHandle(auctionID string) {
	s.mu.Lock()
	handle := s.handles[auctionID]
	delete(s.handles, auctionID)
	s.mu.Unlock()

	if handle != nil {
		handle.Cancel()
	}
}
