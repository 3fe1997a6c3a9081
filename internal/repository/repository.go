package repository

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"livemarket/internal/commerceerrors"
	model "livemarket/internal/models"
)

// StreamStore defines stream persistence for the lifecycle manager. Status
// writes are compare-and-swap: the expected current status is part of the call
// so a concurrent transition surfaces as ErrStaleState instead of a lost update.
type StreamStore interface {
	CreateStream(s model.Stream) error
	GetStream(streamID string) (model.Stream, error)
	UpdateStreamDetails(s model.Stream) (model.Stream, error)
	UpdateStreamStatus(streamID string, from, to model.StreamStatus, at time.Time) (model.Stream, error)
	DeleteStream(streamID string) error
	ListStreamsBySeller(sellerID string) ([]model.Stream, error)
	ListStreamsByStatus(status model.StreamStatus) ([]model.Stream, error)
	AddViewer(streamID string) (int, error)
	RemoveViewer(streamID string) (int, error)
}

// AuctionStore defines auction persistence. At most one un-settled auction may
// exist per stream; SettleAuction is a check-and-set on the settled flag.
type AuctionStore interface {
	CreateAuction(a model.AuctionItem) error
	GetAuction(auctionID string) (model.AuctionItem, error)
	ActiveAuctionForStream(streamID string) (model.AuctionItem, error)
	ExtendAuction(auctionID string, newEndsAt time.Time) (model.AuctionItem, error)
	SettleAuction(auctionID string, outcome model.AuctionOutcome) (model.AuctionItem, bool, error)
}

// OfferStore defines offer persistence. UpsertOffer is the atomic
// insert-or-update keyed on (listing, buyer); DecideOffer is a
// compare-and-swap on pending status.
type OfferStore interface {
	UpsertOffer(o model.Offer) (model.Offer, bool, error)
	GetOffer(offerID string) (model.Offer, error)
	DecideOffer(offerID string, to model.OfferStatus) (model.Offer, error)
	DeletePendingOffer(offerID string) error
	ListOffersByListing(listingID string) ([]model.Offer, error)
}

// NotificationStore persists immutable notification records
type NotificationStore interface {
	CreateNotification(n model.Notification) error
	ListNotificationsByRecipient(recipientID string) ([]model.Notification, error)
}

// OrderStore persists settlement orders, deduplicated per
// (listing, buyer, settlement path)
type OrderStore interface {
	CreateOrder(o model.Order) (model.Order, bool, error)
	GetOrder(orderID string) (model.Order, error)
	ListOrdersByBuyer(buyerID string) ([]model.Order, error)
}

// ListingStore exposes read access to the listing catalog
type ListingStore interface {
	GetListing(listingID string) (model.Listing, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of all stores
type MemoryRepo struct {
	mu             sync.RWMutex
	streams        map[string]model.Stream
	auctions       map[string]model.AuctionItem
	activeAuctions map[string]string // streamID -> un-settled auctionID
	offers         map[string]model.Offer
	offerKeys      map[string]string // listingID|buyerID -> offerID
	notifications  map[string][]model.Notification
	orders         map[string]model.Order
	orderKeys      map[string]string // listingID|buyerID|path -> orderID
	listings       map[string]model.Listing
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		streams:        make(map[string]model.Stream),
		auctions:       make(map[string]model.AuctionItem),
		activeAuctions: make(map[string]string),
		offers:         make(map[string]model.Offer),
		offerKeys:      make(map[string]string),
		notifications:  make(map[string][]model.Notification),
		orders:         make(map[string]model.Order),
		orderKeys:      make(map[string]string),
		listings:       make(map[string]model.Listing),
	}
}

func offerKey(listingID, buyerID string) string {
	return listingID + "|" + buyerID
}

func orderKey(listingID, buyerID string, path model.SettlementPath) string {
	return listingID + "|" + buyerID + "|" + string(path)
}

// --- streams ---

// CreateStream stores a new stream record
func (r *MemoryRepo) CreateStream(s model.Stream) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.streams[s.StreamID]; ok {
		return fmt.Errorf("create stream %s: %w", s.StreamID, commerceerrors.ErrStaleState)
	}
	r.streams[s.StreamID] = s
	return nil
}

// GetStream returns a stream by id
func (r *MemoryRepo) GetStream(streamID string) (model.Stream, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.streams[streamID]
	if !ok {
		return model.Stream{}, fmt.Errorf("get stream %s: %w", streamID, commerceerrors.ErrNotFound)
	}
	return s, nil
}

// UpdateStreamDetails overwrites the editable fields of a scheduled stream.
// A stream that has left scheduled in the meantime fails with ErrStaleState.
func (r *MemoryRepo) UpdateStreamDetails(s model.Stream) (model.Stream, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.streams[s.StreamID]
	if !ok {
		return model.Stream{}, fmt.Errorf("update stream %s: %w", s.StreamID, commerceerrors.ErrNotFound)
	}
	if cur.Status != model.StreamScheduled {
		return model.Stream{}, fmt.Errorf("update stream %s in status %s: %w", s.StreamID, cur.Status, commerceerrors.ErrStaleState)
	}

	cur.Title = s.Title
	cur.Description = s.Description
	cur.Category = s.Category
	cur.ThumbnailURL = s.ThumbnailURL
	cur.StartTime = s.StartTime
	r.streams[cur.StreamID] = cur
	return cur, nil
}

// UpdateStreamStatus applies a lifecycle transition if and only if the stream
// is still in the expected current status
func (r *MemoryRepo) UpdateStreamStatus(streamID string, from, to model.StreamStatus, at time.Time) (model.Stream, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.streams[streamID]
	if !ok {
		return model.Stream{}, fmt.Errorf("transition stream %s: %w", streamID, commerceerrors.ErrNotFound)
	}
	if cur.Status != from {
		return model.Stream{}, fmt.Errorf("transition stream %s expected %s got %s: %w", streamID, from, cur.Status, commerceerrors.ErrStaleState)
	}

	cur.Status = to
	if to == model.StreamEnded {
		endedAt := at
		cur.EndTime = &endedAt
	}
	r.streams[streamID] = cur
	return cur, nil
}

// DeleteStream removes a stream. A live stream cannot be deleted.
func (r *MemoryRepo) DeleteStream(streamID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.streams[streamID]
	if !ok {
		return fmt.Errorf("delete stream %s: %w", streamID, commerceerrors.ErrNotFound)
	}
	if cur.Status == model.StreamLive {
		return fmt.Errorf("delete live stream %s: %w", streamID, commerceerrors.ErrStaleState)
	}
	delete(r.streams, streamID)
	return nil
}

// ListStreamsBySeller returns all streams owned by a seller
func (r *MemoryRepo) ListStreamsBySeller(sellerID string) ([]model.Stream, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	streams := make([]model.Stream, 0)
	for _, s := range r.streams {
		if s.SellerID == sellerID {
			streams = append(streams, s)
		}
	}
	sortStreams(streams)
	return streams, nil
}

// ListStreamsByStatus returns all streams currently in the given status
func (r *MemoryRepo) ListStreamsByStatus(status model.StreamStatus) ([]model.Stream, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	streams := make([]model.Stream, 0)
	for _, s := range r.streams {
		if s.Status == status {
			streams = append(streams, s)
		}
	}
	sortStreams(streams)
	return streams, nil
}

func sortStreams(streams []model.Stream) {
	sort.Slice(streams, func(i, j int) bool {
		return streams[i].CreatedAt.Before(streams[j].CreatedAt)
	})
}

// AddViewer increments the viewer counter atomically and returns the new count
func (r *MemoryRepo) AddViewer(streamID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.streams[streamID]
	if !ok {
		return 0, fmt.Errorf("add viewer to stream %s: %w", streamID, commerceerrors.ErrNotFound)
	}
	cur.ViewerCount++
	r.streams[streamID] = cur
	return cur.ViewerCount, nil
}

// RemoveViewer decrements the viewer counter atomically, floored at zero
func (r *MemoryRepo) RemoveViewer(streamID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.streams[streamID]
	if !ok {
		return 0, fmt.Errorf("remove viewer from stream %s: %w", streamID, commerceerrors.ErrNotFound)
	}
	if cur.ViewerCount > 0 {
		cur.ViewerCount--
	}
	r.streams[streamID] = cur
	return cur.ViewerCount, nil
}

// --- auctions ---

// CreateAuction stores a new auction item, rejecting it while another
// un-settled auction exists for the same stream
func (r *MemoryRepo) CreateAuction(a model.AuctionItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if activeID, ok := r.activeAuctions[a.StreamID]; ok {
		return fmt.Errorf("create auction on stream %s while auction %s is active: %w", a.StreamID, activeID, commerceerrors.ErrAuctionInProgress)
	}
	r.auctions[a.AuctionID] = a
	r.activeAuctions[a.StreamID] = a.AuctionID
	return nil
}

// GetAuction returns an auction item by id
func (r *MemoryRepo) GetAuction(auctionID string) (model.AuctionItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return model.AuctionItem{}, fmt.Errorf("get auction %s: %w", auctionID, commerceerrors.ErrNotFound)
	}
	return a, nil
}

// ActiveAuctionForStream returns the un-settled auction for a stream, if any
func (r *MemoryRepo) ActiveAuctionForStream(streamID string) (model.AuctionItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.activeAuctions[streamID]
	if !ok {
		return model.AuctionItem{}, fmt.Errorf("active auction for stream %s: %w", streamID, commerceerrors.ErrNotFound)
	}
	return r.auctions[id], nil
}

// ExtendAuction replaces the auction deadline unless the item has settled
func (r *MemoryRepo) ExtendAuction(auctionID string, newEndsAt time.Time) (model.AuctionItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return model.AuctionItem{}, fmt.Errorf("extend auction %s: %w", auctionID, commerceerrors.ErrNotFound)
	}
	if a.Settled {
		return model.AuctionItem{}, fmt.Errorf("extend auction %s: %w", auctionID, commerceerrors.ErrAlreadySettled)
	}
	a.EndsAt = newEndsAt
	r.auctions[auctionID] = a
	return a, nil
}

// SettleAuction marks an auction settled with the given outcome. The settled
// flag is checked-and-set under the lock; the bool result reports whether this
// call was the one that settled it.
func (r *MemoryRepo) SettleAuction(auctionID string, outcome model.AuctionOutcome) (model.AuctionItem, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return model.AuctionItem{}, false, fmt.Errorf("settle auction %s: %w", auctionID, commerceerrors.ErrNotFound)
	}
	if a.Settled {
		return a, false, nil
	}
	a.Settled = true
	a.Outcome = outcome
	r.auctions[auctionID] = a
	delete(r.activeAuctions, a.StreamID)
	return a, true, nil
}

// --- offers ---

// UpsertOffer inserts a new offer or, when a row already exists for the same
// (listing, buyer) pair, overwrites amount/message/expiry and resets the row to
// pending in one atomic step. An accepted row is never overwritten.
func (r *MemoryRepo) UpsertOffer(o model.Offer) (model.Offer, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := offerKey(o.ListingID, o.BuyerID)
	if existingID, ok := r.offerKeys[key]; ok {
		existing := r.offers[existingID]
		if existing.Status == model.OfferAccepted {
			return model.Offer{}, false, fmt.Errorf("re-offer on listing %s by buyer %s: %w", o.ListingID, o.BuyerID, commerceerrors.ErrAlreadyAccepted)
		}
		existing.Amount = o.Amount
		existing.Message = o.Message
		existing.ExpiresAt = o.ExpiresAt
		existing.Status = model.OfferPending
		existing.CreatedAt = o.CreatedAt
		r.offers[existingID] = existing
		return existing, false, nil
	}

	r.offers[o.OfferID] = o
	r.offerKeys[key] = o.OfferID
	return o, true, nil
}

// GetOffer returns an offer by id
func (r *MemoryRepo) GetOffer(offerID string) (model.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.offers[offerID]
	if !ok {
		return model.Offer{}, fmt.Errorf("get offer %s: %w", offerID, commerceerrors.ErrNotFound)
	}
	return o, nil
}

// DecideOffer applies accept/decline if and only if the offer is still
// pending. A racing second decision observes the row is no longer pending and
// fails instead of overwriting.
func (r *MemoryRepo) DecideOffer(offerID string, to model.OfferStatus) (model.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.offers[offerID]
	if !ok {
		return model.Offer{}, fmt.Errorf("decide offer %s: %w", offerID, commerceerrors.ErrNotFound)
	}
	switch o.Status {
	case model.OfferPending:
		o.Status = to
		r.offers[offerID] = o
		return o, nil
	case model.OfferAccepted:
		return model.Offer{}, fmt.Errorf("decide offer %s: %w", offerID, commerceerrors.ErrAlreadyAccepted)
	default:
		return model.Offer{}, fmt.Errorf("decide offer %s in status %s: %w", offerID, o.Status, commerceerrors.ErrStaleState)
	}
}

// DeletePendingOffer removes an offer only while it is still pending
func (r *MemoryRepo) DeletePendingOffer(offerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.offers[offerID]
	if !ok {
		return fmt.Errorf("withdraw offer %s: %w", offerID, commerceerrors.ErrNotFound)
	}
	if o.Status != model.OfferPending {
		return fmt.Errorf("withdraw offer %s in status %s: %w", offerID, o.Status, commerceerrors.ErrStaleState)
	}
	delete(r.offers, offerID)
	delete(r.offerKeys, offerKey(o.ListingID, o.BuyerID))
	return nil
}

// ListOffersByListing returns all offers against a listing, newest first
func (r *MemoryRepo) ListOffersByListing(listingID string) ([]model.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	offers := make([]model.Offer, 0)
	for _, o := range r.offers {
		if o.ListingID == listingID {
			offers = append(offers, o)
		}
	}
	sort.Slice(offers, func(i, j int) bool {
		return offers[i].CreatedAt.After(offers[j].CreatedAt)
	})
	return offers, nil
}

// --- notifications ---

// CreateNotification stores an immutable notification record
func (r *MemoryRepo) CreateNotification(n model.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notifications[n.RecipientID] = append(r.notifications[n.RecipientID], n)
	return nil
}

// ListNotificationsByRecipient returns a recipient's notifications, newest first
func (r *MemoryRepo) ListNotificationsByRecipient(recipientID string) ([]model.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := append([]model.Notification(nil), r.notifications[recipientID]...)
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

// --- orders ---

// CreateOrder stores a settlement order. A second order for the same
// (listing, buyer, path) key is suppressed and the existing order returned;
// the bool result reports whether a new order was created.
func (r *MemoryRepo) CreateOrder(o model.Order) (model.Order, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := orderKey(o.ListingID, o.BuyerID, o.Path)
	if existingID, ok := r.orderKeys[key]; ok {
		return r.orders[existingID], false, nil
	}
	r.orders[o.OrderID] = o
	r.orderKeys[key] = o.OrderID
	return o, true, nil
}

// GetOrder returns an order by id
func (r *MemoryRepo) GetOrder(orderID string) (model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[orderID]
	if !ok {
		return model.Order{}, fmt.Errorf("get order %s: %w", orderID, commerceerrors.ErrNotFound)
	}
	return o, nil
}

// ListOrdersByBuyer returns all orders for a buyer
func (r *MemoryRepo) ListOrdersByBuyer(buyerID string) ([]model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]model.Order, 0)
	for _, o := range r.orders {
		if o.BuyerID == buyerID {
			orders = append(orders, o)
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.Before(orders[j].CreatedAt)
	})
	return orders, nil
}

// --- listings ---

// GetListing returns a catalog listing by id
func (r *MemoryRepo) GetListing(listingID string) (model.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.listings[listingID]
	if !ok {
		return model.Listing{}, fmt.Errorf("get listing %s: %w", listingID, commerceerrors.ErrNotFound)
	}
	return l, nil
}

// AddListing seeds a catalog listing. Intended for boot-time seeding and tests.
func (r *MemoryRepo) AddListing(l model.Listing) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listings[l.ListingID] = l
}
