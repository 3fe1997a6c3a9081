package stream

import (
	"errors"
	"fmt"
	"time"

	"livemarket/internal/clock"
	"livemarket/internal/commerceerrors"
	"livemarket/internal/models"
	"livemarket/internal/repository"
	"livemarket/utils"
)

// overdueAfter is how long past its scheduled start a stream may sit before
// the overdue predicate flags it for attention
const overdueAfter = time.Hour

// Details carries the seller-editable fields of a stream
type Details struct {
	Title        string
	Description  string
	Category     string
	ThumbnailURL string
	StartTime    time.Time
}

// AuctionCloser is the slice of the auction sub-process the lifecycle manager
// needs: ending a stream must not leave a dangling live auction behind.
type AuctionCloser interface {
	SettleActive(streamID string) error
	HasActive(streamID string) (bool, error)
}

// StreamService owns the stream lifecycle state machine
// (scheduled -> live -> ended, scheduled -> cancelled)
type StreamService struct {
	store    repository.StreamStore
	auctions AuctionCloser
	clk      clock.Clock
}

// NewStreamService creates a new StreamService instance
func NewStreamService(store repository.StreamStore, auctions AuctionCloser, clk clock.Clock) *StreamService {
	return &StreamService{
		store:    store,
		auctions: auctions,
		clk:      clk,
	}
}

// CreateStream schedules a new stream for a seller
func (s *StreamService) CreateStream(sellerID string, d Details) (models.Stream, error) {
	if sellerID == "" || d.Title == "" {
		return models.Stream{}, fmt.Errorf("service: %w - missing sellerID or title", commerceerrors.ErrInvalidInput)
	}
	now := s.clk.Now().UTC()
	if !d.StartTime.After(now) {
		return models.Stream{}, fmt.Errorf("service: %w - start time must be in the future", commerceerrors.ErrPreconditionFailed)
	}

	st := models.Stream{
		StreamID:     utils.GenerateID(),
		SellerID:     sellerID,
		Title:        d.Title,
		Description:  d.Description,
		Category:     d.Category,
		ThumbnailURL: d.ThumbnailURL,
		StartTime:    d.StartTime.UTC(),
		Status:       models.StreamScheduled,
		ViewerCount:  0,
		CreatedAt:    now,
	}

	if err := s.store.CreateStream(st); err != nil {
		return models.Stream{}, fmt.Errorf("service: failed to create stream for seller %s: %w", sellerID, err)
	}
	return st, nil
}

// GetStream returns a stream by id
func (s *StreamService) GetStream(streamID string) (models.Stream, error) {
	if streamID == "" {
		return models.Stream{}, fmt.Errorf("service: %w - empty stream ID", commerceerrors.ErrInvalidInput)
	}
	st, err := s.store.GetStream(streamID)
	if err != nil {
		return models.Stream{}, fmt.Errorf("service: failed to get stream %s: %w", streamID, err)
	}
	return st, nil
}

// UpdateStream edits the details of a stream. Editing is allowed only while
// the stream is still scheduled.
func (s *StreamService) UpdateStream(streamID string, d Details) (models.Stream, error) {
	if streamID == "" || d.Title == "" {
		return models.Stream{}, fmt.Errorf("service: %w - missing streamID or title", commerceerrors.ErrInvalidInput)
	}

	cur, err := s.store.GetStream(streamID)
	if err != nil {
		return models.Stream{}, fmt.Errorf("service: failed to load stream %s: %w", streamID, err)
	}
	if cur.Status != models.StreamScheduled {
		return models.Stream{}, fmt.Errorf("service: update stream in status %s: %w", cur.Status, commerceerrors.ErrInvalidTransition)
	}

	cur.Title = d.Title
	cur.Description = d.Description
	cur.Category = d.Category
	cur.ThumbnailURL = d.ThumbnailURL
	cur.StartTime = d.StartTime.UTC()

	updated, err := s.store.UpdateStreamDetails(cur)
	if err != nil {
		return models.Stream{}, fmt.Errorf("service: failed to update stream %s: %w", streamID, err)
	}
	return updated, nil
}

// StartStream transitions scheduled -> live. A seller may host only one live
// stream at a time.
func (s *StreamService) StartStream(streamID string) (models.Stream, error) {
	if streamID == "" {
		return models.Stream{}, fmt.Errorf("service: %w - empty stream ID", commerceerrors.ErrInvalidInput)
	}

	cur, err := s.store.GetStream(streamID)
	if err != nil {
		return models.Stream{}, fmt.Errorf("service: failed to load stream %s: %w", streamID, err)
	}
	if cur.Status != models.StreamScheduled {
		return models.Stream{}, fmt.Errorf("service: start stream in status %s: %w", cur.Status, commerceerrors.ErrInvalidTransition)
	}

	siblings, err := s.store.ListStreamsBySeller(cur.SellerID)
	if err != nil {
		return models.Stream{}, fmt.Errorf("service: failed to check live streams for seller %s: %w", cur.SellerID, err)
	}
	for _, sib := range siblings {
		if sib.StreamID != streamID && sib.Status == models.StreamLive {
			return models.Stream{}, fmt.Errorf("service: seller %s already hosts live stream %s: %w", cur.SellerID, sib.StreamID, commerceerrors.ErrPreconditionFailed)
		}
	}

	updated, err := s.store.UpdateStreamStatus(streamID, models.StreamScheduled, models.StreamLive, s.clk.Now().UTC())
	if err != nil {
		return models.Stream{}, fmt.Errorf("service: failed to start stream %s: %w", streamID, err)
	}
	return updated, nil
}

// EndStream transitions live -> ended. An un-settled auction on the stream is
// force-settled (lapsed) first so the stream never ends with a dangling
// live auction.
func (s *StreamService) EndStream(streamID string) (models.Stream, error) {
	if streamID == "" {
		return models.Stream{}, fmt.Errorf("service: %w - empty stream ID", commerceerrors.ErrInvalidInput)
	}

	cur, err := s.store.GetStream(streamID)
	if err != nil {
		return models.Stream{}, fmt.Errorf("service: failed to load stream %s: %w", streamID, err)
	}
	if cur.Status != models.StreamLive {
		return models.Stream{}, fmt.Errorf("service: end stream in status %s: %w", cur.Status, commerceerrors.ErrInvalidTransition)
	}

	if err := s.auctions.SettleActive(streamID); err != nil {
		return models.Stream{}, fmt.Errorf("service: failed to settle active auction before ending stream %s: %w", streamID, err)
	}

	updated, err := s.store.UpdateStreamStatus(streamID, models.StreamLive, models.StreamEnded, s.clk.Now().UTC())
	if err != nil {
		return models.Stream{}, fmt.Errorf("service: failed to end stream %s: %w", streamID, err)
	}
	return updated, nil
}

// CancelStream transitions scheduled -> cancelled
func (s *StreamService) CancelStream(streamID string) (models.Stream, error) {
	if streamID == "" {
		return models.Stream{}, fmt.Errorf("service: %w - empty stream ID", commerceerrors.ErrInvalidInput)
	}

	cur, err := s.store.GetStream(streamID)
	if err != nil {
		return models.Stream{}, fmt.Errorf("service: failed to load stream %s: %w", streamID, err)
	}
	if cur.Status != models.StreamScheduled {
		return models.Stream{}, fmt.Errorf("service: cancel stream in status %s: %w", cur.Status, commerceerrors.ErrInvalidTransition)
	}

	updated, err := s.store.UpdateStreamStatus(streamID, models.StreamScheduled, models.StreamCancelled, s.clk.Now().UTC())
	if err != nil {
		return models.Stream{}, fmt.Errorf("service: failed to cancel stream %s: %w", streamID, err)
	}
	return updated, nil
}

// DeleteStream removes a stream. Deletion is a seller action available only
// outside the live state and only when no auction is still un-settled.
func (s *StreamService) DeleteStream(streamID string) error {
	if streamID == "" {
		return fmt.Errorf("service: %w - empty stream ID", commerceerrors.ErrInvalidInput)
	}

	cur, err := s.store.GetStream(streamID)
	if err != nil {
		return fmt.Errorf("service: failed to load stream %s: %w", streamID, err)
	}
	if cur.Status == models.StreamLive {
		return fmt.Errorf("service: delete live stream: %w", commerceerrors.ErrInvalidTransition)
	}

	active, err := s.auctions.HasActive(streamID)
	if err != nil && !errors.Is(err, commerceerrors.ErrNotFound) {
		return fmt.Errorf("service: failed to check active auction for stream %s: %w", streamID, err)
	}
	if active {
		return fmt.Errorf("service: stream %s has an un-settled auction: %w", streamID, commerceerrors.ErrPreconditionFailed)
	}

	if err := s.store.DeleteStream(streamID); err != nil {
		return fmt.Errorf("service: failed to delete stream %s: %w", streamID, err)
	}
	return nil
}

// IncrementViewer records a viewer joining. Best-effort counter, not
// exactly-once.
func (s *StreamService) IncrementViewer(streamID string) (int, error) {
	if streamID == "" {
		return 0, fmt.Errorf("service: %w - empty stream ID", commerceerrors.ErrInvalidInput)
	}
	count, err := s.store.AddViewer(streamID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to add viewer to stream %s: %w", streamID, err)
	}
	return count, nil
}

// DecrementViewer records a viewer leaving, floored at zero
func (s *StreamService) DecrementViewer(streamID string) (int, error) {
	if streamID == "" {
		return 0, fmt.Errorf("service: %w - empty stream ID", commerceerrors.ErrInvalidInput)
	}
	count, err := s.store.RemoveViewer(streamID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to remove viewer from stream %s: %w", streamID, err)
	}
	return count, nil
}

// Overdue reports whether a scheduled stream sat past its start time for more
// than an hour without going live. Pure predicate, not a stored state.
func Overdue(st models.Stream, now time.Time) bool {
	return st.Status == models.StreamScheduled && now.Sub(st.StartTime) > overdueAfter
}

// ListOverdue returns the scheduled streams currently flagged by Overdue
func (s *StreamService) ListOverdue() ([]models.Stream, error) {
	scheduled, err := s.store.ListStreamsByStatus(models.StreamScheduled)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list scheduled streams: %w", err)
	}

	now := s.clk.Now().UTC()
	overdue := make([]models.Stream, 0)
	for _, st := range scheduled {
		if Overdue(st, now) {
			overdue = append(overdue, st)
		}
	}
	return overdue, nil
}
