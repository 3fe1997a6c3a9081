package notifier

import (
	"errors"
	"sync"
	"testing"
	"time"

	"livemarket/internal/clock"
	"livemarket/internal/models"
	"livemarket/internal/repository"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type recordingSender struct {
	mu   sync.Mutex
	sent []models.Notification
	err  error
}

func (r *recordingSender) Send(n models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, n)
	return nil
}

func (r *recordingSender) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sent)
}

// Notify persists and delivers through the worker
func TestDispatcher_NotifyPersistsAndDelivers(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo()
	sender := &recordingSender{}
	d := NewDispatcher(repo, sender, 8, clock.NewManual(testNow))

	d.Notify("buyer1", models.NotificationOfferAccepted, "", "Your offer of 60.00 was accepted", map[string]string{"offer_id": "offer1"})
	d.Close()

	stored, err := repo.ListNotificationsByRecipient("buyer1")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	require.Equal(t, models.NotificationOfferAccepted, stored[0].Type)
	require.Equal(t, "Offer Accepted", stored[0].Title, "empty title falls back to the per-type default")
	require.Equal(t, "offer1", stored[0].Metadata["offer_id"])

	require.Equal(t, 1, sender.count())
}

// A missing recipient is dropped before it reaches the queue
func TestDispatcher_DropsWithoutRecipient(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo()
	sender := &recordingSender{}
	d := NewDispatcher(repo, sender, 8, clock.NewManual(testNow))

	d.Notify("", models.NotificationMessage, "hi", "anyone there", nil)
	d.Close()

	require.Equal(t, 0, sender.count())
}

// Delivery failure never propagates; the notification is still persisted
func TestDispatcher_DeliveryFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo()
	sender := &recordingSender{err: errors.New("push gateway down")}
	d := NewDispatcher(repo, sender, 8, clock.NewManual(testNow))

	d.Notify("buyer1", models.NotificationOfferDeclined, "", "Your offer of 60.00 was declined", nil)
	d.Close()

	stored, err := repo.ListNotificationsByRecipient("buyer1")
	require.NoError(t, err)
	require.Len(t, stored, 1)
}

// Close drains what was enqueued and is safe to call twice
func TestDispatcher_CloseDrainsQueue(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo()
	sender := &recordingSender{}
	d := NewDispatcher(repo, sender, 32, clock.NewManual(testNow))

	for i := 0; i < 10; i++ {
		d.Notify("buyer1", models.NotificationMessage, "ping", "hello", nil)
	}
	d.Close()
	d.Close()

	require.Equal(t, 10, sender.count())

	stored, err := repo.ListNotificationsByRecipient("buyer1")
	require.NoError(t, err)
	require.Len(t, stored, 10)
}

func TestDefaultTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ  models.NotificationType
		want string
	}{
		{typ: models.NotificationMessage, want: "New Message"},
		{typ: models.NotificationOfferCreated, want: "New Offer"},
		{typ: models.NotificationOfferAccepted, want: "Offer Accepted"},
		{typ: models.NotificationOfferDeclined, want: "Offer Declined"},
		{typ: models.NotificationType("unknown"), want: "Notification"},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, DefaultTitle(tc.typ))
	}
}
