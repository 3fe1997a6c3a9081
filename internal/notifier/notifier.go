package notifier

import (
	"sync"

	"livemarket/internal/clock"
	model "livemarket/internal/models"
	"livemarket/internal/repository"
	"livemarket/utils"
)

// PushSender attempts best-effort human-facing delivery of a notification.
// Failure is swallowed by the dispatcher, never by the sender's caller.
type PushSender interface {
	Send(n model.Notification) error
}

// LogSender is the default sender: it just logs the delivery. Real push
// delivery lives outside this subsystem.
type LogSender struct{}

// Send logs the notification as delivered
func (LogSender) Send(n model.Notification) error {
	utils.Debug("notifier: delivered", map[string]any{
		"notification_id": n.NotificationID,
		"recipient_id":    n.RecipientID,
		"type":            string(n.Type),
	})
	return nil
}

// Dispatcher is a fire-and-forget notification queue. Notify hands the event
// to a worker goroutine, so the caller's business transaction is never
// entangled with persistence or delivery failures.
type Dispatcher struct {
	store  repository.NotificationStore
	sender PushSender
	clk    clock.Clock

	queue     chan model.Notification
	done      chan struct{}
	closeOnce sync.Once
}

// NewDispatcher creates a dispatcher and starts its worker. queueSize bounds
// the number of undelivered events; overflow is dropped with a warning
// (notifications are at-most-once).
func NewDispatcher(store repository.NotificationStore, sender PushSender, queueSize int, clk clock.Clock) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}
	d := &Dispatcher{
		store:  store,
		sender: sender,
		clk:    clk,
		queue:  make(chan model.Notification, queueSize),
		done:   make(chan struct{}),
	}
	go d.run()
	return d
}

// Notify enqueues a typed event for a recipient. An empty title is replaced
// with the default title for the type. Never blocks and never returns an
// error: all failures downstream are logged only.
func (d *Dispatcher) Notify(recipientID string, typ model.NotificationType, title, body string, metadata map[string]string) {
	if recipientID == "" {
		utils.Warn("notifier: dropping notification without recipient", map[string]any{"type": string(typ)})
		return
	}
	if title == "" {
		title = DefaultTitle(typ)
	}

	n := model.Notification{
		NotificationID: utils.GenerateID(),
		RecipientID:    recipientID,
		Type:           typ,
		Title:          title,
		Body:           body,
		Metadata:       metadata,
		CreatedAt:      d.clk.Now().UTC(),
	}

	select {
	case d.queue <- n:
	default:
		utils.Warn("notifier: queue full, dropping notification", map[string]any{
			"recipient_id": recipientID,
			"type":         string(typ),
		})
	}
}

// Close stops accepting events and waits for the worker to drain the queue
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	<-d.done
}

func (d *Dispatcher) run() {
	defer close(d.done)

	for n := range d.queue {
		if err := d.store.CreateNotification(n); err != nil {
			utils.Error("notifier: failed to persist notification", map[string]any{
				"notification_id": n.NotificationID,
				"recipient_id":    n.RecipientID,
				"error":           err.Error(),
			})
			continue
		}
		if err := d.sender.Send(n); err != nil {
			utils.Error("notifier: delivery failed", map[string]any{
				"notification_id": n.NotificationID,
				"recipient_id":    n.RecipientID,
				"error":           err.Error(),
			})
		}
	}
}

// DefaultTitle returns the per-type title used when the caller omits one
func DefaultTitle(typ model.NotificationType) string {
	switch typ {
	case model.NotificationMessage:
		return "New Message"
	case model.NotificationOfferCreated:
		return "New Offer"
	case model.NotificationOfferAccepted:
		return "Offer Accepted"
	case model.NotificationOfferDeclined:
		return "Offer Declined"
	}
	return "Notification"
}
