package store

import (
	"sync"

	"github.com/MKhiriev/zotero-sync/internal/logger"
	"github.com/MKhiriev/zotero-sync/models"
)

// DefaultSubscriberBuffer is the channel capacity of each subscription.
const DefaultSubscriberBuffer = 64

// Notifier fans committed change batches out to subscribers. Publishing never
// blocks: a subscriber whose buffer is full misses the batch and a warning is
// logged.
type Notifier struct {
	mu     sync.Mutex
	subs   map[uint64]chan models.ChangeBatch
	nextID uint64
	buffer int

	logger *logger.Logger
}

// NewNotifier creates a notifier whose subscriptions buffer up to buffer
// batches.
func NewNotifier(buffer int, logger *logger.Logger) *Notifier {
	if buffer <= 0 {
		buffer = DefaultSubscriberBuffer
	}
	return &Notifier{
		subs:   make(map[uint64]chan models.ChangeBatch),
		buffer: buffer,
		logger: logger,
	}
}

// Subscribe registers a subscriber. The returned cancel function unregisters
// it and closes the channel; it is safe to call more than once.
func (n *Notifier) Subscribe() (<-chan models.ChangeBatch, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	ch := make(chan models.ChangeBatch, n.buffer)
	n.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			delete(n.subs, id)
			close(ch)
		})
	}

	return ch, cancel
}

// Publish delivers batch to every subscriber. Empty batches are dropped.
func (n *Notifier) Publish(batch models.ChangeBatch) {
	if batch.Empty() {
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	for id, ch := range n.subs {
		select {
		case ch <- batch:
		default:
			n.logger.Warn().
				Str("func", "Notifier.Publish").
				Uint64("subscriber", id).
				Stringer("library", batch.Library).
				Str("object_type", batch.Type.String()).
				Msg("subscriber buffer full, change batch dropped")
		}
	}
}
