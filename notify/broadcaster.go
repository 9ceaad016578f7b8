package notify

import (
	"context"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const SubscriberBufferSize = 64

// Broadcaster fans notifications out to in-process subscribers. A subscriber
// that falls behind misses notifications instead of blocking publishers.
type Broadcaster struct {
	mu          sync.RWMutex
	subscribers map[string]chan Notification
}

func (b *Broadcaster) Subscribe() (string, <-chan Notification) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.NewString()
	ch := make(chan Notification, SubscriberBufferSize)
	b.subscribers[id] = ch
	log.Debug("[NOTIFY] Subscriber added: ", id)
	return id, ch
}

func (b *Broadcaster) Unsubscribe(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[id]; ok {
		delete(b.subscribers, id)
		close(ch)
		log.Debug("[NOTIFY] Subscriber removed: ", id)
	}
}

func (b *Broadcaster) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

func (b *Broadcaster) Publish(ctx context.Context, n Notification) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, ch := range b.subscribers {
		select {
		case ch <- n:
		default:
			log.Warn("[NOTIFY] Subscriber ", id, " is full, dropping notification")
		}
	}
	return nil
}

// Close removes every subscriber.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.subscribers {
		delete(b.subscribers, id)
		close(ch)
	}
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan Notification),
	}
}
