package events

import (
	"context"
	"sync"

	"github.com/imkira/go-observer"

	"github.com/evgeniy-krivenko/notebook/internal/entity"
)

// Bus fans change events out to every subscriber of the event's owner.
type Bus struct {
	mu   sync.Mutex
	prop observer.Property
}

func NewBus() *Bus {
	return &Bus{prop: observer.NewProperty(entity.ChangeEvent{})}
}

func (b *Bus) Publish(ev entity.ChangeEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.prop.Update(ev)
}

// Subscribe streams events for ownerID until ctx is done. Events published
// before the call are not replayed.
func (b *Bus) Subscribe(ctx context.Context, ownerID string) <-chan entity.ChangeEvent {
	b.mu.Lock()
	stream := b.prop.Observe()
	b.mu.Unlock()

	result := make(chan entity.ChangeEvent)
	go func() {
		defer close(result)
		for {
			select {
			case <-ctx.Done():
				return

			case <-stream.Changes():
				ev := stream.Next().(entity.ChangeEvent)
				if ev.OwnerID != ownerID {
					continue
				}

				select {
				case <-ctx.Done():
					return
				case result <- ev:
				}
			}
		}
	}()

	return result
}
