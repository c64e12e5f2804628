package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/notebook/internal/entity"
)

func recv(t *testing.T, ch <-chan entity.ChangeEvent) entity.ChangeEvent {
	t.Helper()

	select {
	case ev, ok := <-ch:
		require.True(t, ok, "channel closed")
		return ev
	case <-time.After(time.Second):
		t.Fatal("no event received")
		return entity.ChangeEvent{}
	}
}

func TestBus_FiltersByOwner(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := NewBus()
	alice := bus.Subscribe(ctx, "alice")

	bus.Publish(entity.ChangeEvent{OwnerID: "bob", Resource: entity.ResourceNote, ID: "n-b", Action: entity.ActionCreated})
	bus.Publish(entity.ChangeEvent{OwnerID: "alice", Resource: entity.ResourceNote, ID: "n-a", Action: entity.ActionUpdated})

	ev := recv(t, alice)
	assert.Equal(t, "n-a", ev.ID)
	assert.Equal(t, entity.ActionUpdated, ev.Action)
}

func TestBus_ClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	bus := NewBus()
	ch := bus.Subscribe(ctx, "alice")
	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("subscription was not closed")
	}
}

func TestBus_KeepsOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bus := NewBus()
	ch := bus.Subscribe(ctx, "alice")

	for _, id := range []string{"1", "2", "3"} {
		bus.Publish(entity.ChangeEvent{OwnerID: "alice", Resource: entity.ResourceCategory, ID: id})
	}

	for _, id := range []string{"1", "2", "3"} {
		assert.Equal(t, id, recv(t, ch).ID)
	}
}
