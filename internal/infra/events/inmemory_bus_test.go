package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInMemoryEventBus_PublishDeliversToSubscribers(t *testing.T) {
	bus := NewInMemoryEventBus("wishlist")
	sub := bus.Subscribe(1)

	err := bus.Publish(context.Background(), map[string]string{"type": "wishlist.items_added"})
	assert.NoError(t, err)

	select {
	case payload := <-sub:
		data, ok := payload.([]byte)
		assert.True(t, ok)
		assert.Contains(t, string(data), "wishlist.items_added")
	case <-time.After(time.Second):
		t.Fatal("no se recibió el evento publicado")
	}
}

func TestInMemoryEventBus_SinSuscriptoresNoBloquea(t *testing.T) {
	bus := NewInMemoryEventBus("wishlist")
	assert.NoError(t, bus.Publish(context.Background(), "evento"))
}

func TestInMemoryEventBus_SuscriptorLlenoNoBloquea(t *testing.T) {
	bus := NewInMemoryEventBus("wishlist")
	_ = bus.Subscribe(0) // buffer nulo: el envío se descarta en vez de bloquear

	done := make(chan struct{})
	go func() {
		_ = bus.Publish(context.Background(), "evento")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish bloqueó con un suscriptor lleno")
	}
}
