package events

import (
	"context"
	"encoding/json"
	"sync"

	sharedBus "github.com/davicafu/wishlab/shared/platform/bus"
)

// InMemoryEventBus implementa un bus de eventos para UN solo topic. Sirve
// como sustituto de Kafka en despliegues locales y en tests.
type InMemoryEventBus struct {
	subscribers []chan interface{}
	mu          sync.RWMutex
	topic       string
}

// Verifica en tiempo de compilación que cumple la interfaz
var _ sharedBus.EventPublisher = (*InMemoryEventBus)(nil)

// NewInMemoryEventBus crea un bus de eventos para un topic específico.
func NewInMemoryEventBus(topic string) *InMemoryEventBus {
	return &InMemoryEventBus{
		subscribers: make([]chan interface{}, 0),
		topic:       topic,
	}
}

// Publish envía el evento serializado a todos los suscriptores de este bus.
func (b *InMemoryEventBus) Publish(ctx context.Context, event interface{}) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	payloadBytes, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if len(b.subscribers) > 0 {
		go b.distribute(b.subscribers, payloadBytes)
	}
	return nil
}

// distribute entrega sin bloquear: un suscriptor con el buffer lleno pierde
// el evento en lugar de frenar al publicador.
func (b *InMemoryEventBus) distribute(subs []chan interface{}, payload interface{}) {
	for _, subChan := range subs {
		select {
		case subChan <- payload:
		default:
		}
	}
}

// Subscribe suscribe un nuevo oyente a este bus.
func (b *InMemoryEventBus) Subscribe(bufferSize int) <-chan interface{} {
	b.mu.Lock()
	defer b.mu.Unlock()

	subChan := make(chan interface{}, bufferSize)
	b.subscribers = append(b.subscribers, subChan)
	return subChan
}
