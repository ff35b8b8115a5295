package mocks

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	wishlistDomain "github.com/davicafu/wishlab/internal/wishlist/domain"
)

// InMemoryWishlistRepo simula WishlistRepository con semántica de documento:
// FindByCustomerID devuelve una copia del documento y Save lo reemplaza
// entero, igual que el adapter de MongoDB.
type InMemoryWishlistRepo struct {
	Wishlists map[uuid.UUID]*wishlistDomain.Wishlist
	SaveCalls int
	mu        sync.Mutex
}

func NewInMemoryWishlistRepo() *InMemoryWishlistRepo {
	return &InMemoryWishlistRepo{
		Wishlists: make(map[uuid.UUID]*wishlistDomain.Wishlist),
	}
}

// FindByCustomerID devuelve una copia para que las mutaciones del servicio no
// toquen el "documento" almacenado hasta que se llame a Save.
func (r *InMemoryWishlistRepo) FindByCustomerID(ctx context.Context, customerID uuid.UUID) (*wishlistDomain.Wishlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.Wishlists[customerID]
	if !ok {
		return nil, wishlistDomain.ErrCustomerNotFound
	}
	return copyWishlist(w), nil
}

// Save reemplaza el documento completo (upsert por customerId).
func (r *InMemoryWishlistRepo) Save(ctx context.Context, w *wishlistDomain.Wishlist) (*wishlistDomain.Wishlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.SaveCalls++
	stored := copyWishlist(w)
	r.Wishlists[w.CustomerID] = stored
	return copyWishlist(stored), nil
}

// Seed inserta un documento directamente, sin pasar por Save.
func (r *InMemoryWishlistRepo) Seed(w *wishlistDomain.Wishlist) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Wishlists[w.CustomerID] = copyWishlist(w)
}

// Stored devuelve el documento tal y como está almacenado (copia).
func (r *InMemoryWishlistRepo) Stored(customerID uuid.UUID) *wishlistDomain.Wishlist {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.Wishlists[customerID]
	if !ok {
		return nil
	}
	return copyWishlist(w)
}

func copyWishlist(w *wishlistDomain.Wishlist) *wishlistDomain.Wishlist {
	cp := *w
	if w.Items != nil {
		cp.Items = make([]wishlistDomain.Product, len(w.Items))
		copy(cp.Items, w.Items)
	}
	return &cp
}

// ------------------- EventPublisher -------------------

// DummyPublisher captura los eventos publicados como JSON.
type DummyPublisher struct {
	Published []string
	mu        sync.Mutex
}

func (p *DummyPublisher) Publish(ctx context.Context, event interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	data, _ := json.Marshal(event)
	p.Published = append(p.Published, string(data))
	return nil
}
