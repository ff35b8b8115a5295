package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ---------- Errores de dominio ----------
var (
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrNoItemsAdded          = errors.New("no items added")
	ErrWishlistLimitExceeded = errors.New("wishlist limit exceeded")
	ErrNoItemsDeleted        = errors.New("no items deleted")
)

// ---------- Interfaces (Ports) ----------

// WishlistRepository es la pasarela al almacén de documentos. El contrato es
// deliberadamente mínimo: lectura por clave y reemplazo del documento entero
// (last-write-wins, sin merge ni parches parciales).
type WishlistRepository interface {
	// Debe devolver ErrCustomerNotFound si el cliente no tiene wishlist.
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) (*Wishlist, error)

	// Save reemplaza el documento completo (upsert por customerId)
	// y devuelve la forma persistida.
	Save(ctx context.Context, w *Wishlist) (*Wishlist, error)
}
