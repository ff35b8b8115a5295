package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	sharedBus "github.com/davicafu/wishlab/shared/platform/bus"
)

// MaxItems es el límite duro de productos por wishlist.
const MaxItems = 20

// Product es un valor embebido en el agregado; no se persiste por separado.
type Product struct {
	ProductID   uuid.UUID `json:"productId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       *int64    `json:"price,omitempty"` // en centavos; nil si no se informó
}

// Wishlist representa la lista de deseos de un cliente. Es el agregado
// completo: se lee y se reescribe el documento entero en cada mutación.
type Wishlist struct {
	CustomerID uuid.UUID `json:"customerId"`
	Items      []Product `json:"wishlist"`
	CreatedAt  time.Time `json:"dateCreation"`
	UpdatedAt  time.Time `json:"dateUpdate,omitempty"` // zero hasta la primera mutación
}

func (w *Wishlist) PartitionKey() string {
	return w.CustomerID.String()
}

// Find devuelve la primera coincidencia por productId, o nil si no está.
// Una Items nil se comporta igual que una lista vacía.
func (w *Wishlist) Find(productID uuid.UUID) *Product {
	for i := range w.Items {
		if w.Items[i].ProductID == productID {
			return &w.Items[i]
		}
	}
	return nil
}

// Contains indica si el producto ya está en la lista.
func (w *Wishlist) Contains(productID uuid.UUID) bool {
	return w.Find(productID) != nil
}

// AddItems aplica la política de inserción: descarta los candidatos cuyo
// productId ya consta en la lista actual y comprueba el límite contra el
// subconjunto restante, no contra el lote original.
func (w *Wishlist) AddItems(candidates []Product, now time.Time) error {
	newItems := make([]Product, 0, len(candidates))
	for _, p := range candidates {
		if !w.Contains(p.ProductID) {
			newItems = append(newItems, p)
		}
	}

	if len(newItems) == 0 {
		return fmt.Errorf("%w: the selected products are already in the wishlist", ErrNoItemsAdded)
	}
	if len(w.Items)+len(newItems) > MaxItems {
		return fmt.Errorf("%w: the wishlist holds at most %d products", ErrWishlistLimitExceeded, MaxItems)
	}

	w.Items = append(w.Items, newItems...)
	w.UpdatedAt = now
	return nil
}

// RemoveItems elimina todos los productos cuyo id esté en productIDs
// (los duplicados de la petición colapsan en un set).
func (w *Wishlist) RemoveItems(productIDs []uuid.UUID, now time.Time) error {
	if w.Items == nil || len(productIDs) == 0 {
		return fmt.Errorf("%w: no valid products provided for removal", ErrNoItemsDeleted)
	}

	toRemove := make(map[uuid.UUID]struct{}, len(productIDs))
	for _, id := range productIDs {
		toRemove[id] = struct{}{}
	}

	kept := make([]Product, 0, len(w.Items))
	for _, p := range w.Items {
		if _, ok := toRemove[p.ProductID]; !ok {
			kept = append(kept, p)
		}
	}

	if len(kept) == len(w.Items) {
		return fmt.Errorf("%w: none of the provided products were found in the wishlist", ErrNoItemsDeleted)
	}

	w.Items = kept
	w.UpdatedAt = now
	return nil
}

// TotalPrice suma los precios en centavos; un precio ausente cuenta como 0.
func (w *Wishlist) TotalPrice() int64 {
	var total int64
	for _, p := range w.Items {
		if p.Price != nil {
			total += *p.Price
		}
	}
	return total
}

// Verificación estática para asegurar que Wishlist implementa la interfaz
var _ sharedBus.Keyer = (*Wishlist)(nil)
