package application

import (
	"github.com/google/uuid"

	"github.com/davicafu/wishlab/internal/wishlist/domain"
)

// Las vistas son proyecciones de solo lectura, separadas de la forma
// persistida del agregado.

// WishlistView es la respuesta de lectura de una wishlist completa.
type WishlistView struct {
	CustomerID          uuid.UUID     `json:"customerId"`
	Wishlist            []ProductView `json:"wishlist"`
	TotalPrice          int64         `json:"totalPrice"`
	FormattedTotalPrice string        `json:"formattedTotalPrice"`
}

type ProductView struct {
	ProductID   uuid.UUID `json:"productId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       *int64    `json:"price,omitempty"`
}

// ProductCheckView responde a la consulta de existencia de un producto.
// Product solo se rellena cuando InWishlist es true.
type ProductCheckView struct {
	CustomerID uuid.UUID           `json:"customerId"`
	ProductID  uuid.UUID           `json:"productId"`
	InWishlist bool                `json:"inWishlist"`
	Product    *ProductDetailsView `json:"product,omitempty"`
}

type ProductDetailsView struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       *int64 `json:"price,omitempty"`
}

func toProductViews(items []domain.Product) []ProductView {
	views := make([]ProductView, 0, len(items))
	for _, p := range items {
		views = append(views, ProductView{
			ProductID:   p.ProductID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
		})
	}
	return views
}
