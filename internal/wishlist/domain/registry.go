package domain

// Las constantes de los tipos de evento se definen aquí, como valores string.
const (
	WishlistItemsAdded   = "wishlist.items_added"
	WishlistItemsRemoved = "wishlist.items_removed"
)

const WishlistTopic = "wishlist"
