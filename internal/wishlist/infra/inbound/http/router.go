package http

import "github.com/gin-gonic/gin"

func RegisterWishlistRoutes(r *gin.Engine, handler *WishlistHandler) {
	api := r.Group("/api/wishlist")
	{
		api.GET("/:customerId", handler.GetWishlist)
		api.GET("/product/check/:productId/:customerId", handler.CheckProduct)
		api.PUT("", handler.AddItems)
		api.DELETE("/product", handler.RemoveItems)
	}
}
