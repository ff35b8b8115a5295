package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/davicafu/wishlab/internal/wishlist/application"
	"github.com/davicafu/wishlab/internal/wishlist/domain"
	"github.com/davicafu/wishlab/pkg/utils"
)

// WishlistHandler encapsula los endpoints HTTP de la wishlist
type WishlistHandler struct {
	service *application.WishlistService
}

// NewWishlistHandler crea un nuevo WishlistHandler
func NewWishlistHandler(service *application.WishlistService) *WishlistHandler {
	return &WishlistHandler{service: service}
}

// productRequest es el producto tal y como llega en el body del PUT.
type productRequest struct {
	ProductID   uuid.UUID `json:"productId" binding:"required"`
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	Price       *int64    `json:"price" binding:"omitempty,gte=0"`
}

func (p productRequest) toDomain() domain.Product {
	return domain.Product{
		ProductID:   p.ProductID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
	}
}

// ---------------- Handlers ----------------

// GetWishlist endpoint GET /api/wishlist/:customerId
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("customerId"))
	if err != nil {
		utils.SendBadRequest(c, "invalid customer id")
		return
	}

	view, err := h.service.GetWishlist(c.Request.Context(), customerID)
	if err != nil {
		sendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// CheckProduct endpoint GET /api/wishlist/product/check/:productId/:customerId
func (h *WishlistHandler) CheckProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		utils.SendBadRequest(c, "invalid product id")
		return
	}
	customerID, err := uuid.Parse(c.Param("customerId"))
	if err != nil {
		utils.SendBadRequest(c, "invalid customer id")
		return
	}

	view, err := h.service.CheckProduct(c.Request.Context(), customerID, productID)
	if err != nil {
		sendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// AddItems endpoint PUT /api/wishlist
func (h *WishlistHandler) AddItems(c *gin.Context) {
	var req struct {
		CustomerID uuid.UUID        `json:"customerId" binding:"required"`
		Wishlist   []productRequest `json:"wishlist" binding:"required,min=1,dive"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendBadRequest(c, err.Error())
		return
	}

	candidates := make([]domain.Product, 0, len(req.Wishlist))
	for _, p := range req.Wishlist {
		candidates = append(candidates, p.toDomain())
	}

	view, err := h.service.AddItems(c.Request.Context(), req.CustomerID, candidates)
	if err != nil {
		sendDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// RemoveItems endpoint DELETE /api/wishlist/product?returnBody=false
func (h *WishlistHandler) RemoveItems(c *gin.Context) {
	var req struct {
		CustomerID uuid.UUID   `json:"customerId" binding:"required"`
		ProductIDs []uuid.UUID `json:"productIds"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendBadRequest(c, err.Error())
		return
	}

	returnBody := false
	if v := c.Query("returnBody"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			returnBody = b
		}
	}

	view, err := h.service.RemoveItems(c.Request.Context(), req.CustomerID, req.ProductIDs)
	if err != nil {
		sendDomainError(c, err)
		return
	}

	if returnBody {
		c.JSON(http.StatusOK, view)
		return
	}
	c.Status(http.StatusNoContent)
}

// sendDomainError traduce los errores de dominio a estados HTTP
// (404 / 409 / 422 / 400) y deja el resto como 500 genérico.
func sendDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound):
		utils.SendNotFound(c, err.Error())
	case errors.Is(err, domain.ErrNoItemsAdded):
		utils.SendError(c, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrWishlistLimitExceeded):
		utils.SendError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrNoItemsDeleted):
		utils.SendBadRequest(c, err.Error())
	default:
		// no filtramos detalles internos hacia fuera
		utils.SendInternalServerError(c, "unknown error occurred")
	}
}
