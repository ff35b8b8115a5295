package contracts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/davicafu/wishlab/internal/wishlist/application"
	wishlistDomain "github.com/davicafu/wishlab/internal/wishlist/domain"
	wishlistHttp "github.com/davicafu/wishlab/internal/wishlist/infra/inbound/http"
	"github.com/davicafu/wishlab/pkg/currency"
	"github.com/davicafu/wishlab/tests/mocks"
)

// wishlistResponse define el formato que esperamos en las respuestas JSON
type wishlistResponse struct {
	CustomerID          string            `json:"customerId"`
	Wishlist            []productResponse `json:"wishlist"`
	TotalPrice          int64             `json:"totalPrice"`
	FormattedTotalPrice string            `json:"formattedTotalPrice"`
}

type productResponse struct {
	ProductID   string `json:"productId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       *int64 `json:"price"`
}

type productCheckResponse struct {
	CustomerID string           `json:"customerId"`
	ProductID  string           `json:"productId"`
	InWishlist bool             `json:"inWishlist"`
	Product    *productResponse `json:"product"`
}

type errorResponse struct {
	Error struct {
		Status  int       `json:"status"`
		Message string    `json:"message"`
		Date    time.Time `json:"date"`
	} `json:"error"`
}

func newTestRouter(repo *mocks.InMemoryWishlistRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	prices, err := currency.NewFormatter("pt-BR", "BRL")
	if err != nil {
		panic(err)
	}

	service := application.NewWishlistService(repo, &mocks.DummyPublisher{}, prices, zap.NewNop())
	handler := wishlistHttp.NewWishlistHandler(service)

	router := gin.New()
	wishlistHttp.RegisterWishlistRoutes(router, handler)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func seedWishlist(repo *mocks.InMemoryWishlistRepo, items ...wishlistDomain.Product) uuid.UUID {
	customerID := uuid.New()
	repo.Seed(&wishlistDomain.Wishlist{
		CustomerID: customerID,
		Items:      items,
		CreatedAt:  time.Now().UTC(),
	})
	return customerID
}

func priceOf(v int64) *int64 { return &v }

func TestGetWishlist_HTTPContract(t *testing.T) {
	repo := mocks.NewInMemoryWishlistRepo()
	router := newTestRouter(repo)

	customerID := seedWishlist(repo,
		wishlistDomain.Product{ProductID: uuid.New(), Name: "P1", Price: priceOf(500)},
		wishlistDomain.Product{ProductID: uuid.New(), Name: "P2", Price: priceOf(1500)},
	)

	rec := doJSON(t, router, http.MethodGet, "/api/wishlist/"+customerID.String(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp wishlistResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, customerID.String(), resp.CustomerID)
	assert.Len(t, resp.Wishlist, 2)
	assert.Equal(t, int64(2000), resp.TotalPrice)
	assert.Equal(t, "R$20,00", resp.FormattedTotalPrice)

	// Cliente no existente -> 404 con payload de error estándar
	rec2 := doJSON(t, router, http.MethodGet, "/api/wishlist/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec2.Code)

	var errResp errorResponse
	assert.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &errResp))
	assert.Equal(t, http.StatusNotFound, errResp.Error.Status)
	assert.Contains(t, errResp.Error.Message, "customer not found")
	assert.False(t, errResp.Error.Date.IsZero())

	// UUID inválido -> 400
	rec3 := doJSON(t, router, http.MethodGet, "/api/wishlist/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec3.Code)
}

func TestCheckProduct_HTTPContract(t *testing.T) {
	repo := mocks.NewInMemoryWishlistRepo()
	router := newTestRouter(repo)

	p := wishlistDomain.Product{ProductID: uuid.New(), Name: "Teclado", Description: "mecánico", Price: priceOf(100)}
	customerID := seedWishlist(repo, p)

	path := fmt.Sprintf("/api/wishlist/product/check/%s/%s", p.ProductID, customerID)
	rec := doJSON(t, router, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp productCheckResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.InWishlist)
	assert.NotNil(t, resp.Product)
	assert.Equal(t, "Teclado", resp.Product.Name)

	// Producto ausente -> inWishlist=false y sin snapshot
	path = fmt.Sprintf("/api/wishlist/product/check/%s/%s", uuid.New(), customerID)
	rec2 := doJSON(t, router, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusOK, rec2.Code)

	var resp2 productCheckResponse
	assert.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &resp2))
	assert.False(t, resp2.InWishlist)
	assert.Nil(t, resp2.Product)

	// Cliente no existente -> 404
	path = fmt.Sprintf("/api/wishlist/product/check/%s/%s", uuid.New(), uuid.New())
	rec3 := doJSON(t, router, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, rec3.Code)
}

func TestAddItems_HTTPContract(t *testing.T) {
	repo := mocks.NewInMemoryWishlistRepo()
	router := newTestRouter(repo)

	customerID := uuid.New()
	productID := uuid.New()

	body := gin.H{
		"customerId": customerID,
		"wishlist": []gin.H{
			{"productId": productID, "name": "P1", "price": 500},
		},
	}

	// Primera adición crea la wishlist implícitamente
	rec := doJSON(t, router, http.MethodPut, "/api/wishlist", body)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp wishlistResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, customerID.String(), resp.CustomerID)
	assert.Len(t, resp.Wishlist, 1)
	assert.Equal(t, int64(500), resp.TotalPrice)

	// Re-añadir el mismo producto -> 409
	rec2 := doJSON(t, router, http.MethodPut, "/api/wishlist", body)
	assert.Equal(t, http.StatusConflict, rec2.Code)

	var errResp errorResponse
	assert.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &errResp))
	assert.Equal(t, http.StatusConflict, errResp.Error.Status)
}

func TestAddItems_HTTPContract_LimitExceeded(t *testing.T) {
	repo := mocks.NewInMemoryWishlistRepo()
	router := newTestRouter(repo)

	full := &wishlistDomain.Wishlist{CustomerID: uuid.New(), CreatedAt: time.Now().UTC()}
	for i := 0; i < wishlistDomain.MaxItems; i++ {
		full.Items = append(full.Items, wishlistDomain.Product{ProductID: uuid.New(), Name: "P"})
	}
	repo.Seed(full)

	body := gin.H{
		"customerId": full.CustomerID,
		"wishlist":   []gin.H{{"productId": uuid.New(), "name": "P21"}},
	}

	rec := doJSON(t, router, http.MethodPut, "/api/wishlist", body)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Len(t, repo.Stored(full.CustomerID).Items, wishlistDomain.MaxItems)
}

func TestAddItems_HTTPContract_MalformedBody(t *testing.T) {
	repo := mocks.NewInMemoryWishlistRepo()
	router := newTestRouter(repo)

	// producto sin nombre -> la validación de binding rechaza antes del servicio
	body := gin.H{
		"customerId": uuid.New(),
		"wishlist":   []gin.H{{"productId": uuid.New()}},
	}

	rec := doJSON(t, router, http.MethodPut, "/api/wishlist", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, repo.SaveCalls)
}

func TestRemoveItems_HTTPContract(t *testing.T) {
	repo := mocks.NewInMemoryWishlistRepo()
	router := newTestRouter(repo)

	p1 := wishlistDomain.Product{ProductID: uuid.New(), Name: "P1", Price: priceOf(500)}
	p2 := wishlistDomain.Product{ProductID: uuid.New(), Name: "P2", Price: priceOf(1500)}
	customerID := seedWishlist(repo, p1, p2)

	// Forma void: 204 sin body
	body := gin.H{"customerId": customerID, "productIds": []uuid.UUID{p1.ProductID}}
	rec := doJSON(t, router, http.MethodDelete, "/api/wishlist/product", body)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Len(t, repo.Stored(customerID).Items, 1)

	// Forma con respuesta: returnBody=true devuelve la vista actualizada
	body = gin.H{"customerId": customerID, "productIds": []uuid.UUID{p2.ProductID}}
	rec2 := doJSON(t, router, http.MethodDelete, "/api/wishlist/product?returnBody=true", body)
	assert.Equal(t, http.StatusOK, rec2.Code)

	var resp wishlistResponse
	assert.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &resp))
	assert.Len(t, resp.Wishlist, 0)
	assert.Equal(t, int64(0), resp.TotalPrice)
}

func TestRemoveItems_HTTPContract_Failures(t *testing.T) {
	repo := mocks.NewInMemoryWishlistRepo()
	router := newTestRouter(repo)

	p1 := wishlistDomain.Product{ProductID: uuid.New(), Name: "P1"}
	customerID := seedWishlist(repo, p1)

	// Lista de ids vacía -> 400, sin llamada a Save
	body := gin.H{"customerId": customerID, "productIds": []uuid.UUID{}}
	rec := doJSON(t, router, http.MethodDelete, "/api/wishlist/product", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, repo.SaveCalls)

	// Sin coincidencias -> 400 y la lista queda intacta
	body = gin.H{"customerId": customerID, "productIds": []uuid.UUID{uuid.New()}}
	rec2 := doJSON(t, router, http.MethodDelete, "/api/wishlist/product", body)
	assert.Equal(t, http.StatusBadRequest, rec2.Code)
	assert.Len(t, repo.Stored(customerID).Items, 1)

	// Cliente no existente -> 404
	body = gin.H{"customerId": uuid.New(), "productIds": []uuid.UUID{uuid.New()}}
	rec3 := doJSON(t, router, http.MethodDelete, "/api/wishlist/product", body)
	assert.Equal(t, http.StatusNotFound, rec3.Code)
}
