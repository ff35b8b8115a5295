package application

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/davicafu/wishlab/internal/wishlist/domain"
	"github.com/davicafu/wishlab/pkg/currency"
	sharedEvents "github.com/davicafu/wishlab/shared/events"
	sharedBus "github.com/davicafu/wishlab/shared/platform/bus"
)

// WishlistService implementa los casos de uso de la wishlist. Cada operación
// es una secuencia síncrona lectura -> regla -> escritura condicional; no hay
// coordinación entre peticiones concurrentes del mismo cliente (el último
// write gana a nivel de documento).
type WishlistService struct {
	repo   domain.WishlistRepository
	events sharedBus.EventPublisher
	prices *currency.Formatter
	log    *zap.Logger
}

// NewWishlistService constructor
func NewWishlistService(repo domain.WishlistRepository, events sharedBus.EventPublisher, prices *currency.Formatter, log *zap.Logger) *WishlistService {
	return &WishlistService{
		repo:   repo,
		events: events,
		prices: prices,
		log:    log,
	}
}

// GetWishlist devuelve la vista de la wishlist del cliente. Consulta pura.
func (s *WishlistService) GetWishlist(ctx context.Context, customerID uuid.UUID) (*WishlistView, error) {
	w, err := s.repo.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return s.toView(w), nil
}

// CheckProduct indica si un producto concreto está en la wishlist del
// cliente. El detalle del producto solo se incluye cuando hay coincidencia.
func (s *WishlistService) CheckProduct(ctx context.Context, customerID, productID uuid.UUID) (*ProductCheckView, error) {
	w, err := s.repo.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	view := &ProductCheckView{
		CustomerID: customerID,
		ProductID:  productID,
	}

	if p := w.Find(productID); p != nil {
		view.InWishlist = true
		view.Product = &ProductDetailsView{
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
		}
	}

	return view, nil
}

// AddItems añade productos a la wishlist del cliente, creándola si aún no
// existe (upsert implícito: no hay endpoint de creación explícita).
func (s *WishlistService) AddItems(ctx context.Context, customerID uuid.UUID, candidates []domain.Product) (*WishlistView, error) {
	w, err := s.repo.FindByCustomerID(ctx, customerID)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return s.createWishlist(ctx, customerID, candidates)
		}
		return nil, err
	}

	if err := w.AddItems(candidates, time.Now().UTC()); err != nil {
		return nil, err
	}

	saved, err := s.repo.Save(ctx, w)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, domain.WishlistItemsAdded, saved)
	return s.toView(saved), nil
}

func (s *WishlistService) createWishlist(ctx context.Context, customerID uuid.UUID, candidates []domain.Product) (*WishlistView, error) {
	s.log.Info("creating new wishlist", zap.String("customer_id", customerID.String()))

	w := &domain.Wishlist{
		CustomerID: customerID,
		Items:      candidates,
		CreatedAt:  time.Now().UTC(),
	}

	saved, err := s.repo.Save(ctx, w)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, domain.WishlistItemsAdded, saved)
	return s.toView(saved), nil
}

// RemoveItems elimina productos de la wishlist. La forma "void" del endpoint
// simplemente descarta la vista devuelta.
func (s *WishlistService) RemoveItems(ctx context.Context, customerID uuid.UUID, productIDs []uuid.UUID) (*WishlistView, error) {
	w, err := s.repo.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if err := w.RemoveItems(productIDs, time.Now().UTC()); err != nil {
		return nil, err
	}

	saved, err := s.repo.Save(ctx, w)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, domain.WishlistItemsRemoved, saved)
	return s.toView(saved), nil
}

func (s *WishlistService) toView(w *domain.Wishlist) *WishlistView {
	total := w.TotalPrice()
	return &WishlistView{
		CustomerID:          w.CustomerID,
		Wishlist:            toProductViews(w.Items),
		TotalPrice:          total,
		FormattedTotalPrice: s.prices.FormatMinorUnits(total),
	}
}

// wishlistEvent envuelve el evento de integración con la clave de partición
// del agregado.
type wishlistEvent struct {
	sharedEvents.IntegrationEvent
	key string
}

func (e wishlistEvent) PartitionKey() string { return e.key }

// publish emite el evento de integración en best-effort: un fallo del bus se
// registra pero nunca hace fallar la petición ya persistida.
func (s *WishlistService) publish(ctx context.Context, eventType string, w *domain.Wishlist) {
	if s.events == nil {
		return
	}

	payload, err := json.Marshal(w)
	if err != nil {
		s.log.Warn("⚠️ failed to marshal wishlist event", zap.Error(err))
		return
	}

	evt := wishlistEvent{
		IntegrationEvent: sharedEvents.IntegrationEvent{
			Type:      eventType,
			Timestamp: time.Now().UTC(),
			Data:      payload,
		},
		key: w.PartitionKey(),
	}

	if err := s.events.Publish(ctx, evt); err != nil {
		s.log.Warn("⚠️ failed to publish wishlist event",
			zap.String("event_type", eventType),
			zap.String("customer_id", w.CustomerID.String()),
			zap.Error(err),
		)
	}
}
