package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	wishlistDomain "github.com/davicafu/wishlab/internal/wishlist/domain"
)

// WishlistRepoMongoDB implementa WishlistRepository sobre MongoDB. El
// agregado se persiste como un único documento con el customerId como _id;
// cada Save reemplaza el documento completo (last-write-wins, sin tokens de
// concurrencia optimista).
type WishlistRepoMongoDB struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewWishlistRepoMongoDB es el constructor del repositorio.
func NewWishlistRepoMongoDB(ctx context.Context, client *mongo.Client, dbName string) (*WishlistRepoMongoDB, error) {
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("could not ping mongoDB: %w", err)
	}

	return &WishlistRepoMongoDB{
		client: client,
		coll:   client.Database(dbName).Collection("customer_wishlist"),
	}, nil
}

// --- Structs de BSON para el mapeo ---
// Se definen localmente para no "contaminar" el dominio con tags de BSON.

type mongoWishlist struct {
	CustomerID   uuid.UUID      `bson:"_id"`
	Wishlist     []mongoProduct `bson:"wishlist"`
	DateCreation time.Time      `bson:"dateCreation"`
	DateUpdate   time.Time      `bson:"dateUpdate,omitempty"`
}

type mongoProduct struct {
	ProductID   uuid.UUID `bson:"productId"`
	Name        string    `bson:"name"`
	Description string    `bson:"description,omitempty"`
	Price       *int64    `bson:"price,omitempty"`
}

// --- Lectura ---

func (r *WishlistRepoMongoDB) FindByCustomerID(ctx context.Context, customerID uuid.UUID) (*wishlistDomain.Wishlist, error) {
	var mw mongoWishlist
	err := r.coll.FindOne(ctx, bson.M{"_id": customerID}).Decode(&mw)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, wishlistDomain.ErrCustomerNotFound
		}
		return nil, err
	}
	return fromMongoWishlist(&mw), nil
}

// --- Escritura ---

// Save reemplaza el documento entero, creándolo si no existe (upsert).
func (r *WishlistRepoMongoDB) Save(ctx context.Context, w *wishlistDomain.Wishlist) (*wishlistDomain.Wishlist, error) {
	mw := toMongoWishlist(w)

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": mw.CustomerID}, mw, opts); err != nil {
		return nil, err
	}

	return fromMongoWishlist(mw), nil
}

// --- Helpers de Mapeo y Conversión ---

func toMongoWishlist(w *wishlistDomain.Wishlist) *mongoWishlist {
	mw := &mongoWishlist{
		CustomerID:   w.CustomerID,
		DateCreation: w.CreatedAt,
		DateUpdate:   w.UpdatedAt,
	}
	if w.Items != nil {
		mw.Wishlist = make([]mongoProduct, 0, len(w.Items))
		for _, p := range w.Items {
			mw.Wishlist = append(mw.Wishlist, mongoProduct{
				ProductID:   p.ProductID,
				Name:        p.Name,
				Description: p.Description,
				Price:       p.Price,
			})
		}
	}
	return mw
}

func fromMongoWishlist(mw *mongoWishlist) *wishlistDomain.Wishlist {
	w := &wishlistDomain.Wishlist{
		CustomerID: mw.CustomerID,
		CreatedAt:  mw.DateCreation,
		UpdatedAt:  mw.DateUpdate,
	}
	if mw.Wishlist != nil {
		w.Items = make([]wishlistDomain.Product, 0, len(mw.Wishlist))
		for _, p := range mw.Wishlist {
			w.Items = append(w.Items, wishlistDomain.Product{
				ProductID:   p.ProductID,
				Name:        p.Name,
				Description: p.Description,
				Price:       p.Price,
			})
		}
	}
	return w
}
