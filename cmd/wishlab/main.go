package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/mongo"
	mongoOptions "go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	config "github.com/davicafu/wishlab/internal/config"
	infraEvents "github.com/davicafu/wishlab/internal/infra/events"
	wishlistApp "github.com/davicafu/wishlab/internal/wishlist/application"
	wishlistDomain "github.com/davicafu/wishlab/internal/wishlist/domain"
	wishlistHttp "github.com/davicafu/wishlab/internal/wishlist/infra/inbound/http"
	wishlistRepo "github.com/davicafu/wishlab/internal/wishlist/infra/outbound/db/mongodb"
	"github.com/davicafu/wishlab/pkg/currency"
	"github.com/davicafu/wishlab/pkg/logger"
	sharedBus "github.com/davicafu/wishlab/shared/platform/bus"
)

// ---------------- Main ----------------
func main() {
	logger.Init()          // inicializa zap
	log := logger.Logger() // obtiene logger estructurado
	defer log.Sync()       // flush buffers al salir

	ctx := context.Background()
	cfg := config.LoadConfig()

	// ---------------- DB ----------------
	client, err := mongo.Connect(ctx, mongoOptions.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer client.Disconnect(ctx)

	repo, err := wishlistRepo.NewWishlistRepoMongoDB(ctx, client, cfg.MongoDB)
	if err != nil {
		log.Fatal("failed to initialize wishlist repository", zap.Error(err))
	}
	log.Info("✅ MongoDB conectado", zap.String("db", cfg.MongoDB))

	// ---------------- Events ---------------
	var publisher sharedBus.EventPublisher

	if cfg.UseKafka {
		log.Info("🚀 Usando Kafka como bus de eventos")

		writer := kafka.NewWriter(kafka.WriterConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   wishlistDomain.WishlistTopic,
		})
		defer writer.Close()

		publisher = infraEvents.NewKafkaPublisher(writer, log)
	} else {
		log.Info("⚡️Usando bus de eventos en memoria (canales de Go)")
		publisher = infraEvents.NewInMemoryEventBus(wishlistDomain.WishlistTopic)
	}

	// --------------- Servicio --------------
	prices, err := currency.NewFormatter(cfg.CurrencyLocale, cfg.CurrencyCode)
	if err != nil {
		log.Fatal("invalid currency configuration", zap.Error(err))
	}

	wishlistService := wishlistApp.NewWishlistService(repo, publisher, prices, log)

	// ---------------- HTTP ----------------
	wishlistHandler := wishlistHttp.NewWishlistHandler(wishlistService)
	router := gin.Default()
	wishlistHttp.RegisterWishlistRoutes(router, wishlistHandler)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	log.Info("🚀 Server running",
		zap.String("url", "http://localhost:"+cfg.HTTPPort),
	)
	if err := router.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
