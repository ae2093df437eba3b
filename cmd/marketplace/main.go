package main

import (
	"log"
	"net/http"
	"time"

	httpapi "buntudelice/internal/api/http"
	"buntudelice/internal/auth"
	"buntudelice/internal/config"
	"buntudelice/internal/service"
	"buntudelice/internal/storage"
)

const cacheTTL = 5 * time.Minute

func main() {
	secret := config.Load()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter(config.Getenv("KAFKA_TOPIC", "marketplace-events"))
	defer kafkaWriter.Close()

	repo := storage.NewPostgresRepository(db)
	cache := storage.NewRedisCache(rdb, cacheTTL)
	publisher := storage.NewKafkaPublisher(kafkaWriter)

	sessions := auth.NewManager(secret)

	cart := service.NewCartStore()
	qr := service.DefaultQRGenerator{BaseURL: config.Getenv("PUBLIC_BASE_URL", "http://localhost:8080")}

	handler := httpapi.NewHandler(
		service.NewRestaurantService(repo, cache),
		service.NewMenuService(repo, cache),
		cart,
		service.NewOrderService(repo, repo, cart, qr, publisher),
		service.NewPaymentService(repo, repo, publisher),
		service.NewRecommendationService(repo, repo),
		repo,
		sessions,
	)

	addr := ":" + config.Getenv("PORT", "8080")
	log.Println("Marketplace starting on", addr)
	log.Fatal(http.ListenAndServe(addr, httpapi.NewRouter(handler, sessions)))
}
