package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ariefcatur/larana-store/internal/auth"
	"github.com/ariefcatur/larana-store/internal/booking"
	"github.com/ariefcatur/larana-store/internal/cart"
	"github.com/ariefcatur/larana-store/internal/catalog"
	"github.com/ariefcatur/larana-store/internal/checkout"
	"github.com/ariefcatur/larana-store/internal/config"
	"github.com/ariefcatur/larana-store/internal/customers"
	"github.com/ariefcatur/larana-store/internal/events"
	"github.com/ariefcatur/larana-store/internal/httpx"
	"github.com/ariefcatur/larana-store/internal/invoice"
	kafkax "github.com/ariefcatur/larana-store/internal/kafka"
	"github.com/ariefcatur/larana-store/internal/orders"
	"github.com/ariefcatur/larana-store/internal/postgres"
	"github.com/ariefcatur/larana-store/internal/rabbitmq"
	"github.com/ariefcatur/larana-store/internal/redisx"
	"github.com/ariefcatur/larana-store/internal/storage"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Storage (carts, sessions)
	var store storage.Store = storage.NewMemory()
	var rdb *redis.Client
	if cfg.StorageBackend == "redis" {
		rdb = redisx.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("redis ping: %v", err)
		}
		store = redisx.NewStorage(rdb)
	}

	// Catalog & orders
	var (
		catalogRepo catalog.Repository
		adminRepo   catalog.Repository
		orderRepo   orders.Repository
	)
	switch cfg.RepoBackend {
	case "postgres":
		if err := postgres.Migrate(cfg.PostgresDSN); err != nil {
			log.Fatalf("migrate: %v", err)
		}
		db, err := postgres.Connect(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("db connect: %v", err)
		}
		defer db.Close()

		pr := catalog.NewPostgresRepository(db)
		if err := pr.SeedIfEmpty(ctx, catalog.Seed()); err != nil {
			log.Fatalf("seed products: %v", err)
		}
		or := orders.NewRepo(db)
		if err := or.SeedIfEmpty(ctx, orders.Seed()); err != nil {
			log.Fatalf("seed orders: %v", err)
		}
		ps, err := pr.List(ctx)
		if err != nil {
			log.Fatalf("load products: %v", err)
		}
		catalogRepo, adminRepo, orderRepo = pr, catalog.NewMemoryRepository(ps), or
	default:
		mr := catalog.NewMemoryRepository(catalog.Seed())
		catalogRepo, adminRepo = mr, mr.Clone()
		orderRepo = orders.NewMemoryRepository(orders.Seed())
	}

	// Events
	var pub events.Publisher = events.Noop{}
	switch cfg.EventsBackend {
	case "kafka":
		kp := kafkax.NewPublisher(
			kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicOrderPlaced, 1024),
			kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicOrderStatusChanged, 1024),
		)
		kp.Start(ctx)
		defer kp.Close()
		pub = events.NewBreaker(kp, events.DefaultBreakerSettings("kafka"))
	case "rabbitmq":
		rp, err := rabbitmq.Dial(cfg.RabbitMQURL, cfg.OrderExchange)
		if err != nil {
			log.Fatalf("rabbitmq: %v", err)
		}
		defer rp.Close()
		pub = events.NewBreaker(rp, events.DefaultBreakerSettings("rabbitmq"))
	}

	var invoices *invoice.Cache
	if rdb != nil {
		invoices = invoice.NewCache(rdb)
	}

	cat := catalog.New(catalogRepo)
	carts := cart.NewService(store, cat)
	orderStore := orders.NewStore(orderRepo, orders.WithStrictTransitions(cfg.StrictTransitions))
	dir := customers.NewDirectory(customers.Seed())
	gate := auth.NewGate(cfg.AdminEmail, cfg.AdminPassword, cfg.JWTSecret, store)

	router := httpx.NewRouter()
	api := &httpx.API{
		Products: &httpx.ProductsHandler{Catalog: cat},
		Cart: &httpx.CartHandler{
			Carts:    carts,
			Checkout: checkout.NewService(carts, orderStore, dir, pub, cfg.ServiceName),
			Orders:   orderStore,
		},
		Auth: &httpx.AuthHandler{Gate: gate},
		Admin: &httpx.AdminHandler{
			Orders:    orderStore,
			Products:  catalog.NewAdmin(adminRepo),
			Customers: dir,
			Invoices:  invoices,
			Events:    pub,
			Service:   cfg.ServiceName,
		},
		Bookings: &httpx.BookingHandler{Bookings: booking.NewBook()},
		Gate:     gate,
	}
	api.Register(router)

	// HTTP server
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Printf("HTTP listening at %s (repo=%s storage=%s events=%s)",
			cfg.HTTPAddr, cfg.RepoBackend, cfg.StorageBackend, cfg.EventsBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
}
