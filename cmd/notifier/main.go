package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ariefcatur/larana-store/internal/config"
	"github.com/ariefcatur/larana-store/internal/invoice"
	kafkax "github.com/ariefcatur/larana-store/internal/kafka"
	"github.com/ariefcatur/larana-store/internal/notify"
	"github.com/ariefcatur/larana-store/internal/orders"
	"github.com/ariefcatur/larana-store/internal/redisx"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis (dedup + invoice cache)
	rdb := redisx.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer rdb.Close()

	svc := &notify.Service{
		Redis:       rdb,
		Invoices:    invoice.NewCache(rdb),
		Send:        notify.LogSender,
		ServiceName: cfg.ServiceName + "-notifier",
	}

	cons := kafkax.NewConsumer(cfg.KafkaBrokers, cfg.NotifierGroup, orders.TopicOrderPlaced, cfg.NotifierWorker)
	done := make(chan struct{})
	go func() {
		defer close(done)
		log.Printf("notifier started: group=%s topic=%s workers=%d", cfg.NotifierGroup, orders.TopicOrderPlaced, cfg.NotifierWorker)
		if err := cons.Start(ctx, svc.HandleOrderPlaced); err != nil {
			log.Printf("consumer exit: %v", err)
			cancel()
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sig:
	case <-ctx.Done():
	}
	log.Println("shutting down consumer...")
	cancel()
	<-done
}
