// README: Entry point; loads config, wires optional storage, starts the HTTP server.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"shipcost/internal/config"
	httptransport "shipcost/internal/http"
	"shipcost/internal/infra"
	"shipcost/internal/modules/quote"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	gin.SetMode(cfg.HTTP.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cache quote.Cache
	if cfg.Redis.Addr != "" {
		redisClient, err := infra.NewRedis(ctx, cfg.Redis.Addr)
		if err != nil {
			log.Fatalf("redis init: %v", err)
		}
		defer redisClient.Close()
		cache = quote.NewRedisCache(redisClient)
	} else {
		log.Printf("SHIPCOST_REDIS_ADDR not set; quote lookup disabled")
	}

	var history quote.History
	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.Fatalf("postgres init: %v", err)
		}
		defer dbPool.Close()
		store := quote.NewPGStore(dbPool)
		if err := store.EnsureSchema(ctx); err != nil {
			log.Fatalf("postgres schema: %v", err)
		}
		history = store
	} else {
		log.Printf("SHIPCOST_DB_DSN not set; quote history disabled")
	}

	quoteSvc := quote.NewService(cache, history, cfg.Quote.TTL)
	server := httptransport.NewServer(cfg.HTTP.Addr, httptransport.NewRouter(quoteSvc))

	if err := server.Run(ctx); err != nil {
		log.Fatal(err)
	}
}
