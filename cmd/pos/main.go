package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"tokopos/internal/app"
	"tokopos/internal/cli"
	"tokopos/internal/config"
	"tokopos/internal/session"
	"tokopos/internal/store"
	"tokopos/internal/store/memory"
	pgstore "tokopos/internal/store/postgres"
	redisstore "tokopos/internal/store/redis"
	"tokopos/internal/store/sqlite"
)

func main() {
	// .env loading is optional; absence is not an error.
	_ = godotenv.Load()
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	kv := openStore(ctx, cfg)
	cancel()
	defer func() {
		if err := kv.Close(); err != nil {
			log.Printf("close error: %v", err)
		}
	}()

	sessions := session.NewManager(cfg.AuthSecret, time.Duration(cfg.SessionTTLMinutes)*time.Minute)
	posApp := app.New(kv, sessions, app.WithSyncDelay(time.Duration(cfg.SyncDelayMS)*time.Millisecond))
	posApp.Load(context.Background())

	if err := cli.Execute(context.Background(), posApp); err != nil {
		os.Exit(1)
	}
}

// openStore picks the persistence backend: Postgres when DATABASE_URL is
// set (fail hard rather than silently losing shared data), Redis when
// REDIS_ADDR is set, otherwise the local SQLite file. Memory is the last
// resort when the local file cannot be opened.
func openStore(ctx context.Context, cfg config.Config) store.KV {
	if cfg.DatabaseURL != "" {
		pg, err := pgstore.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("postgres unavailable (%v) and DATABASE_URL is set; refusing to start", err)
		}
		return pg
	}

	if cfg.RedisAddr != "" {
		rd := redisstore.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := rd.Ping(ctx); err != nil {
			log.Fatalf("redis unavailable (%v) and REDIS_ADDR is set; refusing to start", err)
		}
		return rd
	}

	sq, err := sqlite.New(cfg.DataPath)
	if err != nil {
		log.Printf("sqlite unavailable (%v), falling back to in-memory store; data will not persist", err)
		return memory.New()
	}
	return sq
}
