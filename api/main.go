package main

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/SSG3800/Retail-POS-System/internal/auth"
	"github.com/SSG3800/Retail-POS-System/internal/config"
	"github.com/SSG3800/Retail-POS-System/internal/db"
	"github.com/SSG3800/Retail-POS-System/internal/export"
	api "github.com/SSG3800/Retail-POS-System/internal/http"
	"github.com/SSG3800/Retail-POS-System/internal/http/handlers"
	"github.com/SSG3800/Retail-POS-System/internal/http/lockout"
	rl "github.com/SSG3800/Retail-POS-System/internal/http/rate_limiter"
	"github.com/SSG3800/Retail-POS-System/internal/pos"
	"github.com/SSG3800/Retail-POS-System/internal/repo"
)

// @title Retail POS API
// @version 1.0
// @description Single-till point-of-sale and inventory service.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	auth.Configure(cfg.JWTSecret, cfg.SessionTTL)
	go rl.StartClientCleanupLoop()

	defaultHash, err := auth.HashPassword(cfg.DefaultPassword)
	if err != nil {
		log.Fatalf("could not hash default password: %v", err)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}
	defer database.Close()

	if err := db.Migrate(database, defaultHash); err != nil {
		log.Fatalf("could not migrate database: %v", err)
	}

	var lockoutStore lockout.Store = lockout.NewMemoryStore()
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Could not connect to Redis: %v", err)
		}
		defer rdb.Close()
		lockoutStore = lockout.NewRedisStore(rdb)
	}
	handlers.SetLockoutStore(lockoutStore)

	productRepo := repo.NewPostgresProductRepository(database)
	movementRepo := repo.NewPostgresMovementRepository(database)
	saleRepo := repo.NewPostgresSaleRepository(database)

	handlers.SetProductRepo(productRepo)
	handlers.SetMovementRepo(movementRepo)
	handlers.SetSaleRepo(saleRepo)
	handlers.SetMetricsRepo(repo.NewPostgresMetricsRepository(database))
	handlers.SetGate(auth.NewGate(repo.NewPostgresSettingsRepository(database)))
	handlers.SetTill(pos.NewService(productRepo, saleRepo, movementRepo))
	handlers.SetExporter(export.NewExporter(productRepo, saleRepo))
	handlers.SetExportDir(cfg.ExportDir)

	r := api.NewRouter()
	log.Printf("✅ Server running on %s", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, r); err != nil {
		log.Fatal(err)
	}
}
