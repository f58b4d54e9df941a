package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/msmahatha/agroCart-harvest-hub/internal/auth"
	"github.com/msmahatha/agroCart-harvest-hub/internal/cart"
	"github.com/msmahatha/agroCart-harvest-hub/internal/catalog"
	"github.com/msmahatha/agroCart-harvest-hub/internal/event"
	h "github.com/msmahatha/agroCart-harvest-hub/internal/http"
	"github.com/msmahatha/agroCart-harvest-hub/internal/notify"
	"github.com/msmahatha/agroCart-harvest-hub/internal/order"
	"github.com/msmahatha/agroCart-harvest-hub/internal/pricing"
	"github.com/msmahatha/agroCart-harvest-hub/internal/wishlist"
	"github.com/msmahatha/agroCart-harvest-hub/pkg/logger"
)

type Config struct {
	Env               string
	HTTPPort          string
	CatalogDriver     string
	PostgresHost      string
	PostgresPort      int
	PostgresUser      string
	PostgresPassword  string
	PostgresDB        string
	MigrationsPath    string
	MongoURI          string
	MongoDB           string
	RedisAddr         string
	KafkaBrokers      []string
	JWTSecret         string
	ResendAPIKey      string
	PricingConfigPath string
	RequestTimeout    time.Duration
	ShutdownTimeout   time.Duration
}

func loadConfig() *Config {
	port, err := strconv.Atoi(getEnv("POSTGRES_PORT", "5432"))
	if err != nil {
		log.Fatalf("invalid POSTGRES_PORT: %v", err)
	}

	var brokers []string
	if raw := os.Getenv("KAFKA_BROKERS"); raw != "" {
		brokers = strings.Split(raw, ",")
	}

	return &Config{
		Env:               getEnv("ENV", "development"),
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		CatalogDriver:     getEnv("CATALOG_DRIVER", "postgres"),
		PostgresHost:      getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:      port,
		PostgresUser:      getEnv("POSTGRES_USER", "postgres"),
		PostgresPassword:  getEnv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:        getEnv("POSTGRES_DB", "storefront"),
		MigrationsPath:    getEnv("MIGRATIONS_PATH", "./migrations"),
		MongoURI:          getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:           getEnv("MONGO_DB", "storefront"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBrokers:      brokers,
		JWTSecret:         getEnv("JWT_SECRET", "dev-secret-change-me"),
		ResendAPIKey:      os.Getenv("RESEND_API_KEY"),
		PricingConfigPath: os.Getenv("PRICING_CONFIG"),
		RequestTimeout:    30 * time.Second,
		ShutdownTimeout:   10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	_ = godotenv.Load()

	cfg := loadConfig()

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	policy := pricing.DefaultPolicy()
	if cfg.PricingConfigPath != "" {
		policy, err = pricing.LoadPolicy(cfg.PricingConfigPath)
		if err != nil {
			zlog.Fatal("failed to load pricing policy", zap.Error(err))
		}
	}

	creds := &catalog.Credentials{
		Host:     cfg.PostgresHost,
		Port:     cfg.PostgresPort,
		User:     cfg.PostgresUser,
		Password: cfg.PostgresPassword,
		DBName:   cfg.PostgresDB,
	}

	var catalogRepo catalog.Repository
	if cfg.CatalogDriver == "memory" {
		catalogRepo = catalog.NewMemoryRepository()
		zlog.Info("using in-memory catalog")
	} else {
		pgCatalog, err := catalog.NewPostgresRepository(creds)
		if err != nil {
			zlog.Fatal("failed to connect to postgres", zap.Error(err))
		}
		if err := pgCatalog.RunMigrations(cfg.MigrationsPath); err != nil {
			zlog.Fatal("failed to run migrations", zap.Error(err))
		}
		catalogRepo = pgCatalog
	}
	defer catalogRepo.Close()

	orderRepo, err := order.NewPostgresRepository(creds.DSN())
	if err != nil {
		zlog.Fatal("failed to connect order repository", zap.Error(err))
	}
	defer orderRepo.Close()

	profileRepo, err := auth.NewPostgresRepository(creds.DSN())
	if err != nil {
		zlog.Fatal("failed to connect profile repository", zap.Error(err))
	}
	defer profileRepo.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	mongoDB, err := cart.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDB)
	cancel()
	if err != nil {
		zlog.Fatal("failed to connect to mongodb", zap.Error(err))
	}

	cartRepo := cart.NewMongoRepository(mongoDB)
	wishlistRepo := wishlist.NewMongoRepository(mongoDB)

	ctx, cancel = context.WithTimeout(context.Background(), 15*time.Second)
	if err := cartRepo.CreateIndexes(ctx); err != nil {
		zlog.Warn("failed to create cart indexes", zap.Error(err))
	}
	if err := wishlistRepo.CreateIndexes(ctx); err != nil {
		zlog.Warn("failed to create wishlist indexes", zap.Error(err))
	}
	cancel()

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer redisClient.Close()

	cartService := cart.NewService(cartRepo, cart.NewRedisCache(redisClient), zlog)
	wishlistService := wishlist.NewService(wishlistRepo, zlog)
	authService := auth.NewService(profileRepo, auth.NewRedisSessionStore(redisClient), []byte(cfg.JWTSecret), zlog)

	hub := event.NewHub()
	publishers := event.Fanout{hub}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := event.NewKafkaPublisher(cfg.KafkaBrokers...)
		defer kafkaPublisher.Close()
		publishers = append(publishers, kafkaPublisher)
		zlog.Info("kafka publisher enabled", zap.Strings("brokers", cfg.KafkaBrokers))
	}

	orderService := order.NewService(orderRepo, cartService, catalogRepo, policy, publishers, zlog)

	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	defer stopConsumer()
	if len(cfg.KafkaBrokers) > 0 && cfg.ResendAPIKey != "" {
		consumer := notify.NewConsumer(notify.NewResendSender(cfg.ResendAPIKey), zlog, cfg.KafkaBrokers...)
		defer consumer.Close()
		go consumer.Run(consumerCtx)
		zlog.Info("order confirmation consumer running")
	}

	router := h.NewRouter(h.RouterConfig{
		Catalog:        catalogRepo,
		Carts:          cartService,
		Wishlists:      wishlistService,
		Orders:         orderService,
		Auth:           authService,
		Hub:            hub,
		Policy:         policy,
		Logger:         zlog,
		RequestTimeout: cfg.RequestTimeout,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zlog.Info("storefront listening", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server...")
	stopConsumer()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Fatal("server forced to shutdown", zap.Error(err))
	}

	zlog.Info("server exited")
}
