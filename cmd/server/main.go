package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/campuschat/go-campuschat/internal/api"
	"github.com/campuschat/go-campuschat/internal/config"
	"github.com/campuschat/go-campuschat/internal/database"
	"github.com/campuschat/go-campuschat/internal/objectstore"
	"github.com/campuschat/go-campuschat/internal/realtime"
	"github.com/campuschat/go-campuschat/internal/stats"
)

const defaultSigningKey = "wT0phFUusHZIrDhL9bUKPUhwaxKhpi/SaI6PtgB+MgU="

type stringSliceFlag []string

func (s *stringSliceFlag) String() string {
	return strings.Join(*s, ",")
}

func (s *stringSliceFlag) Set(value string) error {
	*s = append(*s, strings.Split(value, ",")...)
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var (
	addr           string
	mongoURI       string
	mongoDatabase  string
	signingKey     string
	allowedOrigins stringSliceFlag
	minioEndpoint  string
	minioAccessKey string
	minioSecretKey string
	minioBucket    string
	minioUseSSL    bool
	translateURL   string
)

func main() {
	// missing .env is fine, flags and real env vars still apply
	_ = godotenv.Load()

	flag.StringVar(&addr, "addr", envOr("SERVER_ADDR", "localhost:8000"), "server address")
	flag.StringVar(&mongoURI, "mongo-uri", envOr("MONGO_URI", "mongodb://localhost:27017"), "mongodb connection string")
	flag.StringVar(&mongoDatabase, "mongo-db", envOr("MONGO_DATABASE", "campuschat"), "mongodb database name")
	flag.StringVar(&signingKey, "signing-key", envOr("SIGNING_KEY", defaultSigningKey), "base64 encoded signing key")
	flag.Var(&allowedOrigins, "allowed-origins", "comma-separated list of allowed origins for CORS")
	flag.StringVar(&minioEndpoint, "minio-endpoint", envOr("MINIO_ENDPOINT", "localhost:9000"), "object store endpoint")
	flag.StringVar(&minioAccessKey, "minio-access-key", envOr("MINIO_ACCESS_KEY", "minioadmin"), "object store access key")
	flag.StringVar(&minioSecretKey, "minio-secret-key", envOr("MINIO_SECRET_KEY", "minioadmin"), "object store secret key")
	flag.StringVar(&minioBucket, "minio-bucket", envOr("MINIO_BUCKET", "campuschat"), "object store bucket")
	flag.BoolVar(&minioUseSSL, "minio-ssl", envOr("MINIO_USE_SSL", "false") == "true", "use TLS for the object store")
	flag.StringVar(&translateURL, "translate-url", envOr("TRANSLATE_URL", ""), "translation API base URL")
	flag.Parse()

	if len(allowedOrigins) == 0 {
		if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
			allowedOrigins = strings.Split(origins, ",")
		}
	}

	logger := log.New(os.Stderr, "[campuschat] ", log.LstdFlags)

	cfg, err := config.NewConfig(addr, mongoURI, mongoDatabase, signingKey, allowedOrigins, config.ObjectStoreConfig{
		Endpoint:  minioEndpoint,
		AccessKey: minioAccessKey,
		SecretKey: minioSecretKey,
		Bucket:    minioBucket,
		UseSSL:    minioUseSSL,
	}, translateURL)
	if err != nil {
		logger.Fatal("config:", err)
	}

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelConnect()

	dbConn, err := database.NewMongoCampusChatRepository(connectCtx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		logger.Fatal("db open:", err)
	}
	defer func() {
		if err := dbConn.Close(context.Background()); err != nil {
			logger.Println("db close:", err)
		}
	}()

	store, err := objectstore.NewMinioStore(connectCtx, cfg.ObjectStore)
	if err != nil {
		logger.Fatal("object store:", err)
	}

	mux := http.NewServeMux()

	statsUpdater := stats.NewStatsUpdater(mux)

	gateway := realtime.NewGateway(logger, statsUpdater)

	translator := api.NewMyMemoryTranslator(cfg.TranslateURL)

	srv := api.NewCampusChatApp(mux, logger, gateway, dbConn, store, translator, cfg)

	statsUpdater.Run()
	defer statsUpdater.Stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigs:
		logger.Printf("received signal: %s\n", sig)
	case err := <-errCh:
		logger.Println("server:", err)
	}

	shutDownCtx, cancel := context.WithTimeout(
		context.Background(),
		10*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutDownCtx); err != nil {
		logger.Fatalln("HTTP server shutdown:", err)
	}

	logger.Println("shutting down realtime gateway...")
	if err := gateway.Shutdown(shutDownCtx); err != nil {
		logger.Println("gateway shutdown:", err)
	}

	logger.Println("shutdown complete")
}
