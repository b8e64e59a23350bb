package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"skyfare/voyager/internal/constants"
	"skyfare/voyager/internal/db"
	"skyfare/voyager/internal/logging"
	"skyfare/voyager/internal/routes"
	"skyfare/voyager/internal/search"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	appEnv := os.Getenv(constants.EnvAppEnv)
	if appEnv == "" {
		appEnv = "development"
	}

	if err := logging.Init(appEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Voyager starting up",
		"environment", appEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	// Connect to DB with sqlx
	if err := db.InitPostgres(); err != nil {
		logging.Error("Failed to connect to Postgres (sqlx)", "error", err.Error())
		log.Fatalf("Failed to connect to Postgres (sqlx): %v", err)
	}
	logging.Info("Connected to Postgres (sqlx)")

	// Connect to DB with GORM
	host := os.Getenv("PG_HOST")
	port := os.Getenv("PG_PORT")
	user := os.Getenv("PG_USER")
	dbname := os.Getenv("PG_DB")
	password := os.Getenv("PG_PASSWORD")
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbname)

	if _, err := db.InitPostgresORM(dsn); err != nil {
		logging.Error("Failed to connect to Postgres (GORM)", "error", err.Error())
		log.Fatalf("Failed to connect to Postgres (GORM): %v", err)
	}

	searchCfg := searchConfigFromEnv()
	cacheTTL := durationFromEnv(constants.EnvSearchCacheTTL, constants.DefaultSearchCacheTTLSeconds)

	logging.Info("Search configuration resolved",
		"min_connection", searchCfg.MinConnection.String(),
		"max_connection", searchCfg.MaxConnection.String(),
		"cache_ttl", cacheTTL.String(),
	)

	upSince := time.Now()
	router := routes.RegisterRoutes(upSince, searchCfg, cacheTTL)

	// Metrics endpoint lives outside the chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)

	listenPort := os.Getenv(constants.EnvPort)
	if listenPort == "" {
		listenPort = "8080"
	}

	logging.Info("Server starting",
		"port", listenPort,
		"environment", appEnv,
	)
	log.Fatal(http.ListenAndServe(":"+listenPort, mux))
}

// searchConfigFromEnv resolves the connection window once at startup; the
// search core itself only ever sees the explicit Config value.
func searchConfigFromEnv() search.Config {
	cfg := search.DefaultConfig()
	if v := os.Getenv(constants.EnvMinConnectionMins); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes >= 0 {
			cfg.MinConnection = time.Duration(minutes) * time.Minute
		}
	}
	if v := os.Getenv(constants.EnvMaxConnectionMins); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			cfg.MaxConnection = time.Duration(minutes) * time.Minute
		}
	}
	return cfg
}

func durationFromEnv(key string, defaultSeconds int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return time.Duration(defaultSeconds) * time.Second
}
