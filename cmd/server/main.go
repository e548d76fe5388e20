// Command server runs the vendor login service.
//
// Configuration via environment variables:
//
//	MU_SPARQL_ENDPOINT           - SPARQL endpoint URL (default: http://database:8890/sparql)
//	VENDOR_LOGIN_PORT            - Listen port (default: 80)
//	VENDOR_LOGIN_READ_TIMEOUT    - HTTP read timeout (default: 30s)
//	VENDOR_LOGIN_WRITE_TIMEOUT   - HTTP write timeout (default: 30s)
//	VENDOR_LOGIN_MAX_BODY_SIZE   - Max request body in bytes (default: 1048576)
//	VENDOR_LOGIN_METRICS_ENABLED - Expose /metrics (default: true)
//	VENDOR_LOGIN_CONFIG          - Path to a YAML config file
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/lblod/vendor-login-service/pkg/config"
	"github.com/lblod/vendor-login-service/pkg/session"
	"github.com/lblod/vendor-login-service/pkg/sparql"
	"github.com/lblod/vendor-login-service/pkg/transport"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	store := sparql.NewSudoClient(cfg.Store.Endpoint,
		sparql.WithTimeout(cfg.Store.Timeout),
		sparql.WithLogger(logger),
	)
	logger.Info("store configured", slog.String("endpoint", cfg.Store.Endpoint))

	service := session.NewService(store, logger)
	adapter := transport.NewAdapter(service, transport.Config{
		MaxBodySize: cfg.Server.MaxBodySize,
	})

	srv := transport.NewServer(adapter, transport.ServerConfig{
		Addr:            fmt.Sprintf(":%d", cfg.Server.Port),
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		MetricsEnabled:  cfg.Observability.Metrics.Enabled,
		MetricsPath:     cfg.Observability.Metrics.Path,
		Logger:          logger,
	})

	return srv.ListenAndServe()
}
