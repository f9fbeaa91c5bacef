package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"docloadgen/config"
	"docloadgen/loadtest"
	"docloadgen/server"
	"docloadgen/store"
	"docloadgen/templates"
)

func main() {
	// Define command-line flags
	mode := flag.String("mode", "serve", "Mode to run in: serve (HTTP trigger) or run (one load test, then exit)")
	addr := flag.String("addr", "", "Listen address for serve mode (overrides LISTEN_ADDR)")
	storeURI := flag.String("store-uri", "", "Store connection string (overrides STORE_URI)")
	showProgress := flag.Bool("progress", false, "Render a progress bar per scenario step")

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.ListenAddr = *addr
	}
	if *storeURI != "" {
		cfg.StoreURI = *storeURI
	}

	logger, err := newLogger(cfg.LogDir)
	if err != nil {
		fmt.Printf("Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()

	// Set system resource limits for high-concurrency testing
	if err := loadtest.SetMaxResources(); err != nil {
		log.Warnw("could not adjust system resources", "error", err)
	}

	runner := &loadtest.Runner{
		Params: loadtest.Params{
			Store: store.Config{
				URI:        cfg.StoreURI,
				Database:   cfg.Database,
				Collection: cfg.Collection,
			},
			Templates: templates.NewCache(cfg.TemplateDir),
			Log:       log,
			RateLimit: cfg.RateLimit,
		},
		SeedFiles:    cfg.SeedFiles,
		BaseFiles:    cfg.BaseFiles,
		ShowProgress: *showProgress,
	}

	switch *mode {
	case "run":
		msg, err := runner.Execute(context.Background())
		if err != nil {
			log.Fatalw("load test failed", "error", err)
		}
		fmt.Println(msg)
	case "serve":
		srv := server.New(runner, log)
		log.Infow("listening", "addr", cfg.ListenAddr)
		if err := http.ListenAndServe(cfg.ListenAddr, srv.Router()); err != nil {
			log.Fatalw("server stopped", "error", err)
		}
	default:
		fmt.Println("Unknown mode:", *mode)
		os.Exit(1)
	}
}

// newLogger builds a console logger teeing to stdout and a timestamped log
// file so the offline log analyzer can pick the run up from disk.
func newLogger(dir string) (*zap.Logger, error) {
	timestamp := time.Now().Format("20060102_150405")
	logPath := filepath.Join(dir, fmt.Sprintf("loadtest_%s.log", timestamp))

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stdout", logPath}
	return cfg.Build()
}
