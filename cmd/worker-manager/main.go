// cmd/worker-manager/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"mortgage-workers/internal/common/camunda"
	"mortgage-workers/internal/common/config"
	"mortgage-workers/internal/common/database"
	"mortgage-workers/internal/common/logger"
	"mortgage-workers/internal/common/observability"
	"mortgage-workers/internal/parse"
	checkcompleteness "mortgage-workers/internal/workers/intake/check-completeness"
	parseapplication "mortgage-workers/internal/workers/intake/parse-application"
	receiveapplication "mortgage-workers/internal/workers/intake/receive-application"
	sendnotification "mortgage-workers/internal/workers/notification/send-notification"
	queryrules "mortgage-workers/internal/workers/rules/query-rules"
	calculatedti "mortgage-workers/internal/workers/underwriting/calculate-dti"
	"mortgage-workers/pkg/registry"
)

const healthPort = ":8080"

// retryWithBackoff retries an operation with exponential backoff. Used during
// startup so the manager survives dependencies that come up slower than it does.
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, zapLog *zap.Logger, name string) error {
	var err error
	delay := initialDelay
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err = operation(); err == nil {
			return nil
		}
		if attempt < maxRetries {
			zapLog.Warn("Operation failed, retrying",
				zap.String("operation", name),
				zap.Int("attempt", attempt),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("delay", delay),
				zap.Error(err))
			time.Sleep(delay)
			delay *= 2
			if delay > 30*time.Second {
				delay = 30 * time.Second
			}
		}
	}
	return fmt.Errorf("%s failed after %d attempts: %w", name, maxRetries, err)
}

// parserConfig builds the parse configuration from the app config, falling
// back to the tuned defaults for any field left unset.
func parserConfig(pc config.ParserConfig) parse.Config {
	cfg := parse.DefaultConfig()
	if pc.AnnualIncomeThreshold > 0 {
		cfg.AnnualIncomeThreshold = pc.AnnualIncomeThreshold
	}
	if pc.PropertyValueMin > 0 {
		cfg.PropertyValueMin = pc.PropertyValueMin
	}
	if pc.PropertyValueMax > 0 {
		cfg.PropertyValueMax = pc.PropertyValueMax
	}
	if pc.DefaultDownPaymentPct > 0 {
		cfg.DefaultDownPaymentPct = pc.DefaultDownPaymentPct
	}
	if pc.DownPaymentPctMin > 0 {
		cfg.DownPaymentPctMin = pc.DownPaymentPctMin
	}
	if pc.DownPaymentPctMax > 0 {
		cfg.DownPaymentPctMax = pc.DownPaymentPctMax
	}
	if pc.EmployerMaxWords > 0 {
		cfg.EmployerMaxWords = pc.EmployerMaxWords
	}
	if pc.MaxInputLength > 0 {
		cfg.MaxInputLength = pc.MaxInputLength
	}
	return cfg
}

// workerOptions converts the per-worker config (millisecond timeouts) into
// camunda worker options. Zero values fall back to the package defaults.
func workerOptions(wcfg config.WorkerConfig) camunda.WorkerOptions {
	opts := camunda.WorkerOptions{
		MaxJobsActive: wcfg.MaxJobsActive,
	}
	if wcfg.Timeout > 0 {
		opts.Timeout = time.Duration(wcfg.Timeout) * time.Millisecond
	}
	return opts
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting mortgage worker manager",
		zap.String("app", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment))

	// Activity registry validates task wiring before anything connects.
	reg, err := registry.Load(cfg.Registry.Path)
	if err != nil {
		zapLog.Fatal("Failed to load activity registry", zap.Error(err))
	}
	zapLog.Info("Activity registry loaded",
		zap.Int("activities", len(reg.Activities)),
		zap.Int("active", len(reg.ActiveActivities())))

	obs := observability.New(cfg.App.Name)
	tracer, err := observability.NewTracer(cfg.App.Name, os.Getenv("JAEGER_COLLECTOR_ENDPOINT"))
	if err != nil {
		zapLog.Warn("Tracing disabled", zap.Error(err))
	}

	// Zeebe broker connection.
	var camundaClient *camunda.Client
	err = retryWithBackoff(func() error {
		camundaClient, err = camunda.NewClientWithConfig(&camunda.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: true,
			ConnectionTimeout:      10 * time.Second,
			RequestTimeout:         time.Duration(cfg.Camunda.RequestTimeout) * time.Millisecond,
		})
		return err
	}, 15, 2*time.Second, zapLog, "zeebe-connect")
	if err != nil {
		zapLog.Fatal("Failed to connect to Zeebe broker", zap.Error(err))
	}
	zeebeClient := camundaClient.GetClient()
	zapLog.Info("Connected to Zeebe broker", zap.String("address", cfg.Camunda.BrokerAddress))

	// PostgreSQL holds application records.
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		return err
	}, 10, 2*time.Second, zapLog, "postgres-connect")
	if err != nil {
		zapLog.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("Connected to PostgreSQL",
		zap.String("host", cfg.Database.Postgres.Host),
		zap.String("database", cfg.Database.Postgres.Database))

	// Elasticsearch holds the mortgage rules index.
	var es *database.ElasticsearchClient
	err = retryWithBackoff(func() error {
		es, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			return err
		}
		return es.Ping()
	}, 10, 2*time.Second, zapLog, "elasticsearch-connect")
	if err != nil {
		zapLog.Fatal("Failed to connect to Elasticsearch", zap.Error(err))
	}
	zapLog.Info("Connected to Elasticsearch", zap.String("url", cfg.Database.Elasticsearch.GetURL()))

	// Redis caches per-program DTI limits.
	var rdb *database.RedisClient
	err = retryWithBackoff(func() error {
		rdb, err = database.NewRedis(cfg.Database.Redis)
		return err
	}, 10, 2*time.Second, zapLog, "redis-connect")
	if err != nil {
		zapLog.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer rdb.Close()
	zapLog.Info("Connected to Redis", zap.String("address", cfg.Database.Redis.Address))

	var workers []*camunda.CamundaWorker
	register := func(taskType string, handler camunda.JobHandler) {
		wcfg := cfg.Workers[taskType]
		w := camunda.NewWorker(zeebeClient, taskType, workerOptions(wcfg), handler, log)
		w.Start()
		workers = append(workers, w)
	}

	if cfg.Workers[parseapplication.TaskType].Enabled {
		paCfg := parseapplication.LoadConfig()
		paCfg.Parser = parserConfig(cfg.Parser)
		register(parseapplication.TaskType, parseapplication.NewHandler(paCfg, log))
	}

	if cfg.Workers[checkcompleteness.TaskType].Enabled {
		register(checkcompleteness.TaskType, checkcompleteness.NewHandler(checkcompleteness.LoadConfig(), log))
	}

	if cfg.Workers[receiveapplication.TaskType].Enabled {
		register(receiveapplication.TaskType, receiveapplication.NewHandler(receiveapplication.LoadConfig(), pg.DB, log))
	}

	if cfg.Workers[queryrules.TaskType].Enabled {
		qrCfg := queryrules.LoadConfig()
		if cfg.Rules.Index != "" {
			qrCfg.Index = cfg.Rules.Index
		}
		if cfg.Rules.QueryTimeout > 0 {
			qrCfg.Timeout = time.Duration(cfg.Rules.QueryTimeout) * time.Millisecond
		}
		register(queryrules.TaskType, queryrules.NewHandler(qrCfg, es.Client, log))
	}

	if cfg.Workers[calculatedti.TaskType].Enabled {
		dtiCfg := calculatedti.LoadConfig()
		if cfg.Rules.CachePrefix != "" {
			dtiCfg.CachePrefix = cfg.Rules.CachePrefix
		}
		if cfg.Rules.CacheTTL > 0 {
			dtiCfg.CacheTTL = time.Duration(cfg.Rules.CacheTTL) * time.Second
		}
		register(calculatedti.TaskType, calculatedti.NewHandler(dtiCfg, rdb.Client, log))
	}

	if cfg.Workers[sendnotification.TaskType].Enabled {
		snCfg := sendnotification.LoadConfig()
		snCfg.EmailEnabled = cfg.Notifications.Email.Enabled
		snCfg.FromEmail = cfg.Notifications.Email.FromEmail
		snCfg.SMSEnabled = cfg.Notifications.SMS.Enabled
		snCfg.AWSRegion = cfg.Notifications.AWS.Region
		snHandler, err := sendnotification.NewHandler(snCfg, log)
		if err != nil {
			zapLog.Fatal("Failed to initialize notification handler", zap.Error(err))
		}
		register(sendnotification.TaskType, snHandler)
	}

	if len(workers) == 0 {
		zapLog.Fatal("No workers enabled, check the workers section of the configuration")
	}
	zapLog.Info("Workers registered", zap.Int("count", len(workers)))

	// Health and metrics endpoints. pprof is mounted on the default mux.
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		if err := camundaClient.HealthCheck(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("broker unreachable"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ready"))
	})
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/debug/pprof/", http.DefaultServeMux)

	healthSrv := &http.Server{Addr: healthPort, Handler: mux}
	go func() {
		zapLog.Info("Health server listening", zap.String("addr", healthPort))
		if err := healthSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Error("Health server failed", zap.Error(err))
		}
	}()

	// Block until shutdown signal.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	zapLog.Info("Shutdown signal received", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, w := range workers {
		w.Stop(shutdownCtx)
	}
	if err := healthSrv.Shutdown(shutdownCtx); err != nil {
		zapLog.Warn("Health server shutdown error", zap.Error(err))
	}
	if err := camundaClient.Close(); err != nil {
		zapLog.Warn("Zeebe client close error", zap.Error(err))
	}
	if tracer != nil {
		tracer.Shutdown()
	}
	obs.Shutdown()
	zapLog.Info("Worker manager stopped")
}
