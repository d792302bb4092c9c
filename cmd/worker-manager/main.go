// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"orientation-workers/internal/common/camunda"
	"orientation-workers/internal/common/config"
	commonerrors "orientation-workers/internal/common/errors"
	"orientation-workers/internal/common/logger"
	"orientation-workers/internal/common/observability"
	"orientation-workers/pkg/registry"

	ct "orientation-workers/internal/workers/assessment/score-career-transition"
	en "orientation-workers/internal/workers/assessment/score-entrepreneurial"
	ls "orientation-workers/internal/workers/assessment/score-learning-style"
	mi "orientation-workers/internal/workers/assessment/score-multiple-intelligence"
	nd "orientation-workers/internal/workers/assessment/score-no-diploma"
	ri "orientation-workers/internal/workers/assessment/score-riasec"
)

const shutdownTimeout = 15 * time.Second

type registration struct {
	taskType string
	handler  camunda.JobHandler
}

func main() {
	if err := run(); err != nil {
		logger.NewStructured("worker-manager", "error", "json").Error("worker manager stopped", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.NewStructured(cfg.App.Name, cfg.Logging.Level, cfg.Logging.Format)
	defer log.Sync()

	log.Info("starting worker manager", map[string]interface{}{
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
		"broker":      cfg.Camunda.BrokerAddress,
	})

	obs, err := observability.New(observability.Config{
		ServiceName:    cfg.App.Name,
		TracingEnabled: cfg.Observability.TracingEnabled,
		JaegerEndpoint: cfg.Observability.JaegerEndpoint,
		SampleRatio:    cfg.Observability.SampleRatio,
	})
	if err != nil {
		return err
	}

	reg, err := registry.Load(cfg.Scoring.RegistryPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := camunda.NewClientWithConfig(ctx, &camunda.ClientConfig{
		GatewayAddress:         cfg.Camunda.BrokerAddress,
		UsePlaintextConnection: cfg.Camunda.UsePlaintextConnection,
		ConnectionTimeout:      config.GetDuration(cfg.Camunda.Timeout),
		RequestTimeout:         config.GetDuration(cfg.Camunda.RequestTimeout),
		RetryConfig: &camunda.RetryConfig{
			MaxRetries: cfg.Camunda.ConnectRetries,
			BaseDelay:  time.Second,
			MaxDelay:   10 * time.Second,
		},
	}, log)
	if err != nil {
		return err
	}
	log.Info("zeebe client connected", nil)

	registrations, err := buildHandlers(cfg, log, obs, reg)
	if err != nil {
		client.Close()
		return err
	}

	errHandler := commonerrors.NewErrorHandler(log)
	var workers []worker.JobWorker
	for _, r := range registrations {
		jw := camunda.StartWorker(
			client.GetClient(),
			r.taskType,
			r.handler.WorkerConfig(),
			camunda.Instrument(r.taskType, r.handler.Handle, obs, errHandler, log),
			log,
		)
		if jw != nil {
			workers = append(workers, jw)
		}
	}
	log.Info("workers registered", map[string]interface{}{"count": len(workers)})

	srv := &http.Server{
		Addr:              cfg.Observability.MetricsAddress,
		Handler:           newMux(client),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info("health and metrics server listening", map[string]interface{}{"address": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("health server failed", map[string]interface{}{"error": err.Error()})
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for _, jw := range workers {
		jw.Close()
		jw.AwaitClose()
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("health server shutdown", map[string]interface{}{"error": err.Error()})
	}
	if err := client.Close(); err != nil {
		log.Warn("zeebe client close", map[string]interface{}{"error": err.Error()})
	}
	if err := obs.Shutdown(shutdownCtx); err != nil {
		log.Warn("observability shutdown", map[string]interface{}{"error": err.Error()})
	}
	log.Info("worker manager stopped", nil)
	return nil
}

func buildHandlers(cfg *config.Config, log logger.Logger, obs *observability.Observability, reg *registry.ActivityRegistry) ([]registration, error) {
	riasec, err := ri.NewHandler(ri.HandlerOptions{AppConfig: cfg, Logger: log, Observability: obs, Registry: reg})
	if err != nil {
		return nil, err
	}
	intelligence, err := mi.NewHandler(mi.HandlerOptions{AppConfig: cfg, Logger: log, Observability: obs, Registry: reg})
	if err != nil {
		return nil, err
	}
	learning, err := ls.NewHandler(ls.HandlerOptions{AppConfig: cfg, Logger: log, Observability: obs, Registry: reg})
	if err != nil {
		return nil, err
	}
	entrepreneurial, err := en.NewHandler(en.HandlerOptions{AppConfig: cfg, Logger: log, Observability: obs, Registry: reg})
	if err != nil {
		return nil, err
	}
	transition, err := ct.NewHandler(ct.HandlerOptions{AppConfig: cfg, Logger: log, Observability: obs, Registry: reg})
	if err != nil {
		return nil, err
	}
	noDiploma, err := nd.NewHandler(nd.HandlerOptions{AppConfig: cfg, Logger: log, Observability: obs, Registry: reg})
	if err != nil {
		return nil, err
	}

	return []registration{
		{ri.TaskType, riasec},
		{mi.TaskType, intelligence},
		{ls.TaskType, learning},
		{en.TaskType, entrepreneurial},
		{ct.TaskType, transition},
		{nd.TaskType, noDiploma},
	}, nil
}

func newMux(client *camunda.Client) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusOK, "healthy")
	})
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()
		if err := client.HealthCheck(ctx); err != nil {
			writeStatus(w, http.StatusServiceUnavailable, "unavailable")
			return
		}
		writeStatus(w, http.StatusOK, "ready")
	})
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func writeStatus(w http.ResponseWriter, code int, status string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{
		"status": status,
		"time":   time.Now().Format(time.RFC3339),
	})
}
