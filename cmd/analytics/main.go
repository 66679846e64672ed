// Copyright 2023 UMH Systems GmbH
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

/*
Important principles: stateless as much as possible

Incoming REST call --> http.go --> controllers (binding) --> services (metrics, logging) --> pkg/analytics (pure calculation)
*/

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/heptiolabs/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/united-manufacturing-hub/mes-analytics/internal"
	"github.com/united-manufacturing-hub/umh-utils/env"
	"github.com/united-manufacturing-hub/umh-utils/logger"
	"go.uber.org/zap"
)

var buildtime string

// shutdownTimeout is the time the server gets to finish in-flight requests after the grace period
const shutdownTimeout = 20 * time.Second

func main() {
	log := InitLogging()
	defer func(logger *zap.SugaredLogger) {
		_ = logger.Sync()
	}(log)
	zap.S().Infof("This is analytics build date: %s", buildtime)

	config, err := LoadConfig()
	if err != nil {
		zap.S().Fatalf("Invalid configuration: %s", err)
	}

	InitPrometheus(config.MetricsPort)

	gin.SetMode(gin.ReleaseMode)
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Port),
		Handler:           SetupRestAPI(config),
		ReadHeaderTimeout: 10 * time.Second,
	}

	gs := internal.NewGracefulShutdown(func(ctx context.Context) error {
		return shutdownServer(ctx, server, config.ShutdownGrace)
	}, config.ShutdownGrace+shutdownTimeout)

	InitHealthCheck(config.HealthcheckPort, gs)

	zap.S().Infow("Starting REST API", "port", config.Port)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		zap.S().Fatalf("Error starting REST API: %s", err)
	}

	// ListenAndServe returns as soon as Shutdown is called, the shutdown handler exits the process
	gs.Wait()
}

func InitLogging() *zap.SugaredLogger {
	logLevel, _ := env.GetAsString("LOGGING_LEVEL", false, "PRODUCTION") //nolint:errcheck
	return logger.New(logLevel)
}

func InitPrometheus(port int) {
	// Prometheus
	metricsPath := "/metrics"
	metricsPort := fmt.Sprintf(":%d", port)
	zap.S().Debugf("Setting up metrics %s %v", metricsPath, metricsPort)

	mux := http.NewServeMux()
	mux.Handle(metricsPath, promhttp.Handler())
	go func() {
		/* #nosec G114 */
		err := http.ListenAndServe(metricsPort, mux)
		if err != nil {
			zap.S().Errorf("Error starting metrics: %s", err)
		}
	}()
}

func InitHealthCheck(port int, gs internal.GracefulShutdownHandler) {
	zap.S().Debugf("Setting up healthcheck")

	health := healthcheck.NewHandler()
	health.AddLivenessCheck("goroutine-threshold", healthcheck.GoroutineCountCheck(1000))
	health.AddReadinessCheck("shutdownEnabled", isShutdownEnabled(gs))
	go func() {
		/* #nosec G114 */
		err := http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", port), health)
		if err != nil {
			zap.S().Errorf("Error starting healthcheck: %s", err)
		}
	}()
}

func isShutdownEnabled(gs internal.GracefulShutdownHandler) healthcheck.Check {
	return func() error {
		if gs.ShuttingDown() {
			return fmt.Errorf("shutdown")
		}
		return nil
	}
}

// shutdownServer keeps serving while the readiness probe fails for the grace period, then drains the server
func shutdownServer(ctx context.Context, server *http.Server, grace time.Duration) error {
	zap.S().Infow("Shutting down REST API", "grace", grace)

	select {
	case <-time.After(grace):
	case <-ctx.Done():
		return ctx.Err()
	}

	err := server.Shutdown(ctx)
	if err != nil {
		return fmt.Errorf("failed to shut down REST API: %w", err)
	}
	zap.S().Infof("Successful shutdown. Exiting.")
	return nil
}
