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

package internal

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"go.uber.org/zap"
)

type GracefulShutdownHandler interface {
	Shutdown()          // Triggers a graceful shutdown programmatically.
	ShuttingDown() bool // Quickly checks if a shutdown is in progress.
	Wait()              // Blocks until shutdown tasks are complete.
}

type gracefulShutdown struct {
	quit         chan os.Signal // Receives SIGTERM/SIGINT or a programmatic shutdown request.
	shuttingDown atomic.Bool
	wg           sync.WaitGroup
	timeout      time.Duration
	exit         func(code int)
}

// NewGracefulShutdown starts listening for SIGTERM/SIGINT.
// After a signal, onShutdown (if not nil) is called with a context that expires after timeout.
// The process exits with 0 if onShutdown succeeded and with 1 if it failed or ran out of time.
func NewGracefulShutdown(onShutdown func(ctx context.Context) error, timeout time.Duration) GracefulShutdownHandler {
	return newGracefulShutdown(onShutdown, timeout, os.Exit)
}

func newGracefulShutdown(onShutdown func(ctx context.Context) error, timeout time.Duration, exit func(code int)) *gracefulShutdown {
	gs := &gracefulShutdown{
		quit:    make(chan os.Signal, 1),
		timeout: timeout,
		exit:    exit,
	}
	signal.Notify(gs.quit, syscall.SIGINT, syscall.SIGTERM)

	gs.wg.Add(1)
	go gs.run(onShutdown)

	return gs
}

func (gs *gracefulShutdown) run(onShutdown func(ctx context.Context) error) {
	defer gs.wg.Done()

	// Kubernetes sends SIGTERM 30 seconds before
	// shutting down the pod.
	sig := <-gs.quit
	signal.Stop(gs.quit)
	gs.shuttingDown.Store(true)
	zap.S().Infow("Received signal, shutting down", "signal", sig.String())

	if onShutdown != nil {
		zap.S().Infow("Waiting for shutdown tasks to complete", "timeout", gs.timeout)
		ctx, cancel := context.WithTimeout(context.Background(), gs.timeout)
		defer cancel()

		done := make(chan error, 1)
		go func() {
			done <- onShutdown(ctx)
		}()

		select {
		case err := <-done:
			if err != nil {
				zap.S().Errorw("Error during shutdown", "error", err)
				_ = zap.S().Sync()
				gs.exit(1)
				return
			}
		case <-ctx.Done():
			zap.S().Errorw("Shutdown tasks did not complete in time", "timeout", gs.timeout)
			_ = zap.S().Sync()
			gs.exit(1)
			return
		}
	}

	zap.S().Info("Shutdown tasks completed. Ready to exit.")
	_ = zap.S().Sync()
	gs.exit(0)
}

func (gs *gracefulShutdown) ShuttingDown() bool {
	return gs.shuttingDown.Load()
}

func (gs *gracefulShutdown) Shutdown() {
	if gs.ShuttingDown() {
		return
	}
	// quit is buffered, a pending signal already triggers the shutdown
	select {
	case gs.quit <- syscall.SIGTERM:
	default:
	}
}

func (gs *gracefulShutdown) Wait() {
	gs.wg.Wait()
}
