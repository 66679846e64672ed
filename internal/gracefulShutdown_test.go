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
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func httptestBasicServer(gs GracefulShutdownHandler) *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if gs.ShuttingDown() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/shutdown", func(w http.ResponseWriter, r *http.Request) {
		// Triggers the execution of the onShutdown passed to newGracefulShutdown.
		gs.Shutdown()
		w.WriteHeader(http.StatusOK)
	})

	return httptest.NewServer(mux)
}

func captureExit() (func(code int), chan int) {
	codes := make(chan int, 1)
	return func(code int) { codes <- code }, codes
}

func Test_NewGracefulShutdown(t *testing.T) {
	exit, codes := captureExit()
	release := make(chan struct{})
	shutdownCalled := make(chan struct{})

	gs := newGracefulShutdown(func(ctx context.Context) error {
		close(shutdownCalled)
		<-release
		return nil
	}, time.Second, exit)

	testSrv := httptestBasicServer(gs)
	defer testSrv.Close()
	healthRoute := fmt.Sprintf("%s/health", testSrv.URL)
	shutdownRoute := fmt.Sprintf("%s/shutdown", testSrv.URL)

	resp, err := http.Get(healthRoute)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(shutdownRoute)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	<-shutdownCalled
	assert.True(t, gs.ShuttingDown())

	resp, err = http.Get(healthRoute)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	close(release)
	gs.Wait()
	assert.Equal(t, 0, <-codes)
}

func Test_GracefulShutdownTwice(t *testing.T) {
	exit, codes := captureExit()
	gs := newGracefulShutdown(nil, time.Second, exit)

	gs.Shutdown()
	gs.Shutdown()
	gs.Wait()

	assert.True(t, gs.ShuttingDown())
	assert.Equal(t, 0, <-codes)
}

func Test_GracefulShutdownError(t *testing.T) {
	exit, codes := captureExit()
	gs := newGracefulShutdown(func(ctx context.Context) error {
		return errors.New("close failed")
	}, time.Second, exit)

	gs.Shutdown()
	gs.Wait()

	assert.Equal(t, 1, <-codes)
}

func Test_GracefulShutdownTimeout(t *testing.T) {
	exit, codes := captureExit()
	release := make(chan struct{})
	defer close(release)

	gs := newGracefulShutdown(func(ctx context.Context) error {
		<-release
		return nil
	}, 50*time.Millisecond, exit)

	gs.Shutdown()
	gs.Wait()

	assert.Equal(t, 1, <-codes)
}
