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

import (
	"fmt"
	"time"

	"github.com/united-manufacturing-hub/umh-utils/env"
)

// Config is read once from the environment at startup
type Config struct {
	Port            int
	MetricsPort     int
	HealthcheckPort int
	EnableGzip      bool
	ShutdownGrace   time.Duration
}

func LoadConfig() (config Config, err error) {
	config.Port, err = getPort("ANALYTICS_PORT", 5000)
	if err != nil {
		return
	}
	config.MetricsPort, err = getPort("METRICS_PORT", 2112)
	if err != nil {
		return
	}
	config.HealthcheckPort, err = getPort("HEALTHCHECK_PORT", 8086)
	if err != nil {
		return
	}

	config.EnableGzip, err = env.GetAsBool("ENABLE_GZIP", false, true)
	if err != nil {
		return
	}

	graceSeconds, err := env.GetAsInt("SHUTDOWN_GRACE_SECONDS", false, 5)
	if err != nil {
		return
	}
	if graceSeconds < 0 {
		err = fmt.Errorf("SHUTDOWN_GRACE_SECONDS must not be negative, got %d", graceSeconds)
		return
	}
	config.ShutdownGrace = time.Duration(graceSeconds) * time.Second

	return
}

func getPort(key string, fallback int) (int, error) {
	port, err := env.GetAsInt(key, false, fallback)
	if err != nil {
		return 0, err
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("%s must be between 1 and 65535, got %d", key, port)
	}
	return port, nil
}
