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

package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics
var (
	ComputationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_computations_total",
			Help: "The total number of successful computations",
		},
		[]string{"kind"},
	)
	InvalidRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_invalid_requests_total",
			Help: "The total number of requests rejected because of invalid input",
		},
		[]string{"kind"},
	)
	LastResult = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "analytics_last_result",
			Help: "The result of the latest computation",
		},
		[]string{"kind"},
	)
)

// RecordInvalidRequest counts a request of the given kind that never reached the calculator
func RecordInvalidRequest(kind string) {
	InvalidRequestsTotal.WithLabelValues(kind).Inc()
}

func recordComputation(kind string, result float64) {
	ComputationsTotal.WithLabelValues(kind).Inc()
	LastResult.WithLabelValues(kind).Set(result)
}
