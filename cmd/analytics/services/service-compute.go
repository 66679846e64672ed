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
	"errors"
	"fmt"
	"math"

	"github.com/united-manufacturing-hub/mes-analytics/cmd/analytics/models"
	"github.com/united-manufacturing-hub/mes-analytics/pkg/analytics"
	"go.uber.org/zap"
)

// ErrResultNotFinite is returned when a calculation overflows, JSON cannot carry ±Inf
var ErrResultNotFinite = errors.New("result is not a finite number")

// The request structs are expected to be validated by the binding layer, nil fields panic.

func ComputeTargets(request models.TargetRequest) (response models.TargetResponse) {
	smv, qty := request.Smv.Float64(), request.Qty.Float64()
	response.TargetUnits = analytics.ComputeTargetUnits(smv, qty)

	zap.S().Debugw("Computed target units",
		"smv", smv,
		"qty", qty,
		"targetUnits", response.TargetUnits,
	)
	recordComputation(models.TargetsKind, response.TargetUnits)
	return
}

func ComputeOee(request models.OeeRequest) (response models.OeeResponse) {
	availability := request.Availability.Float64()
	performance := request.Performance.Float64()
	quality := request.Quality.Float64()
	response.Oee = analytics.ComputeOEE(availability, performance, quality)

	zap.S().Debugw("Computed OEE",
		"availability", availability,
		"performance", performance,
		"quality", quality,
		"oee", response.Oee,
	)
	recordComputation(models.OeeKind, response.Oee)
	return
}

// ComputeLineEfficiency fails with ErrResultNotFinite when actual / target overflows, e.g. for a tiny positive target
func ComputeLineEfficiency(request models.LineEfficiencyRequest) (response models.LineEfficiencyResponse, err error) {
	target, actual := request.Target.Float64(), request.Actual.Float64()
	efficiency := analytics.ComputeLineEfficiency(target, actual)

	zap.S().Debugw("Computed line efficiency",
		"target", target,
		"actual", actual,
		"efficiency", efficiency,
	)
	if math.IsInf(efficiency, 0) || math.IsNaN(efficiency) {
		err = fmt.Errorf("line efficiency for target %g and actual %g: %w", target, actual, ErrResultNotFinite)
		return
	}

	response.Efficiency = efficiency
	recordComputation(models.LineEfficiencyKind, response.Efficiency)
	return
}

func GetHealth() models.HealthResponse {
	return models.HealthResponse{
		Status:  models.HealthStatusOk,
		Service: models.ServiceName,
	}
}
