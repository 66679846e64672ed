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

// Package analytics contains the KPI calculations of the MES analytics service.
// All functions are pure and total: they accept any float64 and never fail.
package analytics

import (
	"gonum.org/v1/gonum/floats"
)

// ComputeTargetUnits returns the expected production quantity for an order.
// The standard minute value is accepted but not used yet, the target is the ordered quantity clamped at zero.
func ComputeTargetUnits(smv float64, qty float64) (targetUnits float64) {
	if qty < 0 {
		return 0
	}
	return qty
}

// ComputeOEE calculates the overall equipment effectiveness.
// Every factor is clamped into [0, 1] before multiplying, so out of range sensor values never produce an OEE outside of [0, 1].
func ComputeOEE(availability float64, performance float64, quality float64) (oee float64) {
	return floats.Prod([]float64{
		Clamp01(availability),
		Clamp01(performance),
		Clamp01(quality),
	})
}

// ComputeLineEfficiency returns actual / target for a production line.
// A non-positive target yields 0. The result is NOT clamped: it exceeds 1 for overproduction and is negative for a negative actual.
func ComputeLineEfficiency(target float64, actual float64) (efficiency float64) {
	if target <= 0 {
		return 0
	}
	return actual / target
}

// Clamp01 limits x to the closed interval [0, 1]
func Clamp01(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < 0 {
		return 0
	}
	return x
}
