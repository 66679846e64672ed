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

package models

// Request fields are pointers, as binding:"required" would otherwise reject an explicit 0.

type TargetRequest struct {
	Smv *Number `json:"smv" binding:"required"`
	Qty *Number `json:"qty" binding:"required"`
}

type TargetResponse struct {
	TargetUnits float64 `json:"targetUnits"`
}

type OeeRequest struct {
	Availability *Number `json:"availability" binding:"required"`
	Performance  *Number `json:"performance" binding:"required"`
	Quality      *Number `json:"quality" binding:"required"`
}

type OeeResponse struct {
	Oee float64 `json:"oee"`
}

type LineEfficiencyRequest struct {
	Target *Number `json:"target" binding:"required"`
	Actual *Number `json:"actual" binding:"required"`
}

type LineEfficiencyResponse struct {
	Efficiency float64 `json:"efficiency"`
}

const (
	TargetsKind        string = "targets"
	OeeKind            string = "oee"
	LineEfficiencyKind string = "line_efficiency"
)
