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

package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/united-manufacturing-hub/mes-analytics/cmd/analytics/helpers"
	"github.com/united-manufacturing-hub/mes-analytics/cmd/analytics/models"
	"github.com/united-manufacturing-hub/mes-analytics/cmd/analytics/services"
)

// bindComputeRequest binds the JSON body and answers with 422 if a field is missing or not a number
func bindComputeRequest(c *gin.Context, kind string, request any) bool {
	err := c.ShouldBindJSON(request)
	if err != nil {
		services.RecordInvalidRequest(kind)
		helpers.HandleInvalidInputError(c, fmt.Errorf("invalid %s request: %w", kind, err))
		return false
	}
	return true
}

func PostTargetsHandler(c *gin.Context) {
	var request models.TargetRequest

	if !bindComputeRequest(c, models.TargetsKind, &request) {
		return
	}

	c.JSON(http.StatusOK, services.ComputeTargets(request))
}

func PostOeeHandler(c *gin.Context) {
	var request models.OeeRequest

	if !bindComputeRequest(c, models.OeeKind, &request) {
		return
	}

	c.JSON(http.StatusOK, services.ComputeOee(request))
}

func PostLineEfficiencyHandler(c *gin.Context) {
	var request models.LineEfficiencyRequest

	if !bindComputeRequest(c, models.LineEfficiencyKind, &request) {
		return
	}

	response, err := services.ComputeLineEfficiency(request)
	if err != nil {
		helpers.HandleInternalServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
