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

package helpers

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/united-manufacturing-hub/mes-analytics/internal"
	"go.uber.org/zap"
)

const (
	InvalidInputMessage   = "You have provided a wrong input. Please check your parameters."
	InternalErrorMessage  = "The server had an internal error."
	RouteNotFoundMessage  = "The requested route does not exist."
	MethodNotAllowedError = "method not allowed"
)

func HandleInternalServerError(c *gin.Context, err error) {
	if c == nil {
		panic("HandleInternalServerError: c is nil")
	}
	if err == nil {
		err = errors.New("unknown error")
	}

	erx := internal.SanitizeString(err.Error())
	zap.S().Errorw(
		"Internal server error",
		"error", erx,
		"route", c.FullPath(),
		"stack-trace", string(debug.Stack()),
	)

	c.AbortWithStatusJSON(
		http.StatusInternalServerError,
		gin.H{
			"error":   erx,
			"status":  http.StatusInternalServerError,
			"message": InternalErrorMessage,
		})
}

// HandleInvalidInputError answers with 422, the same status the schema validation of the previous analytics service used
func HandleInvalidInputError(c *gin.Context, err error) {
	if c == nil {
		panic("HandleInvalidInputError: c is nil")
	}
	if err == nil {
		err = errors.New("unknown error")
	}
	erx := internal.SanitizeString(err.Error())
	zap.S().Infow(
		"Invalid input error",
		"error", erx,
		"route", c.FullPath(),
	)

	c.AbortWithStatusJSON(
		http.StatusUnprocessableEntity,
		gin.H{
			"error":   erx,
			"status":  http.StatusUnprocessableEntity,
			"message": InvalidInputMessage,
		})
}

func HandleRouteNotFound(c *gin.Context) {
	zap.S().Debugw(
		"Route not found",
		"path", internal.SanitizeString(c.Request.URL.Path),
		"method", c.Request.Method,
	)

	c.JSON(
		http.StatusNotFound,
		gin.H{
			"error":   "not found",
			"status":  http.StatusNotFound,
			"message": RouteNotFoundMessage,
		})
}

func HandleMethodNotAllowed(c *gin.Context) {
	c.JSON(
		http.StatusMethodNotAllowed,
		gin.H{
			"error":   MethodNotAllowedError,
			"status":  http.StatusMethodNotAllowed,
			"message": "The requested method is not supported for this route.",
		})
}
