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
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/compute/oee", nil)
	return c, w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHandleInvalidInputError(t *testing.T) {
	t.Run("with-error", func(t *testing.T) {
		c, w := newTestContext()
		HandleInvalidInputError(c, errors.New("field\nquality missing"))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.True(t, c.IsAborted())
		body := decodeBody(t, w)
		assert.Equal(t, "fieldquality missing", body["error"])
		assert.Equal(t, InvalidInputMessage, body["message"])
	})
	t.Run("nil-error", func(t *testing.T) {
		c, w := newTestContext()
		HandleInvalidInputError(c, nil)

		assert.Equal(t, "unknown error", decodeBody(t, w)["error"])
	})
	t.Run("nil-context-panics", func(t *testing.T) {
		assert.Panics(t, func() { HandleInvalidInputError(nil, errors.New("x")) })
	})
}

func TestHandleInternalServerError(t *testing.T) {
	c, w := newTestContext()
	HandleInternalServerError(c, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "boom", body["error"])
	assert.Equal(t, float64(http.StatusInternalServerError), body["status"])
	assert.Equal(t, InternalErrorMessage, body["message"])
}
