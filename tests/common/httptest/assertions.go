//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ErrorBody is the envelope every error response uses.
type ErrorBody struct {
	Error struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
	Detail json.RawMessage `json:"detail"`
}

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equalf(t, expectedStatus, w.Code, "response: %s", w.Body.String()) {
		return
	}
	if target != nil && w.Code < 300 {
		assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), target), "decode: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and that the message contains msg.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, msg string) ErrorBody {
	t.Helper()

	assert.Equalf(t, expectedStatus, w.Code, "response: %s", w.Body.String())
	var body ErrorBody
	assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), &body), "decode: %s", w.Body.String())
	if msg != "" {
		assert.Contains(t, body.Error.Message, msg)
	}
	return body
}

// AssertErrorCode checks the status and the error taxonomy code.
func AssertErrorCode(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, code string) ErrorBody {
	t.Helper()

	body := AssertErrorResponse(t, w, expectedStatus, "")
	assert.Equal(t, code, body.Error.Code)
	return body
}
