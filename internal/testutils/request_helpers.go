package testutils

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
)

// CreateTestRequest builds a JSON request whose context carries a discarding
// logger, the way middleware.Logging prepares real requests.
func CreateTestRequest(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.WithValue(req.Context(), middleware.LoggerKey, logger)

	return req.WithContext(ctx)
}

// DecodeResponse splits a response envelope, leaving data as raw JSON for the
// caller to decode into the concrete payload type.
func DecodeResponse(rr *httptest.ResponseRecorder) (response.APIResponse, json.RawMessage, error) {
	var envelope struct {
		response.APIResponse
		Data json.RawMessage `json:"data"`
	}

	if err := json.Unmarshal(rr.Body.Bytes(), &envelope); err != nil {
		return response.APIResponse{}, nil, err
	}

	return envelope.APIResponse, envelope.Data, nil
}
