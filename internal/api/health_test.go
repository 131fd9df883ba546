package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/pokereview/internal/api"
	"github.com/taibuivan/pokereview/internal/platform/constants"
)

type readyPayload struct {
	Data struct {
		Status string `json:"status"`
		Checks []struct {
			Name  string `json:"name"`
			OK    bool   `json:"ok"`
			Error string `json:"error"`
		} `json:"checks"`
	} `json:"data"`
}

func TestLiveness_ReportsVersion(t *testing.T) {
	liveness, _ := api.NewHealthHandlers(api.HealthDependencies{}, slog.New(slog.DiscardHandler))

	recorder := httptest.NewRecorder()
	liveness(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":{"status":"ok","version":"`+constants.AppVersion+`"}}`, recorder.Body.String())
}

func TestReadiness_HidesFailureDetail(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	_, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(context.Context) error { return nil },
		CheckCache: func(context.Context) error {
			return errors.New("dial tcp 10.0.0.5:6379: connection refused")
		},
	}, logger)

	recorder := httptest.NewRecorder()
	readiness(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "10.0.0.5")

	var payload readyPayload
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.Equal(t, "degraded", payload.Data.Status)
	require.Len(t, payload.Data.Checks, 2)
	assert.True(t, payload.Data.Checks[0].OK)
	assert.False(t, payload.Data.Checks[1].OK)
	assert.Equal(t, "unavailable", payload.Data.Checks[1].Error)

	assert.Contains(t, logs.String(), "connection refused")
}
