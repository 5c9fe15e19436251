package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complykit/trustreport/pkg/errors"
)

func doGet(t *testing.T, handler http.HandlerFunc) *http.Response {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	return resp
}

func TestCheckStatus_Success(t *testing.T) {
	resp := doGet(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	defer resp.Body.Close()

	assert.NoError(t, CheckStatus(context.Background(), "inventory", resp))
}

func TestCheckStatus_NotFound(t *testing.T) {
	resp := doGet(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "no such inventory", http.StatusNotFound)
	})

	err := CheckStatus(context.Background(), "inventory", resp)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	var apiErr *errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Equal(t, "inventory", apiErr.Service)
	assert.Contains(t, apiErr.Message, "Not Found")
}

func TestCheckStatus_RateLimited(t *testing.T) {
	resp := doGet(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	err := CheckStatus(context.Background(), "scim", resp)
	require.Error(t, err)
	assert.True(t, errors.IsRateLimited(err))
}

func TestCheckStatus_ServerError(t *testing.T) {
	resp := doGet(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	err := CheckStatus(context.Background(), "assessment", resp)
	require.Error(t, err)
	assert.True(t, errors.IsServiceUnavailable(err))
}

func TestCheckStatus_UnknownStatus(t *testing.T) {
	resp := doGet(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	err := CheckStatus(context.Background(), "inventory", resp)
	require.Error(t, err)

	var apiErr *errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Unexpected HTTP Error", apiErr.Message)
}

func TestRetryAfter(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    time.Duration
	}{
		{
			name:    "default when absent",
			headers: nil,
			want:    time.Second,
		},
		{
			name:    "parses seconds",
			headers: map[string]string{"Retry-After": "5"},
			want:    5 * time.Second,
		},
		{
			name:    "malformed falls back to default",
			headers: map[string]string{"Retry-After": "soon"},
			want:    time.Second,
		},
		{
			name: "informational headers do not change the delay",
			headers: map[string]string{
				"Retry-After":           "3",
				"ot-period":             "60",
				"ot-ratelimit-event-id": "abc123",
				"ot-requests-allowed":   "100",
				"ot-request-made":       "101",
			},
			want: 3 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doGet(t, func(w http.ResponseWriter, _ *http.Request) {
				for k, v := range tt.headers {
					w.Header().Set(k, v)
				}
				w.WriteHeader(http.StatusTooManyRequests)
			})
			defer resp.Body.Close()

			assert.Equal(t, tt.want, RetryAfter(context.Background(), resp))
		})
	}
}
