package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSetTimeout(t *testing.T) {
	c := New(&NoAuth{})
	assert.Equal(t, DefaultHTTPTimeout, c.http.Timeout)

	c.SetTimeout(5 * time.Second)
	assert.Equal(t, 5*time.Second, c.http.Timeout)
}

func TestClientGet_AppliesAuthAndAccept(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("accept"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := New(&BearerAuth{Token: "tok"})
	resp, err := c.Get(context.Background(), server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestClientGet_TimeoutBoundsSlowServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := NewWithPolicy(&NoAuth{}, Policy{
		MaxAttempts: 1,
		BaseDelay:   time.Millisecond,
		Multiplier:  2,
		Sleep:       func(time.Duration) {},
	})
	c.SetTimeout(20 * time.Millisecond)

	_, err := c.Get(context.Background(), server.URL)
	require.Error(t, err)
}
