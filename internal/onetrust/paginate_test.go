package onetrust

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler, opts ...Option) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	opts = append([]Option{
		WithBaseURL(server.URL),
		WithSleep(func(time.Duration) {}),
	}, opts...)
	return New("example.onetrust.test", "v2", "test-token", opts...)
}

func TestListUsers_PagesByItemCount(t *testing.T) {
	// Two full pages then a short one; startIndex must advance by the
	// server-reported item count.
	var indexes []string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/scim/v2/Users", r.URL.Path)
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		start := r.URL.Query().Get("startIndex")
		indexes = append(indexes, start)

		count := 500
		if start == "1001" {
			count = 17
		}
		resources := make([]map[string]string, count)
		for i := range resources {
			resources[i] = map[string]string{
				"id":       fmt.Sprintf("u-%s-%d", start, i),
				"userName": fmt.Sprintf("user-%s-%d", start, i),
			}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"Resources":    resources,
			"itemsPerPage": count,
			"totalResults": 1017,
		})
	})

	client := newTestClient(t, handler)
	users, err := client.ListUsers(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "501", "1001"}, indexes)
	assert.Len(t, users, 1017)
	assert.Equal(t, "u-1-0", users[0].ID)
	assert.Equal(t, "user-1-0", users[0].UserName)
}

func TestListVendors_PagesByTotalPages(t *testing.T) {
	var pages []string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/inventory/v2/inventories/vendors", r.URL.Path)
		require.Equal(t, "50", r.URL.Query().Get("size"))

		page := r.URL.Query().Get("page")
		pages = append(pages, page)

		count := 50
		if page == "1" {
			count = 3
		}
		data := make([]map[string]string, count)
		for i := range data {
			data[i] = map[string]string{"name": fmt.Sprintf("vendor-%s-%d", page, i)}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": data,
			"meta": map[string]any{
				"page": map[string]int{"totalPages": 2, "totalElements": 53},
			},
		})
	})

	client := newTestClient(t, handler)
	vendors, err := client.ListVendors(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"0", "1"}, pages)
	assert.Len(t, vendors, 53)
	assert.Equal(t, "vendor-0-0", vendors[0].Name)
}

func TestListAssessments_ReadsContentEnvelope(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/assessment/v2/assessments", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{
				{"assessmentId": "a1", "templateName": "AI Service Risk Assessment", "status": "Completed"},
				{"assessmentId": "a2", "templateName": "Offline Software Validation", "status": "In Progress"},
			},
			"page": map[string]int{"totalPages": 1, "totalElements": 2},
		})
	})

	client := newTestClient(t, handler)
	summaries, err := client.ListAssessments(context.Background())
	require.NoError(t, err)

	require.Len(t, summaries, 2)
	assert.Equal(t, "a1", summaries[0].AssessmentID)
	assert.Equal(t, "Offline Software Validation", summaries[1].TemplateName)
}

func TestFetchJSON_RetriesRateLimit(t *testing.T) {
	// Two 429 responses, then success. The backoff must honor Retry-After.
	attempts := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		if attempts <= 2 {
			w.Header().Set("Retry-After", "5")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]string{{"name": "v"}},
			"meta": map[string]any{"page": map[string]int{"totalPages": 1, "totalElements": 1}},
		})
	})

	var slept []time.Duration
	client := newTestClient(t, handler, WithSleep(func(d time.Duration) { slept = append(slept, d) }))

	vendors, err := client.ListVendors(context.Background())
	require.NoError(t, err)
	assert.Len(t, vendors, 1)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, []time.Duration{5 * time.Second, 5 * time.Second}, slept)
}

func TestListVendors_SurfacesAPIError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	client := newTestClient(t, handler)
	_, err := client.ListVendors(context.Background())
	require.Error(t, err)
}
