package transport

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/complykit/trustreport/pkg/constants"
	"github.com/complykit/trustreport/pkg/errors"
	"github.com/complykit/trustreport/pkg/logging"
)

// statusGuidance maps the status codes commonly returned by OneTrust web
// servers to actionable messages.
var statusGuidance = map[int]string{
	400: "Bad Request - Invalid parameter passed.",
	401: "Unauthorized - Invalid credentials (Please check your API token) or URI.",
	403: "Forbidden - Operation not allowed. You do not have permission to access this resource.",
	404: "Not Found - Resource does not exist or cannot be found.",
	409: "Conflict - Resource already exists.",
	429: "Too Many Requests - Rate limit exceeded.",
	500: "Internal Server Error - Error within the API.",
	503: "Service Unavailable - System is unavailable. Try again later.",
}

// CheckStatus classifies a response by status code. It returns nil for 2xx and
// an *errors.APIError otherwise. The response body is consumed for the error
// message; a 401 body is redacted so credential context never reaches logs.
func CheckStatus(ctx context.Context, service string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	message, known := statusGuidance[resp.StatusCode]
	if !known {
		message = "Unexpected HTTP Error"
	}

	detail := string(body)
	if resp.StatusCode == http.StatusUnauthorized {
		detail = "<sensitive_data_removed>"
	}

	logging.Ctx(ctx).Error().
		Int("status", resp.StatusCode).
		Str("service", service).
		Str("guidance", message).
		Str("response", detail).
		Msg("HTTP error")
	if !known {
		logging.Ctx(ctx).Info().Msg("Check https://developer.onetrust.com/onetrust/reference/quick-start-guide")
	}

	return &errors.APIError{
		Service:    service,
		StatusCode: resp.StatusCode,
		Endpoint:   resp.Request.URL.String(),
		Message:    message,
	}
}

// rateLimitHeaders are the informational headers attached to a 429 response.
var rateLimitHeaders = []string{
	"Retry-After",
	"ot-period",
	"ot-ratelimit-event-id",
	"ot-requests-allowed",
	"ot-request-made",
}

// RetryAfter logs the rate-limit headers of a 429 response and returns the
// server-directed delay, defaulting to one second when the Retry-After header
// is absent or malformed.
func RetryAfter(ctx context.Context, resp *http.Response) time.Duration {
	delay := constants.DefaultRetryAfter

	for _, header := range rateLimitHeaders {
		value := resp.Header.Get(header)
		if value == "" {
			continue
		}
		if header == "Retry-After" {
			if seconds, err := strconv.Atoi(value); err == nil {
				delay = time.Duration(seconds) * time.Second
			}
		}
		logging.Ctx(ctx).Info().Str(header, value).Msg("Rate limit header")
	}

	return delay
}
