package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/complykit/trustreport/pkg/errors"
)

// DecodeJSON classifies the response status and, on success, unmarshals the
// body into target. The body is always closed.
func DecodeJSON(ctx context.Context, service string, resp *http.Response, target any) error {
	if err := CheckStatus(ctx, service, resp); err != nil {
		return err
	}

	body, err := io.ReadAll(resp.Body)
	closeErr := resp.Body.Close()
	if err != nil {
		return errors.WrapIO("read", "response body", err)
	}
	if closeErr != nil {
		return errors.WrapIO("close", "response body", closeErr)
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", service+" response", err)
	}
	return nil
}

// Drain discards and closes a response body so the underlying connection can
// be reused.
func Drain(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
