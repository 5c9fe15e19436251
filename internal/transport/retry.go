package transport

import (
	"context"
	"errors"
	"net"
	"net/url"
	"time"

	"github.com/complykit/trustreport/pkg/constants"
	pkgerrors "github.com/complykit/trustreport/pkg/errors"
	"github.com/complykit/trustreport/pkg/logging"
)

// Policy describes a bounded retry schedule for transient transport failures.
// It is applied explicitly around fetch calls; HTTP status handling is the
// caller's concern and never consumes this budget.
type Policy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int

	// BaseDelay is the wait before the first retry.
	BaseDelay time.Duration

	// Multiplier scales the delay after each failed attempt.
	Multiplier int

	// Retryable decides whether an error is worth another attempt.
	// Defaults to IsTransient.
	Retryable func(error) bool

	// Sleep is the wait function, overridable in tests. Defaults to time.Sleep.
	Sleep func(time.Duration)
}

// DefaultPolicy returns the standard 3-attempt schedule with delays 1s, 2s, 4s.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: constants.MaxFetchAttempts,
		BaseDelay:   constants.RetryBaseDelay,
		Multiplier:  constants.RetryMultiplier,
	}
}

// RunPolicy returns the coarser schedule wrapped around whole collection
// fetches (5 attempts, same backoff shape). At this level exhausted transport
// budgets and server-side outages are both worth another pass.
func RunPolicy() Policy {
	p := DefaultPolicy()
	p.MaxAttempts = constants.RunRetryAttempts
	p.Retryable = func(err error) bool {
		return IsTransient(err) || pkgerrors.IsServiceUnavailable(err)
	}
	return p
}

// Do runs fn under the policy. The last error is returned once the budget is
// exhausted or a non-retryable error occurs.
func (p Policy) Do(ctx context.Context, operation string, fn func() error) error {
	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	retryable := p.Retryable
	if retryable == nil {
		retryable = IsTransient
	}

	delay := p.BaseDelay
	var err error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		if !retryable(err) || attempt == p.MaxAttempts {
			break
		}

		logging.Ctx(ctx).Warn().
			Err(err).
			Str("operation", operation).
			Int("attempt", attempt).
			Dur("delay", delay).
			Msg("Transient failure, retrying")

		select {
		case <-ctx.Done():
			return pkgerrors.ErrCanceled
		default:
		}

		sleep(delay)
		delay *= time.Duration(p.Multiplier)
	}
	return err
}

// IsTransient reports whether err is a network-level failure worth retrying:
// connect/read timeouts and generic network faults. Responses that arrived
// with a non-success status are not transient.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	// http.Client wraps transport failures in *url.Error.
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}
