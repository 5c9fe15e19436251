package transport

import (
	"context"
	"errors"
	"net"
	"net/url"
	"testing"
	"time"
)

type fakeNetError struct{}

func (fakeNetError) Error() string   { return "connection reset" }
func (fakeNetError) Timeout() bool   { return true }
func (fakeNetError) Temporary() bool { return true }

// TestPolicyDo_SucceedsAfterTransientFailures tests that the budget covers
// failures before the final successful attempt.
func TestPolicyDo_SucceedsAfterTransientFailures(t *testing.T) {
	var slept []time.Duration
	p := Policy{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		Multiplier:  2,
		Sleep:       func(d time.Duration) { slept = append(slept, d) },
	}

	calls := 0
	err := p.Do(context.Background(), "test", func() error {
		calls++
		if calls < 3 {
			return fakeNetError{}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do returned error: %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
	if len(slept) != 2 || slept[0] != time.Second || slept[1] != 2*time.Second {
		t.Errorf("expected sleeps [1s 2s], got %v", slept)
	}
}

// TestPolicyDo_ExhaustsBudget tests that the last error surfaces when every
// attempt fails.
func TestPolicyDo_ExhaustsBudget(t *testing.T) {
	p := Policy{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
		Multiplier:  2,
		Sleep:       func(time.Duration) {},
	}

	calls := 0
	err := p.Do(context.Background(), "test", func() error {
		calls++
		return fakeNetError{}
	})
	if err == nil {
		t.Fatal("expected error after exhausting budget")
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

// TestPolicyDo_NonRetryableStopsImmediately tests that permanent errors do not
// consume the budget.
func TestPolicyDo_NonRetryableStopsImmediately(t *testing.T) {
	p := Policy{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
		Multiplier:  2,
		Sleep:       func(time.Duration) {},
	}

	permanent := errors.New("bad input")
	calls := 0
	err := p.Do(context.Background(), "test", func() error {
		calls++
		return permanent
	})
	if !errors.Is(err, permanent) {
		t.Fatalf("expected permanent error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "canceled", err: context.Canceled, want: false},
		{name: "deadline", err: context.DeadlineExceeded, want: true},
		{name: "net error", err: fakeNetError{}, want: true},
		{name: "url error", err: &url.Error{Op: "Get", URL: "https://example.com", Err: errors.New("refused")}, want: true},
		{name: "wrapped net error", err: &net.OpError{Op: "dial", Err: fakeNetError{}}, want: true},
		{name: "plain error", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTransient(tt.err); got != tt.want {
				t.Errorf("IsTransient(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
