package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

var (
	okResp      = MockResponse{Content: json.RawMessage(`{"ok":true}`)}
	downResp    = MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
	invalidResp = MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage(`bad`), Err: errors.New("bad")}}
)

func TestRetry_Attempts(t *testing.T) {
	tests := []struct {
		name      string
		responses []MockResponse
		wantErr   string
		wantCalls int
	}{
		{"first attempt", []MockResponse{okResp}, "", 1},
		{"transient then success", []MockResponse{downResp, okResp}, "", 2},
		{"all attempts fail", []MockResponse{downResp, downResp, downResp}, KindUnavailable, 3},
		{"max tokens not retried", []MockResponse{{Err: &ErrMaxTokensExceeded{}}, okResp}, KindMaxTokens, 1},
		{"rejected request not retried", []MockResponse{{Err: &ErrRequestRejected{Status: 401, Err: errors.New("bad key")}}, okResp}, KindRejected, 1},
		{"invalid response retried once", []MockResponse{invalidResp, invalidResp, okResp}, KindInvalid, 2},
		{"invalid then success", []MockResponse{invalidResp, okResp}, "", 2},
		{"rate limit honors retry-after", []MockResponse{{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}}, okResp}, "", 2},
		{"wrapped outage", []MockResponse{{Err: fmt.Errorf("call: %w", &ErrProviderUnavailable{})}, okResp}, "", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.responses...)
			resp, err := WithRetry(mock, retryConfig()).Generate(context.Background(), Request{})
			assert.Equal(t, tt.wantCalls, mock.CallCount())
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, Kind(err))
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, `{"ok":true}`, string(resp.Content))
		})
	}
}

func TestRetry_ContextCancellation(t *testing.T) {
	mock := NewMockProvider(downResp, downResp, okResp)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := WithRetry(mock, retryConfig()).Generate(ctx, Request{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, mock.CallCount())
}

func TestRetry_Backoff(t *testing.T) {
	r := &RetryProvider{config: RetryConfig{
		InitialWait: 100 * time.Millisecond,
		MaxWait:     300 * time.Millisecond,
		Multiplier:  2,
	}}

	for attempt, base := range []time.Duration{100, 200, 300, 300} {
		base *= time.Millisecond
		got := r.backoff(attempt, errors.New("x"))
		assert.InDelta(t, float64(base), float64(got), float64(base)*0.2+1, "attempt %d", attempt)
	}

	rl := fmt.Errorf("wrapped: %w", &ErrRateLimit{RetryAfter: 7 * time.Second})
	assert.Equal(t, 7*time.Second, r.backoff(0, rl))
}

func TestRetry_Delegates(t *testing.T) {
	p := WithRetry(NewMockProvider(), retryConfig())
	assert.Equal(t, "mock", p.ModelID())
	assert.Equal(t, ProviderMock, p.Name())
}
