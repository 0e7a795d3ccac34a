package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&ErrRateLimit{}, KindRateLimit},
		{&ErrProviderUnavailable{}, KindUnavailable},
		{&ErrInvalidResponse{Err: errors.New("x")}, KindInvalid},
		{&ErrMaxTokensExceeded{}, KindMaxTokens},
		{&ErrRequestRejected{Status: 401}, KindRejected},
		{context.Canceled, KindCanceled},
		{fmt.Errorf("generate: %w", context.DeadlineExceeded), KindCanceled},
		{fmt.Errorf("generate: %w", &ErrRateLimit{}), KindRateLimit},
		{errors.New("boom"), KindOther},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Kind(tt.err), "%v", tt.err)
	}
}

func TestFromStatus(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("api")

	h := http.Header{}
	h.Set("Retry-After", "3")
	err := fromStatus(ctx, http.StatusTooManyRequests, h, cause)
	var rl *ErrRateLimit
	if assert.ErrorAs(t, err, &rl) {
		assert.Equal(t, 3*time.Second, rl.RetryAfter)
	}
	assert.ErrorIs(t, err, cause)

	assert.Equal(t, KindUnavailable, Kind(fromStatus(ctx, http.StatusBadGateway, nil, cause)))
	assert.Equal(t, KindUnavailable, Kind(fromStatus(ctx, 0, nil, cause)))
	assert.Equal(t, KindUnavailable, Kind(fromStatus(ctx, http.StatusRequestTimeout, nil, cause)))
	for _, status := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound} {
		err := fromStatus(ctx, status, nil, cause)
		var rej *ErrRequestRejected
		if assert.ErrorAs(t, err, &rej, "status %d", status) {
			assert.Equal(t, status, rej.Status)
		}
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	assert.ErrorIs(t, fromStatus(cancelled, http.StatusBadGateway, nil, cause), context.Canceled)
}

func TestRetryAfter(t *testing.T) {
	assert.Zero(t, retryAfter(nil))
	h := http.Header{}
	h.Set("Retry-After", "Wed, 21 Oct 2015 07:28:00 GMT")
	assert.Zero(t, retryAfter(h))
	h.Set("Retry-After", "12")
	assert.Equal(t, 12*time.Second, retryAfter(h))
}
