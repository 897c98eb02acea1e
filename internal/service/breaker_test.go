package service

import (
	"errors"
	"testing"
	"time"

	"marketplace-settlement/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBreaker(threshold int, reset time.Duration) (*CircuitBreaker, *time.Time) {
	b := NewCircuitBreaker(threshold, reset)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }
	return b, &now
}

func TestBreaker_OpensAtThreshold(t *testing.T) {
	b, _ := newTestBreaker(3, time.Minute)

	for i := 0; i < 3; i++ {
		require.NoError(t, b.Allow())
		b.RecordFailure()
	}
	assert.Equal(t, BreakerOpen, b.State())

	err := b.Allow()
	require.Error(t, err)
	assert.Equal(t, "SYS_002", apperror.Code(err))
}

func TestBreaker_AdvertisesRetryAfter(t *testing.T) {
	b, _ := newTestBreaker(1, 60*time.Second)

	require.NoError(t, b.Allow())
	b.RecordFailure()

	err := b.Allow()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	details, ok := appErr.Details.(map[string]int64)
	require.True(t, ok)
	assert.Greater(t, details["retry_after"], int64(0))
	assert.LessOrEqual(t, details["retry_after"], int64(61))
}

func TestBreaker_SuccessResetsConsecutiveFailures(t *testing.T) {
	b, _ := newTestBreaker(3, time.Minute)

	b.RecordFailure()
	b.RecordFailure()
	b.RecordSuccess()
	b.RecordFailure()
	b.RecordFailure()

	assert.Equal(t, BreakerClosed, b.State(), "non-consecutive failures must not trip")
	b.RecordFailure()
	assert.Equal(t, BreakerOpen, b.State())
}

func TestBreaker_HalfOpenAfterTimeout(t *testing.T) {
	b, now := newTestBreaker(1, time.Minute)

	require.NoError(t, b.Allow())
	b.RecordFailure()
	require.Error(t, b.Allow())

	*now = now.Add(61 * time.Second)
	assert.NoError(t, b.Allow(), "probe is admitted after the cool-down")
	assert.Equal(t, BreakerHalfOpen, b.State())
}

func TestBreaker_TwoProbeSuccessesClose(t *testing.T) {
	b, now := newTestBreaker(1, time.Minute)

	require.NoError(t, b.Allow())
	b.RecordFailure()
	*now = now.Add(2 * time.Minute)

	require.NoError(t, b.Allow())
	b.RecordSuccess()
	assert.Equal(t, BreakerHalfOpen, b.State(), "one success is not trusted")

	require.NoError(t, b.Allow())
	b.RecordSuccess()
	assert.Equal(t, BreakerClosed, b.State())
}

func TestBreaker_HalfOpenProbeBurstBounded(t *testing.T) {
	b, now := newTestBreaker(1, time.Minute)

	require.NoError(t, b.Allow())
	b.RecordFailure()
	*now = now.Add(2 * time.Minute)

	// A burst arrives right after the cool-down, before any probe
	// reports an outcome. Only a bounded number may pass.
	require.NoError(t, b.Allow())
	require.NoError(t, b.Allow())
	for i := 0; i < 5; i++ {
		err := b.Allow()
		require.Error(t, err)
		assert.Equal(t, "SYS_002", apperror.Code(err))
	}

	// An outcome frees a probe slot.
	b.RecordSuccess()
	assert.NoError(t, b.Allow())
}

func TestBreaker_HalfOpenFailureReopens(t *testing.T) {
	b, now := newTestBreaker(1, time.Minute)

	require.NoError(t, b.Allow())
	b.RecordFailure()
	*now = now.Add(2 * time.Minute)

	require.NoError(t, b.Allow())
	b.RecordFailure()

	assert.Equal(t, BreakerOpen, b.State())
	assert.Error(t, b.Allow())
}

func TestBreaker_ManualReset(t *testing.T) {
	b, _ := newTestBreaker(1, time.Hour)

	require.NoError(t, b.Allow())
	b.RecordFailure()
	require.Error(t, b.Allow())

	b.Reset()
	assert.Equal(t, BreakerClosed, b.State())
	assert.NoError(t, b.Allow())
}

func TestBreaker_CountsTotalCalls(t *testing.T) {
	b, _ := newTestBreaker(1, time.Minute)

	_ = b.Allow()
	b.RecordFailure()
	_ = b.Allow() // rejected, still counted

	assert.Equal(t, int64(2), b.TotalCalls())
}
