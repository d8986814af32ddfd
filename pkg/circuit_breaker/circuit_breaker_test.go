package circuit_breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Astemirdum/biblioteca-service/pkg/circuit_breaker"
	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	successfulService := func() error {
		return nil
	}
	errService := errors.New("service error")
	failingService := func() error {
		return errService
	}

	cb := circuit_breaker.New(10, 50*time.Millisecond, 0.30, 3)

	for i := 0; i < 20; i++ {
		require.NoError(t, cb.Call(successfulService))
	}

	// trip the breaker
	for i := 0; i < 10; i++ {
		err := cb.Call(failingService)
		require.Error(t, err)
	}
	require.ErrorIs(t, cb.Call(successfulService), circuit_breaker.ErrOpenCB)

	// half-open after the timeout, then recover
	time.Sleep(60 * time.Millisecond)
	for i := 0; i < 5; i++ {
		require.NoError(t, cb.Call(successfulService))
	}
	require.NoError(t, cb.Call(successfulService))

	// a failure in half-open reopens immediately
	cb.Reset()
	for i := 0; i < 10; i++ {
		_ = cb.Call(failingService)
	}
	time.Sleep(60 * time.Millisecond)
	require.ErrorIs(t, cb.Call(failingService), errService)
	require.ErrorIs(t, cb.Call(successfulService), circuit_breaker.ErrOpenCB)
}
