package repository

import (
	"context"
	"errors"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		transient bool
	}{
		{name: "nil", err: nil, transient: false},
		{name: "connection reset errno", err: syscall.ECONNRESET, transient: true},
		{name: "connection refused text", err: errors.New("dial tcp 10.0.0.5:5432: connect: connection refused"), transient: true},
		{name: "backend terminated", err: errors.New("FATAL: terminating connection due to administrator command"), transient: true},
		{name: "statement timeout", err: errors.New("ERROR: canceling statement due to statement timeout"), transient: true},
		{name: "constraint violation", err: errors.New("ERROR: duplicate key value violates unique constraint"), transient: false},
		{name: "plain failure", err: errors.New("some business failure"), transient: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.transient, isTransient(tt.err))
		})
	}
}

func TestWithRetryRepeatsTransientOnce(t *testing.T) {
	var attempts int
	err := withRetry(context.Background(), func() error {
		attempts++
		if attempts == 1 {
			return syscall.ECONNRESET
		}
		return nil
	})

	require.NoError(t, err, "second attempt succeeded, so no error must surface")
	assert.Equal(t, 2, attempts, "transient failure must be retried exactly once")
}

func TestWithRetryGivesUpAfterSecondFailure(t *testing.T) {
	var attempts int
	err := withRetry(context.Background(), func() error {
		attempts++
		return syscall.ECONNREFUSED
	})

	require.Error(t, err, "error must surface after the retry")
	assert.Equal(t, 2, attempts, "only one retry is allowed")
}

func TestWithRetryDoesNotRepeatPermanentFailure(t *testing.T) {
	permanent := errors.New("duplicate key value violates unique constraint")

	var attempts int
	err := withRetry(context.Background(), func() error {
		attempts++
		return permanent
	})

	require.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, attempts, "permanent failure must not be retried")
}

func TestWithRetryHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var attempts int
	err := withRetry(ctx, func() error {
		attempts++
		return syscall.ECONNRESET
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts, "cancelled context must stop the retry")
}
