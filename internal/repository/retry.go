package repository

import (
	"context"
	"errors"
	"net"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgconn"
	"github.com/sirupsen/logrus"
)

// The deployment target runs against a remote database over a flaky link;
// connectivity-class failures get exactly one retry after a short pause.
// Anything beyond that is the caller's problem.
const transientRetryDelay = 250 * time.Millisecond

var transientSignatures = []string{
	"connection reset",
	"connection refused",
	"broken pipe",
	"terminat",
	"timeout",
}

func isTransient(err error) bool {
	if err == nil {
		return false
	}

	if pgconn.Timeout(err) || pgconn.SafeToRetry(err) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	for _, errno := range []syscall.Errno{syscall.ECONNRESET, syscall.ECONNREFUSED, syscall.EPIPE, syscall.ETIMEDOUT} {
		if errors.Is(err, errno) {
			return true
		}
	}

	msg := strings.ToLower(err.Error())
	for _, sig := range transientSignatures {
		if strings.Contains(msg, sig) {
			return true
		}
	}
	return false
}

// withRetry runs op and repeats it once after transientRetryDelay when it
// fails with a recognized transient signature.
func withRetry(ctx context.Context, op func() error) error {
	err := op()
	if err == nil || !isTransient(err) {
		return err
	}

	logrus.Warnf("transient database error, retrying once: %v", err)

	select {
	case <-time.After(transientRetryDelay):
	case <-ctx.Done():
		return ctx.Err()
	}
	return op()
}
