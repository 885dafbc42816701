package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"net"

	"github.com/cenkalti/backoff/v5"
	"github.com/lib/pq"
)

// run executes op under the per-statement timeout. A transient failure is retried once.
func (repo *Repository[T]) run(ctx context.Context, op func(ctx context.Context) error) error {
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		queryCtx, cancel := repo.withTimeout(ctx)
		defer cancel()

		err := op(queryCtx)
		if err != nil && !isTransient(err) {
			return struct{}{}, backoff.Permanent(err)
		}

		return struct{}{}, err
	},
		backoff.WithMaxTries(constant.RetryMaxTries),
		backoff.WithBackOff(backoff.NewConstantBackOff(constant.RetryWaitTime)),
	)

	return err //nolint:wrapcheck
}

func (repo *Repository[T]) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if repo.timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, repo.timeout)
}

func isTransient(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Class() == constant.PqErrorClassConnection
	}

	var netErr net.Error

	return errors.As(err, &netErr)
}

// classify maps a storage error onto the failure taxonomy. Unique violations are
// conflicts with existing data. A malformed key cannot match any row, so it is
// reported as not found. Everything else is an upstream failure.
func classify(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case constant.PqErrorCodeUniqueViolation:
			return failure.Conflict(pqErr.Detail)
		case constant.PqErrorCodeFkViolation:
			return failure.BadRequestFromString(pqErr.Detail)
		case constant.PqErrorCodeInvalidText:
			return failure.NotFound("record not found")
		}
	}

	return failure.Upstream(err)
}
