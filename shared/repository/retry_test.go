package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"hotel/shared/failure"
	"reflect"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

type roomRow struct {
	ID     string `db:"id"`
	Number string `db:"number"`
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "bad connection", err: fmt.Errorf("query: %w", driver.ErrBadConn), expected: true},
		{name: "deadline", err: context.DeadlineExceeded, expected: true},
		{name: "connection exception class", err: &pq.Error{Code: "08006"}, expected: true},
		{name: "unique violation", err: &pq.Error{Code: "23505"}},
		{name: "no rows", err: sql.ErrNoRows},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isTransient(tt.err))
		})
	}
}

func TestClassify(t *testing.T) {
	conflict := classify(fmt.Errorf("insert: %w", &pq.Error{Code: "23505", Detail: "Key (number)=(101) already exists."}))
	assert.True(t, failure.IsStateConflict(conflict))

	malformedID := classify(fmt.Errorf("get: %w", &pq.Error{Code: "22P02", Message: `invalid input syntax for type uuid: "abc"`}))
	assert.True(t, failure.IsNotFound(malformedID))
	assert.False(t, failure.IsUpstream(malformedID))

	upstream := classify(errors.New("connection refused"))
	assert.True(t, failure.IsUpstream(upstream))
	assert.False(t, failure.IsValidation(upstream))
}

func TestRun_RetriesTransientOnce(t *testing.T) {
	repo := Repository[roomRow]{timeout: time.Second}
	attempts := 0

	err := repo.run(context.Background(), func(context.Context) error {
		attempts++

		return driver.ErrBadConn
	})

	assert.ErrorIs(t, err, driver.ErrBadConn)
	assert.Equal(t, 2, attempts)
}

func TestRun_DoesNotRetryPermanent(t *testing.T) {
	repo := Repository[roomRow]{}
	attempts := 0

	err := repo.run(context.Background(), func(context.Context) error {
		attempts++

		return sql.ErrNoRows
	})

	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Equal(t, 1, attempts)
}

func TestRun_AppliesTimeout(t *testing.T) {
	repo := Repository[roomRow]{timeout: 50 * time.Millisecond}

	err := repo.run(context.Background(), func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		assert.True(t, ok)

		return nil
	})

	assert.NoError(t, err)
}

func TestGetColumns(t *testing.T) {
	columns, insertColumns := getColumns("rooms", reflect.TypeOf(roomRow{}))

	assert.Equal(t, []string{"id", "number"}, insertColumns)
	assert.Len(t, columns, 2)
}
