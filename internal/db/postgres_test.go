package db

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mailcamp/internal/config/configs"
	"mailcamp/internal/core/domain"
)

func TestLazyPoolRetriesAfterFailure(t *testing.T) {
	calls := 0
	lazy := NewLazyPool(configs.Postgres{})
	lazy.connect = func(context.Context, configs.Postgres) (*pgxpool.Pool, error) {
		calls++
		return nil, errors.New("connection refused")
	}

	_, err := lazy.Pool(context.Background())
	var su *domain.StoreUnavailableError
	require.ErrorAs(t, err, &su)
	assert.Equal(t, "connect", su.Op)

	_, err = lazy.Pool(context.Background())
	require.Error(t, err)
	assert.Equal(t, 2, calls, "a failed attempt is retried on the next call")

	lazy.Close()
}
