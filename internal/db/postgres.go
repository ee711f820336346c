package db

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"

	"mailcamp/internal/config/configs"
	"mailcamp/internal/core/domain"
)

// NewPostgresPool creates a pgxpool.Pool from cfg and verifies it by
// pinging the database within cfg.ConnectTimeout. If pinging fails the
// pool is closed and an error is returned. The caller must close the
// returned pool when it is no longer needed.
func NewPostgresPool(ctx context.Context, cfg configs.Postgres) (*pgxpool.Pool, error) {
	poolConf, err := pgxpool.ParseConfig(cfg.Addr.String())
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConf)
	if err != nil {
		return nil, err
	}

	ctxPing, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err = pool.Ping(ctxPing); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// LazyPool establishes the Postgres pool on first use and hands the same
// pool to every later caller. A failed attempt is not remembered, so the
// next call tries again.
type LazyPool struct {
	cfg     configs.Postgres
	connect func(context.Context, configs.Postgres) (*pgxpool.Pool, error)

	mu   sync.Mutex
	pool *pgxpool.Pool
}

// NewLazyPool returns a LazyPool that connects with cfg.
func NewLazyPool(cfg configs.Postgres) *LazyPool {
	return &LazyPool{cfg: cfg, connect: NewPostgresPool}
}

// Pool returns the shared pool, connecting if needed. Connection failures
// are reported as *domain.StoreUnavailableError.
func (l *LazyPool) Pool(ctx context.Context) (*pgxpool.Pool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pool != nil {
		return l.pool, nil
	}
	pool, err := l.connect(ctx, l.cfg)
	if err != nil {
		return nil, &domain.StoreUnavailableError{Op: "connect", Err: err}
	}
	l.pool = pool
	return pool, nil
}

// Close releases the pool if one was established.
func (l *LazyPool) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pool != nil {
		l.pool.Close()
		l.pool = nil
	}
}
