package db

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"mailcamp/db/migrations"
)

// Migrate moves the campaign document schema at addr to
// migrations.Version. A schema left dirty by an interrupted run is
// reported, never forced.
func Migrate(addr string, logger *slog.Logger) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, addr)
	if err != nil {
		_ = src.Close()
		return fmt.Errorf("connect for migrations: %w", err)
	}
	defer m.Close()
	m.Log = migrationLog{logger: logger}

	from, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		from = 0
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	case dirty:
		return fmt.Errorf("schema version %d is dirty", from)
	}

	if err = m.Migrate(migrations.Version); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return fmt.Errorf("migrate schema %d -> %d: %w", from, migrations.Version, err)
	}
	logger.Info("schema migrated", slog.Uint64("from", uint64(from)), slog.Uint64("to", migrations.Version))
	return nil
}

// migrationLog routes golang-migrate output to slog at debug level.
type migrationLog struct {
	logger *slog.Logger
}

func (l migrationLog) Printf(format string, v ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)), slog.String("component", "migrate"))
}

func (l migrationLog) Verbose() bool { return false }
