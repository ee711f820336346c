package db

import (
	"bytes"
	"io/fs"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mailcamp/db/migrations"
)

func TestEmbeddedMigrationsMatchVersion(t *testing.T) {
	names, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"000001_campaign_documents.up.sql",
		"000001_campaign_documents.down.sql",
	}, names)
	assert.Equal(t, 1, migrations.Version)
}

func TestMigrationLog(t *testing.T) {
	var buf bytes.Buffer
	l := migrationLog{logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))}
	l.Printf("Start buffering %d/u %s\n", 1, "campaign_documents")
	assert.Contains(t, buf.String(), "Start buffering 1/u campaign_documents")
	assert.Contains(t, buf.String(), "component=migrate")
	assert.False(t, l.Verbose())
}

func TestMigrateRejectsBadAddress(t *testing.T) {
	err := Migrate("://not-a-url", slog.New(slog.DiscardHandler))
	assert.Error(t, err)
}
