// Package migrations holds the PostgreSQL schema of the ledger.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-movie-ledger/internal/logger"
)

//go:embed *.sql
var files embed.FS

// Apply runs every embedded script in file name order. Scripts are idempotent.
func Apply(ctx context.Context, db *sqlx.DB) error {
	names, err := fs.Glob(files, "*.sql")
	if err != nil {
		return err
	}
	sort.Strings(names)

	for _, name := range names {
		script, err := files.ReadFile(name)
		if err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, string(script)); err != nil {
			return fmt.Errorf("apply %s: %w", name, err)
		}
		logger.Log.Infow("migration applied", "file", name)
	}
	return nil
}
