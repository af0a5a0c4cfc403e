package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"blog/migrations"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

// migrate applies every pending embedded migration.
func migrate(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(&gooseSlogLogger{logger: logger})
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}

type gooseSlogLogger struct {
	logger *slog.Logger
}

func (l *gooseSlogLogger) Printf(format string, v ...any) {
	l.logger.Info("goose", slog.String("message", fmt.Sprintf(format, v...)))
}

// Fatalf is only reached on unrecoverable goose internals.
func (l *gooseSlogLogger) Fatalf(format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	l.logger.Error("goose", slog.String("message", msg))
	panic(msg)
}
