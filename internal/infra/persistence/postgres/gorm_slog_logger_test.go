package postgres

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"blog/config"
	deliverycontext "blog/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func query(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormSlogLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{Postgres: &config.PostgresConfig{SlowQuery: 10 * time.Millisecond}}
	l := newGormSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)), cfg)
	ctx := context.Background()

	l.Trace(ctx, time.Now(), query("SELECT 1"), nil)
	assert.Zero(t, buf.Len(), "fast queries are silent outside debug")

	l.Trace(ctx, time.Now(), query("SELECT 2"), gorm.ErrRecordNotFound)
	assert.Zero(t, buf.Len(), "missing rows are not failures")

	l.Trace(ctx, time.Now(), query("SELECT 3"), errors.New("boom"))
	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "SELECT 3")
	buf.Reset()

	l.Trace(ctx, time.Now().Add(-time.Second), query("SELECT 4"), nil)
	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.NewJSONHandler(&base, nil)), nil).LogMode(logger.Info)

	reqLogger := slog.New(slog.NewJSONHandler(&scoped, nil)).With(slog.String("request_id", "req-9"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), query("SELECT 1"), nil)
	assert.Zero(t, base.Len())
	assert.Contains(t, scoped.String(), `"request_id":"req-9"`)
}

func TestGormSlogLogger_Silent(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)), nil).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now(), query("SELECT 1"), errors.New("boom"))
	l.Error(context.Background(), "oops %d", 1)
	assert.Zero(t, buf.Len())
}
