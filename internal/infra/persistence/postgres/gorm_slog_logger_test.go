package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"storerate/config"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newCapturedQueryLogger(debug bool) (gormlogger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(logger, cfg), &buf
}

func selectOne() (string, int64) {
	return "SELECT * FROM users WHERE id = 1", 1
}

func TestQueryLogger_FailedQuery(t *testing.T) {
	l, buf := newCapturedQueryLogger(false)

	l.Trace(context.Background(), time.Now(), selectOne, assert.AnError)

	assert.Contains(t, buf.String(), "query failed")
	assert.Contains(t, buf.String(), "SELECT * FROM users")
}

func TestQueryLogger_RecordNotFoundIsNotAFailure(t *testing.T) {
	l, buf := newCapturedQueryLogger(false)

	l.Trace(context.Background(), time.Now(), selectOne, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestQueryLogger_SlowQuery(t *testing.T) {
	l, buf := newCapturedQueryLogger(false)

	l.Trace(context.Background(), time.Now().Add(-time.Second), selectOne, nil)

	assert.Contains(t, buf.String(), "slow query")
}

func TestQueryLogger_FastQuerySilentUnlessDebug(t *testing.T) {
	l, buf := newCapturedQueryLogger(false)
	l.Trace(context.Background(), time.Now(), selectOne, nil)
	assert.Empty(t, buf.String())

	l, buf = newCapturedQueryLogger(true)
	l.Trace(context.Background(), time.Now(), selectOne, nil)
	assert.Contains(t, buf.String(), "SELECT * FROM users")
}

func TestQueryLogger_SilentModeSuppressesErrors(t *testing.T) {
	l, buf := newCapturedQueryLogger(false)

	l.LogMode(gormlogger.Silent).Trace(context.Background(), time.Now(), selectOne, assert.AnError)

	assert.Empty(t, buf.String())
}
