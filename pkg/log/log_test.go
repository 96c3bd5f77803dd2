package log

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestSetup(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	tests := []struct {
		name  string
		level string
		want  logrus.Level
	}{
		{"debug", "debug", logrus.DebugLevel},
		{"warn", "warn", logrus.WarnLevel},
		{"inválido cai para info", "verbose", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Setup(tt.level)
			assert.Equal(t, tt.want, logrus.GetLevel())
		})
	}
}

func TestForContext(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	defer logrus.SetOutput(os.Stderr)
	Setup("info")
	defer Setup("info")

	ctx, correlationID := WithCorrelationID(context.Background())
	ctx = WithRunID(ctx, "run123")

	ForContext(ctx).WithField("brief", "acme.xlsx").Info("ok")

	out := buf.String()
	assert.Contains(t, out, correlationID)
	assert.Contains(t, out, `"run_id":"run123"`)
	assert.Contains(t, out, `"brief":"acme.xlsx"`)
}

func TestKeep(t *testing.T) {
	t.Setenv("APP_ENV", "dev")

	tests := []struct {
		key  string
		want bool
	}{
		{"correlation_id", true},
		{"run_id", true},
		{"brief_name", true},
		{"checker", true},
		{"user_agent", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, keep(tt.key))
		})
	}

	t.Setenv("APP_ENV", "production")
	assert.True(t, keep("user_agent"))
}
