package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"wearsync/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_RedactsTokens(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.ServiceName = "wearsync"
	cfg.Env.Log.Level = "debug"

	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	logger.Info("token stored", slog.String("access_token", "secret"), slog.String("userID", "u1"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, redacted, line["access_token"])
	assert.Equal(t, "u1", line["userID"])
	assert.Equal(t, "wearsync", line["service"])
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "", want: slog.LevelInfo},
		{in: "WARNING", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "loud", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
