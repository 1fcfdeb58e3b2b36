package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := Build(&buf, Options{
		Level: "warn",
		Attrs: []slog.Attr{slog.String("service", "catalog")},
	})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "sku", "123")

	assert.NotContains(t, buf.String(), "hidden")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "shown", record["msg"])
	assert.Equal(t, "123", record["sku"])
	assert.Equal(t, "catalog", record["service"])
	assert.NotContains(t, record, slog.SourceKey)
}

func TestBuild_PrettyWithSource(t *testing.T) {
	var buf bytes.Buffer
	logger, err := Build(&buf, Options{Level: "DEBUG", Pretty: true, AddSource: true})
	require.NoError(t, err)

	logger.Debug("visible")

	assert.Contains(t, buf.String(), "msg=visible")
	assert.Contains(t, buf.String(), "source=")
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "", want: slog.LevelInfo},
		{input: "debug", want: slog.LevelDebug},
		{input: " Warning ", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseLogLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
