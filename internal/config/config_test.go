package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	conf, err := Load(nil, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "warn", conf.LogLevel)
	assert.Equal(t, "human", conf.PlayerX)
	assert.Equal(t, "human", conf.PlayerO)
	assert.Equal(t, "x", conf.First)
	assert.False(t, conf.ShowEval)
	assert.False(t, conf.NoColor)
	assert.Equal(t, "tictactoe", conf.Telemetry.ServiceName)
}

func TestLoadArgs(t *testing.T) {
	conf, err := Load([]string{"-show-eval", "-seed", "42", "-no-color", "-first", "O", "eval", "rs"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "eval", conf.PlayerX)
	assert.Equal(t, "rs", conf.PlayerO)
	assert.True(t, conf.ShowEval)
	assert.Equal(t, uint64(42), conf.Seed)
	assert.True(t, conf.NoColor)
	assert.Equal(t, "o", conf.First)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("TTT_PLAYER_O", "hard")
	t.Setenv("TTT_LOG_LEVEL", "debug")
	t.Setenv("TTT_OTLP_ENDPOINT", "collector:4317")

	conf, err := Load([]string{"random"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "random", conf.PlayerX)
	assert.Equal(t, "hard", conf.PlayerO)
	assert.Equal(t, "debug", conf.LogLevel)
	assert.Equal(t, "collector:4317", conf.Telemetry.OTLPEndpoint)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := []byte("log-level: info\nplayer-x: e\nplayer-o: r\nfirst: random\ntelemetry:\n  service-name: ttt-test\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	conf, err := Load([]string{"-config", path, "-log-level", "error"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "error", conf.LogLevel, "flags override the file")
	assert.Equal(t, "e", conf.PlayerX)
	assert.Equal(t, "r", conf.PlayerO)
	assert.Equal(t, "random", conf.First)
	assert.Equal(t, "ttt-test", conf.Telemetry.ServiceName)
}

func TestLoadFileBooleans(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantNoColor  bool
		wantShowEval bool
	}{
		{name: "defaults", content: "first: x\n"},
		{name: "color off", content: "no-color: true\n", wantNoColor: true},
		{name: "show eval", content: "show-eval: true\n", wantShowEval: true},
		{name: "explicit defaults", content: "no-color: false\nshow-eval: false\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			conf, err := Load([]string{"-config", path}, io.Discard)
			require.NoError(t, err)
			assert.Equal(t, tt.wantNoColor, conf.NoColor)
			assert.Equal(t, tt.wantShowEval, conf.ShowEval)
		})
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown player type", args: []string{"eval", "alphazero"}},
		{name: "too many players", args: []string{"h", "h", "h"}},
		{name: "bad first player", args: []string{"-first", "z"}},
		{name: "bad log level", args: []string{"-log-level", "trace"}},
		{name: "unknown flag", args: []string{"-turbo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args, io.Discard)
			assert.Error(t, err)
		})
	}
}
