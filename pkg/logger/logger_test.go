package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/noah-isme/sma-grade-report/pkg/config"
)

func TestNewHonoursLevel(t *testing.T) {
	cfg := &config.Config{Env: config.EnvProduction, Log: config.LogConfig{Level: "warn", Format: "json"}}

	l, err := New(cfg)
	require.NoError(t, err)
	require.False(t, l.Core().Enabled(zapcore.InfoLevel))
	require.True(t, l.Core().Enabled(zapcore.WarnLevel))
}

func TestNewFallsBackToInfoOnBadLevel(t *testing.T) {
	cfg := &config.Config{Env: config.EnvDevelopment, Log: config.LogConfig{Level: "loud", Format: "console"}}

	l, err := New(cfg)
	require.NoError(t, err)
	require.True(t, l.Core().Enabled(zapcore.InfoLevel))
	require.False(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestBuildConfigForBatchRuns(t *testing.T) {
	for _, env := range []string{config.EnvDevelopment, config.EnvProduction} {
		t.Run(env, func(t *testing.T) {
			zapCfg := buildConfig(&config.Config{Env: env, Log: config.LogConfig{Format: "json"}})

			assert.True(t, zapCfg.DisableStacktrace)
			assert.Nil(t, zapCfg.Sampling)
			assert.Equal(t, []string{"stderr"}, zapCfg.OutputPaths)
			assert.Equal(t, "json", zapCfg.Encoding)
			assert.Equal(t, AppName, zapCfg.InitialFields["app"])
		})
	}
}

func TestForRunAttachesRunID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	ForRun(zap.New(core), "run-1").Warn("skipped input line")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "run-1", logs.All()[0].ContextMap()["run_id"])
}

func TestForRunNilLogger(t *testing.T) {
	assert.NotPanics(t, func() { ForRun(nil, "run-1").Info("ignored") })
}
