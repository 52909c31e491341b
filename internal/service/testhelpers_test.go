package service

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger(t *testing.T) (*zap.Logger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.WarnLevel)
	return zap.New(core), logs
}

func skippedLines(logs *observer.ObservedLogs) []observer.LoggedEntry {
	return logs.FilterMessage("skipped input line").All()
}
