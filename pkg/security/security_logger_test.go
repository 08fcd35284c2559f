package security

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger() (*SecurityLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewSecurityLogger(zap.New(core), "jobify-backend", "test"), logs
}

func TestSecurityLoggerLevels(t *testing.T) {
	sl, logs := observedLogger()
	ctx := context.Background()

	sl.Log(ctx, SecurityEvent{Event: EventUploadAccepted, Filename: "cv_1.pdf"})
	sl.LogRateLimitTriggered(ctx, "10.0.0.1", "curl", "req-1", "/api/upload-cv")
	sl.LogMalwareDetected(ctx, "cv_2.pdf", "req-2", "clamav", "Eicar-Test-Signature")

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)

	fields := entries[2].ContextMap()
	assert.Equal(t, "malware_detected", entries[2].Message)
	assert.Equal(t, "CRITICAL", fields["severity"])
	assert.Equal(t, "req-2", fields["request_id"])
	assert.Contains(t, fields["details"], "Eicar-Test-Signature")
}

func TestSecurityLoggerHashesNames(t *testing.T) {
	sl, logs := observedLogger()

	sl.LogUploadRejected(context.Background(), EventUploadRejected, "Jane Doe Resume.exe", "req-1", "file extension not allowed")
	sl.LogPathTraversal(context.Background(), "../../etc/passwd", "req-2", "open")

	for _, e := range logs.All() {
		details := e.ContextMap()["details"].(string)
		assert.NotContains(t, details, "Jane Doe")
		assert.NotContains(t, details, "passwd")
	}
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[1].Level)
}

func TestGetSeverity(t *testing.T) {
	assert.Equal(t, SeverityCRITICAL, GetSeverity(EventMalwareDetected))
	assert.Equal(t, SeverityMEDIUM, GetSeverity(EventType("unknown")))
	assert.True(t, IsHighOrAbove(EventPathTraversal))
	assert.False(t, IsHighOrAbove(EventUploadRejected))
	assert.Len(t, HashValue("x"), 16)
}
