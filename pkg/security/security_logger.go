package security

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of security event
type EventType string

const (
	EventUploadAccepted     EventType = "upload_accepted"
	EventUploadRejected     EventType = "upload_rejected"
	EventContentMismatch    EventType = "content_mismatch"
	EventMalwareDetected    EventType = "malware_detected"
	EventScanFailed         EventType = "scan_failed"
	EventPathTraversal      EventType = "path_traversal"
	EventRateLimitTriggered EventType = "rate_limit_triggered"
	EventFileDeleted        EventType = "file_deleted"
)

// SecurityEvent is one audit record for the upload service.
type SecurityEvent struct {
	Timestamp   time.Time              `json:"timestamp"`
	Service     string                 `json:"service"`
	Environment string                 `json:"env"`
	Level       string                 `json:"level"`
	Severity    Severity               `json:"severity"`
	Event       EventType              `json:"event"`
	Filename    string                 `json:"filename,omitempty"`
	IP          string                 `json:"ip,omitempty"`
	UserAgent   string                 `json:"user_agent,omitempty"`
	RequestID   string                 `json:"request_id,omitempty"`
	Details     map[string]interface{} `json:"details,omitempty"`
}

// SecurityLogger writes security events as structured zap entries.
type SecurityLogger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

var (
	defaultMu     sync.Mutex
	defaultLogger *SecurityLogger
)

// InitSecurityLogger builds the production zap logger and installs it as the default.
func InitSecurityLogger(serviceName, environment string) *SecurityLogger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		logger, _ = zap.NewProduction()
	}

	sl := NewSecurityLogger(logger, serviceName, environment)
	SetDefaultLogger(sl)
	return sl
}

func NewSecurityLogger(zapLogger *zap.Logger, serviceName, environment string) *SecurityLogger {
	if zapLogger == nil {
		zapLogger = zap.NewNop()
	}
	return &SecurityLogger{
		zapLogger:   zapLogger,
		serviceName: serviceName,
		environment: environment,
	}
}

// DefaultLogger returns the installed logger, creating one on first use.
func DefaultLogger() *SecurityLogger {
	defaultMu.Lock()
	sl := defaultLogger
	defaultMu.Unlock()
	if sl == nil {
		return InitSecurityLogger("jobify-backend", getEnvironment())
	}
	return sl
}

func SetDefaultLogger(sl *SecurityLogger) {
	defaultMu.Lock()
	defaultLogger = sl
	defaultMu.Unlock()
}

// Log logs a security event. Level and severity come from the event type.
func (sl *SecurityLogger) Log(ctx context.Context, event SecurityEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	event.Service = sl.serviceName
	event.Environment = sl.environment
	event.Severity = GetSeverity(event.Event)

	level := levelFor(event.Severity)
	event.Level = level.String()

	fields := []zap.Field{
		zap.String("service", event.Service),
		zap.String("env", event.Environment),
		zap.String("event", string(event.Event)),
		zap.String("severity", string(event.Severity)),
	}
	if event.Filename != "" {
		fields = append(fields, zap.String("filename", event.Filename))
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.UserAgent != "" {
		fields = append(fields, zap.String("user_agent", event.UserAgent))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if len(event.Details) > 0 {
		detailsJSON, _ := json.Marshal(event.Details)
		fields = append(fields, zap.String("details", string(detailsJSON)))
	}

	sl.zapLogger.Log(level, string(event.Event), fields...)
}

// LogUploadRejected records an upload refused before it was kept. The
// client's original filename is hashed since it often carries a person's name.
func (sl *SecurityLogger) LogUploadRejected(ctx context.Context, event EventType, originalName, requestID, reason string) {
	sl.Log(ctx, SecurityEvent{
		Event:     event,
		RequestID: requestID,
		Details: map[string]interface{}{
			"original_name_hash": HashValue(originalName),
			"reason":             reason,
		},
	})
}

func (sl *SecurityLogger) LogMalwareDetected(ctx context.Context, filename, requestID, scanner, threat string) {
	sl.Log(ctx, SecurityEvent{
		Event:     EventMalwareDetected,
		Filename:  filename,
		RequestID: requestID,
		Details:   map[string]interface{}{"scanner": scanner, "threat": threat},
	})
}

// LogPathTraversal records a filename that tried to leave the upload directory.
func (sl *SecurityLogger) LogPathTraversal(ctx context.Context, filename, requestID, operation string) {
	sl.Log(ctx, SecurityEvent{
		Event:     EventPathTraversal,
		RequestID: requestID,
		Details: map[string]interface{}{
			"operation":     operation,
			"filename_hash": HashValue(filename),
		},
	})
}

func (sl *SecurityLogger) LogRateLimitTriggered(ctx context.Context, ip, userAgent, requestID, endpoint string) {
	sl.Log(ctx, SecurityEvent{
		Event:     EventRateLimitTriggered,
		IP:        ip,
		UserAgent: userAgent,
		RequestID: requestID,
		Details:   map[string]interface{}{"endpoint": endpoint},
	})
}

// Sync flushes any buffered log entries
func (sl *SecurityLogger) Sync() error {
	return sl.zapLogger.Sync()
}

// HashValue creates a SHA256 hash of a value (for logging without PII)
func HashValue(value string) string {
	hash := sha256.Sum256([]byte(value))
	return hex.EncodeToString(hash[:8])
}

func levelFor(s Severity) zapcore.Level {
	switch s {
	case SeverityINFO:
		return zapcore.InfoLevel
	case SeverityHIGH, SeverityCRITICAL:
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

func getEnvironment() string {
	if os.Getenv("GIN_MODE") == "release" {
		return "production"
	}
	return "development"
}
