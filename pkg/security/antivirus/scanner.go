// Package antivirus scans uploaded CV files before they are accepted.
package antivirus

import (
	"context"
	"io"
)

// ScanResult contains the result of a malware scan
type ScanResult struct {
	Infected    bool   // True if malware was detected
	ThreatName  string // Name of detected threat (empty if clean)
	ScannerName string
	Error       error
}

// Scanner checks file content for malware. Implementations fail closed: a
// scan that errors reports Infected=true.
type Scanner interface {
	Scan(ctx context.Context, filename string, data io.Reader) ScanResult
	Name() string
}

// NoOpScanner accepts everything. It is used when no clamd address is configured.
type NoOpScanner struct{}

var _ Scanner = (*NoOpScanner)(nil)

func NewNoOpScanner() *NoOpScanner {
	return &NoOpScanner{}
}

func (n *NoOpScanner) Scan(ctx context.Context, filename string, data io.Reader) ScanResult {
	return ScanResult{ScannerName: n.Name()}
}

func (n *NoOpScanner) Name() string {
	return "noop"
}

// New returns a clamd scanner for address, or a no-op scanner when address is empty.
func New(address string) Scanner {
	if address == "" {
		return NewNoOpScanner()
	}
	return NewClamAVScanner(address, 0)
}
