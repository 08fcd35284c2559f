package antivirus

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"time"
)

const chunkSize = 64 * 1024

// ClamAVScanner streams files to a clamd daemon with the zINSTREAM command.
type ClamAVScanner struct {
	address string        // TCP address (host:port) or Unix socket path
	timeout time.Duration // Connection and scan timeout
}

var _ Scanner = (*ClamAVScanner)(nil)

// NewClamAVScanner creates a ClamAV scanner.
// address: TCP "localhost:3310" or Unix socket "/var/run/clamav/clamd.sock"
func NewClamAVScanner(address string, timeout time.Duration) *ClamAVScanner {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ClamAVScanner{
		address: address,
		timeout: timeout,
	}
}

func (c *ClamAVScanner) Name() string {
	return "clamav"
}

func (c *ClamAVScanner) network() string {
	if strings.HasPrefix(c.address, "/") {
		return "unix"
	}
	return "tcp"
}

// Scan sends data to clamd in chunks and parses the verdict.
func (c *ClamAVScanner) Scan(ctx context.Context, filename string, data io.Reader) ScanResult {
	result := ScanResult{ScannerName: c.Name()}
	fail := func(err error) ScanResult {
		result.Infected = true
		result.Error = err
		return result
	}

	dialer := net.Dialer{Timeout: c.timeout}
	conn, err := dialer.DialContext(ctx, c.network(), c.address)
	if err != nil {
		return fail(fmt.Errorf("failed to connect to clamd: %w", err))
	}
	defer conn.Close()

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	_ = conn.SetDeadline(deadline)

	if _, err := conn.Write([]byte("zINSTREAM\x00")); err != nil {
		return fail(fmt.Errorf("failed to send command: %w", err))
	}

	buf := make([]byte, chunkSize)
	size := make([]byte, 4)
	for {
		n, rerr := data.Read(buf)
		if n > 0 {
			binary.BigEndian.PutUint32(size, uint32(n))
			if _, err := conn.Write(size); err != nil {
				return fail(fmt.Errorf("failed to send chunk size: %w", err))
			}
			if _, err := conn.Write(buf[:n]); err != nil {
				return fail(fmt.Errorf("failed to send chunk: %w", err))
			}
		}
		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			return fail(fmt.Errorf("failed to read %s: %w", filename, rerr))
		}
	}

	// zero-length chunk ends the stream
	if _, err := conn.Write([]byte{0, 0, 0, 0}); err != nil {
		return fail(fmt.Errorf("failed to send end marker: %w", err))
	}

	reply, err := io.ReadAll(io.LimitReader(conn, 1024))
	if err != nil && len(reply) == 0 {
		return fail(fmt.Errorf("failed to read response: %w", err))
	}

	infected, threat, err := parseReply(string(reply))
	result.Infected = infected
	result.ThreatName = threat
	result.Error = err
	return result
}

// parseReply interprets "stream: OK", "stream: <name> FOUND" and "... ERROR".
func parseReply(reply string) (infected bool, threat string, err error) {
	reply = strings.TrimRight(strings.TrimSpace(reply), "\x00")
	switch {
	case strings.HasSuffix(reply, "FOUND"):
		threat = strings.TrimSuffix(reply, "FOUND")
		if i := strings.Index(threat, ":"); i >= 0 {
			threat = threat[i+1:]
		}
		return true, strings.TrimSpace(threat), nil
	case strings.HasSuffix(reply, "OK"):
		return false, "", nil
	default:
		return true, "", fmt.Errorf("scan error: %s", reply)
	}
}
