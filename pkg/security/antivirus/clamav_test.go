package antivirus

import (
	"bufio"
	"context"
	"encoding/binary"
	"io"
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReply(t *testing.T) {
	tests := []struct {
		reply    string
		infected bool
		threat   string
		wantErr  bool
	}{
		{reply: "stream: OK\x00", infected: false},
		{reply: "stream: Eicar-Test-Signature FOUND\x00", infected: true, threat: "Eicar-Test-Signature"},
		{reply: "INSTREAM size limit exceeded. ERROR\x00", infected: true, wantErr: true},
		{reply: "", infected: true, wantErr: true},
	}

	for _, tt := range tests {
		infected, threat, err := parseReply(tt.reply)
		assert.Equal(t, tt.infected, infected, tt.reply)
		assert.Equal(t, tt.threat, threat, tt.reply)
		assert.Equal(t, tt.wantErr, err != nil, tt.reply)
	}
}

// fakeClamd accepts one zINSTREAM session, collects the streamed bytes and
// answers with reply.
func fakeClamd(t *testing.T, reply string) (string, <-chan string) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	got := make(chan string, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		r := bufio.NewReader(conn)
		cmd, err := r.ReadString(0)
		if err != nil || cmd != "zINSTREAM\x00" {
			got <- "bad command: " + cmd
			return
		}

		var sb strings.Builder
		size := make([]byte, 4)
		for {
			if _, err := io.ReadFull(r, size); err != nil {
				return
			}
			n := binary.BigEndian.Uint32(size)
			if n == 0 {
				break
			}
			chunk := make([]byte, n)
			if _, err := io.ReadFull(r, chunk); err != nil {
				return
			}
			sb.Write(chunk)
		}
		got <- sb.String()
		_, _ = conn.Write([]byte(reply))
	}()
	return ln.Addr().String(), got
}

func TestClamAVScanner(t *testing.T) {
	t.Run("clean file", func(t *testing.T) {
		addr, got := fakeClamd(t, "stream: OK\x00")
		res := NewClamAVScanner(addr, 0).Scan(context.Background(), "cv.pdf", strings.NewReader("%PDF-1.4"))

		assert.NoError(t, res.Error)
		assert.False(t, res.Infected)
		assert.Equal(t, "clamav", res.ScannerName)
		assert.Equal(t, "%PDF-1.4", <-got)
	})

	t.Run("infected file", func(t *testing.T) {
		addr, _ := fakeClamd(t, "stream: Eicar-Test-Signature FOUND\x00")
		res := NewClamAVScanner(addr, 0).Scan(context.Background(), "cv.pdf", strings.NewReader("X5O!P%@AP"))

		assert.NoError(t, res.Error)
		assert.True(t, res.Infected)
		assert.Equal(t, "Eicar-Test-Signature", res.ThreatName)
	})

	t.Run("unreachable daemon fails closed", func(t *testing.T) {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		addr := ln.Addr().String()
		ln.Close()

		res := NewClamAVScanner(addr, 0).Scan(context.Background(), "cv.pdf", strings.NewReader("x"))
		assert.Error(t, res.Error)
		assert.True(t, res.Infected)
	})
}

func TestNewPicksScanner(t *testing.T) {
	assert.Equal(t, "noop", New("").Name())
	assert.Equal(t, "clamav", New("localhost:3310").Name())
}
