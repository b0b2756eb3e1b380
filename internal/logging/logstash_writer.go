// Package logging mirrors the process log stream to a Logstash TCP input
// without ever blocking a request on the network.
package logging

import (
	"errors"
	"io"
	"net"
	"strings"
	"sync"
	"time"
)

const (
	defaultDialTimeout   = 2 * time.Second
	defaultWriteTimeout  = time.Second
	defaultRetryInterval = 5 * time.Second
)

var errCooldown = errors.New("logstash: reconnect cooldown in effect")

// LogstashWriter keeps a single TCP connection to Logstash and drops log
// lines while the endpoint is unreachable, retrying after a cool-down.
// Safe for concurrent use.
type LogstashWriter struct {
	addr string

	mu        sync.Mutex
	conn      net.Conn
	nextRetry time.Time
	closed    bool
}

func NewLogstashWriter(addr string) (*LogstashWriter, error) {
	if strings.TrimSpace(addr) == "" {
		return nil, errors.New("logstash: empty address")
	}
	return &LogstashWriter{addr: addr}, nil
}

// Write forwards one log line, newline-terminated. Network failures are
// swallowed: the line count is acknowledged and the connection is retried
// later, so the std logger never sees an error.
func (w *LogstashWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	line := make([]byte, len(p))
	copy(line, p)
	if line[len(line)-1] != '\n' {
		line = append(line, '\n')
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return 0, io.ErrClosedPipe
	}
	if err := w.connectLocked(); err != nil {
		return len(p), nil
	}

	_ = w.conn.SetWriteDeadline(time.Now().Add(defaultWriteTimeout))
	if _, err := w.conn.Write(line); err != nil {
		_ = w.conn.Close()
		w.conn = nil
		w.nextRetry = time.Now().Add(defaultRetryInterval)
	}
	return len(p), nil
}

func (w *LogstashWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.closed = true
	if w.conn == nil {
		return nil
	}
	err := w.conn.Close()
	w.conn = nil
	return err
}

func (w *LogstashWriter) connectLocked() error {
	if w.conn != nil {
		return nil
	}
	if !w.nextRetry.IsZero() && time.Now().Before(w.nextRetry) {
		return errCooldown
	}

	conn, err := net.DialTimeout("tcp", w.addr, defaultDialTimeout)
	if err != nil {
		w.nextRetry = time.Now().Add(defaultRetryInterval)
		return err
	}
	w.conn = conn
	w.nextRetry = time.Time{}
	return nil
}
