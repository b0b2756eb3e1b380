package logging

import (
	"bufio"
	"net"
	"testing"
	"time"
)

func TestLogstashWriterDeliversLines(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen failed: %v", err)
	}
	defer ln.Close()

	lines := make(chan string, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		reader := bufio.NewReader(conn)
		line, err := reader.ReadString('\n')
		if err == nil {
			lines <- line
		}
	}()

	w, err := NewLogstashWriter(ln.Addr().String())
	if err != nil {
		t.Fatalf("NewLogstashWriter returned error: %v", err)
	}
	defer w.Close()

	msg := "route progress updated"
	n, err := w.Write([]byte(msg))
	if err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if n != len(msg) {
		t.Fatalf("expected %d bytes acknowledged, got %d", len(msg), n)
	}

	select {
	case line := <-lines:
		if line != msg+"\n" {
			t.Fatalf("expected %q, got %q", msg+"\n", line)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the forwarded line")
	}
}

func TestLogstashWriterSwallowsNetworkFailures(t *testing.T) {
	// A closed listener gives a fast connection-refused.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen failed: %v", err)
	}
	addr := ln.Addr().String()
	ln.Close()

	w, err := NewLogstashWriter(addr)
	if err != nil {
		t.Fatalf("NewLogstashWriter returned error: %v", err)
	}
	defer w.Close()

	n, err := w.Write([]byte("dropped line"))
	if err != nil {
		t.Fatalf("Write must not surface network errors, got %v", err)
	}
	if n != len("dropped line") {
		t.Fatalf("expected the full line acknowledged, got %d", n)
	}

	// Still inside the retry cool-down; the line is dropped silently.
	if _, err := w.Write([]byte("also dropped")); err != nil {
		t.Fatalf("cooldown Write must not error, got %v", err)
	}
}

func TestLogstashWriterRejectsEmptyAddress(t *testing.T) {
	if _, err := NewLogstashWriter("  "); err == nil {
		t.Fatal("expected an error for an empty address")
	}
}
