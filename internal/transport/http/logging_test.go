package http

import (
	"strings"
	"testing"
)

func TestSummarizeBody(t *testing.T) {
	if got := summarizeBody(nil); got != nil {
		t.Fatalf("empty body should summarize to nil, got %v", got)
	}

	got := summarizeBody([]byte(`{"title": "Canal Walk"}`))
	data, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("small JSON should pass through decoded, got %T", got)
	}
	if data["title"] != "Canal Walk" {
		t.Fatalf("unexpected payload: %v", data)
	}

	big := `{"pad": "` + strings.Repeat("x", maxLoggedBody) + `"}`
	got = summarizeBody([]byte(big))
	marker, ok := got.(map[string]any)
	if !ok || marker["_truncated"] != true {
		t.Fatalf("oversized JSON should collapse to a truncation marker, got %v", got)
	}

	if got := summarizeBody([]byte{0xff, 0xfe, 0x00}); got != "binary" {
		t.Fatalf("non-UTF8 body should summarize to binary, got %v", got)
	}

	text := "  plain text  "
	if got := summarizeBody([]byte(text)); got != "plain text" {
		t.Fatalf("text body should be trimmed, got %v", got)
	}
}

func TestClampString(t *testing.T) {
	long := strings.Repeat("a", maxLoggedBody+10)
	got := clampString(long)
	if len(got) != maxLoggedBody+3 || !strings.HasSuffix(got, "...") {
		t.Fatalf("expected a clamped string with ellipsis, got %d bytes", len(got))
	}
}
