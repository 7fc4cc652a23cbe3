// ABOUTME: Tests for the request logging middleware.
// ABOUTME: Verifies the log line carries the session id and final status.
package editor

import (
	"bytes"
	"log"
	"net/http"
	"strings"
	"testing"
)

func TestRequestLoggerIncludesSession(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })

	srv := newTestServer(t, "")
	id := createSession(t, srv, "graph")

	buf.Reset()
	if rec := request(t, srv, http.MethodGet, "/sessions/"+id, nil); rec.Code != http.StatusOK {
		t.Fatalf("get: status %d", rec.Code)
	}
	line := buf.String()
	if !strings.Contains(line, "session="+id) {
		t.Fatalf("log line missing session id: %q", line)
	}
	if !strings.Contains(line, "status=200") {
		t.Fatalf("log line missing status: %q", line)
	}

	// Requests outside the session routes log a placeholder.
	buf.Reset()
	request(t, srv, http.MethodGet, "/help", nil)
	if !strings.Contains(buf.String(), "session=-") {
		t.Fatalf("log line missing placeholder: %q", buf.String())
	}
}
