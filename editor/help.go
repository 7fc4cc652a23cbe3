// ABOUTME: The /help endpoint: serves the embedded algorithm guide rendered to HTML.
// ABOUTME: Markdown conversion happens once at startup via goldmark.
package editor

import (
	"bytes"
	_ "embed"
	"net/http"
	"sync"

	"github.com/yuin/goldmark"
)

//go:embed help.md
var helpMarkdown []byte

var helpOnce struct {
	sync.Once
	html []byte
}

func helpHTML() []byte {
	helpOnce.Do(func() {
		var buf bytes.Buffer
		if err := goldmark.New().Convert(helpMarkdown, &buf); err != nil {
			helpOnce.html = helpMarkdown
			return
		}
		helpOnce.html = buf.Bytes()
	})
	return helpOnce.html
}

// handleHelp serves the algorithm guide.
func (s *Server) handleHelp(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(helpHTML())
}
