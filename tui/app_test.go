// ABOUTME: Tests for AppModel: key routing, applied-message handling, and view guards.
// ABOUTME: Commands returned by Update are executed synchronously to feed results back in.
package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/grafo-labs/grafo/command"
	"github.com/grafo-labs/grafo/executor"
	"github.com/grafo-labs/grafo/interchange"
	"github.com/grafo-labs/grafo/model"
	"github.com/grafo-labs/grafo/session"
)

// cannedRunner writes a fixed result body next to the submitted document.
type cannedRunner struct {
	body string
}

func (r *cannedRunner) Run(_ context.Context, req executor.Request) error {
	path := interchange.ResultPath(filepath.Dir(req.DocumentPath), req.Generation)
	return os.WriteFile(path, []byte(r.body), 0o644)
}

func newApp(t *testing.T, kind model.Kind, body string) AppModel {
	t.Helper()
	sess := session.New("test", kind, t.TempDir(), &cannedRunner{body: body})
	return NewAppModel(context.Background(), sess, executor.DefaultCatalog())
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+a":
		return tea.KeyMsg{Type: tea.KeyCtrlA}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "ctrl+e":
		return tea.KeyMsg{Type: tea.KeyCtrlE}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestAppQuitsOnEsc(t *testing.T) {
	m := newApp(t, model.KindGraph, "")
	_, cmd := m.Update(keyMsg("esc"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("esc did not quit")
	}
}

func TestAppActionCycleKey(t *testing.T) {
	m := newApp(t, model.KindGraph, "")
	updated, _ := m.Update(keyMsg("ctrl+a"))
	app := updated.(AppModel)
	if app.form.Action() != command.ActionAddEdge {
		t.Fatalf("action = %s", app.form.Action())
	}
}

func TestAppEnterAppliesAction(t *testing.T) {
	m := newApp(t, model.KindGraph, "")
	m.form.fields[0].input.SetValue("A")

	updated, cmd := m.Update(keyMsg("enter"))
	app := updated.(AppModel)
	if !app.busy || cmd == nil {
		t.Fatal("enter did not start an apply")
	}

	msg := cmd()
	applied, ok := msg.(appliedMsg)
	if !ok {
		t.Fatalf("cmd produced %T", msg)
	}
	if applied.message != "" {
		t.Fatalf("apply failed: %q", applied.message)
	}

	updated, _ = app.Update(applied)
	app = updated.(AppModel)
	if app.busy {
		t.Fatal("still busy after appliedMsg")
	}
	if v, _ := app.sess.Counts(); v != 1 {
		t.Fatalf("vertex count = %d", v)
	}
	if !strings.Contains(app.statusBar.status, "1 node(s)") {
		t.Fatalf("status bar = %q", app.statusBar.status)
	}
}

func TestAppFailureMessageShown(t *testing.T) {
	m := newApp(t, model.KindGraph, "")
	m.form.fields[0].input.SetValue("A")

	// Apply twice: the second add is a duplicate.
	for i := 0; i < 2; i++ {
		m.form.fields[0].input.SetValue("A")
		updated, cmd := m.Update(keyMsg("enter"))
		app := updated.(AppModel)
		updated, _ = app.Update(cmd())
		m = updated.(AppModel)
	}
	if m.message != "Vertex A is already on the graph." {
		t.Fatalf("message = %q", m.message)
	}
}

func TestAppClearAndResetKeys(t *testing.T) {
	m := newApp(t, model.KindGraph, "")
	m.form.fields[0].input.SetValue("A")
	updated, cmd := m.Update(keyMsg("enter"))
	updated, _ = updated.(AppModel).Update(cmd())
	m = updated.(AppModel)

	updated, cmd = m.Update(keyMsg("ctrl+e"))
	updated, _ = updated.(AppModel).Update(cmd())
	m = updated.(AppModel)
	if v, _ := m.sess.Counts(); v != 0 {
		t.Fatalf("clear left %d vertices", v)
	}

	if _, cmd = m.Update(keyMsg("ctrl+r")); cmd == nil {
		t.Fatal("ctrl+r produced no command")
	}
}

func TestAppViewGuards(t *testing.T) {
	m := newApp(t, model.KindGraph, "")
	if m.View() != "Initializing..." {
		t.Fatalf("zero-size view = %q", m.View())
	}
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	m = updated.(AppModel)
	if !strings.Contains(m.View(), "Terminal too small") {
		t.Fatalf("small view = %q", m.View())
	}
	updated, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(AppModel)
	if !strings.Contains(m.View(), "Vertices") {
		t.Fatal("full view missing model panel")
	}
}

func TestModelPanelShowsLabels(t *testing.T) {
	g := model.New(model.KindNetwork)
	flow := 10
	if err := g.AddVertex(model.Vertex{ID: "S", Flow: &flow}); err != nil {
		t.Fatalf("AddVertex: %v", err)
	}
	p := NewModelPanel(g)
	view := p.View()
	if !strings.Contains(view, "+ S, 10") {
		t.Fatalf("panel view missing network label: %s", view)
	}
}
