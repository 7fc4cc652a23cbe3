// ABOUTME: Tests for the SQLite command and run journal.
// ABOUTME: Covers append, per-session isolation, and insertion ordering.
package journal_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/grafo-labs/grafo/journal"
)

func openJournal(t *testing.T) *journal.Journal {
	t.Helper()
	j, err := journal.Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func TestJournalCommands(t *testing.T) {
	j := openJournal(t)

	if err := j.RecordCommand("s1", "graph", "add_vertex", ""); err != nil {
		t.Fatalf("RecordCommand: %v", err)
	}
	if err := j.RecordCommand("s1", "graph", "add_vertex", "Vertex A is already on the graph."); err != nil {
		t.Fatalf("RecordCommand: %v", err)
	}
	if err := j.RecordCommand("s2", "network", "clear", ""); err != nil {
		t.Fatalf("RecordCommand: %v", err)
	}

	entries, err := j.CommandsFor("s1")
	if err != nil {
		t.Fatalf("CommandsFor: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries for s1, got %d", len(entries))
	}
	if entries[0].Message != "" || entries[1].Message != "Vertex A is already on the graph." {
		t.Errorf("messages out of order: %q, %q", entries[0].Message, entries[1].Message)
	}
	if entries[0].Kind != "graph" || entries[0].Action != "add_vertex" {
		t.Errorf("entry fields: kind=%q action=%q", entries[0].Kind, entries[0].Action)
	}
}

func TestJournalRuns(t *testing.T) {
	j := openJournal(t)

	for gen := uint64(0); gen < 3; gen++ {
		outcome := "ok"
		if gen == 2 {
			outcome = "No path exists."
		}
		if err := j.RecordRun("s1", gen, "dijkstra", "A", outcome); err != nil {
			t.Fatalf("RecordRun: %v", err)
		}
	}

	entries, err := j.RunsFor("s1")
	if err != nil {
		t.Fatalf("RunsFor: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(entries))
	}
	for i, r := range entries {
		if r.Generation != uint64(i) {
			t.Errorf("run %d generation = %d", i, r.Generation)
		}
	}
	if entries[2].Outcome != "No path exists." {
		t.Errorf("outcome = %q", entries[2].Outcome)
	}
}

func TestJournalSessionIsolation(t *testing.T) {
	j := openJournal(t)

	for i := 0; i < 5; i++ {
		session := fmt.Sprintf("s%d", i%2)
		if err := j.RecordCommand(session, "digraph", "run", ""); err != nil {
			t.Fatalf("RecordCommand: %v", err)
		}
	}

	s0, err := j.CommandsFor("s0")
	if err != nil {
		t.Fatalf("CommandsFor: %v", err)
	}
	s1, err := j.CommandsFor("s1")
	if err != nil {
		t.Fatalf("CommandsFor: %v", err)
	}
	if len(s0) != 3 || len(s1) != 2 {
		t.Fatalf("expected 3/2 entries, got %d/%d", len(s0), len(s1))
	}

	none, err := j.CommandsFor("missing")
	if err != nil {
		t.Fatalf("CommandsFor: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no entries, got %d", len(none))
	}
}
