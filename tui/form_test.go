// ABOUTME: Tests for FormModel: action cycling, field sets per variant, and input collection.
// ABOUTME: Field values are set directly on the embedded textinputs.
package tui

import (
	"testing"

	"github.com/grafo-labs/grafo/command"
	"github.com/grafo-labs/grafo/model"
)

func TestFormStartsOnAddVertex(t *testing.T) {
	m := NewFormModel(model.KindGraph)
	if m.Action() != command.ActionAddVertex {
		t.Fatalf("action = %s", m.Action())
	}
	if len(m.fields) != 1 || m.fields[0].label != "vertex" {
		t.Fatalf("fields = %+v", m.fields)
	}
}

func TestFormActionCycle(t *testing.T) {
	m := NewFormModel(model.KindGraph)
	want := []command.Action{
		command.ActionAddEdge,
		command.ActionRemoveVertex,
		command.ActionRemoveEdge,
		command.ActionRun,
		command.ActionAddVertex,
	}
	for _, w := range want {
		m = m.NextAction()
		if m.Action() != w {
			t.Fatalf("action = %s, want %s", m.Action(), w)
		}
	}
}

func TestFormEdgeFieldsPerVariant(t *testing.T) {
	graph := NewFormModel(model.KindGraph).NextAction()
	if len(graph.fields) != 3 {
		t.Fatalf("graph edge fields = %d, want 3", len(graph.fields))
	}
	network := NewFormModel(model.KindNetwork).NextAction()
	if len(network.fields) != 5 {
		t.Fatalf("network edge fields = %d, want 5", len(network.fields))
	}
	if network.fields[2].label != "capacity" {
		t.Errorf("third network field = %q", network.fields[2].label)
	}
}

func TestFormCollectsInput(t *testing.T) {
	m := NewFormModel(model.KindNetwork).NextAction() // add_edge
	values := []string{"S", "T", "5", "2", "7"}
	for i, v := range values {
		m.fields[i].input.SetValue(v)
	}
	in := m.Input()
	if in.Source != "S" || in.Target != "T" {
		t.Fatalf("endpoints = %q, %q", in.Source, in.Target)
	}
	if in.Weight == nil || *in.Weight != 5 {
		t.Fatalf("weight = %v", in.Weight)
	}
	if in.Restriction == nil || *in.Restriction != 2 || in.Cost == nil || *in.Cost != 7 {
		t.Fatalf("restriction/cost = %v/%v", in.Restriction, in.Cost)
	}
}

func TestFormBlankNumericIsNil(t *testing.T) {
	m := NewFormModel(model.KindGraph).NextAction() // add_edge
	m.fields[0].input.SetValue("A")
	m.fields[1].input.SetValue("B")
	if in := m.Input(); in.Weight != nil {
		t.Fatalf("weight = %v, want nil for blank field", in.Weight)
	}
}

func TestFormFieldFocusCycles(t *testing.T) {
	m := NewFormModel(model.KindGraph).NextAction() // add_edge, 3 fields
	if m.focused != 0 {
		t.Fatalf("initial focus = %d", m.focused)
	}
	m = m.NextField()
	m = m.NextField()
	m = m.NextField()
	if m.focused != 0 {
		t.Fatalf("focus after full cycle = %d", m.focused)
	}
}

func TestFormReset(t *testing.T) {
	m := NewFormModel(model.KindGraph)
	m.fields[0].input.SetValue("A")
	m = m.NextField()
	m = m.Reset()
	if m.fields[0].input.Value() != "" {
		t.Fatal("reset left a value behind")
	}
	if m.focused != 0 {
		t.Fatalf("focus after reset = %d", m.focused)
	}
}
