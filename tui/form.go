// ABOUTME: FormModel holds the text inputs for the currently selected action.
// ABOUTME: Fields are rebuilt when the action changes; tab cycles focus between them.
package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grafo-labs/grafo/command"
	"github.com/grafo-labs/grafo/model"
)

// formField pairs a text input with its label and the Input slot it fills.
type formField struct {
	label string
	input textinput.Model
}

// FormModel renders the input fields for one action and collects their
// values into a command.Input on submit.
type FormModel struct {
	kind    model.Kind
	action  command.Action
	fields  []formField
	focused int
}

// formActions is the cycle order for the action selector.
var formActions = []command.Action{
	command.ActionAddVertex,
	command.ActionAddEdge,
	command.ActionRemoveVertex,
	command.ActionRemoveEdge,
	command.ActionRun,
}

// NewFormModel creates a form for the given variant, starting on add_vertex.
func NewFormModel(kind model.Kind) FormModel {
	m := FormModel{kind: kind, action: command.ActionAddVertex}
	m.rebuild()
	return m
}

// Action returns the currently selected action.
func (m FormModel) Action() command.Action {
	return m.action
}

// NextAction advances the action selector and rebuilds the fields.
func (m FormModel) NextAction() FormModel {
	for i, a := range formActions {
		if a == m.action {
			m.action = formActions[(i+1)%len(formActions)]
			break
		}
	}
	m.rebuild()
	return m
}

func (m *FormModel) rebuild() {
	labels := m.fieldLabels()
	m.fields = make([]formField, len(labels))
	for i, label := range labels {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.CharLimit = 64
		m.fields[i] = formField{label: label, input: ti}
	}
	m.focused = 0
	if len(m.fields) > 0 {
		m.fields[0].input.Focus()
	}
}

func (m *FormModel) fieldLabels() []string {
	switch m.action {
	case command.ActionAddVertex:
		// Networks accept id, id/flow, or id/min/max in the one field.
		return []string{"vertex"}
	case command.ActionAddEdge:
		if m.kind == model.KindNetwork {
			return []string{"source", "target", "capacity", "restriction", "cost"}
		}
		return []string{"source", "target", "weight"}
	case command.ActionRemoveVertex:
		return []string{"vertex"}
	case command.ActionRemoveEdge:
		return []string{"source", "target"}
	case command.ActionRun:
		return []string{"algorithm", "extra"}
	}
	return nil
}

// NextField moves focus to the next input, wrapping around.
func (m FormModel) NextField() FormModel {
	if len(m.fields) == 0 {
		return m
	}
	m.fields[m.focused].input.Blur()
	m.focused = (m.focused + 1) % len(m.fields)
	m.fields[m.focused].input.Focus()
	return m
}

// Update forwards a message to the focused input.
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	if len(m.fields) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.fields[m.focused].input, cmd = m.fields[m.focused].input.Update(msg)
	return m, cmd
}

// Input collects the field values into a command.Input for the current action.
func (m FormModel) Input() command.Input {
	value := func(i int) string {
		if i >= len(m.fields) {
			return ""
		}
		return strings.TrimSpace(m.fields[i].input.Value())
	}
	intValue := func(i int) *int {
		raw := value(i)
		if raw == "" {
			return nil
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil
		}
		return &n
	}

	switch m.action {
	case command.ActionAddVertex:
		return command.Input{VertexID: value(0)}
	case command.ActionAddEdge:
		in := command.Input{Source: value(0), Target: value(1), Weight: intValue(2)}
		if m.kind == model.KindNetwork {
			in.Restriction = intValue(3)
			in.Cost = intValue(4)
		}
		return in
	case command.ActionRemoveVertex:
		return command.Input{RemoveVertex: value(0)}
	case command.ActionRemoveEdge:
		return command.Input{RemoveSource: value(0), RemoveTarget: value(1)}
	case command.ActionRun:
		return command.Input{Algorithm: value(0), Extra: value(1)}
	}
	return command.Input{}
}

// Reset clears every field and returns focus to the first one.
func (m FormModel) Reset() FormModel {
	for i := range m.fields {
		m.fields[i].input.Reset()
		m.fields[i].input.Blur()
	}
	m.focused = 0
	if len(m.fields) > 0 {
		m.fields[0].input.Focus()
	}
	return m
}

// View renders the action name and its input fields.
func (m FormModel) View() string {
	var b strings.Builder
	b.WriteString(actionStyle.Render(m.action.String()))
	b.WriteString("\n\n")
	for _, f := range m.fields {
		b.WriteString(labelStyle.Render(f.label))
		b.WriteString(f.input.View())
		b.WriteString("\n")
	}
	return b.String()
}
