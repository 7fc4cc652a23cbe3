// ABOUTME: Top-level Bubble Tea AppModel: model panel on the left, action form on the right.
// ABOUTME: Implements tea.Model (Init, Update, View); actions apply through the command boundary.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/grafo-labs/grafo/command"
	"github.com/grafo-labs/grafo/executor"
	"github.com/grafo-labs/grafo/session"
)

// appliedMsg reports the outcome of one applied action.
type appliedMsg struct {
	action  command.Action
	message string
}

// AppModel composes the panels and owns the session being edited.
type AppModel struct {
	panel     ModelPanel
	form      FormModel
	statusBar StatusBarModel

	sess    *session.Session
	catalog executor.Catalog
	ctx     context.Context

	message    string
	lastAction command.Action
	busy       bool
	width      int
	height     int
}

// NewAppModel creates an AppModel over the given session.
func NewAppModel(ctx context.Context, sess *session.Session, catalog executor.Catalog) AppModel {
	m := AppModel{
		panel:   NewModelPanel(sess.Snapshot()),
		form:    NewFormModel(sess.Kind()),
		sess:    sess,
		catalog: catalog,
		ctx:     ctx,
	}
	m.statusBar.Set(sess.StatusLine(), sess.Generation())
	return m
}

// Init implements tea.Model.
func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

// applyCmd runs the selected action off the message loop; runs block on the
// executor subprocess, so they must not stall Update.
func applyCmd(ctx context.Context, sess *session.Session, catalog executor.Catalog, action command.Action, in command.Input) tea.Cmd {
	return func() tea.Msg {
		msg := command.Apply(ctx, sess, catalog, action, in)
		return appliedMsg{action: action, message: msg}
	}
}

// Update implements tea.Model.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case appliedMsg:
		m.busy = false
		m.message = msg.message
		m.lastAction = msg.action
		m.panel.SetGraph(m.sess.Snapshot())
		m.statusBar.Set(m.sess.StatusLine(), m.sess.Generation())
		m.form = m.form.Reset()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.form = m.form.NextField()
		return m, nil
	case "ctrl+a":
		m.form = m.form.NextAction()
		m.message = ""
		return m, nil
	case "ctrl+r":
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, applyCmd(m.ctx, m.sess, m.catalog, command.ActionReset, command.Input{})
	case "ctrl+e":
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, applyCmd(m.ctx, m.sess, m.catalog, command.ActionClear, command.Input{})
	case "enter":
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, applyCmd(m.ctx, m.sess, m.catalog, m.form.Action(), m.form.Input())
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 10 {
		return "Terminal too small. Minimum: 40x10."
	}

	panelWidth := m.width * 55 / 100
	m.panel.SetWidth(panelWidth)
	m.statusBar.SetWidth(m.width)

	formView := borderStyle.Width(m.width - panelWidth - 2).Render(m.form.View())
	top := lipgloss.JoinHorizontal(lipgloss.Top, m.panel.View(), formView)

	var messageLine string
	switch {
	case m.busy:
		messageLine = infoStyle.Render("Running...")
	case m.message == "":
	case m.lastAction == command.ActionRun:
		// Run messages are either trailing info or an executor exception,
		// both meant for reading rather than alarm.
		messageLine = infoStyle.Render(m.message)
	default:
		messageLine = errorStyle.Render(m.message)
	}

	return top + "\n" + messageLine + "\n" + m.statusBar.View()
}
