// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Focus targets, cycled with tab
const (
	focusInput = iota
	focusLog
	focusView
	focusCount
)

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	textInput    textinput.Model
	opLog        list.Model
	treeViewport viewport.Model

	session *Session
	config  *Config

	focusIndex int
	status     string
	statusErr  bool
	lesson     string // raw markdown of the current lesson
	tip        string

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
	Tip            lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		Tip: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Italic(true),
	}
}

// logItem is one executed command in the operation log
type logItem struct {
	entry LogEntry
}

func (i logItem) FilterValue() string { return i.entry.Command }
func (i logItem) Title() string       { return i.entry.Command }
func (i logItem) Description() string {
	desc := i.entry.Time.Format("15:04:05") + " " + i.entry.Outcome()
	if len(i.entry.Rotations) > 0 {
		rots := make([]string, len(i.entry.Rotations))
		for j, r := range i.entry.Rotations {
			rots[j] = r.String()
		}
		desc += " ⟳ " + strings.Join(rots, ", ")
	}
	return desc
}

type tipMsg struct{}

type clipboardMsg struct {
	what string
	err  error
}

func tickTip(interval int) tea.Cmd {
	return tea.Tick(time.Duration(interval)*time.Second, func(time.Time) tea.Msg {
		return tipMsg{}
	})
}

// InitialModel creates the initial model
func InitialModel(session *Session, config *Config) Model {
	// Initialize glamour renderer with auto-detection
	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(config.UI.WordWrap),
	)
	return newModel(session, config, glamourRenderer)
}

func newModel(session *Session, config *Config, renderer *glamour.TermRenderer) Model {
	ti := textinput.New()
	ti.Placeholder = "insert 5 3 8, delete 3, help rotation ..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	opLog := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	opLog.SetShowTitle(false)
	opLog.SetShowHelp(false)
	opLog.SetFilteringEnabled(false)

	m := Model{
		textInput:       ti,
		opLog:           opLog,
		treeViewport:    viewport.New(0, 0),
		session:         session,
		config:          config,
		focusIndex:      focusInput,
		styles:          NewStyles(),
		glamourRenderer: renderer,
		tip:             GetRandomTip(),
		lesson:          session.lesson("topics"),
	}
	m.refreshContent()
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickTip(m.config.UI.TipInterval))
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true

	case tipMsg:
		m.tip = GetRandomTip()
		return m, tickTip(m.config.UI.TipInterval)

	case clipboardMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("copy failed: %v", msg.err), true)
		} else {
			m.setStatus("📋 copied "+msg.what+" to clipboard", false)
		}
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		m.setFocus((m.focusIndex + 1) % focusCount)
		return m, nil
	case "shift+tab":
		m.setFocus((m.focusIndex + focusCount - 1) % focusCount)
		return m, nil
	case "ctrl+y":
		keys := joinKeys(m.session.Tree().Keys())
		return m, copyCmd("keys", keys)
	case "ctrl+o":
		return m, copyCmd("diagram", m.session.Tree().String())
	case "pgup":
		m.treeViewport.LineUp(m.treeViewport.Height)
		return m, nil
	case "pgdown":
		m.treeViewport.LineDown(m.treeViewport.Height)
		return m, nil
	case "enter":
		switch m.focusIndex {
		case focusInput:
			m.execute(m.textInput.Value())
			return m, nil
		case focusLog:
			// pull the selected command back into the input for editing
			if item, ok := m.opLog.SelectedItem().(logItem); ok {
				m.textInput.SetValue(item.entry.Command)
				m.setFocus(focusInput)
			}
			return m, nil
		}
	}

	switch m.focusIndex {
	case focusInput:
		m.textInput, cmd = m.textInput.Update(msg)
	case focusLog:
		m.opLog, cmd = m.opLog.Update(msg)
	case focusView:
		m.treeViewport, cmd = m.treeViewport.Update(msg)
	}
	return m, cmd
}

func copyCmd(what, text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{what: what, err: clipboard.WriteAll(text)}
	}
}

func (m *Model) setFocus(idx int) {
	m.focusIndex = idx
	if idx == focusInput {
		m.textInput.Focus()
	} else {
		m.textInput.Blur()
	}
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

// execute runs one line through the session and refreshes every pane.
func (m *Model) execute(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	res, err := m.session.Exec(line)
	m.textInput.SetValue("")

	if err != nil {
		m.setStatus(err.Error(), true)
	} else {
		m.setStatus(res.Output, false)
		if res.Lesson != "" {
			m.lesson = res.Lesson
		}
	}

	entries := m.session.Log()
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		// newest first
		items[len(entries)-1-i] = logItem{entry: e}
	}
	m.opLog.SetItems(items)
	m.opLog.Select(0)
	m.refreshContent()
}

// treeDiagram renders the tree, optionally without the height annotations.
func treeDiagram(s *Session, showHeights bool) string {
	diagram := s.Tree().String()
	if showHeights {
		return diagram
	}
	lines := strings.Split(strings.TrimRight(diagram, "\n"), "\n")
	for i, line := range lines {
		if cut, _, found := strings.Cut(line, " h="); found {
			lines[i] = cut
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m *Model) refreshContent() {
	tree := m.session.Tree()
	var sb strings.Builder
	fmt.Fprintf(&sb, "keys %d · height %d\n\n", tree.Len(), tree.Height())
	sb.WriteString(treeDiagram(m.session, m.config.UI.ShowHeights))
	sb.WriteString("\n")

	if m.lesson != "" {
		if m.glamourRenderer != nil {
			if rendered, err := m.glamourRenderer.Render(m.lesson); err == nil {
				sb.WriteString(rendered)
			} else {
				sb.WriteString(m.lesson)
			}
		} else {
			sb.WriteString(m.lesson)
		}
	}
	m.treeViewport.SetContent(sb.String())
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	inputHeight := 3
	bodyHeight := m.height - inputHeight - 7 // title, status and footer
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	m.textInput.Width = leftWidth - 4
	m.opLog.SetSize(leftWidth-2, bodyHeight-2)
	m.treeViewport.Width = rightWidth - 2
	m.treeViewport.Height = bodyHeight + inputHeight
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	bodyHeight := m.height - inputHeight - 7
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	box := func(idx int, title string, width, height int, content string) string {
		style := m.styles.BorderBlurred
		if m.focusIndex == idx {
			style = m.styles.BorderFocused
			title += " (Active)"
		}
		return style.Width(width).Height(height).Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(width-4).Render(title),
			content,
		))
	}

	inputBox := box(focusInput, " 🌱 Command", leftWidth, inputHeight, m.textInput.View())
	logBox := box(focusLog, " 📋 Operations", leftWidth, bodyHeight, m.opLog.View())
	treeBox := box(focusView, " 🌳 Tree & Lesson", rightWidth, bodyHeight+inputHeight+2, m.treeViewport.View())

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, logBox),
		treeBox,
	)

	status := m.styles.SuccessMessage.Render(m.status)
	if m.statusErr {
		status = m.styles.ErrorMessage.Render(m.status)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		lipgloss.NewStyle().Padding(0, 0, 0, 2).Render(status),
		lipgloss.NewStyle().Padding(0, 0, 0, 2).Render(m.styles.Tip.Render("💡 "+m.tip)),
		m.renderFooter(),
	)
}

// renderFooter renders the key help footer
func (m Model) renderFooter() string {
	keys := []string{"enter", "tab", "pgup/pgdown", "ctrl+y", "ctrl+o", "esc"}
	descs := []string{"run / edit", "switch focus", "scroll tree", "copy keys", "copy diagram", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(session *Session, config *Config) error {
	InitializeColors()

	program := tea.NewProgram(
		InitialModel(session, config),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	return err
}
