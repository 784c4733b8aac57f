package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/crashreport/parse"
)

// Lines above the frame list: title, blank, four header rows, blank.
const headerHeight = 7

// Lines below it: blank, status, help.
const footerHeight = 3

type viewerModel struct {
	err      error
	rep      *parse.Report
	filename string
	viewport viewport.Model
	selected int
	ready    bool
}

type loadedMsg struct {
	err error
	rep *parse.Report
}

func newViewerModel(filename string) *viewerModel {
	return &viewerModel{filename: filename}
}

func (m *viewerModel) Init() tea.Cmd {
	return m.loadReport
}

func (m *viewerModel) loadReport() tea.Msg {
	rep, err := parse.File(m.filename)
	return loadedMsg{rep: rep, err: err}
}

func (m *viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.selected > 0 {
				m.selected--
				m.refresh()
			}

		case "down", "j":
			if m.rep != nil && m.selected < len(m.rep.Frames)-1 {
				m.selected++
				m.refresh()
			}

		case "home", "g":
			m.selected = 0
			m.refresh()

		case "end", "G":
			if m.rep != nil && len(m.rep.Frames) > 0 {
				m.selected = len(m.rep.Frames) - 1
				m.refresh()
			}

		case "n":
			m.nextNil()
		}

	case tea.WindowSizeMsg:
		height := msg.Height - headerHeight - footerHeight
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.refresh()

	case loadedMsg:
		m.err = msg.err
		m.rep = msg.rep
		m.refresh()
	}

	return m, nil
}

// nextNil moves the selection to the next nil frame, wrapping around.
func (m *viewerModel) nextNil() {
	if m.rep == nil {
		return
	}
	frames := m.rep.Frames
	for i := 1; i <= len(frames); i++ {
		j := (m.selected + i) % len(frames)
		if frames[j] == 0 {
			m.selected = j
			m.refresh()
			return
		}
	}
}

// refresh rebuilds the frame list and keeps the selection visible.
func (m *viewerModel) refresh() {
	if !m.ready || m.rep == nil {
		return
	}

	lines := make([]string, len(m.rep.Frames))
	for i, f := range m.rep.Frames {
		line := frameLine(i, f, paintStyled)
		if i == m.selected {
			line = selectedStyle.Render("> " + frameLine(i, f, paintPlain))
		} else {
			line = "  " + line
		}
		lines[i] = line
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))

	switch {
	case m.selected < m.viewport.YOffset:
		m.viewport.SetYOffset(m.selected)
	case m.selected >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(m.selected - m.viewport.Height + 1)
	}
}

func (m *viewerModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.rep == nil || !m.ready {
		return "Loading report..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Crash Report"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")
	b.WriteString(headerLines(m.rep, paintStyled))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n\n")
	b.WriteString(status(m.rep, paintStyled))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select • g/G first/last • n next nil • q quit"))

	return b.String()
}

func paintStyled(s lipgloss.Style, text string) string {
	return s.Render(text)
}

func paintPlain(_ lipgloss.Style, text string) string {
	return text
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newViewerModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
