package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tperdue321/textspan/buffer"
)

type keyMap struct {
	Quit      key.Binding
	ClearLine key.Binding
	Backspace key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("ctrl+c", "quit")),
		ClearLine: key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear line")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
	}
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	wordStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

type model struct {
	input []rune
	keys  keyMap
}

func newModel() model {
	return model{
		input: []rune("  hello world."),
		keys:  defaultKeyMap(),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.ClearLine):
		m.input = nil
	case key.Matches(keyMsg, m.keys.Backspace):
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	default:
		switch keyMsg.Type {
		case tea.KeySpace:
			m.input = append(m.input, ' ')
		case tea.KeyRunes:
			m.input = append(m.input, keyMsg.Runes...)
		}
	}
	return m, nil
}

func (m model) View() string {
	b := buffer.New(string(m.input))
	v := b.View()
	word := buffer.FirstWord(v)

	// Re-slice the line around the word so the highlight lands on the exact
	// byte window the scanner returned.
	before := v.Slice(0, word.Start()).String()
	after := v.Slice(word.End(), v.Len()).String()

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("textspan: first-word scanner"))
	sb.WriteString("\n\n")
	sb.WriteString(promptStyle.Render("> "))
	sb.WriteString(before)
	sb.WriteString(wordStyle.Render(word.String()))
	sb.WriteString(after)
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf(
		"first word %q  span [%d,%d)  graphemes %d  width %d\n",
		word.String(), word.Start(), word.End(), word.GraphemeCount(), word.DisplayWidth(),
	))
	sb.WriteString("\n")
	sb.WriteString(faintStyle.Render("type to edit · ctrl+u clear · ctrl+c quit"))
	sb.WriteString("\n")
	return sb.String()
}

func main() {
	p := tea.NewProgram(newModel())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
