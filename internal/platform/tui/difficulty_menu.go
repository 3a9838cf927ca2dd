package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/config"
)

// difficultyOption is one row of the difficulty menu.
type difficultyOption struct {
	preset config.DifficultyPreset
	label  string
}

var difficultyOptions = []difficultyOption{
	{config.DifficultyEasy, "Easy    - slower gravity"},
	{config.DifficultyNormal, "Normal  - configured gravity"},
	{config.DifficultyHard, "Hard    - twice as fast"},
	{config.DifficultyFixed, "Fixed   - configured gravity, no preset"},
}

// MenuKeyMap defines the key bindings of the difficulty menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// DifficultyModel lets the user pick a difficulty preset before playing.
type DifficultyModel struct {
	title    string
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	selected bool
	quitting bool
}

// NewDifficultyModel creates the menu with the cursor on current.
func NewDifficultyModel(title string, current config.DifficultyPreset, width, height int) DifficultyModel {
	m := DifficultyModel{
		title:  title,
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
	}
	for i, opt := range difficultyOptions {
		if opt.preset == current {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(difficultyOptions)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			m.selected = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the menu.
func (m DifficultyModel) View() string {
	if m.quitting || m.selected {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(spaced(m.title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, opt := range difficultyOptions {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%-40s", cursor, opt.label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Play  |  Q: Quit", m.width))
	return b.String()
}

// Selected returns the chosen preset, or false if the user quit.
func (m DifficultyModel) Selected() (config.DifficultyPreset, bool) {
	if !m.selected {
		return "", false
	}
	return difficultyOptions[m.cursor].preset, true
}

// spaced puts a space between letters: "Blockfall" -> "B L O C K F A L L".
func spaced(s string) string {
	letters := strings.Split(strings.ToUpper(s), "")
	return strings.Join(letters, " ")
}

// RunDifficultySelector shows the menu and returns the chosen preset.
// ok is false when the user quit without choosing.
func RunDifficultySelector(title string, current config.DifficultyPreset, width, height int) (config.DifficultyPreset, bool, error) {
	p := tea.NewProgram(
		NewDifficultyModel(title, current, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, ok := finalModel.(DifficultyModel)
	if !ok {
		return "", false, nil
	}
	preset, chosen := m.Selected()
	return preset, chosen, nil
}
