package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/storage"
)

const maxScores = 20 // Rows loaded into the session table

// Scoreboard shows the finished games of this session. It is a
// component of Model, not a program of its own.
type Scoreboard struct {
	store   *storage.Store
	gameID  string
	title   string
	records []storage.GameRecord
	stats   *storage.Stats
	err     error
	table   table.Model
	width   int
	height  int
}

// NewScoreboard creates a scoreboard over store for gameID.
func NewScoreboard(store *storage.Store, gameID, title string, width, height int) Scoreboard {
	s := Scoreboard{
		store:  store,
		gameID: gameID,
		title:  title,
		width:  width,
		height: height,
	}
	s.table = s.createTable()
	return s
}

func (s *Scoreboard) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Lines", Width: 7},
		{Title: "Pieces", Width: 8},
		{Title: "Time", Width: 8},
		{Title: "Finished", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, s.height-10)),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(st)

	return t
}

// Refresh reloads the records from the store.
func (s *Scoreboard) Refresh() error {
	if s.store == nil {
		s.records = nil
		s.stats = nil
		s.updateRows()
		return nil
	}

	records, err := s.store.TopGames(s.gameID, maxScores)
	if err != nil {
		s.err = err
		return err
	}
	stats, err := s.store.GameStats(s.gameID)
	if err != nil {
		s.err = err
		return err
	}

	s.err = nil
	s.records = records
	s.stats = stats
	s.updateRows()
	return nil
}

func (s *Scoreboard) updateRows() {
	rows := make([]table.Row, len(s.records))
	for i, r := range s.records {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Lines),
			fmt.Sprintf("%d", r.Pieces),
			formatDuration(r.Duration),
			r.CreatedAt.Local().Format("15:04:05"),
		}
	}
	s.table.SetRows(rows)
	s.table.GotoTop()
}

// Resize adapts the table to a new window size.
func (s *Scoreboard) Resize(width, height int) {
	s.width = width
	s.height = height
	s.table = s.createTable()
	s.updateRows()
}

// Update passes scrolling keys to the table.
func (s Scoreboard) Update(msg tea.Msg) (Scoreboard, tea.Cmd) {
	var cmd tea.Cmd
	s.table, cmd = s.table.Update(msg)
	return s, cmd
}

// View renders the scoreboard.
func (s Scoreboard) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("SESSION SCORES - "+s.title, s.width)))
	b.WriteString("\n\n")

	if s.stats != nil && s.stats.GamesCount > 0 {
		summary := fmt.Sprintf("Games %d   Best %d   Avg %.0f   Lines %d",
			s.stats.GamesCount, s.stats.HighScore, s.stats.AvgScore, s.stats.TotalLines)
		b.WriteString(centerText(summary, s.width))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(s.tableContent()), s.width))

	return b.String()
}

func (s Scoreboard) tableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case s.err != nil:
		return emptyStyle.Render("Scoreboard unavailable.")
	case len(s.records) == 0:
		return emptyStyle.Render("No finished games yet.\nTop out to get on the board!")
	}
	return s.table.View()
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// centerText centers each line of text within width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		pad := (width - lipgloss.Width(line)) / 2
		if pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}
