package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/storage"
)

const maxScores = 100 // Max runs to load

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)

	statsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// Scoreboard lists the finished runs of the current session.
type Scoreboard struct {
	gameID string
	title  string
	store  *storage.Store
	runs   []storage.Run
	stats  storage.Stats
	table  table.Model
	width  int
	height int
}

// NewScoreboard creates a scoreboard for one game.
func NewScoreboard(store *storage.Store, gameID, title string, width, height int) Scoreboard {
	s := Scoreboard{
		gameID: gameID,
		title:  title,
		store:  store,
		width:  width,
		height: height,
	}
	s.table = s.createTable()
	return s
}

// createTable creates a new table sized to the current window.
func (s *Scoreboard) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 7},
		{Title: "Lives", Width: 7},
		{Title: "Result", Width: 8},
		{Title: "Ticks", Width: 8},
		{Title: "Time", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(s.height-10, 3)), // Title, stats, borders and help
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

// Reload reads the runs from the store.
func (s *Scoreboard) Reload() error {
	if s.store == nil {
		s.runs = nil
		s.stats = storage.Stats{GameID: s.gameID}
		s.updateRows()
		return nil
	}

	runs, err := s.store.TopRuns(s.gameID, maxScores)
	if err != nil {
		return err
	}
	stats, err := s.store.GameStats(s.gameID)
	if err != nil {
		return err
	}

	s.runs = runs
	s.stats = stats
	s.updateRows()
	return nil
}

// updateRows fills the table from the loaded runs.
func (s *Scoreboard) updateRows() {
	rows := make([]table.Row, len(s.runs))
	for i, r := range s.runs {
		result := "lost"
		if r.Won {
			result = "won"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Lives),
			result,
			strconv.FormatUint(r.Ticks, 10),
			r.CreatedAt.Format("15:04:05"),
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

// Update forwards scrolling to the table.
func (s Scoreboard) Update(msg tea.Msg) (Scoreboard, tea.Cmd) {
	var cmd tea.Cmd
	s.table, cmd = s.table.Update(msg)
	return s, cmd
}

// Rows returns the number of listed runs.
func (s Scoreboard) Rows() int {
	return len(s.runs)
}

// View renders the scoreboard.
func (s Scoreboard) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(centerText("SESSION SCORES - "+s.title, s.width)))
	b.WriteString("\n\n")

	if len(s.runs) == 0 {
		b.WriteString(centerText(boxStyle.Render(emptyStyle.Render("No finished games yet.")), s.width))
		return b.String()
	}

	stats := fmt.Sprintf("Games: %d   Wins: %d   Best: %d   Average: %.1f",
		s.stats.Runs, s.stats.Wins, s.stats.HighScore, s.stats.AvgScore)
	b.WriteString(centerText(statsStyle.Render(stats), s.width))
	b.WriteString("\n")
	b.WriteString(centerText(boxStyle.Render(s.table.View()), s.width))

	return b.String()
}

// centerText pads every line of a block so it sits in the middle of width.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
