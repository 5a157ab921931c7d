package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Run board layout constants
const (
	maxRuns       = 100 // Max runs to load
	boardChrome   = 8   // Rows used by title, borders and help
	minBoardRows  = 3
	causeColWidth = 10
)

// BoardKeyMap defines the key bindings for the run board.
type BoardKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Clear key.Binding
	Close key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BoardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Clear, k.Close, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BoardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Clear},
		{k.Close, k.Quit},
	}
}

// DefaultBoardKeyMap returns default key bindings.
func DefaultBoardKeyMap() BoardKeyMap {
	return BoardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear runs"),
		),
		Close: key.NewBinding(
			key.WithKeys("tab", "esc", "b"),
			key.WithHelp("tab/esc", "back to game"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Board shows the runs recorded by this process.
type Board struct {
	store  *storage.Store
	gameID string
	title  string
	runs   []storage.RunEntry
	best   int
	total  int
	err    error
	table  table.Model
	help   help.Model
	keys   BoardKeyMap
	width  int
	height int
}

// NewBoard creates a run board for one game.
func NewBoard(store *storage.Store, gameID, title string, width, height int) Board {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	b := Board{
		store:  store,
		gameID: gameID,
		title:  title,
		help:   h,
		keys:   DefaultBoardKeyMap(),
		width:  width,
		height: height,
	}
	b.table = b.createTable()
	return b
}

// createTable creates a new table with appropriate columns.
func (b *Board) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 12},
		{Title: "Score", Width: 7},
		{Title: "Ticks", Width: 8},
		{Title: "Ended by", Width: causeColWidth},
		{Title: "Time", Width: 10},
	}

	// Give spare width to the player column
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if spare := b.width - 6 - used; spare > 0 {
		columns[1].Width += min(spare, 12)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(b.height-boardChrome, minBoardRows)),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Refresh reloads runs and totals from the store.
func (b *Board) Refresh() {
	b.runs, b.best, b.total, b.err = nil, 0, 0, nil
	defer b.updateTableRows()
	if b.store == nil {
		return
	}

	runs, err := b.store.TopRuns(b.gameID, maxRuns)
	if err != nil {
		b.err = err
		return
	}
	b.runs = runs

	if b.best, err = b.store.BestScore(b.gameID); err != nil {
		b.err = err
		return
	}
	if b.total, err = b.store.RunCount(b.gameID); err != nil {
		b.err = err
	}
}

// Clear deletes every run of this game and reloads the board.
func (b *Board) Clear() error {
	if b.store == nil {
		return nil
	}
	if err := b.store.ClearRuns(b.gameID); err != nil {
		b.err = err
		return err
	}
	b.Refresh()
	return nil
}

// updateTableRows updates the table with current runs.
func (b *Board) updateTableRows() {
	rows := make([]table.Row, len(b.runs))
	for i, r := range b.runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			player,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Ticks),
			r.Cause,
			r.CreatedAt.Format("15:04:05"),
		}
	}
	b.table.SetRows(rows)

	// Reset cursor to top
	b.table.GotoTop()
}

// Resize adapts the board to a new terminal size.
func (b *Board) Resize(width, height int) {
	b.width = width
	b.height = height
	b.help.Width = width
	b.table = b.createTable()
	b.updateTableRows()
}

// Keys returns the board's key bindings.
func (b Board) Keys() BoardKeyMap {
	return b.keys
}

// Runs returns the runs currently shown.
func (b Board) Runs() []storage.RunEntry {
	return b.runs
}

// Best returns the best score in the run log.
func (b Board) Best() int {
	return b.best
}

// Total returns the number of runs in the run log.
func (b Board) Total() int {
	return b.total
}

// Update scrolls the table or clears the run log.
func (b Board) Update(msg tea.Msg) (Board, tea.Cmd) {
	var cmd tea.Cmd
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, b.keys.Clear):
			_ = b.Clear()
		case key.Matches(msg, b.keys.Up), key.Matches(msg, b.keys.Down):
			b.table, cmd = b.table.Update(msg)
		}
	}
	return b, cmd
}

// View renders the board.
func (b Board) View() string {
	var sb strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := fmt.Sprintf("RUNS - %s", b.title)
	if len(b.runs) > 0 {
		title = fmt.Sprintf("%s  (best %d, %d runs)", title, b.best, b.total)
	}
	sb.WriteString(titleStyle.Render(centerText(title, b.width)))
	sb.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	sb.WriteString(tableStyle.Render(b.renderTableContent()))

	// Help bar
	sb.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	sb.WriteString(helpStyle.Render(b.help.View(b.keys)))

	return sb.String()
}

// renderTableContent renders the table or empty message.
func (b Board) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case b.err != nil:
		return emptyStyle.Render("Run log unavailable:\n" + b.err.Error())
	case b.store == nil:
		return emptyStyle.Render("Run log disabled.")
	case len(b.runs) == 0:
		return emptyStyle.Render("No runs finished yet.\nCrash into something to get on the board!")
	}

	return b.table.View()
}

// centerText pads text on the left so it is centered in width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
