// Package tui is the interactive mode: a human in seat 0 against a bot
// in seat 1, driven through a Bubble Tea program.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/rlauff/hanabi/internal/deck"
	"github.com/rlauff/hanabi/internal/display"
	"github.com/rlauff/hanabi/internal/game"
	"github.com/rlauff/hanabi/internal/randutil"
	"github.com/rlauff/hanabi/internal/strategy"
)

const humanSeat = 0

// Model represents the Bubble Tea model for an interactive game
type Model struct {
	g      *game.Game
	human  *strategy.Manual
	logger *log.Logger

	// UI components
	logViewport viewport.Model
	actionInput textinput.Model

	// State
	gameLog     []string
	quitting    bool
	over        bool
	width       int
	height      int
	initialized bool
}

// New builds an interactive game against the named bot
func New(seed int64, botName string, opts strategy.Options, logger *log.Logger) (*Model, error) {
	human := strategy.NewManual()
	bot, err := strategy.New(botName, opts)
	if err != nil {
		return nil, err
	}

	g := game.New(randutil.New(seed), human, bot)
	if observer, ok := bot.(game.SnapshotObserver); ok {
		observer.AttachSnapshot(1-humanSeat, g.Snapshot)
	}

	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "play 2, discard 0, hint red, hint 3, quit"
	ti.Focus()
	ti.CharLimit = 40
	ti.Width = 60
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "

	m := &Model{
		g:           g,
		human:       human,
		logger:      logger.WithPrefix("tui"),
		logViewport: vp,
		actionInput: ti,
	}
	m.addLog(display.InfoStyle.Render(fmt.Sprintf("new game, seed %d, partner %s", seed, botName)))
	return m, nil
}

// Run blocks until the game or the player is done
func (m *Model) Run() error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logViewport.Width = msg.Width - 2
		m.logViewport.Height = max(msg.Height-12, 3)
		m.initialized = true
		m.refreshLog()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		case "enter":
			if cmd := m.submit(); cmd != nil {
				return m, cmd
			}
		}
	}

	var cmd tea.Cmd
	m.actionInput, cmd = m.actionInput.Update(msg)
	cmds = append(cmds, cmd)
	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// submit parses and applies the typed command, then lets the bot answer
func (m *Model) submit() tea.Cmd {
	line := strings.TrimSpace(m.actionInput.Value())
	m.actionInput.SetValue("")
	if line == "" {
		return nil
	}
	if line == "quit" || line == "q" {
		m.quitting = true
		return tea.Sequence(tea.ClearScreen, tea.Quit)
	}
	if m.over {
		m.addLog(display.InfoStyle.Render("the game is over, type quit to leave"))
		return nil
	}

	mv, err := m.parseMove(line)
	if err != nil {
		m.addLog(display.ErrorStyle.Render(err.Error()))
		return nil
	}
	if !m.isLegal(mv) {
		m.addLog(display.ErrorStyle.Render(fmt.Sprintf("illegal move: %s", mv)))
		return nil
	}

	res := m.g.ApplyMove(mv)
	m.addLog(display.Move(humanSeat, mv, res))
	m.checkOver()

	// the bot replies immediately, the engine asks it for its move
	if !m.over && m.g.CurrentPlayer() != humanSeat {
		botMv, botRes := m.g.Advance()
		m.addLog(display.Move(1-humanSeat, botMv, botRes))
		m.checkOver()
	}
	return nil
}

func (m *Model) checkOver() {
	if score, over := m.g.Over(); over {
		m.over = true
		m.addLog(display.HeaderStyle.Render(fmt.Sprintf(" game over, score %d ", score)))
	}
}

func (m *Model) isLegal(mv game.Move) bool {
	for _, legal := range m.g.LegalMoves() {
		if legal == mv {
			return true
		}
	}
	return false
}

// parseMove turns a typed command into a move. Slots are the on-screen
// indices, hints accept a suit name or a value.
func (m *Model) parseMove(line string) (game.Move, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) != 2 {
		return game.Move{}, fmt.Errorf("commands look like: play 2, discard 0, hint red, hint 3")
	}
	verb, arg := fields[0], fields[1]

	switch verb {
	case "play", "p":
		slot, err := strconv.Atoi(arg)
		if err != nil {
			return game.Move{}, fmt.Errorf("play needs a slot number, got %q", arg)
		}
		return game.Play(slot), nil
	case "discard", "d":
		slot, err := strconv.Atoi(arg)
		if err != nil {
			return game.Move{}, fmt.Errorf("discard needs a slot number, got %q", arg)
		}
		return game.Discard(slot), nil
	case "hint", "h":
		if value, err := strconv.Atoi(arg); err == nil {
			return game.HintValue(value), nil
		}
		for _, s := range deck.Suits {
			if arg == s.String() || arg == s.String()[:1] {
				return game.HintSuit(s), nil
			}
		}
		return game.Move{}, fmt.Errorf("hint needs a suit or a value, got %q", arg)
	default:
		return game.Move{}, fmt.Errorf("unknown command %q", verb)
	}
}

func (m *Model) addLog(entry string) {
	m.gameLog = append(m.gameLog, entry)
	m.refreshLog()
}

func (m *Model) refreshLog() {
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	m.logViewport.GotoBottom()
}

// View renders the board, both hands and the move log
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.initialized {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(display.HeaderStyle.Render(" hanabi ") + "\n\n")
	b.WriteString("fireworks  " + display.Fireworks(m.g.Fireworks()) + "\n")
	b.WriteString("           " + display.Status(m.g.HintsRemaining(), m.g.MistakesMade(), m.g.DeckRemaining(), m.g.Score()) + "\n\n")
	b.WriteString("partner    " + display.Hand(m.g.Hand(1-humanSeat)) + "\n")
	b.WriteString("you        " + display.HiddenHand(m.human.Knowledge().Own) + "\n\n")
	b.WriteString(m.logViewport.View() + "\n\n")
	b.WriteString(m.actionInput.View())
	return b.String()
}
