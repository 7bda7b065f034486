package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rollcube/internal/config"
	"github.com/vovakirdan/rollcube/internal/core"
	"github.com/vovakirdan/rollcube/internal/games/rollcube"
	"github.com/vovakirdan/rollcube/internal/registry"
	"github.com/vovakirdan/rollcube/internal/storage"
)

// Optional capabilities of a game, discovered by type assertion.
type (
	eventSource interface {
		DrainEvents() []rollcube.Event
	}
	loadReporter interface {
		LoadError() error
	}
	presetReporter interface {
		Preset() config.DifficultyPreset
	}
)

// GameModel is the Bubble Tea model for running one puzzle.
// It is used on its own by Run and embedded in SSH sessions.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	styles     *ScreenStyles
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
	exitOnBack bool
	solveSaved bool // Whether the current solve has been stored
	loadLogged bool
}

// NewGameModel creates a new game model. A nil logger discards output.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		styles:     defaultStyles,
		store:      store,
		logger:     logger.With("game", game.ID()),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// WithStyles returns a copy of the model that renders through st.
func (m GameModel) WithStyles(st *ScreenStyles) GameModel {
	m.styles = st
	return m
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	// gameState is set on the first tick (value receiver)
	return tickCmd(m.config.TickDuration())
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		// Esc pauses a running round; a second press leaves it.
		if m.gameState.Solved || m.gameState.Paused {
			m.backToMenu = true
			if m.exitOnBack {
				return m, tea.Quit
			}
			return m, nil
		}
		m.inputFrame.Set(core.ActionPause)
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize follows the terminal size. Games that can resize in place
// keep their board; others are restarted.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.solveSaved = false
		m.loadLogged = false
		m.inputFrame.Clear()
		m.logger.Debug("round restarted", "seed", m.config.Seed)
		return m, tickCmd(m.config.TickDuration())
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	m.logLoad()
	m.logEvents()

	if m.gameState.Solved && !m.solveSaved {
		m.saveSolve()
		m.solveSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickDuration())
}

// logLoad reports a configuration problem once per round.
func (m *GameModel) logLoad() {
	if m.loadLogged {
		return
	}
	lr, ok := m.game.(loadReporter)
	if !ok {
		m.loadLogged = true
		return
	}
	if err := lr.LoadError(); err != nil {
		m.logger.Warn("config problem, using defaults", "error", err)
	}
	m.loadLogged = true
}

func (m *GameModel) logEvents() {
	src, ok := m.game.(eventSource)
	if !ok {
		return
	}
	for _, ev := range src.DrainEvents() {
		switch ev := ev.(type) {
		case rollcube.RollEvent:
			m.logger.Debug("roll started",
				"dir", ev.Move.Dir,
				"from", fmt.Sprintf("%d,%d", ev.Move.From.X, ev.Move.From.Y),
				"to", fmt.Sprintf("%d,%d", ev.Move.To.X, ev.Move.To.Y),
				"source", ev.Source,
				"duration", ev.Duration,
			)
		case rollcube.RollFinished:
			m.logger.Debug("roll finished", "dir", ev.Dir, "cube", ev.Entity)
		case rollcube.PhaseChanged:
			m.logger.Info("phase changed", "from", ev.From, "to", ev.To)
		}
	}
}

func (m *GameModel) saveSolve() {
	preset := ""
	if pr, ok := m.game.(presetReporter); ok {
		preset = string(pr.Preset())
	}
	m.logger.Info("puzzle solved",
		"moves", m.gameState.Moves,
		"elapsed", m.gameState.Elapsed,
		"preset", preset,
	)
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveSolve(m.game.ID(), m.gameState.Moves, m.gameState.Elapsed, preset); err != nil {
		m.logger.Error("could not save solve", "error", err)
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	timestamp := time.Now().Format("20060102_150405")
	path, err := config.DataFile(filepath.Join("screenshots", fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)))
	if err != nil {
		m.logger.Error("could not resolve screenshot path", "error", err)
		return
	}
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Error("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.styles.Render(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state seen on the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for one game. It returns when the
// player quits or goes back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (backToMenu bool, err error) {
	model := NewGameModel(game, store, cfg, logger)
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // clicks roll cubes
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
