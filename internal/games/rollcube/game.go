package rollcube

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/rollcube/internal/config"
	"github.com/vovakirdan/rollcube/internal/core"
	"github.com/vovakirdan/rollcube/internal/scene"
	"github.com/vovakirdan/rollcube/internal/tween"
)

// Phase is the game flow state.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseShuffling
	PhasePlaying
	PhaseSolved
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseShuffling:
		return "shuffling"
	case PhasePlaying:
		return "playing"
	case PhaseSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// Package-level settings applied to games created after they are set.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Empty keeps the
// configured shuffle length.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// GetDifficultyPreset returns the currently selected preset.
func GetDifficultyPreset() config.DifficultyPreset {
	return difficultyPreset
}

// Game implements the rolling cube puzzle.
type Game struct {
	variant Variant

	// Set by NewWithConfig; otherwise resolved while loading.
	fixedCfg *config.RollcubeConfig

	cfg         config.RollcubeConfig
	preset      config.DifficultyPreset
	presetFixed bool // set by UsePreset; ignores the package preset
	skin        Skin
	ease        tween.Ease
	loadErr     error

	rng  *rand.Rand
	tick uint64
	dt   time.Duration

	world    *World
	shuffler *Shuffler
	ramp     *config.SpeedRamp

	phase   Phase
	moves   int
	elapsed time.Duration

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool

	// hits maps screen cells to the body drawn there by the last Render.
	hits []scene.EntityID
	hitW int

	events []Event
}

// New creates a game for a board variant. Configuration is loaded from
// the path set with SetConfigPath when the game leaves the loading phase.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// NewWithConfig creates a game that uses cfg as is.
func NewWithConfig(v Variant, cfg config.RollcubeConfig) *Game {
	return &Game{variant: v, fixedCfg: &cfg}
}

// UsePreset pins the difficulty for this game instance. Concurrent
// sessions use it instead of SetDifficultyPreset.
func (g *Game) UsePreset(p config.DifficultyPreset) {
	g.preset = p
	g.presetFixed = true
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Reset initializes/restarts the game. The board is rebuilt on the next
// Step, when the game leaves the loading phase.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.dt = cfg.TickDuration()
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.world = nil
	g.shuffler = nil
	g.ramp = nil
	g.phase = PhaseLoading
	g.moves = 0
	g.elapsed = 0
	g.paused = false
	g.hits = nil
	g.events = nil

	g.checkScreenSize()
}

// Resize updates the screen dimensions without touching the puzzle.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// load resolves configuration and skin, then builds the board.
func (g *Game) load() {
	g.loadErr = nil
	if g.fixedCfg != nil {
		g.cfg = *g.fixedCfg
	} else {
		cfg, err := config.Load(configPath)
		if err != nil {
			g.loadErr = err
			cfg = config.DefaultRollcubeConfig()
		}
		if !g.presetFixed {
			g.preset = difficultyPreset
		}
		config.ApplyPreset(&cfg, g.preset)
		g.cfg = cfg
	}

	palette, err := g.cfg.Skin.Faces.Palette()
	if err != nil {
		g.loadErr = err
		palette, _ = config.DefaultRollcubeConfig().Skin.Faces.Palette()
	}
	g.skin = Skin(palette)

	ease, err := g.cfg.Animation.EaseFunc()
	if err != nil {
		g.loadErr = err
	}
	g.ease = ease

	g.world = NewWorld(g.variant.Width, g.variant.Height, g.variant.Empty, g.cfg.Animation.ModelScale)
	g.shuffler = NewShuffler(g.rng, g.cfg.Shuffle.Moves)
	g.ramp = config.NewSpeedRamp(g.cfg.Animation, g.cfg.Shuffle.Ramp)
	g.checkScreenSize()
}

// LoadError returns the configuration problem hit while loading, if any.
// The game falls back to defaults and keeps running.
func (g *Game) LoadError() error {
	return g.loadErr
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW, minH := g.minScreenSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

func (g *Game) setPhase(p Phase) {
	if p == g.phase {
		return
	}
	g.events = append(g.events, PhaseChanged{From: g.phase, To: p})
	g.phase = p
}

// Step advances the game by one tick. Systems run in a fixed order:
// pause, phase work, input adapters, shuffle, board, roll start,
// animation, roll completion, solved check.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.phase == PhaseLoading {
		g.load()
		g.setPhase(PhaseShuffling)
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.phase != PhaseSolved {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case PhaseShuffling:
		if g.shuffler.Done() {
			g.enterPlaying()
		}
	case PhasePlaying:
		g.elapsed += g.dt
	case PhaseSolved:
		return core.StepResult{State: g.State()}
	}

	if g.phase == PhasePlaying {
		g.keyboardSystem(in)
		g.pointerSystem(in)
	}
	g.shuffleSystem()
	g.boardSystem()
	g.rollStartSystem()
	g.world.Animator.Tick(g.world.Arena, g.dt, &g.world.Completed)
	g.rollCompletedSystem()
	g.solvedSystem()

	return core.StepResult{State: g.State()}
}

// keyboardSystem turns at most one direction key per tick into an intent.
func (g *Game) keyboardSystem(in core.InputFrame) {
	for _, d := range keyOrder {
		if in.Has(actionFor(d)) {
			g.world.Inputs.Send(RollInput{Dir: d, Source: SourceKeyboard})
			return
		}
	}
}

// pointerSystem resolves a click to the cube under it and asks the board
// which way that cube can move.
func (g *Game) pointerSystem(in core.InputFrame) {
	if in.Click == nil {
		return
	}
	hit := g.hitAt(in.Click.X, in.Click.Y)
	if !hit.Valid() {
		return
	}
	cube, ok := g.world.Arena.Owner(hit, cubeTag)
	if !ok {
		return
	}
	if d, ok := g.world.Board.ClickDirection(cube); ok {
		g.world.Inputs.Send(RollInput{Dir: d, Source: SourcePointer})
	}
}

// shuffleSystem proposes one scramble move per idle tick.
func (g *Game) shuffleSystem() {
	if g.phase != PhaseShuffling || g.world.InFlight != 0 || g.shuffler.Done() {
		return
	}
	g.world.Inputs.Send(RollInput{Dir: g.shuffler.Next(), Source: SourceShuffle})
}

// boardSystem admits the first resolvable intent of the tick and drops the
// rest.
func (g *Game) boardSystem() {
	admitted := false
	for _, in := range g.world.Inputs.Drain() {
		if admitted {
			continue
		}
		if in.Source == SourceShuffle && g.phase != PhaseShuffling {
			continue
		}
		if in.Source != SourceShuffle && g.phase != PhasePlaying {
			continue
		}

		move, ok := g.world.Board.TryMove(in.Dir, g.world.InFlight)
		if !ok {
			continue
		}
		admitted = true

		ev := RollEvent{Move: move, Source: in.Source, Duration: g.ramp.Current()}
		if in.Source == SourceShuffle {
			g.ramp.Step()
			if g.shuffler.Accept(in.Dir) {
				g.enterPlaying()
			}
		} else {
			g.moves++
		}
		g.world.Rolls.Send(ev)
		g.events = append(g.events, ev)
	}
}

func (g *Game) enterPlaying() {
	g.ramp.Reset()
	g.setPhase(PhasePlaying)
}

func (g *Game) rollStartSystem() {
	for _, ev := range g.world.Rolls.Drain() {
		g.world.startRoll(ev, g.ease)
	}
}

func (g *Game) rollCompletedSystem() {
	for _, done := range g.world.Completed.Drain() {
		if fin, ok := g.world.finishRoll(done); ok {
			g.world.Finished.Send(fin)
			g.events = append(g.events, fin)
		}
	}
}

// solvedSystem ends the round once the player has restored the board and
// nothing is still rolling.
func (g *Game) solvedSystem() {
	if len(g.world.Finished.Drain()) == 0 {
		return
	}
	if g.phase != PhasePlaying || g.world.InFlight != 0 || g.moves == 0 {
		return
	}
	if g.world.Board.Solved() {
		g.setPhase(PhaseSolved)
	}
}

// DrainEvents returns the events produced since the last call: admitted
// rolls, finished rolls and phase changes.
func (g *Game) DrainEvents() []Event {
	out := g.events
	g.events = nil
	return out
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Preset returns the difficulty preset the round was loaded with.
func (g *Game) Preset() config.DifficultyPreset {
	return g.preset
}

// InFlight returns the number of rolls currently animating.
func (g *Game) InFlight() int {
	if g.world == nil {
		return 0
	}
	return g.world.InFlight
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Moves:    g.moves,
		Elapsed:  g.elapsed,
		Solved:   g.phase == PhaseSolved,
		GameOver: g.phase == PhaseSolved,
		Paused:   g.paused || g.tooSmall,
	}
}

// formatElapsed renders a duration as m:ss.t for the HUD.
func formatElapsed(d time.Duration) string {
	d = d.Truncate(100 * time.Millisecond)
	m := int(d / time.Minute)
	s := d % time.Minute
	return fmt.Sprintf("%d:%04.1f", m, s.Seconds())
}
